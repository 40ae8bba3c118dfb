// Package config provides YAML-based game configuration loading and
// difficulty management for the millipede arena.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MillipedeConfig contains all configuration for the Millipede game.
type MillipedeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Sprites    SpriteConfig     `yaml:"sprites"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Timers     TimersConfig     `yaml:"timers"`
	Levels     []LevelTable     `yaml:"levels"`
	Swarm      SwarmConfig      `yaml:"swarm"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Debug      DebugConfig      `yaml:"debug"`
}

// ArenaConfig defines the playfield geometry in pixels.
type ArenaConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	PlayerBand int `yaml:"player_band"` // Height of the band the player moves in
	ScoreBar   int `yaml:"score_bar"`
	Cell       int `yaml:"cell"` // Mushroom cell edge
}

// Size is a sprite's bounding box in pixels.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SpriteConfig is the sizing contract of the asset registry.
type SpriteConfig struct {
	Player   Size `yaml:"player"`
	Missile  Size `yaml:"missile"`
	Segment  Size `yaml:"segment"`
	Monster  Size `yaml:"monster"`
	Canister Size `yaml:"canister"`
}

// GameplayConfig defines scoring and pacing rules.
type GameplayConfig struct {
	StartLives        int `yaml:"start_lives"`
	LifeBonus         int `yaml:"life_bonus"`
	SpiderAttackEvery int `yaml:"spider_attack_every"`
	MaxCanisters      int `yaml:"max_canisters"`
	InitialMushrooms  int `yaml:"initial_mushrooms"`
	MaxSegments       int `yaml:"max_segments"`
	MaxMillipedes     int `yaml:"max_millipedes"` // Player-area spawns stop above this
	PlayerSpeed       int `yaml:"player_speed"`
	MissileSpeed      int `yaml:"missile_speed"`
	SegmentStep       int `yaml:"segment_step"`
	MoveCount         int `yaml:"move_count"` // Translation moves between waypoint recomputes
}

// TimersConfig holds every cooldown in milliseconds.
type TimersConfig struct {
	LevelUp        int64 `yaml:"level_up"`
	SpawnQueue     int64 `yaml:"spawn_queue"`
	SwarmSpawn     int64 `yaml:"swarm_spawn"`
	RandomEvent    int64 `yaml:"random_event"`
	NinthScroll    int64 `yaml:"ninth_scroll"`
	GameOver       int64 `yaml:"game_over"`
	SlowTime       int64 `yaml:"slow_time"`
	SlowStep       int64 `yaml:"slow_step"`
	Restore        int64 `yaml:"restore"`
	BirthDeath     int64 `yaml:"birth_death"`
	BirthDeathStep int64 `yaml:"birth_death_step"`
	FlowerWilt     int64 `yaml:"flower_wilt"`
	Canister       int64 `yaml:"canister"`
	Popup          int64 `yaml:"popup"`
	Particle       int64 `yaml:"particle"`
	Animation      int64 `yaml:"animation"`
}

// LevelTable is one row of the spawn tables.
// Thresholds are cumulative percentages in the order
// beetle, spider, bee, inchworm, mosquito, dragonfly, earwig; -1 disables a kind.
// Caps bound concurrent beetles, spiders, earwigs and inchworms.
type LevelTable struct {
	Thresholds []int `yaml:"thresholds"`
	Caps       []int `yaml:"caps"`
}

// SwarmStage names the monster kinds of one swarm cycle position.
type SwarmStage struct {
	Position int      `yaml:"position"`
	Kinds    []string `yaml:"kinds"`
}

// SwarmConfig defines the repeating special-stage cycle.
type SwarmConfig struct {
	Count      int          `yaml:"count"` // Monsters launched per swarm stage
	BonusStep  int          `yaml:"bonus_step"`
	BonusMax   int          `yaml:"bonus_max"`
	Cycle      int          `yaml:"cycle"`
	NinthStart int          `yaml:"ninth_start"`
	NinthStop  int          `yaml:"ninth_stop"`
	Stages     []SwarmStage `yaml:"stages"`
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	Invulnerable bool `yaml:"invulnerable"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EventRate   float64 `yaml:"event_rate"`   // Random events happen (1 + rate) times as often at max difficulty
	MinInterval int64   `yaml:"min_interval"` // Floor for the random-event delay in ms
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}
