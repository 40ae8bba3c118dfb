package config

import (
	_ "embed"
)

//go:embed defaults/millipede.yaml
var defaultMillipedeYAML []byte

// DefaultMillipedeConfig returns the default Millipede configuration.
// It mirrors defaults/millipede.yaml and is used when the embedded copy
// cannot be parsed.
func DefaultMillipedeConfig() MillipedeConfig {
	return MillipedeConfig{
		Arena: ArenaConfig{
			Width:      360,
			Height:     360,
			PlayerBand: 72,
			ScoreBar:   16,
			Cell:       12,
		},
		Sprites: SpriteConfig{
			Player:   Size{W: 12, H: 12},
			Missile:  Size{W: 9, H: 11},
			Segment:  Size{W: 12, H: 12},
			Monster:  Size{W: 12, H: 12},
			Canister: Size{W: 24, H: 12},
		},
		Gameplay: GameplayConfig{
			StartLives:        3,
			LifeBonus:         20000,
			SpiderAttackEvery: 100000,
			MaxCanisters:      5,
			InitialMushrooms:  75,
			MaxSegments:       12,
			MaxMillipedes:     10,
			PlayerSpeed:       3,
			MissileSpeed:      12,
			SegmentStep:       3,
			MoveCount:         4,
		},
		Timers: TimersConfig{
			LevelUp:        1250,
			SpawnQueue:     100,
			SwarmSpawn:     250,
			RandomEvent:    1000,
			NinthScroll:    750,
			GameOver:       2500,
			SlowTime:       5000,
			SlowStep:       125,
			Restore:        25,
			BirthDeath:     1000,
			BirthDeathStep: 250,
			FlowerWilt:     10000,
			Canister:       3000,
			Popup:          1000,
			Particle:       250,
			Animation:      250,
		},
		Levels: defaultLevels(),
		Swarm: SwarmConfig{
			Count:      100,
			BonusStep:  100,
			BonusMax:   1000,
			Cycle:      17,
			NinthStart: 12,
			NinthStop:  13,
			Stages: []SwarmStage{
				{Position: 3, Kinds: []string{"bee"}},
				{Position: 8, Kinds: []string{"dragonfly"}},
				{Position: 11, Kinds: []string{"mosquito"}},
				{Position: 14, Kinds: []string{"bee", "dragonfly"}},
				{Position: 17, Kinds: []string{"bee", "dragonfly", "mosquito"}},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 250000,
			},
			Scaling: ScalingConfig{
				EventRate:   1.0,
				MinInterval: 400,
			},
		},
	}
}

func defaultLevels() []LevelTable {
	thresholds := [][]int{
		{25, -1, -1, -1, -1, -1, -1},
		{30, 50, -1, 52, -1, -1, 54},
		{35, 52, 54, 58, -1, -1, 62},
		{40, 54, 56, 60, -1, -1, 64},
		{45, 56, 58, 64, 66, 68, 74},
		{50, 58, 60, 66, 68, 70, 76},
		{50, 60, 62, 68, 70, 72, 78},
		{50, 62, 64, 70, 72, 74, 80},
		{50, 64, 68, 76, 80, 84, 92},
		{50, 66, 70, 78, 82, 86, 94},
		{50, 68, 72, 80, 84, 88, 96},
		{50, 70, 76, 84, 88, 92, 98},
		{50, 70, 78, 86, 92, 98, 100},
	}
	caps := [][]int{
		{2, 0, 0, 0},
		{2, 1, 1, 1},
		{2, 1, 1, 1},
		{3, 1, 1, 1},
		{3, 2, 1, 1},
		{4, 2, 1, 1},
		{4, 2, 1, 1},
		{5, 3, 2, 2},
		{5, 4, 2, 2},
		{6, 5, 2, 2},
		{6, 6, 2, 2},
		{7, 7, 2, 2},
		{8, 8, 2, 2},
	}

	levels := make([]LevelTable, len(thresholds))
	for i := range thresholds {
		levels[i] = LevelTable{Thresholds: thresholds[i], Caps: caps[i]}
	}
	return levels
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "millipede":
		return defaultMillipedeYAML
	default:
		return nil
	}
}
