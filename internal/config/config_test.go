package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseMillipede(defaultMillipedeYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultMillipedeConfig()

	if cfg.Arena != def.Arena {
		t.Errorf("arena = %+v, want %+v", cfg.Arena, def.Arena)
	}
	if cfg.Gameplay != def.Gameplay {
		t.Errorf("gameplay = %+v, want %+v", cfg.Gameplay, def.Gameplay)
	}
	if cfg.Timers != def.Timers {
		t.Errorf("timers = %+v, want %+v", cfg.Timers, def.Timers)
	}
	if len(cfg.Levels) != 13 {
		t.Fatalf("got %d level tables, want 13", len(cfg.Levels))
	}
	for i := range def.Levels {
		for j, v := range def.Levels[i].Thresholds {
			if cfg.Levels[i].Thresholds[j] != v {
				t.Errorf("level %d threshold %d = %d, want %d", i, j, cfg.Levels[i].Thresholds[j], v)
			}
		}
		for j, v := range def.Levels[i].Caps {
			if cfg.Levels[i].Caps[j] != v {
				t.Errorf("level %d cap %d = %d, want %d", i, j, cfg.Levels[i].Caps[j], v)
			}
		}
	}
	if len(cfg.Swarm.Stages) != len(def.Swarm.Stages) {
		t.Errorf("got %d swarm stages, want %d", len(cfg.Swarm.Stages), len(def.Swarm.Stages))
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := ParseMillipede([]byte("gameplay:\n  start_lives: 7\ndebug:\n  invulnerable: true\n"))
	if err != nil {
		t.Fatalf("ParseMillipede: %v", err)
	}
	if cfg.Gameplay.StartLives != 7 {
		t.Errorf("start_lives = %d, want 7", cfg.Gameplay.StartLives)
	}
	if cfg.Gameplay.LifeBonus != 20000 {
		t.Errorf("unset keys should keep defaults, life_bonus = %d", cfg.Gameplay.LifeBonus)
	}
	if !cfg.Debug.Invulnerable {
		t.Error("debug.invulnerable should be set")
	}
	if len(cfg.Levels) != 13 {
		t.Errorf("missing levels should fall back to defaults, got %d", len(cfg.Levels))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *MillipedeConfig)
	}{
		{"segment not cell sized", func(c *MillipedeConfig) { c.Sprites.Segment.W = 10 }},
		{"arena not cell multiple", func(c *MillipedeConfig) { c.Arena.Width = 365 }},
		{"band outside arena", func(c *MillipedeConfig) { c.Arena.PlayerBand = 360 }},
		{"step does not cover cell", func(c *MillipedeConfig) { c.Gameplay.MoveCount = 3 }},
		{"short threshold row", func(c *MillipedeConfig) { c.Levels[0].Thresholds = []int{1, 2} }},
		{"short caps row", func(c *MillipedeConfig) { c.Levels[2].Caps = []int{1} }},
		{"no levels", func(c *MillipedeConfig) { c.Levels = nil }},
		{"unknown swarm kind", func(c *MillipedeConfig) { c.Swarm.Stages[0].Kinds = []string{"spider"} }},
		{"stage beyond cycle", func(c *MillipedeConfig) { c.Swarm.Stages[0].Position = 40 }},
		{"zero lives", func(c *MillipedeConfig) { c.Gameplay.StartLives = 0 }},
		{"more heads than columns", func(c *MillipedeConfig) { c.Gameplay.MaxSegments = c.Arena.Width/c.Arena.Cell + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMillipedeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultMillipedeConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}

	// one head per column still fits
	cfg := DefaultMillipedeConfig()
	cfg.Gameplay.MaxSegments = cfg.Arena.Width / cfg.Arena.Cell
	if err := cfg.Validate(); err != nil {
		t.Errorf("max segments equal to columns should validate, got %v", err)
	}
}

func TestLoadMillipedeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  life_bonus: 5000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMillipede(path)
	if err != nil {
		t.Fatalf("LoadMillipede: %v", err)
	}
	if cfg.Gameplay.LifeBonus != 5000 {
		t.Errorf("life_bonus = %d, want 5000", cfg.Gameplay.LifeBonus)
	}

	if _, err := LoadMillipede(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena:\n  cell: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMillipede(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid file error = %v, want ErrInvalidConfig", err)
	}
}

func TestApplyMillipedePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
		initial float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMillipedeConfig()
			ApplyMillipedePreset(&cfg, tt.preset)
			if cfg.Gameplay.StartLives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Gameplay.StartLives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	dm.SetEnabled(false)
	if dm.Level(1000, 0) != 0.2 {
		t.Error("disabled manager should stay at the initial level")
	}
}

func TestDifficultyInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{EventRate: 1.0, MinInterval: 400},
	})

	tests := []struct {
		name  string
		base  int64
		score int
		want  int64
	}{
		{"start", 1000, 0, 1000},
		{"half way", 1000, 50, 666},
		{"max", 1000, 100, 500},
		{"floor", 600, 100, 400},
		{"floor never above base", 300, 100, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dm.Interval(tt.base, tt.score, 0); got != tt.want {
				t.Errorf("Interval(%d, %d) = %d, want %d", tt.base, tt.score, got, tt.want)
			}
		})
	}
}
