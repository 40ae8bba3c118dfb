package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMillipede loads Millipede configuration.
// Search order: customPath -> ~/.arcade/configs/millipede.yaml -> ./configs/millipede.yaml -> embedded default
func LoadMillipede(customPath string) (MillipedeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MillipedeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseMillipede(data)
		if err != nil {
			return MillipedeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("millipede.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseMillipede(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/millipede.yaml"); err == nil {
		if cfg, err := ParseMillipede(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseMillipede(defaultMillipedeYAML)
	if err != nil {
		return DefaultMillipedeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseMillipede decodes YAML on top of the defaults and validates the result,
// so a partial file only overrides the keys it names.
func ParseMillipede(data []byte) (MillipedeConfig, error) {
	cfg := DefaultMillipedeConfig()
	// Lists replace rather than merge.
	cfg.Levels = nil
	cfg.Swarm.Stages = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MillipedeConfig{}, err
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = defaultLevels()
	}
	if len(cfg.Swarm.Stages) == 0 {
		cfg.Swarm.Stages = DefaultMillipedeConfig().Swarm.Stages
	}
	if err := cfg.Validate(); err != nil {
		return MillipedeConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c MillipedeConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMillipedePreset modifies the config based on a difficulty preset.
func ApplyMillipedePreset(cfg *MillipedeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartLives = 5
		cfg.Timers.RandomEvent = 1500
	case DifficultyHard:
		cfg.Gameplay.StartLives = 2
		cfg.Timers.RandomEvent = 750
	}
}
