package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQuiztris loads the game configuration.
// Search order: customPath -> ~/.quiztris/configs/quiztris.yaml -> ./configs/quiztris.yaml -> embedded default
func LoadQuiztris(customPath string) (QuiztrisConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultQuiztrisConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultQuiztrisConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultQuiztrisConfig(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("quiztris.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "quiztris.yaml")); ok {
		return c, nil
	}

	if err := yaml.Unmarshal(defaultQuiztrisYAML, &cfg); err != nil {
		return DefaultQuiztrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid files
// are skipped.
func tryLoad(path string) (QuiztrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QuiztrisConfig{}, false
	}
	cfg := DefaultQuiztrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuiztrisConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return QuiztrisConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quiztris", "configs", filename)
}

// ApplyQuiztrisPreset modifies the config based on a difficulty preset.
func ApplyQuiztrisPreset(cfg *QuiztrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Quiz.AnswerTimeout *= 1.5
		cfg.Quiz.PunishOnTimeout = false
	case DifficultyHard:
		cfg.Quiz.AnswerTimeout *= 0.75
		cfg.Quiz.PunishOnTimeout = true
	}
}
