package config

import (
	_ "embed"
)

//go:embed defaults/quiztris.yaml
var defaultQuiztrisYAML []byte

// DefaultQuiztrisConfig returns the default configuration.
func DefaultQuiztrisConfig() QuiztrisConfig {
	return QuiztrisConfig{
		Quiz: QuizConfig{
			AnswerTimeout:   20,
			PunishOnTimeout: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				TimeoutReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `quiztris config`
// as a starting point for user overrides.
func DefaultYAML() []byte {
	return defaultQuiztrisYAML
}
