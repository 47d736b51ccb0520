// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// QuiztrisConfig contains all tunable settings for a game. The board size,
// descent interval and score table are fixed and live in the engine.
type QuiztrisConfig struct {
	Quiz       QuizConfig       `yaml:"quiz"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// QuizConfig defines how questions are timed and punished.
type QuizConfig struct {
	AnswerTimeout   float64 `yaml:"answer_timeout"`    // Seconds per question, 0 disables
	PunishOnTimeout bool    `yaml:"punish_on_timeout"` // Expired question counts as wrong
	Deck            string  `yaml:"deck"`              // Optional custom deck path
}

// Timeout returns the base answer timeout as a duration.
func (q QuizConfig) Timeout() time.Duration {
	return time.Duration(q.AnswerTimeout * float64(time.Second))
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
	TimeoutReduction float64 `yaml:"timeout_reduction"` // Fraction of answer timeout removed at max difficulty
}

// Validate reports every out-of-range setting.
func (c QuiztrisConfig) Validate() error {
	var errs []error
	if c.Quiz.AnswerTimeout < 0 {
		errs = append(errs, fmt.Errorf("quiz.answer_timeout must not be negative, got %v", c.Quiz.AnswerTimeout))
	}
	if l := c.Difficulty.InitialLevel; l < 0 || l > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %v", l))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}
	if r := c.Difficulty.Scaling.TimeoutReduction; r < 0 || r >= 1 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.timeout_reduction must be within [0, 1), got %v", r))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

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
