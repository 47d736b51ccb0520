package config

import (
	"testing"
	"time"
)

func scoreDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{TimeoutReduction: 0.5},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelFromInitial(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())
	d.SetInitialLevel(0.5)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := d.Level(500, 0); got != 0.75 {
		t.Errorf("Level(500) = %v, expected 0.75", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	d := NewDifficultyManager(cfg)

	if got := d.Level(99999, 300); got != 0.5 {
		t.Errorf("Level(ticks=300) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())
	d.SetEnabled(false)
	d.SetInitialLevel(0.2)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(1000, 1000); got != 0.2 {
		t.Errorf("disabled Level() = %v, expected initial 0.2", got)
	}
}

func TestDifficultyTimeout(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	tests := []struct {
		name     string
		base     time.Duration
		score    int
		expected time.Duration
	}{
		{"start keeps base", 20 * time.Second, 0, 20 * time.Second},
		{"halfway", 20 * time.Second, 500, 15 * time.Second},
		{"max difficulty", 20 * time.Second, 1000, 10 * time.Second},
		{"floor", 4 * time.Second, 1000, MinAnswerTimeout},
		{"short base is not raised", 2 * time.Second, 1000, 2 * time.Second},
		{"disabled stays disabled", 0, 1000, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Timeout(tc.base, tc.score, 0); got != tc.expected {
				t.Errorf("Timeout() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
