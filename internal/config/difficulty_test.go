package config

import (
	"math"
	"testing"
	"time"
)

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultColorDashConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Step(2, 10000, 10000); got != 2 {
		t.Errorf("Step() = %d, expected base 2", got)
	}
	if got := d.Interval(2*time.Second, 10000, 10000); got != 2*time.Second {
		t.Errorf("Interval() = %v, expected base 2s", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultColorDashConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 100}
	cfg.Scaling = ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		level    float64
		step     int
		interval time.Duration
	}{
		{0, 0.0, 2, 2 * time.Second},
		{50, 0.5, 3, 1500 * time.Millisecond},
		{100, 1.0, 4, time.Second},
		{1000, 1.0, 4, time.Second}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := d.Step(2, tc.score, 0); got != tc.step {
			t.Errorf("Step(2, %d) = %d, expected %d", tc.score, got, tc.step)
		}
		if got := d.Interval(2*time.Second, tc.score, 0); got != tc.interval {
			t.Errorf("Interval(2s, %d) = %v, expected %v", tc.score, got, tc.interval)
		}
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DefaultColorDashConfig()
	ApplyPreset(&cfg, DifficultyHard)
	d := NewDifficultyManager(cfg.Difficulty)

	if got := d.Level(0, 0); got != 0.7 {
		t.Errorf("Level(0) = %v, expected 0.7 for hard preset", got)
	}
	if got := d.Level(cfg.Difficulty.Progression.MaxAt, 0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Level(max) = %v, expected 1.0", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})

	if got := d.Level(0, 300); got != 0.5 {
		t.Errorf("Level(ticks=300) = %v, expected 0.5", got)
	}
}
