package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// With progression disabled the level stays at zero so base values apply unchanged.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Step returns the move step for the current level.
// The step grows from base to base * (1 + speedMultiplier) and is never below 1.
func (d *DifficultyManager) Step(baseStep int, score int, ticks int) int {
	level := d.Level(score, ticks)
	step := int(math.Round(float64(baseStep) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	if step < 1 {
		step = 1
	}
	return step
}

// Interval returns the gate spawn interval for the current level.
// The interval shrinks by up to intervalReduction of its base value.
func (d *DifficultyManager) Interval(base time.Duration, score int, ticks int) time.Duration {
	level := d.Level(score, ticks)
	reduction := clampF(level*d.cfg.Scaling.IntervalReduction, 0.0, 0.9)
	result := time.Duration(float64(base) * (1.0 - reduction))
	if result < time.Millisecond {
		result = time.Millisecond
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
