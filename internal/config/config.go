// Package config provides YAML-based game configuration loading and
// difficulty management for Color Dash.
package config

import (
	"fmt"
	"time"
)

// ColorDashConfig contains all tunable parameters of the game.
// Field coordinates are in abstract field pixels; the renderer scales them.
type ColorDashConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Dot        DotConfig        `yaml:"dot"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field and entity geometry.
type FieldConfig struct {
	Width       int `yaml:"width"`        // Spawn X of new entities
	Height      int `yaml:"height"`       // Field height, gates span all of it
	GateWidth   int `yaml:"gate_width"`   // Gate hitbox width
	PowerUpSize int `yaml:"powerup_size"` // Power-up hitbox side, centered vertically
	Step        int `yaml:"step"`         // X decrement per move tick
	Offscreen   int `yaml:"offscreen"`    // Entities at or below this X are dropped
}

// DotConfig defines the player dot's slot and bobbing motion.
type DotConfig struct {
	X            int           `yaml:"x"`
	BaseY        int           `yaml:"base_y"`
	Size         int           `yaml:"size"`
	BobAmplitude int           `yaml:"bob_amplitude"`
	BobPeriod    time.Duration `yaml:"bob_period"`
}

// TimingConfig defines the periods of the three running timers.
type TimingConfig struct {
	Tick            time.Duration `yaml:"tick"`
	GateInterval    time.Duration `yaml:"gate_interval"`
	PowerUpInterval time.Duration `yaml:"powerup_interval"`
}

// SpawnConfig defines randomized spawning parameters.
type SpawnConfig struct {
	PowerUpChance float64 `yaml:"powerup_chance"` // 0.0 - 1.0 per power-up timer firing
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	GatePoints int `yaml:"gate_points"`
}

// PowerUpConfig defines power-up effect parameters.
type PowerUpConfig struct {
	Duration       time.Duration `yaml:"duration"`
	SlowdownFactor float64       `yaml:"slowdown_factor"`
	Multiplier     int           `yaml:"multiplier"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or move ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to the move step factor at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the gate interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ColorDashConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
