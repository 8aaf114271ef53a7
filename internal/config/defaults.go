package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/colordash.yaml
var defaultColorDashYAML []byte

// DefaultColorDashConfig returns the built-in configuration.
// It mirrors defaults/colordash.yaml and is the fallback if that fails to parse.
func DefaultColorDashConfig() ColorDashConfig {
	return ColorDashConfig{
		Field: FieldConfig{
			Width:       400,
			Height:      192,
			GateWidth:   16,
			PowerUpSize: 24,
			Step:        2,
			Offscreen:   -50,
		},
		Dot: DotConfig{
			X:            40,
			BaseY:        40,
			Size:         32,
			BobAmplitude: 80,
			BobPeriod:    2 * time.Second,
		},
		Timing: TimingConfig{
			Tick:            16 * time.Millisecond,
			GateInterval:    2 * time.Second,
			PowerUpInterval: 5 * time.Second,
		},
		Spawn: SpawnConfig{
			PowerUpChance: 0.1,
		},
		Scoring: ScoringConfig{
			GatePoints: 10,
		},
		PowerUps: PowerUpConfig{
			Duration:       5 * time.Second,
			SlowdownFactor: 1.5,
			Multiplier:     2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColorDashYAML
}
