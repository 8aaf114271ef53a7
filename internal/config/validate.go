package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors. Returned wrapped with the offending field name.
var (
	ErrInvalidField    = errors.New("config: field must be positive")
	ErrInvalidDuration = errors.New("config: duration must be positive")
	ErrOutOfRange      = errors.New("config: value out of range")
	ErrInvalidFactor   = errors.New("config: factor must be greater than zero")
	ErrUnknownPreset   = errors.New("config: unknown difficulty preset")
)

// Validate checks that the config describes a playable game.
func (c ColorDashConfig) Validate() error {
	positives := []struct {
		name string
		v    int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"field.gate_width", c.Field.GateWidth},
		{"field.powerup_size", c.Field.PowerUpSize},
		{"field.step", c.Field.Step},
		{"dot.size", c.Dot.Size},
		{"scoring.gate_points", c.Scoring.GatePoints},
		{"powerups.multiplier", c.PowerUps.Multiplier},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidField, p.name, p.v)
		}
	}

	if c.Field.Offscreen >= c.Field.Width {
		return fmt.Errorf("%w: field.offscreen (%d) must be below field.width", ErrInvalidField, c.Field.Offscreen)
	}

	durations := []struct {
		name string
		v    time.Duration
	}{
		{"timing.tick", c.Timing.Tick},
		{"timing.gate_interval", c.Timing.GateInterval},
		{"timing.powerup_interval", c.Timing.PowerUpInterval},
		{"powerups.duration", c.PowerUps.Duration},
		{"dot.bob_period", c.Dot.BobPeriod},
	}
	for _, d := range durations {
		if d.v <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidDuration, d.name)
		}
	}

	if c.Spawn.PowerUpChance < 0 || c.Spawn.PowerUpChance > 1 {
		return fmt.Errorf("%w: spawn.powerup_chance = %g", ErrOutOfRange, c.Spawn.PowerUpChance)
	}
	if c.PowerUps.SlowdownFactor <= 0 {
		return fmt.Errorf("%w: powerups.slowdown_factor = %g", ErrInvalidFactor, c.PowerUps.SlowdownFactor)
	}
	if c.Difficulty.Scaling.IntervalReduction < 0 || c.Difficulty.Scaling.IntervalReduction >= 1 {
		return fmt.Errorf("%w: difficulty.scaling.interval_reduction = %g", ErrOutOfRange, c.Difficulty.Scaling.IntervalReduction)
	}

	return nil
}
