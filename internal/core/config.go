package core

import "time"

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells the game about its host.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Frames per second
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig is an 80x24 terminal at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills a non-positive tick rate.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// FrameDuration is the game time covered by one frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.WithDefaults().TickRate)
}

// GameState is the coarse status the platform reads after every frame.
type GameState struct {
	Score     int
	HighScore int // Never below Score
	Running   bool
	GameOver  bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
