package colordash

import (
	"time"

	"github.com/vovakirdan/colordash/internal/core"
)

// Snapshot is a read-only view of the game for renderers.
type Snapshot struct {
	Phase     Phase
	Started   bool // A round has been started at least once
	Running   bool
	Over      bool
	Score     int
	HighScore int // Never below Score
	Color     PaletteColor

	Gates    []Gate
	PowerUps []PowerUp

	Active          PowerUpType
	ActiveRemaining time.Duration
	Multiplier      int
	Pacing          float64

	Dot         core.Rect
	FieldWidth  int
	FieldHeight int
	GateWidth   int
	PowerUpSize int
	Elapsed     time.Duration
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:           g.state.Phase,
		Started:         g.state.Phase != PhaseIdle,
		Running:         g.state.Phase == PhaseRunning,
		Over:            g.state.Phase == PhaseOver,
		Score:           g.state.Score,
		HighScore:       g.state.BestScore(),
		Color:           g.state.Color,
		Gates:           append([]Gate(nil), g.state.Gates...),
		PowerUps:        append([]PowerUp(nil), g.state.PowerUps...),
		Active:          g.state.Active,
		ActiveRemaining: g.powerUpRemaining(),
		Multiplier:      g.state.Multiplier,
		Pacing:          g.state.Pacing,
		FieldWidth:      g.geometry.FieldWidth,
		FieldHeight:     g.geometry.FieldHeight,
		GateWidth:       g.geometry.GateWidth,
		PowerUpSize:     g.geometry.PowerUpSize,
	}
	if s.Started {
		s.Elapsed = g.roundElapsed()
	}
	s.Dot = g.geometry.DotRect(s.Elapsed)
	return s
}

// GateRect returns a gate's hitbox in field coordinates.
func (s Snapshot) GateRect(gate Gate) core.Rect {
	return core.NewRect(gate.X, 0, s.GateWidth, s.FieldHeight)
}

// PowerUpRect returns a power-up's hitbox in field coordinates.
func (s Snapshot) PowerUpRect(p PowerUp) core.Rect {
	return core.NewRect(p.X, s.FieldHeight/2-s.PowerUpSize/2, s.PowerUpSize, s.PowerUpSize)
}
