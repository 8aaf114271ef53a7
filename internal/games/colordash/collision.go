package colordash

import (
	"math"
	"time"

	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/core"
)

// Geometry holds the hitbox dimensions of the field, the dot and entities.
type Geometry struct {
	FieldWidth   int
	FieldHeight  int
	GateWidth    int
	PowerUpSize  int
	DotX         int
	DotBaseY     int
	DotSize      int
	BobAmplitude int
	BobPeriod    time.Duration
}

// NewGeometry extracts the geometry from a game config.
func NewGeometry(cfg config.ColorDashConfig) Geometry {
	return Geometry{
		FieldWidth:   cfg.Field.Width,
		FieldHeight:  cfg.Field.Height,
		GateWidth:    cfg.Field.GateWidth,
		PowerUpSize:  cfg.Field.PowerUpSize,
		DotX:         cfg.Dot.X,
		DotBaseY:     cfg.Dot.BaseY,
		DotSize:      cfg.Dot.Size,
		BobAmplitude: cfg.Dot.BobAmplitude,
		BobPeriod:    cfg.Dot.BobPeriod,
	}
}

// DotRect returns the dot's hitbox at the given time into the round.
// The dot bobs from BaseY down by BobAmplitude and back once per BobPeriod.
func (g Geometry) DotRect(elapsed time.Duration) core.Rect {
	offset := 0
	if g.BobPeriod > 0 {
		phase := float64(elapsed%g.BobPeriod) / float64(g.BobPeriod)
		offset = int(math.Round(float64(g.BobAmplitude) * (1 - math.Cos(2*math.Pi*phase)) / 2))
	}
	return core.NewRect(g.DotX, g.DotBaseY+offset, g.DotSize, g.DotSize)
}

// GateRect returns a gate's hitbox. Gates span the full field height.
func (g Geometry) GateRect(gate Gate) core.Rect {
	return core.NewRect(gate.X, 0, g.GateWidth, g.FieldHeight)
}

// PowerUpRect returns a power-up's hitbox, centered vertically.
func (g Geometry) PowerUpRect(p PowerUp) core.Rect {
	return core.NewRect(p.X, g.FieldHeight/2-g.PowerUpSize/2, g.PowerUpSize, g.PowerUpSize)
}

// Collisions is the outcome of one collision pass.
type Collisions struct {
	Passed    []Gate    // Matched color or shielded
	Failed    []Gate    // Mismatched color without shield
	Collected []PowerUp // Only filled when no gate failed
}

// ResolveCollisions removes every entity overlapping the dot and reports
// what happened. Gates resolve first; power-ups are only collected if no
// gate failed in the same pass, so a power-up cannot rescue a failed round.
// A correct-color pass does not consume the shield.
func ResolveCollisions(s *State, dot core.Rect, geo Geometry) Collisions {
	var c Collisions
	shielded := s.Active == PowerUpShield

	gates := s.Gates[:0]
	for _, gate := range s.Gates {
		if !dot.Intersects(geo.GateRect(gate)) {
			gates = append(gates, gate)
			continue
		}
		if gate.Color == s.Color || shielded {
			c.Passed = append(c.Passed, gate)
		} else {
			c.Failed = append(c.Failed, gate)
		}
	}
	s.Gates = gates

	if len(c.Failed) > 0 {
		return c
	}

	powerUps := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		if dot.Intersects(geo.PowerUpRect(p)) {
			c.Collected = append(c.Collected, p)
			continue
		}
		powerUps = append(powerUps, p)
	}
	s.PowerUps = powerUps

	return c
}

// resolve dispatches a collision pass to the score keeper, the power-up
// controller and the state machine.
func (g *Game) resolve(c Collisions) {
	for _, gate := range c.Passed {
		points := Award(&g.state, g.cfg.Scoring.GatePoints)
		g.emit(Event{Type: EventGatePassed, Points: points, Color: gate.Color, Score: g.state.Score})
	}
	if len(c.Passed) > 0 && g.difficulty.IsEnabled() {
		g.retime()
	}

	if len(c.Failed) > 0 {
		g.logger.Debug("gate failed", "gate", c.Failed[0].ID, "gate_color", c.Failed[0].Color, "dot_color", g.state.Color)
		g.End()
		return
	}

	for _, p := range c.Collected {
		g.activatePowerUp(p.Type)
	}
}
