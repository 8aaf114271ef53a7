package colordash

import "time"

// powerUpController tracks the expiry timer of the active effect.
type powerUpController struct {
	expiry TimerID
	armed  bool
}

// ApplyEffect turns on a power-up's effect. Shield only sets Active.
func ApplyEffect(s *State, t PowerUpType, slowdown float64, multiplier int) {
	s.Active = t
	switch t {
	case PowerUpSlowdown:
		s.Pacing *= slowdown
	case PowerUpMultiplier:
		s.Multiplier = multiplier
	}
}

// RevertEffect undoes the active effect and clears Active.
func RevertEffect(s *State, slowdown float64) {
	switch s.Active {
	case PowerUpSlowdown:
		s.Pacing /= slowdown
		// Snap float drift so a full slowdown cycle restores exact pacing.
		if diff := s.Pacing - 1.0; diff > -1e-9 && diff < 1e-9 {
			s.Pacing = 1.0
		}
	case PowerUpMultiplier:
		s.Multiplier = 1
	}
	s.Active = PowerUpNone
}

// activatePowerUp applies a collected power-up. A new power-up replaces the
// running one: the old effect is reverted and its expiry cancelled before
// the new effect starts with a fresh duration.
func (g *Game) activatePowerUp(t PowerUpType) {
	if g.state.Phase != PhaseRunning || t == PowerUpNone {
		return
	}

	pacing := g.state.Pacing
	if g.state.Active != PowerUpNone {
		g.logger.Debug("power-up replaced", "old", g.state.Active, "new", t)
		g.cancelExpiry()
		RevertEffect(&g.state, g.cfg.PowerUps.SlowdownFactor)
	}

	ApplyEffect(&g.state, t, g.cfg.PowerUps.SlowdownFactor, g.cfg.PowerUps.Multiplier)
	g.powerUp.expiry = g.timers.After(g.cfg.PowerUps.Duration, g.expirePowerUp)
	g.powerUp.armed = true

	if g.state.Pacing != pacing {
		g.retime()
	}

	g.logger.Debug("power-up activated", "type", t, "pacing", g.state.Pacing, "multiplier", g.state.Multiplier)
	g.emit(Event{Type: EventPowerUpActivated, PowerUp: t, Score: g.state.Score})
}

// expirePowerUp is the expiry timer callback.
func (g *Game) expirePowerUp() {
	g.powerUp = powerUpController{}
	if g.state.Phase != PhaseRunning || g.state.Active == PowerUpNone {
		return
	}

	t := g.state.Active
	pacing := g.state.Pacing
	RevertEffect(&g.state, g.cfg.PowerUps.SlowdownFactor)
	if g.state.Pacing != pacing {
		g.retime()
	}

	g.logger.Debug("power-up expired", "type", t)
	g.emit(Event{Type: EventPowerUpExpired, PowerUp: t, Score: g.state.Score})
}

func (g *Game) cancelExpiry() {
	if g.powerUp.armed && g.timers != nil {
		g.timers.Cancel(g.powerUp.expiry)
	}
	g.powerUp = powerUpController{}
}

// powerUpRemaining returns how long the active effect has left.
func (g *Game) powerUpRemaining() time.Duration {
	if !g.powerUp.armed || g.timers == nil {
		return 0
	}
	d, ok := g.timers.Remaining(g.powerUp.expiry)
	if !ok {
		return 0
	}
	return d
}

// retime re-periods the three round timers after a pacing or difficulty change.
func (g *Game) retime() {
	if g.timers == nil {
		return
	}
	g.timers.SetPeriod(g.moveTimer, g.movePeriod())
	g.timers.SetPeriod(g.gateTimer, g.gatePeriod())
	g.timers.SetPeriod(g.powerUpTimer, g.powerUpPeriod())
}
