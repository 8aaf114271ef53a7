package colordash

// MoveEntities shifts every gate and power-up left by step and drops those
// whose X is no longer above the offscreen threshold. Order is preserved.
// Returns the number of entities removed.
func MoveEntities(s *State, step, offscreen int) int {
	removed := 0

	gates := s.Gates[:0]
	for _, gate := range s.Gates {
		gate.X -= step
		if gate.X > offscreen {
			gates = append(gates, gate)
		} else {
			removed++
		}
	}
	s.Gates = gates

	powerUps := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.X -= step
		if p.X > offscreen {
			powerUps = append(powerUps, p)
		} else {
			removed++
		}
	}
	s.PowerUps = powerUps

	return removed
}

// moveTick is the movement timer callback: move, then resolve collisions
// against the post-move positions.
func (g *Game) moveTick() {
	if g.state.Phase != PhaseRunning {
		return
	}

	g.moveTicks++
	step := g.difficulty.Step(g.cfg.Field.Step, g.state.Score, g.moveTicks)
	MoveEntities(&g.state, step, g.cfg.Field.Offscreen)

	dot := g.geometry.DotRect(g.roundElapsed())
	g.resolve(ResolveCollisions(&g.state, dot, g.geometry))
}
