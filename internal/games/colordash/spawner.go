package colordash

// SpawnGate appends a gate of uniformly random palette color at x.
func SpawnGate(s *State, rng RNG, x int) Gate {
	gate := Gate{
		ID:    s.nextGateID,
		Color: Palette[rng.Intn(len(Palette))],
		X:     x,
	}
	s.nextGateID++
	s.Gates = append(s.Gates, gate)
	return gate
}

// SpawnPowerUp appends a power-up of uniformly random type at x with the
// given probability. Reports whether one was spawned.
func SpawnPowerUp(s *State, rng RNG, x int, chance float64) (PowerUp, bool) {
	if rng.Float64() >= chance {
		return PowerUp{}, false
	}

	p := PowerUp{
		ID:   s.nextPowerUpID,
		Type: PowerUpTypes[rng.Intn(len(PowerUpTypes))],
		X:    x,
	}
	s.nextPowerUpID++
	s.PowerUps = append(s.PowerUps, p)
	return p, true
}

func (g *Game) spawnGateTick() {
	if g.state.Phase != PhaseRunning {
		return
	}
	SpawnGate(&g.state, g.rng, g.cfg.Field.Width)
}

func (g *Game) spawnPowerUpTick() {
	if g.state.Phase != PhaseRunning {
		return
	}
	SpawnPowerUp(&g.state, g.rng, g.cfg.Field.Width, g.cfg.Spawn.PowerUpChance)
}
