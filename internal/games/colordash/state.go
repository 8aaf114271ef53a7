package colordash

// Phase is the game state machine's state.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Round in progress
	PhaseOver                 // Round ended by a failed gate
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is the mutable game aggregate. Component functions take it by pointer.
type State struct {
	Phase      Phase
	Score      int
	HighScore  int
	Pacing     float64     // Multiplies every timer period; 1.0 is normal speed
	Active     PowerUpType // PowerUpNone when no effect runs
	Multiplier int
	Color      PaletteColor
	Gates      []Gate
	PowerUps   []PowerUp

	nextGateID    int
	nextPowerUpID int
}

// NewState returns an idle state with default values.
func NewState() State {
	s := State{Phase: PhaseIdle}
	s.resetRound()
	return s
}

// resetRound restores every per-round field. HighScore survives.
func (s *State) resetRound() {
	s.Score = 0
	s.Pacing = 1.0
	s.Active = PowerUpNone
	s.Multiplier = 1
	s.Color = Palette[0]
	s.Gates = s.Gates[:0]
	s.PowerUps = s.PowerUps[:0]
	s.nextGateID = 0
	s.nextPowerUpID = 0
}

// Start begins a new round from any phase. The previous round's timers are
// released before new ones are acquired.
func (g *Game) Start() {
	g.releaseTimers()

	g.state.resetRound()
	g.state.Phase = PhaseRunning
	g.powerUp = powerUpController{}
	g.moveTicks = 0
	g.roundStart = g.clock

	g.timers = NewTimers(g.clock)
	g.moveTimer = g.timers.Every(g.movePeriod(), g.moveTick)
	g.gateTimer = g.timers.Every(g.gatePeriod(), g.spawnGateTick)
	g.powerUpTimer = g.timers.Every(g.powerUpPeriod(), g.spawnPowerUpTick)

	g.logger.Debug("round started", "high_score", g.state.HighScore)
	g.emit(Event{Type: EventStarted})
}

// End finishes the running round. It is a no-op in any other phase, so
// several failing gates in one tick end the round once.
func (g *Game) End() {
	if g.state.Phase != PhaseRunning {
		return
	}

	g.releaseTimers()
	g.state.Phase = PhaseOver
	record := Finalize(&g.state)

	g.logger.Debug("round over", "score", g.state.Score, "high_score", g.state.HighScore, "record", record)
	g.emit(Event{Type: EventGameOver, Score: g.state.Score, Record: record})
}

// SelectColor changes the dot color. Ignored unless running.
func (g *Game) SelectColor(c PaletteColor) {
	if g.state.Phase != PhaseRunning {
		return
	}
	if c < 0 || int(c) >= len(Palette) {
		return
	}
	g.state.Color = c
}

// releaseTimers stops and drops the current round's timers, if any.
func (g *Game) releaseTimers() {
	if g.timers == nil {
		return
	}
	g.timers.Stop()
	g.timers = nil
}
