// Package colordash implements Color Dash: the player switches the dot's
// color to match incoming gates and collects power-ups on the way.
//
// The game runs on a virtual clock. Every Step advances the clock by one
// frame and fires the round's timers (movement, gate spawn, power-up spawn,
// power-up expiry) in deadline order, so the simulation is deterministic
// for a given seed and input sequence.
package colordash

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/core"
)

const (
	// GameID identifies the game in the score store.
	GameID = "colordash"
	// GameTitle is the display name.
	GameTitle = "Color Dash"
)

// Game implements Color Dash.
type Game struct {
	cfg        config.ColorDashConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	geometry   Geometry
	rng        RNG
	seeded     bool // rng injected via WithRNG; Reset keeps it
	logger     *log.Logger

	state      State
	clock      time.Duration // Virtual time since Reset
	roundStart time.Duration
	moveTicks  int

	// Round resources, valid while running
	timers       *Timers
	moveTimer    TimerID
	gateTimer    TimerID
	powerUpTimer TimerID
	powerUp      powerUpController

	events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithRNG injects the random source for spawning.
func WithRNG(rng RNG) Option {
	return func(g *Game) {
		g.rng = rng
		g.seeded = true
	}
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.SetLogger(l)
	}
}

// WithHighScore seeds the session high score, e.g. from the score store.
func WithHighScore(score int) Option {
	return func(g *Game) {
		g.state.HighScore = max(score, 0)
	}
}

// New creates an idle game. The config is assumed to be validated.
func New(cfg config.ColorDashConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		runtime:    core.DefaultConfig(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		geometry:   NewGeometry(cfg),
		logger:     log.New(io.Discard),
		state:      NewState(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRNG(time.Now().UnixNano())
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return GameTitle
}

// SetLogger replaces the logger. A nil logger discards output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset returns the game to idle with the given runtime settings. The
// session high score is kept.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.releaseTimers()

	rt = rt.WithDefaults()
	g.runtime = rt
	if !g.seeded {
		seed := rt.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = NewRNG(seed)
	}

	high := g.state.HighScore
	g.state = NewState()
	g.state.HighScore = high
	g.clock = 0
	g.roundStart = 0
	g.moveTicks = 0
	g.powerUp = powerUpController{}
	g.events = g.events[:0]
}

// Step applies one frame of input and advances the virtual clock by one
// frame, running every timer that falls due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.Start()
	}
	for i, a := range core.ColorActions {
		if in.Has(a) {
			g.SelectColor(Palette[i])
		}
	}

	g.Advance(g.FrameDuration())

	return core.StepResult{State: g.State()}
}

// Advance moves the virtual clock forward by d without input.
func (g *Game) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	g.clock += d
	if g.timers != nil {
		// End may release the set from inside a callback.
		timers := g.timers
		timers.Advance(g.clock)
	}
}

// FrameDuration returns the virtual time one Step covers.
func (g *Game) FrameDuration() time.Duration {
	return g.runtime.FrameDuration()
}

// Close releases the round's timers. The game stays readable.
func (g *Game) Close() {
	g.releaseTimers()
	g.powerUp = powerUpController{}
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.BestScore(),
		Running:   g.state.Phase == PhaseRunning,
		GameOver:  g.state.Phase == PhaseOver,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// DrainEvents returns and clears the events emitted since the last call.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// movePeriod is the move tick period at the current pacing.
func (g *Game) movePeriod() time.Duration {
	return scale(g.cfg.Timing.Tick, g.state.Pacing)
}

// gatePeriod is the gate spawn period at the current pacing and difficulty.
func (g *Game) gatePeriod() time.Duration {
	base := g.difficulty.Interval(g.cfg.Timing.GateInterval, g.state.Score, g.moveTicks)
	return scale(base, g.state.Pacing)
}

func (g *Game) powerUpPeriod() time.Duration {
	return scale(g.cfg.Timing.PowerUpInterval, g.state.Pacing)
}

// roundElapsed is the virtual time since the round started.
func (g *Game) roundElapsed() time.Duration {
	if g.timers != nil {
		return g.timers.Now() - g.roundStart
	}
	return g.clock - g.roundStart
}

func scale(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) * factor)
}
