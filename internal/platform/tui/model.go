package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colordash/internal/audio"
	"github.com/vovakirdan/colordash/internal/core"
	"github.com/vovakirdan/colordash/internal/games/colordash"
	"github.com/vovakirdan/colordash/internal/storage"
)

// statusFrames is how long a status message stays on screen, in frames.
const statusFrames = 120

// Options are the collaborators of a game session. Zero values are usable.
type Options struct {
	Store         *storage.Store     // nil disables persistence
	Sink          audio.Sink         // nil plays nothing
	Logger        *log.Logger        // nil discards
	Renderer      *lipgloss.Renderer // nil uses the default renderer
	Player        string             // Recorded with each run
	Difficulty    string             // Recorded with each run
	ScreenshotDir string             // Default ~/.colordash/screenshots
}

// Model is the Bubble Tea model for a Color Dash session.
type Model struct {
	game       *colordash.Game
	screen     *core.Screen
	opts       Options
	styles     Styles
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	scoreboard *ScoreboardModel // Non-nil while the scoreboard is open

	gates       int  // Gates passed this round
	saved       bool // Run saved for the current game over
	status      string
	statusTicks int
	quitting    bool
}

// NewModel creates a model for the game. The game should be fresh from
// colordash.New; Init resets it with cfg.
func NewModel(game *colordash.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.WithDefaults()
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		opts:       opts,
		styles:     NewStyles(opts.Renderer),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		next, cmd := m.scoreboard.Update(msg)
		sb := next.(ScoreboardModel)
		switch {
		case sb.IsQuitting():
			return m.quit()
		case sb.IsGoingBack():
			m.scoreboard = nil
		default:
			m.scoreboard = &sb
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.screenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if !m.gameState.Running {
			sb := NewScoreboardModel(m.opts.Store, m.styles, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard = &sb
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.game.Close()
	return m, tea.Quit
}

// handleResize processes window resize events. The game field scales to
// the screen, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	if m.scoreboard != nil {
		next, _ := m.scoreboard.Update(msg)
		sb := next.(ScoreboardModel)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick runs one frame and reacts to what happened in it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range m.game.DrainEvents() {
		m.handleEvent(e)
	}

	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent plays cues and records runs.
func (m *Model) handleEvent(e colordash.Event) {
	switch e.Type {
	case colordash.EventStarted:
		m.gates = 0
		m.saved = false
		m.opts.Sink.Play(audio.CueStart)
	case colordash.EventGatePassed:
		m.gates++
		m.opts.Sink.Play(audio.CuePass)
	case colordash.EventPowerUpActivated:
		m.opts.Sink.Play(audio.CuePowerUp)
	case colordash.EventPowerUpExpired:
		m.opts.Sink.Play(audio.CueExpire)
	case colordash.EventGameOver:
		m.opts.Sink.Play(audio.CueFail)
		m.saveRun(e.Score)
		if e.Record {
			m.setStatus(fmt.Sprintf("New high score: %d", e.Score))
		} else if best, ok := m.playerBest(); ok {
			m.setStatus(fmt.Sprintf("Best for %s: %d", m.opts.Player, best))
		}
	}
}

// saveRun stores the finished round once. Failures are logged; the game
// continues without persistence.
func (m *Model) saveRun(score int) {
	if m.saved || score <= 0 {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}

	run := storage.Run{
		Player:     m.opts.Player,
		Score:      score,
		Gates:      m.gates,
		Duration:   m.game.Snapshot().Elapsed,
		Difficulty: m.opts.Difficulty,
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := m.opts.Store.SaveRun(ctx, run); err != nil {
		m.opts.Logger.Error("could not save run", "error", err)
		m.setStatus("Score not saved")
		return
	}
	m.opts.Logger.Info("run saved", "score", run.Score, "gates", run.Gates, "duration", run.Duration)
}

// playerBest looks up the stored best of the session's player.
func (m *Model) playerBest() (int, bool) {
	if m.opts.Store == nil || m.opts.Player == "" {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	best, err := m.opts.Store.PlayerBest(ctx, m.opts.Player)
	if err != nil {
		m.opts.Logger.Warn("could not read player best", "player", m.opts.Player, "error", err)
		return 0, false
	}
	return best, best > 0
}

// screenshot writes the current frame as plain text.
func (m *Model) screenshot() {
	path, err := m.saveScreenshot()
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		m.setStatus("Screenshot failed")
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
	m.setStatus("Saved " + path)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".colordash", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// layout gives the game screen every row the footer does not use.
func (m *Model) layout() {
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusFrames
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	footer := m.styles.Help.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = m.styles.Status.Render(m.status)
	}
	return RenderScreen(m.screen, m.styles) + "\n" + footer
}

// Run starts a local Bubble Tea program for the game. The game is closed
// when the program exits.
func Run(game *colordash.Game, cfg core.RuntimeConfig, opts Options) error {
	defer game.Close()

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
