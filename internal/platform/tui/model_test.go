package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colordash/internal/audio"
	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/core"
	"github.com/vovakirdan/colordash/internal/games/colordash"
	"github.com/vovakirdan/colordash/internal/storage"
)

// seqRNG colors gates from a fixed sequence and never spawns power-ups.
type seqRNG struct {
	colors []int
	i      *int
}

func (r seqRNG) Intn(n int) int {
	c := r.colors[min(*r.i, len(r.colors)-1)]
	*r.i++
	return c % n
}

func (r seqRNG) Float64() float64 { return 0.99 }

type recordingSink struct {
	cues *[]audio.Cue
}

func (s recordingSink) Play(c audio.Cue) { *s.cues = append(*s.cues, c) }

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"1", keyRune('1'), core.ActionColor1},
		{"h", keyRune('h'), core.ActionColor1},
		{"2", keyRune('2'), core.ActionColor2},
		{"k", keyRune('k'), core.ActionColor3},
		{"l", keyRune('l'), core.ActionColor4},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r", keyRune('r'), core.ActionStart},
		{"q", keyRune('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", keyRune('x'), core.ActionNone},
		{"tab is platform only", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	idx := 0
	// Coral gate first (passes), then sky (fails the coral dot).
	rng := seqRNG{colors: []int{0, 2}, i: &idx}
	game := colordash.New(config.DefaultColorDashConfig(), colordash.WithRNG(rng))

	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelPlaysRoundAndSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	var cues []audio.Cue
	m := newTestModel(t, Options{Store: store, Sink: recordingSink{&cues}, Player: "tester", Difficulty: "fixed"})

	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 500; i++ {
		m = update(m, TickMsg{})
	}

	if !m.gameState.GameOver || m.gameState.Score != 10 {
		t.Fatalf("state = %+v, want game over with 10", m.gameState)
	}

	wantCues := []audio.Cue{audio.CueStart, audio.CuePass, audio.CueFail}
	if len(cues) != len(wantCues) {
		t.Fatalf("cues = %v, want %v", cues, wantCues)
	}
	for i := range wantCues {
		if cues[i] != wantCues[i] {
			t.Errorf("cue[%d] = %v, want %v", i, cues[i], wantCues[i])
		}
	}

	// More frames after game over must not save again.
	for i := 0; i < 10; i++ {
		m = update(m, TickMsg{})
	}

	runs, err := store.TopRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Score != 10 || r.Gates != 1 || r.Player != "tester" || r.Difficulty != "fixed" || r.Duration <= 0 {
		t.Errorf("saved run = %+v", r)
	}
	if !strings.Contains(m.status, "New high score") {
		t.Errorf("status = %q, want high score message", m.status)
	}
}

func TestModelShowsPlayerBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, r := range []storage.Run{
		{Player: "tester", Score: 40},
		{Player: "other", Score: 90},
	} {
		if _, err := store.SaveRun(ctx, r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	idx := 0
	rng := seqRNG{colors: []int{0, 2}, i: &idx}
	game := colordash.New(config.DefaultColorDashConfig(), colordash.WithRNG(rng), colordash.WithHighScore(90))
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{Store: store, Player: "tester"})
	m.Init()

	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 500 && !m.gameState.GameOver; i++ {
		m = update(m, TickMsg{})
	}

	if !m.gameState.GameOver || m.gameState.Score != 10 {
		t.Fatalf("state = %+v, want game over with 10", m.gameState)
	}
	if m.status != "Best for tester: 40" {
		t.Errorf("status = %q, want %q", m.status, "Best for tester: 40")
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(m, keyRune('r'))
	for i := 0; i < 500; i++ {
		m = update(m, TickMsg{})
	}

	if !m.gameState.GameOver {
		t.Fatal("round did not end")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view does not show game over")
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab did not open the scoreboard while idle")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Errorf("scoreboard view:\n%s", m.View())
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc did not close the scoreboard")
	}

	// Not available mid-round.
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(m, TickMsg{})
	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard != nil {
		t.Error("scoreboard opened while running")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(m, TickMsg{})

	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	m = update(m, TickMsg{})
	if !m.gameState.Running {
		t.Error("resize ended the round")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir})

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshot files = %v (err %v), want 1", entries, err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.Contains(string(data), "COLOR DASH") {
		t.Errorf("screenshot content:\n%s", data)
	}
	if !strings.HasPrefix(m.status, "Saved ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	next, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "score")
	s.SetColored(6, 0, '@', core.ColorTeal)
	s.DrawText(0, 1, "line2")

	out := RenderScreen(s, NewStyles(nil))

	if !strings.Contains(out, "score") || !strings.Contains(out, "@") || !strings.Contains(out, "line2") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() rows = %d, want 2", strings.Count(out, "\n")+1)
	}
}
