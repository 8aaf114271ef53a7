package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colordash/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Colors     [4]key.Binding // Palette order
	Start      key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: 1-4 or h/j/k/l pick a color.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Colors: [4]key.Binding{
			key.NewBinding(key.WithKeys("1", "h"), key.WithHelp("1/h", "coral")),
			key.NewBinding(key.WithKeys("2", "j"), key.WithHelp("2/j", "teal")),
			key.NewBinding(key.WithKeys("3", "k"), key.WithHelp("3/k", "sky")),
			key.NewBinding(key.WithKeys("4", "l"), key.WithHelp("4/l", "salmon")),
		},
		Start: key.NewBinding(
			key.WithKeys(" ", "enter", "r"),
			key.WithHelp("space", "start/restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Colors[0], k.Colors[1], k.Colors[2], k.Colors[3], k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Colors[0], k.Colors[1], k.Colors[2], k.Colors[3]},
		{k.Start, k.Scores, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// Action translates a key to a game action. Platform keys (quit, help,
// scores, screenshot) map to ActionNone except quit.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	}
	for i, b := range k.Colors {
		if key.Matches(msg, b) {
			return core.ColorActions[i]
		}
	}
	return core.ActionNone
}
