package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colordash/internal/core"
	"github.com/vovakirdan/colordash/internal/games/colordash"
)

// Styles holds the lipgloss styles for one output. SSH sessions build
// their own from the session's renderer so color profiles are detected
// per client.
type Styles struct {
	cells  map[core.Color]lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// NewStyles builds styles for the renderer. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	cells := map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorWhite:   fg("15").Bold(true),
		core.ColorGray:    fg("245"),
		core.ColorRed:     fg("1"),
		core.ColorGreen:   fg("2"),
		core.ColorYellow:  fg("11"),
	}
	for _, c := range colordash.Palette {
		cells[c.ScreenColor()] = fg(c.Hex())
	}

	return Styles{
		cells:  cells,
		Help:   fg("241"),
		Status: fg("229"),
		Title:  fg("229").Bold(true),
		Muted:  fg("241").Italic(true),
		Border: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// Cell returns the style for a screen color.
func (st Styles) Cell(c core.Color) lipgloss.Style {
	if style, ok := st.cells[c]; ok {
		return style
	}
	return st.cells[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, st Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.Cell(color).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
