package colordash

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/colordash/internal/core"
)

const (
	minScreenW = 40
	minScreenH = 12
	hudHeight  = 1
	footHeight = 1

	gateRune = '█'
	dotRune  = '●'
)

// Render draws the current frame to dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot to dst. Field coordinates are scaled to
// the space between the HUD and the palette row.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderTooSmall(dst)
		return
	}

	renderHUD(dst, s)

	box := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footHeight)
	dst.DrawBox(box, core.ColorGray)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)

	renderField(dst, s, inner)
	renderPalette(dst, s, dst.Height()-1)

	switch {
	case !s.Started:
		renderOverlay(dst, inner, "COLOR DASH", "Match the gate colors", "Press SPACE to start")
	case s.Over:
		renderOverlay(dst, inner, "GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", s.Score, s.HighScore),
			"Press SPACE to play again")
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

func renderHUD(dst *core.Screen, s Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawTextCentered(0, GameTitle, core.ColorWhite)

	info := fmt.Sprintf("High: %d", s.HighScore)
	if s.Active != PowerUpNone {
		info = fmt.Sprintf("%s %.1fs  %s", strings.ToUpper(s.Active.String()), s.ActiveRemaining.Seconds(), info)
	}
	dst.DrawTextColored(dst.Width()-len(info)-1, 0, info, core.ColorYellow)
}

// renderField draws gates, power-ups and the dot inside area.
func renderField(dst *core.Screen, s Snapshot, area core.Rect) {
	toScreen := func(r core.Rect) core.Rect {
		x := area.X + core.ScaleCoord(r.X, s.FieldWidth, area.W)
		y := area.Y + core.ScaleCoord(r.Y, s.FieldHeight, area.H)
		w := max(core.ScaleCoord(r.W, s.FieldWidth, area.W), 1)
		h := max(core.ScaleCoord(r.H, s.FieldHeight, area.H), 1)
		return core.NewRect(x, y, w, h).Clip(area)
	}

	for _, gate := range s.Gates {
		dst.DrawRect(toScreen(s.GateRect(gate)), gateRune, gate.Color.ScreenColor())
	}

	for _, p := range s.PowerUps {
		r := toScreen(s.PowerUpRect(p))
		cx, cy := r.Center()
		if area.Contains(cx, cy) {
			dst.SetColored(cx, cy, p.Type.Glyph(), core.ColorYellow)
		}
	}

	dst.DrawRect(toScreen(s.Dot), dotRune, s.Color.ScreenColor())
}

func renderPalette(dst *core.Screen, s Snapshot, y int) {
	x := 1
	for i, c := range Palette {
		marker := ' '
		if c == s.Color {
			marker = '>'
		}
		label := fmt.Sprintf("%c%d ", marker, i+1)
		dst.DrawText(x, y, label)
		x += len(label)
		dst.SetColored(x, y, dotRune, c.ScreenColor())
		x++
		name := " " + c.String() + "  "
		dst.DrawTextColored(x, y, name, c.ScreenColor())
		x += len(name)
	}
	if s.Multiplier > 1 {
		dst.DrawTextColored(x+1, y, fmt.Sprintf("x%d", s.Multiplier), core.ColorYellow)
	}
}

func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, area.Y+(area.H-len(lines)-2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorWhite
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
