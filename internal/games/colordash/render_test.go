package colordash

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/colordash/internal/core"
)

func TestRenderIdleOverlay(t *testing.T) {
	g := newTestGame(t, noPowerUps(ColorCoral))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"COLOR DASH", "Press SPACE to start", "Score: 0", "coral", "salmon"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle frame missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRunningField(t *testing.T) {
	g := newTestGame(t, noPowerUps(ColorTeal))
	g.Start()
	g.SelectColor(ColorTeal)
	g.activatePowerUp(PowerUpMultiplier)
	g.Advance(3 * time.Second)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	gateCells, dotCells := 0, 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			switch cell.Rune {
			case gateRune:
				gateCells++
				if cell.Color != core.ColorTeal {
					t.Errorf("gate cell color = %v, want teal", cell.Color)
				}
			case dotRune:
				if cell.Color == core.ColorTeal && y > hudHeight && y < screen.Height()-footHeight-1 {
					dotCells++
				}
			}
		}
	}
	if gateCells == 0 {
		t.Error("no gate drawn")
	}
	if dotCells == 0 {
		t.Error("no dot drawn")
	}

	if hud := screen.Row(0); !strings.Contains(hud, "MULTIPLIER 2.0s") {
		t.Errorf("HUD = %q, want power-up countdown", hud)
	}
	if strings.Contains(screen.String(), "COLOR DASH") {
		t.Error("idle overlay shown while running")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, noPowerUps(ColorSky))
	g.Start()
	g.state.Score = 30
	g.End()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Best: 30") {
		t.Errorf("game over frame:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, noPowerUps(ColorCoral))
	screen := core.NewScreen(20, 5)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("small frame:\n%s", screen.String())
	}
}
