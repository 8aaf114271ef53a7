package colordash

import (
	"testing"
	"time"

	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/core"
)

// fixedRNG always picks index n and rolls f.
type fixedRNG struct {
	n int
	f float64
}

func (r fixedRNG) Intn(max int) int { return r.n % max }
func (r fixedRNG) Float64() float64 { return r.f }

// noPowerUps never spawns power-ups and colors every gate Palette[color].
func noPowerUps(color PaletteColor) fixedRNG {
	return fixedRNG{n: int(color), f: 0.99}
}

// With defaults a gate spawned at 2s first overlaps the dot at X=70 on the
// move tick at 4.64s.
const firstGateHit = 4640 * time.Millisecond

func newTestGame(t *testing.T, rng RNG, opts ...Option) *Game {
	t.Helper()
	cfg := config.DefaultColorDashConfig()
	g := New(cfg, append([]Option{WithRNG(rng)}, opts...)...)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func startInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	return in
}

func colorInput(c PaletteColor) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ColorActions[c])
	return in
}
