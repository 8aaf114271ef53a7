package colordash

import (
	"testing"
	"time"

	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/core"
)

func TestSpawnGate(t *testing.T) {
	s := NewState()
	rng := fixedRNG{n: 2}

	first := SpawnGate(&s, rng, 400)
	second := SpawnGate(&s, rng, 400)

	if first.Color != ColorSky || first.X != 400 {
		t.Errorf("first gate = %+v, want sky at 400", first)
	}
	if first.ID == second.ID {
		t.Errorf("gate ids not unique: %d", first.ID)
	}
	if len(s.Gates) != 2 {
		t.Errorf("len(Gates) = %d, want 2", len(s.Gates))
	}
}

func TestSpawnPowerUpChance(t *testing.T) {
	tests := []struct {
		name   string
		roll   float64
		chance float64
		want   bool
	}{
		{"below chance", 0.05, 0.1, true},
		{"at chance", 0.1, 0.1, false},
		{"above chance", 0.5, 0.1, false},
		{"zero chance", 0.0, 0.0, false},
		{"certain", 0.999, 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			p, ok := SpawnPowerUp(&s, fixedRNG{n: 1, f: tt.roll}, 400, tt.chance)
			if ok != tt.want {
				t.Fatalf("spawned = %v, want %v", ok, tt.want)
			}
			if ok && (p.Type != PowerUpSlowdown || len(s.PowerUps) != 1) {
				t.Errorf("power-up = %+v, state = %v", p, s.PowerUps)
			}
			if !ok && len(s.PowerUps) != 0 {
				t.Errorf("power-up added without spawn")
			}
		})
	}
}

func TestMoveEntities(t *testing.T) {
	s := NewState()
	s.Gates = []Gate{{ID: 0, X: 100}, {ID: 1, X: -48}, {ID: 2, X: 300}}
	s.PowerUps = []PowerUp{{ID: 0, X: -49}, {ID: 1, X: 10}}

	removed := MoveEntities(&s, 2, -50)

	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	wantGates := []Gate{{ID: 0, X: 98}, {ID: 2, X: 298}}
	if len(s.Gates) != len(wantGates) {
		t.Fatalf("gates = %v, want %v", s.Gates, wantGates)
	}
	for i := range wantGates {
		if s.Gates[i] != wantGates[i] {
			t.Errorf("gate %d = %+v, want %+v", i, s.Gates[i], wantGates[i])
		}
	}
	if len(s.PowerUps) != 1 || s.PowerUps[0].X != 8 {
		t.Errorf("power-ups = %v, want one at 8", s.PowerUps)
	}
}

func TestDotRectBob(t *testing.T) {
	geo := NewGeometry(config.DefaultColorDashConfig())

	tests := []struct {
		elapsed time.Duration
		wantY   int
	}{
		{0, 40},
		{500 * time.Millisecond, 80},
		{time.Second, 120},
		{1500 * time.Millisecond, 80},
		{2 * time.Second, 40},
	}

	for _, tt := range tests {
		r := geo.DotRect(tt.elapsed)
		if r.Y != tt.wantY {
			t.Errorf("DotRect(%v).Y = %d, want %d", tt.elapsed, r.Y, tt.wantY)
		}
		if r.X != 40 || r.W != 32 || r.H != 32 {
			t.Errorf("DotRect(%v) = %+v, want x=40 size 32", tt.elapsed, r)
		}
	}
}

func TestResolveCollisions(t *testing.T) {
	geo := NewGeometry(config.DefaultColorDashConfig())
	dot := core.NewRect(40, 80, 32, 32) // overlaps a centered power-up

	tests := []struct {
		name          string
		color         PaletteColor
		active        PowerUpType
		gates         []Gate
		powerUps      []PowerUp
		wantPassed    int
		wantFailed    int
		wantCollected int
		wantGates     int
		wantPowerUps  int
	}{
		{
			name:       "matching gate passes",
			color:      ColorTeal,
			gates:      []Gate{{ID: 0, Color: ColorTeal, X: 70}},
			wantPassed: 1,
		},
		{
			name:       "mismatched gate fails",
			color:      ColorCoral,
			gates:      []Gate{{ID: 0, Color: ColorTeal, X: 70}},
			wantFailed: 1,
		},
		{
			name:       "shield passes mismatched gate",
			color:      ColorCoral,
			active:     PowerUpShield,
			gates:      []Gate{{ID: 0, Color: ColorTeal, X: 50}},
			wantPassed: 1,
		},
		{
			name:      "gate out of range stays",
			color:     ColorCoral,
			gates:     []Gate{{ID: 0, Color: ColorTeal, X: 72}, {ID: 1, Color: ColorTeal, X: 24}},
			wantGates: 2,
		},
		{
			name:          "power-up collected",
			powerUps:      []PowerUp{{ID: 0, Type: PowerUpMultiplier, X: 60}, {ID: 1, Type: PowerUpShield, X: 200}},
			wantCollected: 1,
			wantPowerUps:  1,
		},
		{
			name:         "failed gate blocks power-up",
			color:        ColorCoral,
			gates:        []Gate{{ID: 0, Color: ColorSky, X: 60}},
			powerUps:     []PowerUp{{ID: 0, Type: PowerUpShield, X: 60}},
			wantFailed:   1,
			wantPowerUps: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Color = tt.color
			s.Active = tt.active
			s.Gates = tt.gates
			s.PowerUps = tt.powerUps

			c := ResolveCollisions(&s, dot, geo)

			if len(c.Passed) != tt.wantPassed || len(c.Failed) != tt.wantFailed || len(c.Collected) != tt.wantCollected {
				t.Errorf("collisions = %d passed, %d failed, %d collected; want %d, %d, %d",
					len(c.Passed), len(c.Failed), len(c.Collected),
					tt.wantPassed, tt.wantFailed, tt.wantCollected)
			}
			if len(s.Gates) != tt.wantGates {
				t.Errorf("gates left = %d, want %d", len(s.Gates), tt.wantGates)
			}
			if len(s.PowerUps) != tt.wantPowerUps {
				t.Errorf("power-ups left = %d, want %d", len(s.PowerUps), tt.wantPowerUps)
			}
			if s.Active != tt.active {
				t.Errorf("Active = %v, want %v (shield is not consumed)", s.Active, tt.active)
			}
		})
	}
}

func TestAwardAndFinalize(t *testing.T) {
	s := NewState()

	if got := Award(&s, 10); got != 10 || s.Score != 10 {
		t.Errorf("Award() = %d, score %d; want 10, 10", got, s.Score)
	}
	s.Multiplier = 2
	if got := Award(&s, 10); got != 20 || s.Score != 30 {
		t.Errorf("Award() with multiplier = %d, score %d; want 20, 30", got, s.Score)
	}

	if !Finalize(&s) || s.HighScore != 30 {
		t.Errorf("Finalize() did not record 30, high = %d", s.HighScore)
	}

	s.Score = 5
	if Finalize(&s) || s.HighScore != 30 {
		t.Errorf("Finalize() lowered high score to %d", s.HighScore)
	}
}

func TestEffectsRevertExactly(t *testing.T) {
	tests := []struct {
		typ            PowerUpType
		wantPacing     float64
		wantMultiplier int
	}{
		{PowerUpShield, 1.0, 1},
		{PowerUpSlowdown, 1.5, 1},
		{PowerUpMultiplier, 1.0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			s := NewState()
			ApplyEffect(&s, tt.typ, 1.5, 2)

			if s.Active != tt.typ || s.Pacing != tt.wantPacing || s.Multiplier != tt.wantMultiplier {
				t.Errorf("after apply: active %v pacing %v multiplier %d", s.Active, s.Pacing, s.Multiplier)
			}

			RevertEffect(&s, 1.5)

			if s.Active != PowerUpNone || s.Pacing != 1.0 || s.Multiplier != 1 {
				t.Errorf("after revert: active %v pacing %v multiplier %d", s.Active, s.Pacing, s.Multiplier)
			}
		})
	}
}
