package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/games/colordash"
	"github.com/vovakirdan/colordash/internal/storage"
)

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	var buf bytes.Buffer
	if err := printScores(ctx, &buf, store, 10, false); err != nil {
		t.Fatalf("printScores on empty store: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty output = %q", buf.String())
	}

	for _, r := range []storage.Run{
		{Player: "ada", Score: 40, Gates: 4, Duration: 12 * time.Second},
		{Player: "grace", Score: 90, Gates: 9, Duration: 75 * time.Second},
	} {
		if _, err := store.SaveRun(ctx, r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	buf.Reset()
	if err := printScores(ctx, &buf, store, 10, false); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "High Scores - Color Dash") {
		t.Errorf("missing title in %q", out)
	}
	if strings.Index(out, "grace") > strings.Index(out, "ada") {
		t.Errorf("runs not ordered by score:\n%s", out)
	}
	if !strings.Contains(out, "1:15") {
		t.Errorf("missing run time 1:15:\n%s", out)
	}
	if !strings.Contains(out, "Best: 90   Runs: 2") {
		t.Errorf("missing stats line:\n%s", out)
	}

	buf.Reset()
	if err := printScores(ctx, &buf, store, 1, true); err != nil {
		t.Fatalf("printScores recent: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Recent Runs") {
		t.Errorf("recent title missing in %q", buf.String())
	}
}

func TestLoadGameConfig(t *testing.T) {
	defer func(d, c string) { flagDifficulty, flagConfig = d, c }(flagDifficulty, flagConfig)
	flagConfig = ""
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		difficulty string
		enabled    bool
		level      float64
		wantErr    error
	}{
		{"", false, 0, nil},
		{"hard", true, 0.7, nil},
		{"fixed", false, 0, nil},
		{"insane", false, 0, config.ErrUnknownPreset},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			flagDifficulty = tt.difficulty
			cfg, preset, err := loadGameConfig()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadGameConfig: %v", err)
			}
			if string(preset) != tt.difficulty {
				t.Errorf("preset = %q, want %q", preset, tt.difficulty)
			}
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("difficulty = %+v, want enabled=%v level=%g", cfg.Difficulty, tt.enabled, tt.level)
			}
		})
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"[::1]:22":       "22",
		"bogus":          "bogus",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("ada", 12); got != "ada" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("averyverylongname", 6); got != "avery…" {
		t.Errorf("truncate long = %q", got)
	}
}

func TestPlayHelpNamesPalette(t *testing.T) {
	for _, c := range colordash.Palette {
		if !strings.Contains(playCmd.Long, c.String()) {
			t.Errorf("play help does not mention %q", c)
		}
	}
}
