package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/colordash/internal/config"
	"github.com/vovakirdan/colordash/internal/core"
	"github.com/vovakirdan/colordash/internal/games/colordash"
)

func TestNewSSHServerHostKeyFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	dbPath := filepath.Join(dir, "scores.db")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(blocker, "host_key")
	cfg.DBPath = dbPath

	srv, err := NewSSHServer(cfg, nil)
	if err == nil {
		srv.Shutdown()
		t.Fatal("NewSSHServer() succeeded with an unusable host key directory")
	}
	if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
		t.Errorf("scores database opened before host key setup failed (stat err = %v)", statErr)
	}
}

func TestEndSessionClosesGame(t *testing.T) {
	start := core.NewInputFrame()
	start.Set(core.ActionStart)

	tests := []struct {
		name      string
		end       bool
		wantGates int
	}{
		{"session still open", false, 1},
		{"session ended", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := colordash.New(config.DefaultColorDashConfig())
			game.Reset(core.DefaultConfig())
			game.Step(start)

			ctx := context.WithValue(context.Background(), sessionGameKey{}, game)
			if tt.end {
				endSession(ctx)
			}

			// The first gate spawns at 2s and reaches the dot well after 3s.
			game.Advance(3 * time.Second)
			if got := len(game.Snapshot().Gates); got != tt.wantGates {
				t.Errorf("gates = %d, want %d", got, tt.wantGates)
			}
		})
	}

	// A context without a game is ignored.
	endSession(context.Background())
}
