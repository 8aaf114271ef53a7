package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colordash/internal/audio"
	"github.com/vovakirdan/colordash/internal/audio/speaker"
	"github.com/vovakirdan/colordash/internal/core"
	"github.com/vovakirdan/colordash/internal/games/colordash"
	"github.com/vovakirdan/colordash/internal/platform/tui"
	"github.com/vovakirdan/colordash/internal/storage"
)

var (
	flagSound  bool
	flagVolume float64
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Color Dash",
	Long: `Start a game of Color Dash in this terminal.

Controls:
  1/H  2/J  3/K  4/L  - Switch to coral, teal, sky, salmon
  Space/Enter/R       - Start or restart
  Tab                 - High scores (between rounds)
  Ctrl+S              - Save a screenshot
  ?                   - Toggle help
  Q/Ctrl+C            - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, fixed timing

Examples:
  colordash play
  colordash play --difficulty hard
  colordash play --sound --volume 0.3
  colordash play --seed 42 --config ./my-colordash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with each run (default: current user)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagVolume < 0 || flagVolume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1, got %g", flagVolume)
	}

	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "colordash")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The game still works without storage.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	best := 0
	if store != nil {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		best, err = store.HighScore(ctx)
		cancel()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
			best = 0
		}
	}

	game := colordash.New(gameCfg,
		colordash.WithLogger(logger),
		colordash.WithHighScore(best),
	)

	var sink audio.Sink = audio.Nop{}
	if flagSound {
		player := speaker.New(flagVolume)
		if initErr := player.Init(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", initErr)
		} else {
			defer player.Close()
			sink = player
		}
	}

	return tui.Run(game, cfg, tui.Options{
		Store:      store,
		Sink:       sink,
		Logger:     logger,
		Player:     playerName(),
		Difficulty: string(preset),
	})
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
