// colordash is a terminal arcade game: switch the dot's color to match the
// gates rushing toward it.
//
// Usage:
//
//	colordash play           - Play in this terminal
//	colordash scores         - Show the best runs
//	colordash serve          - Start SSH server for remote play
//	colordash config         - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.colordash/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--debug               - Enable debug logging
//
// COLORDASH_DB, COLORDASH_FPS, COLORDASH_CONFIG and COLORDASH_DIFFICULTY,
// from the environment or a .env file, fill in flags that were not given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colordash/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colordash",
	Short: "Color Dash - match the gate colors in your terminal",
	Long: `Color Dash is a one-button-per-color arcade game for the terminal.
Gates of four colors scroll toward your dot; switch the dot to the
gate's color before it arrives. Power-ups grant a shield, slow the game
down or double your points for five seconds.

Available commands:
  play     - Play in this terminal
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  colordash play
  colordash play --difficulty hard
  colordash scores --limit 20
  colordash serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colordash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads .env and lets COLORDASH_* variables fill flags the user
// did not set on the command line.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}
	env, err := config.ReadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if env.DB != "" && !flags.Changed("db") {
		flagDBPath = env.DB
	}
	if env.FPS > 0 && !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if env.Config != "" && !flags.Changed("config") {
		flagConfig = env.Config
	}
	if env.Difficulty != "" && !flags.Changed("difficulty") {
		flagDifficulty = env.Difficulty
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.ColorDashConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ColorDashConfig{}, "", err
	}

	cfg, err := config.LoadColorDash(flagConfig)
	if err != nil {
		return config.ColorDashConfig{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ColorDashConfig{}, "", err
	}
	return cfg, preset, nil
}
