package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colordash/internal/platform/tui"
	"github.com/vovakirdan/colordash/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
	flagYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best Color Dash runs stored in the scores database.

Examples:
  colordash scores
  colordash scores --limit 20
  colordash scores --recent
  colordash scores --interactive
  colordash scores --clear --yes`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
	scoresCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm --clear")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", flagLimit)
	}
	if flagClear && !flagYes {
		return errors.New("--clear deletes every run; pass --yes to confirm")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All runs deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	return printScores(ctx, cmd.OutOrStdout(), store, flagLimit, flagRecent)
}

// printScores writes the run table and a stats line to w.
func printScores(ctx context.Context, w io.Writer, store *storage.Store, limit int, recent bool) error {
	var (
		runs []storage.Run
		err  error
	)
	if recent {
		runs, err = store.RecentRuns(ctx, limit)
	} else {
		runs, err = store.TopRuns(ctx, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if recent {
		fmt.Fprintln(w, "Recent Runs - Color Dash")
	} else {
		fmt.Fprintln(w, "High Scores - Color Dash")
	}
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'colordash play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Gates", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Gates, runTime(r.Duration), truncate(r.Player, 12), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d   Runs: %d   Avg: %.1f   Gates: %d\n",
		stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalGates)
	return nil
}

func runTime(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
