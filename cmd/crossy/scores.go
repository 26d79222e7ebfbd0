package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossy/internal/platform/tui"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best streaks",
	Long: `Display the top 10 recorded streaks.

Examples:
  crossy scores
  crossy scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse streaks in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening streaks database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	streaks, err := store.TopStreaks(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving streaks: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Streaks - Crossy")
	fmt.Println()

	if len(streaks) == 0 {
		fmt.Println("No streaks recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossy play' to set the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Streak", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")

	for i, entry := range streaks {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Streak, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil && stats.Count > 0 {
		fmt.Printf("Best: %d over %d runs (avg %.1f)\n", stats.Best, stats.Count, stats.AvgStreak)
	}
}
