package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossy/internal/core"
	"github.com/vovakirdan/tui-crossy/internal/crossy"
	"github.com/vovakirdan/tui-crossy/internal/platform/tui"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play crossy",
	Long: `Start a run in the current terminal.

Controls:
  Arrows/WASD/hjkl - Hop
  [ ] { } < > + -  - Adjust lanes, columns, vehicles, difficulty
  P                - Pause
  R                - Restart run
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Light traffic, speeds up as your streak grows
  normal - Moderate traffic, speeds up as your streak grows
  hard   - Heavy traffic from the start
  fixed  - No progression, stays at the config's difficulty

Examples:
  crossy play
  crossy play --difficulty easy
  crossy play --config ./my-crossy.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
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

	// Set config path and difficulty before the first Reset
	crossy.SetConfigPath(flagConfig)
	crossy.SetDifficultyPreset(flagDifficulty)

	game := crossy.New()

	// Open streak storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open streaks database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
