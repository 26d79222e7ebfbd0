// crossy is a terminal lane-crossing arcade game: hop across the traffic,
// build a streak, don't get hit.
//
// Usage:
//
//	crossy play              - Play in the current terminal
//	crossy serve             - Start SSH server for remote play
//	crossy scores            - Show best streaks
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.crossy/streaks.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossy",
	Short: "Crossy - hop across the traffic in your terminal",
	Long: `Crossy is a terminal lane-crossing arcade game. A hopper crosses a
grid of traffic lanes; every crossing extends your streak, every
collision resets it. The game never ends - chase your best streak.

In-game settings keys resize the board and tune the traffic live:
  [ ]   - fewer/more lanes
  { }   - narrower/wider grid
  < >   - fewer/more vehicles
  + -   - difficulty up/down

Examples:
  crossy play
  crossy play --difficulty hard
  crossy serve --ssh :2222
  crossy scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossy/streaks.db", "Path to streaks database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
