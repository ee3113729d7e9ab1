// shapefall is a terminal arcade game: click the falling shapes before they
// reach the bottom.
//
// Usage:
//
//	shapefall play           - Play locally
//	shapefall scores         - Show the leaderboard
//	shapefall serve          - Start SSH server for remote play
//	shapefall config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shapefall/scores.db)
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
	Use:   "shapefall",
	Short: "Shapefall - click the falling shapes",
	Long: `Shapefall is a terminal arcade game. Shapes fall from the top of the
screen; click them before they reach the bottom. Chains of hits build a
combo multiplier, misses cost health.

Available commands:
  play     - Play locally
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  shapefall play
  shapefall play --difficulty hard
  shapefall scores --interactive
  shapefall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shapefall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
