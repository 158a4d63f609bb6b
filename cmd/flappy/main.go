// flappy is a terminal Flappy Bird with a rule-based autopilot.
//
// Usage:
//
//	flappy list              - List available levels
//	flappy play <level>      - Play a level (add --autopilot to watch the bot)
//	flappy menu              - Interactive level picker
//	flappy sim <level>       - Run headless autopilot simulations
//	flappy scores <level>    - Show the run history for a level
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.flappy/runs.db)
//	--levels-dir <path>  - Directory with custom level YAML files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal, with an autopilot",
	Long: `A terminal Flappy Bird clone with deterministic physics and a
rule-based autopilot that can fly any level for you.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  sim      - Run headless autopilot simulations
  scores   - View run history for a level
  serve    - Start SSH server for remote play

Examples:
  flappy list
  flappy play simple
  flappy play hard --autopilot
  flappy sim marathon --runs 10
  flappy scores medium
  flappy serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level YAML files")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
