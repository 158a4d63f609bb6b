package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/config"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/levels"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/platform/tui"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/storage"
)

var (
	flagConfig    string
	flagAutopilot bool
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Space/Up/W - Jump
  A          - Toggle autopilot
  P/Esc      - Pause
  R          - Restart (after game over)
  B          - Back to menu (after game over)
  Q/Ctrl+C   - Quit

Examples:
  flappy play simple
  flappy play hard --autopilot
  flappy play marathon --seed 42
  flappy play simple --config ./my-physics.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot fly")
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	level, err := levels.Find(levelID, flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available levels.")
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(level, gameCfg.SimConfig(), store, tui.Options{
		Autopilot: flagAutopilot,
		Seed:      flagSeed,
		TickRate:  flagFPS,
		ScreenW:   width,
		ScreenH:   height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
