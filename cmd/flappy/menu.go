package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/config"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/levels"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/platform/tui"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  A            - Toggle autopilot
  Tab          - Run history
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	catalog, err := levels.All(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	autopilot := flagAutopilot

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(catalog, autopilot, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		autopilot = menuResult.Autopilot

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, catalog, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.Level == nil {
			break
		}

		runErr := tui.Run(*menuResult.Level, gameCfg.SimConfig(), store, tui.Options{
			Autopilot: autopilot,
			Seed:      time.Now().UnixNano(),
			TickRate:  flagFPS,
			ScreenW:   width,
			ScreenH:   height,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
