package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/levels"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show the run history for a level",
	Long: `Display the top 10 runs for the specified level.

Examples:
  flappy scores simple
  flappy scores marathon`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	level, err := levels.Find(levelID, flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(level.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", level.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play %s' to set the first score!\n", level.ID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Frames", "Mode", "Cause", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "------", "----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-10s  %-8s  %s\n", i+1, entry.Score, entry.Frames, entry.Mode, entry.Cause, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(level.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
