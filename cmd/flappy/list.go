package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in level catalog plus any custom levels from --levels-dir.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	catalog, err := levels.All(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(catalog) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, lvl := range catalog {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Pipes", "Description")
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----", "-----------")

	for _, lvl := range catalog {
		fmt.Printf("  %-*s  %-*s  %-5d  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, len(lvl.Pipes), lvl.Description)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <id>' to play a level.")
}
