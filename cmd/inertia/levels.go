package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/inertia/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels plus any levels found in the directory
given with --levels. A directory level with the same ID replaces the
built-in one.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	all, err := levels.All(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, e := range all {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
		if len(e.Def.Name) > maxNameLen {
			maxNameLen = len(e.Def.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-9s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Time", "Targets")
	fmt.Printf("  %-*s  %-*s  %-9s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "----", "-------")

	// Print levels
	for _, e := range all {
		required, optional := 0, 0
		for _, t := range e.Def.Targets {
			if t.Required {
				required++
			} else {
				optional++
			}
		}
		size := fmt.Sprintf("%gx%g", e.Def.Width, e.Def.Height)
		timeStr := "-"
		if e.Def.TimeLimit > 0 {
			timeStr = fmt.Sprintf("%gs", e.Def.TimeLimit)
		}
		targets := fmt.Sprintf("%d", required)
		if optional > 0 {
			targets = fmt.Sprintf("%d+%d", required, optional)
		}
		fmt.Printf("  %-*s  %-*s  %-9s  %-7s  %s\n", maxIDLen, e.ID, maxNameLen, e.Def.Name, size, timeStr, targets)
	}

	fmt.Println()
	fmt.Println("Run 'inertia play <id>' to play a level.")
}
