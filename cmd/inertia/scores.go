package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/inertia/internal/levels"
	"github.com/vovakirdan/inertia/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs for the specified level, or a per-level
overview when no level is given.

Examples:
  inertia scores
  inertia scores 01_first_push`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		showAllStats(store)
		return
	}

	levelID := args[0]

	// Check if level exists
	entry, err := levels.Find(flagLevelsDir, levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'inertia levels' to see available levels.")
		os.Exit(1)
	}

	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Runs - %s\n", entry.Def.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'inertia play %s' to set the first score!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %-8s  %s\n", "Rank", "Score", "Stars", "Time", "Result", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----", "------", "----")

	// Print runs
	for i, run := range runs {
		result := "failed"
		if run.Completed {
			result = "cleared"
		}
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-5s  %-8s  %-8s  %s\n",
			i+1, run.Score, starString(run.Stars), fmt.Sprintf("%.1fs", run.Elapsed), result, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(levelID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func showAllStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	maxIDLen := 5 // "Level" header
	for id := range stats {
		ids = append(ids, id)
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}
	sort.Strings(ids)

	fmt.Println("Recorded runs:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-8s  %-5s  %-5s  %s\n", maxIDLen, "Level", "Runs", "Cleared", "Best", "Stars", "Last played")
	fmt.Printf("  %-*s  %-5s  %-8s  %-5s  %-5s  %s\n", maxIDLen, "-----", "----", "-------", "----", "-----", "-----------")

	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-*s  %-5d  %-8d  %-5d  %-5s  %s\n",
			maxIDLen, id, st.Runs, st.Completions, st.BestScore,
			starString(st.BestStars), st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func starString(n int) string {
	switch {
	case n <= 0:
		return "-"
	case n > 3:
		n = 3
	}
	s := ""
	for i := 0; i < n; i++ {
		s += "*"
	}
	return s
}
