package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/engine"
	"github.com/vovakirdan/inertia/internal/levels"
	"github.com/vovakirdan/inertia/internal/platform/tui"
	"github.com/vovakirdan/inertia/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level. Without an argument the first
level is loaded.

Controls:
  WASD/Arrows - Push the ball (costs energy)
  Space       - Brake (flat energy cost)
  P/Esc       - Pause
  R           - Restart (after completion or failure)
  Q/Ctrl+C    - Quit

Examples:
  inertia play
  inertia play 02_slippery_orbit
  inertia play 01_first_push --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	entry, err := resolveLevel(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'inertia levels' to see available levels.")
		os.Exit(1)
	}

	physics, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Engine diagnostics would corrupt the alternate screen; drop them
	// while the TUI owns the terminal.
	level, err := engine.NewLevel(entry.Def, physics, log.New(io.Discard))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the level still plays
		store = nil
	}

	runErr := tui.Run(level, entry, store, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveLevel picks the requested level, or the first one when no ID
// was given.
func resolveLevel(args []string) (levels.Entry, error) {
	if len(args) == 1 {
		return levels.Find(flagLevelsDir, args[0])
	}
	all, err := levels.All(flagLevelsDir)
	if err != nil {
		return levels.Entry{}, err
	}
	if len(all) == 0 {
		return levels.Entry{}, fmt.Errorf("no levels available")
	}
	return all[0], nil
}
