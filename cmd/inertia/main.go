// inertia is a physics puzzle for the terminal: pilot a ball with
// impulses across friction zones, gravity wells, teleporters and bounce
// pads, collecting targets before the clock or your energy runs out.
//
// Usage:
//
//	inertia levels            - List available levels
//	inertia play [level]      - Play a level
//	inertia simulate <level>  - Headless scripted run, prints the summary
//	inertia serve <level>     - Websocket spectator feed
//	inertia scores [level]    - Show recorded runs
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--levels <dir>    - Extra level directory merged over the built-ins
//	--db <path>       - Set database path (default: ~/.inertia/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagLevelsDir string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inertia",
	Short: "Inertia - momentum puzzle in your terminal",
	Long: `Inertia is a terminal physics puzzle. You never steer the ball
directly: you spend energy on impulses and let momentum, friction and
the level's force fields do the rest.

Available commands:
  levels    - Show all available levels
  play      - Play a level in the terminal
  simulate  - Run a level headless with scripted input
  serve     - Broadcast a level over websocket for spectators
  scores    - View recorded runs and bests

Examples:
  inertia levels
  inertia play 01_first_push
  inertia play 02_slippery_orbit --config ./my-physics.yaml
  inertia simulate 01_first_push --script "right:3,idle:2,brake"
  inertia serve 03_gauntlet --addr :8080
  inertia scores 01_first_push`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra level directory (merged over built-ins)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.inertia/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
