package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/engine"
	"github.com/vovakirdan/inertia/internal/levels"
)

var (
	flagScript      string
	flagSimConfig   string
	flagSimDuration float64
	flagSimJSON     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run a level headless with scripted input",
	Long: `Run a level without a terminal UI, feeding it a scripted input
sequence, and print the run summary. Useful for testing levels and
physics configs.

The script is a comma-separated list of segments. Each segment is an
action name, optionally followed by ':' and a duration in seconds
(default 1). Actions: up, down, left, right, brake, idle. The run ends
when the script is exhausted, the level completes or fails, or the
--duration cap is reached.

Examples:
  inertia simulate 01_first_push --script "right:3,idle:2"
  inertia simulate 02_slippery_orbit --script "right:2,down:1,brake" --json
  inertia simulate 01_first_push --script "right:5" --config ./my-physics.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "idle:5", "Scripted input, e.g. \"right:3,idle:2,brake\"")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom physics config YAML")
	simulateCmd.Flags().Float64Var(&flagSimDuration, "duration", 300, "Maximum simulated seconds")
	simulateCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print the summary as JSON")
}

// scriptSegment is one parsed piece of the input script: hold these
// actions for Ticks simulation ticks.
type scriptSegment struct {
	Frame core.InputFrame
	Ticks int
}

func runSimulate(cmd *cobra.Command, args []string) {
	entry, err := levels.Find(flagLevelsDir, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'inertia levels' to see available levels.")
		os.Exit(1)
	}

	physics, err := config.Load(flagSimConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := parseScript(flagScript, flagFPS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	level, err := engine.NewLevel(entry.Def, physics, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dt := 1.0 / float64(flagFPS)
	maxTicks := int(flagSimDuration * float64(flagFPS))
	idle := core.NewInputFrame()

	ticks := 0
	outcome := engine.OutcomeContinue
	for _, seg := range script {
		for i := 0; i < seg.Ticks && ticks < maxTicks; i++ {
			res := level.Step(seg.Frame, dt)
			ticks++
			if res.Outcome != engine.OutcomeContinue {
				outcome = res.Outcome
				break
			}
		}
		if outcome != engine.OutcomeContinue || ticks >= maxTicks {
			break
		}
	}
	// Let the level coast after the script runs out
	for outcome == engine.OutcomeContinue && ticks < maxTicks {
		res := level.Step(idle, dt)
		ticks++
		if res.Outcome != engine.OutcomeContinue {
			outcome = res.Outcome
		}
	}

	sum := level.Summary()

	if flagSimJSON {
		data, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	result := "timed out (script and coast budget exhausted)"
	switch outcome {
	case engine.OutcomeComplete:
		result = "completed"
	case engine.OutcomeFailed:
		result = "failed"
	}

	fmt.Printf("Level:     %s\n", sum.Level)
	fmt.Printf("Result:    %s\n", result)
	fmt.Printf("Ticks:     %d (%.1fs simulated)\n", ticks, float64(ticks)*dt)
	fmt.Printf("Score:     %d\n", sum.Score)
	fmt.Printf("Stars:     %s\n", starString(sum.Stars))
	fmt.Printf("Energy:    %.1f\n", sum.Energy)
	fmt.Printf("Optional:  %d\n", sum.OptionalHit)
	fmt.Printf("Power-ups: %d\n", sum.PowerUps)
	if sum.TimeLeft > 0 {
		fmt.Printf("Time left: %.1fs\n", sum.TimeLeft)
	}

	if outcome == engine.OutcomeFailed {
		os.Exit(1)
	}
}

// parseScript turns "right:3,idle:2,brake" into tick-counted segments.
func parseScript(script string, fps int) ([]scriptSegment, error) {
	var segments []scriptSegment
	for _, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, durStr, hasDur := strings.Cut(part, ":")
		seconds := 1.0
		if hasDur {
			var err error
			seconds, err = strconv.ParseFloat(strings.TrimSpace(durStr), 64)
			if err != nil || seconds <= 0 {
				return nil, fmt.Errorf("bad script duration %q in segment %q", durStr, part)
			}
		}

		frame := core.NewInputFrame()
		for _, action := range strings.Split(name, "+") {
			switch strings.ToLower(strings.TrimSpace(action)) {
			case "up":
				frame.Set(core.ActionUp)
			case "down":
				frame.Set(core.ActionDown)
			case "left":
				frame.Set(core.ActionLeft)
			case "right":
				frame.Set(core.ActionRight)
			case "brake":
				frame.Set(core.ActionBrake)
			case "idle":
				// No actions
			default:
				return nil, fmt.Errorf("unknown script action %q in segment %q", action, part)
			}
		}

		ticks := int(seconds * float64(fps))
		if ticks < 1 {
			ticks = 1
		}
		segments = append(segments, scriptSegment{Frame: frame, Ticks: ticks})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return segments, nil
}
