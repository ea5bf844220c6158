// Package core provides the platform-facing contract types shared by the
// physics engine and its external collaborators (terminal shell, spectator
// feed, persistence). It contains no external dependencies to keep the
// engine pure and testable.
package core

// RuntimeConfig contains configuration passed to a level instance at setup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (presentation only)
	ScreenH  int // Terminal height in characters (presentation only)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
