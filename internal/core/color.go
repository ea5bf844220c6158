package core

// Color identifies the foreground color of a screen cell. The palette is
// exactly what the playfield renderer draws with; the TUI layer maps each
// value to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault       Color = iota
	ColorGreen               // Bouncy zones
	ColorCyan                // Bounce pads
	ColorWhite               // Walls
	ColorBrightRed           // Deadly zones
	ColorBrightGreen         // Power-ups
	ColorBrightYellow        // Required targets
	ColorBrightBlue          // Optional targets
	ColorBrightMagenta       // Teleporters
	ColorBrightCyan          // Ice zones, shielded ball
	ColorBrightWhite         // The ball
	ColorOrange              // Mud zones
	ColorGray                // Wells, hit targets, cooling teleporters
)
