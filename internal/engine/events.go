package engine

import "github.com/vovakirdan/inertia/internal/geom"

// EventKind tags a side-effect descriptor.
type EventKind int

const (
	EventWallHit     EventKind = iota // Ball bounced off a wall
	EventShieldBreak                  // Shield absorbed a wall bounce
	EventBouncePad                    // Bounce pad launched the ball
	EventTeleport                     // Ball relocated through a teleporter pair
	EventTargetHit                    // Target collected
	EventPowerUp                      // Power-up collected
	EventEffectOver                   // Timed power-up effect expired
	EventSurfaceBoost                 // Surface applied its directional boost
	EventDeadly                       // Ball touched a deadly surface
	EventBoundary                     // Ball clamped at the playfield edge
)

// String returns a stable name for the event kind, used by the spectator
// feed and logs.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall_hit"
	case EventShieldBreak:
		return "shield_break"
	case EventBouncePad:
		return "bounce_pad"
	case EventTeleport:
		return "teleport"
	case EventTargetHit:
		return "target_hit"
	case EventPowerUp:
		return "powerup"
	case EventEffectOver:
		return "effect_over"
	case EventSurfaceBoost:
		return "surface_boost"
	case EventDeadly:
		return "deadly"
	case EventBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Event is a side-effect descriptor collected during one tick. The audio
// and particle layers consume these to decide what to play or spawn; the
// engine itself never calls into presentation code.
type Event struct {
	Kind      EventKind
	Pos       geom.Vec2 // Contact point or entity position
	Magnitude float64   // Impact speed or effect strength, kind-dependent
	PowerUp   PowerUpKind
}
