package engine

import "github.com/vovakirdan/inertia/internal/geom"

// Surface presets. Friction values above 1 speed the ball up.
const (
	SurfaceNormal = "normal"
	SurfaceIce    = "ice"
	SurfaceMud    = "mud"
	SurfaceBouncy = "bouncy"
	SurfaceDeadly = "deadly"
)

// PresetFriction returns the friction coefficient for a named surface
// preset, and whether the name is known.
func PresetFriction(preset string) (float64, bool) {
	switch preset {
	case SurfaceNormal, SurfaceDeadly:
		return 0.99, true
	case SurfaceIce:
		return 0.995, true
	case SurfaceMud:
		return 0.9, true
	case SurfaceBouncy:
		return 1.01, true
	default:
		return 0, false
	}
}

// Surface is a rectangular zone that overrides the ball's friction while
// the ball's center is inside. The membership test is point-in-rect, not
// circle overlap: a surface affects the ball only once its center has
// crossed the boundary ("standing on", not "touching").
type Surface struct {
	Rect     geom.Rect
	Friction float64
	Deadly   bool

	// Optional one-shot boost applied when the ball's center enters the
	// zone. Re-arms after the ball leaves.
	Boost geom.Vec2

	wasInside bool
}

// Check tests whether the ball's center occupies this surface. On the
// entering tick a configured boost is applied directly to the ball's
// velocity and boosted reports true.
func (s *Surface) Check(b *Ball) (inside, boosted bool) {
	inside = s.Rect.Contains(b.Pos)
	if inside && !s.wasInside && (s.Boost.X() != 0 || s.Boost.Y() != 0) {
		b.Vel = b.Vel.Add(s.Boost)
		b.ClampSpeed()
		boosted = true
	}
	s.wasInside = inside
	return inside, boosted
}
