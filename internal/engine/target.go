package engine

import "github.com/vovakirdan/inertia/internal/geom"

// Target is a circular collection zone. Required targets gate level
// completion; optional ones grant bonus score only. The hit flag is
// one-way: once true the target is excluded from collision checks until
// the level instance is rebuilt.
type Target struct {
	Pos      geom.Vec2
	Radius   float64
	Required bool
	Hit      bool
	Points   int
}

// CheckCollision reports true exactly once, on the first contact.
func (t *Target) CheckCollision(b *Ball) bool {
	if t.Hit {
		return false
	}
	if !geom.CircleCircleHit(b.Pos, b.Radius, t.Pos, t.Radius) {
		return false
	}
	t.Hit = true
	return true
}
