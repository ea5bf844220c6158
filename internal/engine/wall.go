package engine

import (
	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

// Wall is an axis-aligned rectangular obstacle. Most walls are static; a
// wall with waypoints patrols a looped path and its rectangle position
// becomes a function of elapsed time.
type Wall struct {
	Rect geom.Rect

	// Waypoint path for movable walls (top-left corners). Empty for
	// static walls. The wall loops waypoint[0] -> ... -> waypoint[n-1]
	// -> waypoint[0].
	Waypoints []geom.Vec2
	Speed     float64 // Path speed in world units per second

	traveled float64 // Distance along the looped path
}

// Update advances a movable wall along its waypoint loop. Static walls
// are untouched.
func (w *Wall) Update(dt float64) {
	if len(w.Waypoints) < 2 || w.Speed <= 0 {
		return
	}

	total := w.pathLength()
	if total <= 0 {
		return
	}

	w.traveled += w.Speed * dt
	for w.traveled >= total {
		w.traveled -= total
	}

	// Walk segments until the remaining distance fits
	remaining := w.traveled
	for i := range w.Waypoints {
		a := w.Waypoints[i]
		b := w.Waypoints[(i+1)%len(w.Waypoints)]
		seg := b.Sub(a).Len()
		if remaining <= seg || seg == 0 {
			if seg == 0 {
				w.Rect.X, w.Rect.Y = a.X(), a.Y()
				return
			}
			p := a.Add(b.Sub(a).Mul(remaining / seg))
			w.Rect.X, w.Rect.Y = p.X(), p.Y()
			return
		}
		remaining -= seg
	}
}

func (w *Wall) pathLength() float64 {
	var total float64
	for i := range w.Waypoints {
		a := w.Waypoints[i]
		b := w.Waypoints[(i+1)%len(w.Waypoints)]
		total += b.Sub(a).Len()
	}
	return total
}

// CheckCollision resolves circle-vs-rectangle penetration against the ball.
// The ball is pushed out along the contact normal slightly beyond the
// penetration depth so it doesn't re-stick next tick, then its velocity is
// reflected with restitution, but only while moving into the wall. When
// absorb is set (active shield) the push-out still happens but the bounce
// is swallowed.
func (w *Wall) CheckCollision(b *Ball, phys config.PhysicsConfig, absorb bool) (Event, bool) {
	contact, hit := geom.CircleRectContact(b.Pos, b.Radius, w.Rect)
	if !hit {
		return Event{}, false
	}

	impact := b.Speed()

	b.Pos = b.Pos.Add(contact.Normal.Mul(contact.Depth * phys.PushOutScale))

	if !absorb {
		// Reflect only when moving into the wall
		vn := b.Vel.Dot(contact.Normal)
		if vn < 0 {
			b.Vel = b.Vel.Sub(contact.Normal.Mul((1 + phys.Restitution) * vn))
			b.ClampSpeed()
		}
	}

	kind := EventWallHit
	if absorb {
		kind = EventShieldBreak
	}
	return Event{Kind: kind, Pos: contact.Point, Magnitude: impact}, true
}
