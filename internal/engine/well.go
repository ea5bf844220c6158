package engine

import "github.com/vovakirdan/inertia/internal/geom"

// GravityWell is a circular force field. Positive strength attracts the
// ball, negative repels. The well is stateless beyond its parameters;
// force is recomputed every tick from the current ball position.
type GravityWell struct {
	Pos      geom.Vec2
	Radius   float64
	Strength float64
}

// ApplyForce adds the well's pull directly to the ball's velocity when the
// ball is inside the radius of influence. The force falls off linearly
// toward the rim and is clamped to maxForce to avoid singular kicks near
// the center. This deliberately bypasses ApplyForce and the energy gate:
// gravity is free.
//
// Overlapping wells sum in whatever order the orchestrator iterates them;
// the result is subject to ordinary floating-point summation order.
func (w *GravityWell) ApplyForce(b *Ball, maxForce float64) {
	delta := w.Pos.Sub(b.Pos)
	dist := delta.Len()
	if dist >= w.Radius || dist <= 0 {
		return
	}

	force := w.Strength * (1 - dist/w.Radius)
	force = geom.Clamp(force, -maxForce, maxForce)

	dir := delta.Mul(1 / dist)
	b.Vel = b.Vel.Add(dir.Mul(force))
	b.ClampSpeed()
}
