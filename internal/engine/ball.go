// Package engine implements the physics and interaction core of inertia:
// ball motion, collision detection and response for every obstacle type,
// force fields, the energy gate, and the per-level state machine. It is
// pure simulation: no rendering, no audio, no I/O. Side effects surface as
// Event descriptors for external collaborators.
package engine

import (
	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

// Ball is the player-controlled body. All motion state lives here; the
// orchestrator owns it exclusively for the duration of a Step call.
type Ball struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Mass   float64

	// Surface override for the current tick. Set when the ball's center
	// is inside a surface zone, cleared at the start of every tick.
	SurfaceFriction    float64
	HasSurfaceFriction bool

	// Power-up state
	HasShield       bool
	SpeedMultiplier float64

	phys config.PhysicsConfig
}

// NewBall creates a ball at the given position.
func NewBall(pos geom.Vec2, radius float64, phys config.PhysicsConfig) *Ball {
	return &Ball{
		Pos:             pos,
		Radius:          radius,
		Mass:            1,
		SpeedMultiplier: 1,
		phys:            phys,
	}
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// ApplyForce adds an impulse to the ball's velocity. The impulse is scaled
// down as speed approaches the ceiling (soft throttling, not a hard wall)
// and gets an extra kick when starting from near rest so initial pushes
// feel responsive. Forces below the negligible-force floor are ignored,
// which also guards the normalization against zero division.
func (b *Ball) ApplyForce(f geom.Vec2) {
	if f.Len() < b.phys.MinForce {
		return
	}

	speed := b.Speed()
	throttle := 1 - speed/b.phys.MaxSpeed
	if throttle < 0 {
		throttle = 0
	}

	b.Vel = b.Vel.Add(f.Mul(b.phys.ForceMultiplier * throttle))

	// Extra push from standstill
	if speed < 0.1 {
		b.Vel = b.Vel.Add(f.Mul(b.phys.StandstillKick))
	}

	b.ClampSpeed()
}

// Update advances the ball by one tick. friction is the effective friction
// for this tick (surface override or ambient default); timeScale stretches
// dt for time-dilation effects.
func (b *Ball) Update(dt, friction, timeScale float64) {
	// Speed-dependent damping on top of friction: the faster the ball
	// moves, the more it sheds.
	damping := 1 - b.phys.HighSpeedDamping*(b.Speed()/b.phys.MaxSpeed)
	b.Vel = b.Vel.Mul(friction * damping)

	// Snap creeping velocities to zero to prevent endless micro-drift.
	if b.Speed() < b.phys.StopSpeed {
		b.Vel = geom.Vec2{}
	}

	b.ClampSpeed()

	// Advance position. RateScale normalizes the per-tick velocity units
	// against real dt so the feel is framerate independent.
	step := dt * b.phys.RateScale * timeScale * b.SpeedMultiplier
	b.Pos = b.Pos.Add(b.Vel.Mul(step))
}

// ClampSpeed enforces the velocity ceiling. Called after every force or
// collision resolution that touches velocity.
func (b *Ball) ClampSpeed() {
	b.Vel = geom.ClampLen(b.Vel, b.phys.MaxSpeed)
}

// Stop zeroes the ball's velocity.
func (b *Ball) Stop() {
	b.Vel = geom.Vec2{}
}

// Teleport relocates the ball without touching velocity.
func (b *Ball) Teleport(p geom.Vec2) {
	b.Pos = p
}
