package engine

import (
	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

// BouncePad is a rectangular zone that launches the ball in a fixed
// direction. The launch overrides velocity rather than adding to it, at a
// magnitude derived from the incoming speed but never below the configured
// minimum, so even a crawling ball gets a perceptible bounce.
type BouncePad struct {
	Rect     geom.Rect
	Dir      geom.Vec2 // Unit launch direction
	Strength float64   // Speed multiplier
	Cooldown float64   // Seconds between launches

	cooldownLeft float64
}

// Update advances the cooldown timer.
func (p *BouncePad) Update(dt float64) {
	if p.cooldownLeft > 0 {
		p.cooldownLeft -= dt
		if p.cooldownLeft < 0 {
			p.cooldownLeft = 0
		}
	}
}

// CheckCollision tests circle-vs-rectangle overlap and launches the ball
// when the pad is off cooldown. While cooling down, contact is detected
// but produces no additional bounce; this is what keeps a ball resting on
// the pad from oscillating forever.
func (p *BouncePad) CheckCollision(b *Ball, phys config.PhysicsConfig) (Event, bool) {
	_, hit := geom.CircleRectContact(b.Pos, b.Radius, p.Rect)
	if !hit {
		return Event{}, false
	}
	if p.cooldownLeft > 0 {
		return Event{}, false
	}

	speed := b.Speed() * p.Strength
	if speed < phys.MinBounceSpeed {
		speed = phys.MinBounceSpeed
	}

	dir, ok := geom.Normalize(p.Dir)
	if !ok {
		dir = geom.Up
	}
	b.Vel = dir.Mul(speed)
	b.ClampSpeed()
	p.cooldownLeft = p.Cooldown

	return Event{Kind: EventBouncePad, Pos: p.Rect.Center(), Magnitude: speed}, true
}
