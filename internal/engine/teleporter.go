package engine

import "github.com/vovakirdan/inertia/internal/geom"

// Teleporter is one end of a paired portal. Two teleporters sharing a
// PairID form a pair; a pair where only one end is entrance-capable is a
// one-way portal. Activating either end puts both on cooldown so the ball
// cannot ping-pong between them.
type Teleporter struct {
	Pos      geom.Vec2
	Radius   float64
	PairID   int
	Entrance bool
	Cooldown float64 // Seconds between activations

	cooldownLeft float64
}

// Update advances the cooldown timer.
func (t *Teleporter) Update(dt float64) {
	if t.cooldownLeft > 0 {
		t.cooldownLeft -= dt
		if t.cooldownLeft < 0 {
			t.cooldownLeft = 0
		}
	}
}

// Ready reports whether this end can fire.
func (t *Teleporter) Ready() bool {
	return t.Entrance && t.cooldownLeft <= 0
}

// Contact reports whether the ball touches an entrance-capable end that is
// off cooldown. The actual relocation is the orchestrator's job because it
// needs the paired end.
func (t *Teleporter) Contact(b *Ball) bool {
	if !t.Ready() {
		return false
	}
	return geom.CircleCircleHit(b.Pos, b.Radius, t.Pos, t.Radius)
}

// StartCooldown arms the re-trigger delay.
func (t *Teleporter) StartCooldown() {
	t.cooldownLeft = t.Cooldown
}

// CoolingDown reports whether the cooldown is running.
func (t *Teleporter) CoolingDown() bool {
	return t.cooldownLeft > 0
}
