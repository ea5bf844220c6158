package engine

import "github.com/vovakirdan/inertia/internal/geom"

// PowerUpKind enumerates the power-up effects.
type PowerUpKind int

const (
	PowerEnergy   PowerUpKind = iota // Instant energy refill
	PowerSpeed                       // Timed: lower friction, faster ball
	PowerShield                      // Timed: absorb one wall bounce
	PowerGravity                     // Timed: pull targets toward the ball
	PowerTime                        // Timed: slow the simulation down
	PowerMagnetic                    // Timed: magnet targets toward the ball
)

// String returns the stable name used in level files and events.
func (k PowerUpKind) String() string {
	switch k {
	case PowerEnergy:
		return "energy"
	case PowerSpeed:
		return "speed"
	case PowerShield:
		return "shield"
	case PowerGravity:
		return "gravity"
	case PowerTime:
		return "time"
	case PowerMagnetic:
		return "magnetic"
	default:
		return "unknown"
	}
}

// ParsePowerUpKind maps a level-file name to a kind.
func ParsePowerUpKind(name string) (PowerUpKind, bool) {
	switch name {
	case "energy":
		return PowerEnergy, true
	case "speed":
		return PowerSpeed, true
	case "shield":
		return PowerShield, true
	case "gravity":
		return PowerGravity, true
	case "time":
		return PowerTime, true
	case "magnetic", "magnet":
		return PowerMagnetic, true
	default:
		return 0, false
	}
}

// PowerUp is a collectible effect. Duration 0 means instantaneous: applied
// exactly once on pickup. A timed power-up is active exactly while
// elapsed < duration; the orchestrator runs the symmetric reset on the
// tick the duration lapses.
type PowerUp struct {
	Pos      geom.Vec2
	Radius   float64
	Kind     PowerUpKind
	Duration float64 // Seconds; 0 = instantaneous

	Collected bool
	Elapsed   float64

	spent bool // Shield consumed early, or instant effect done
}

// CheckCollision reports true exactly once, on first contact. Collected
// power-ups are excluded from further checks.
func (p *PowerUp) CheckCollision(b *Ball) bool {
	if p.Collected {
		return false
	}
	if !geom.CircleCircleHit(b.Pos, b.Radius, p.Pos, p.Radius) {
		return false
	}
	p.Collected = true
	p.Elapsed = 0
	return true
}

// Active reports whether a timed effect is currently in force.
func (p *PowerUp) Active() bool {
	return p.Collected && !p.spent && p.Duration > 0 && p.Elapsed < p.Duration
}

// Advance moves the effect clock forward and reports whether the effect
// lapsed on exactly this tick, meaning its reset must run now.
func (p *PowerUp) Advance(dt float64) (justExpired bool) {
	if !p.Collected || p.spent || p.Duration <= 0 {
		return false
	}
	was := p.Elapsed < p.Duration
	p.Elapsed += dt
	return was && p.Elapsed >= p.Duration
}

// Consume ends the effect early (shield absorbing a hit). The reset for
// the kind still runs through the orchestrator's expiry path.
func (p *PowerUp) Consume() {
	p.spent = true
}
