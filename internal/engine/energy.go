package engine

import (
	"math"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

// EnergyMeter converts raw directional input into an energy-priced force.
// The invariants are enforced at the write site: the value never leaves
// [0, Max].
type EnergyMeter struct {
	Value float64
	Max   float64

	regen     float64 // Per tick-unit while idle
	forceCost float64 // Per unit of force magnitude
	brakeCost float64
	drain     float64 // Level-defined passive drain per tick-unit
	rate      float64 // Tick-units per second (dt normalization)
}

// NewEnergyMeter creates a full meter with the given passive drain rate.
func NewEnergyMeter(cfg config.EnergyConfig, passiveDrain, rateScale float64) EnergyMeter {
	return EnergyMeter{
		Value:     cfg.Max,
		Max:       cfg.Max,
		regen:     cfg.Regen,
		forceCost: cfg.ForceCost,
		brakeCost: cfg.BrakeCost,
		drain:     passiveDrain,
		rate:      rateScale,
	}
}

// ApplyInput resolves raw directional input (each axis in [-1, 1]) into
// the force to apply this tick.
//
// Diagonal input is normalized so its magnitude never exceeds single-axis
// input. When the full cost fits the budget the force passes through
// unchanged; when it doesn't, the force is scaled by the affordable
// fraction and energy drains to exactly zero. The player is never fully
// denied input, only throttled - rejecting the whole force instead would
// change the feel and is deliberately not done here.
//
// When no input is given this tick, energy regenerates. The passive drain
// applies every tick regardless of input.
func (m *EnergyMeter) ApplyInput(dx, dy, dt float64) (force geom.Vec2, applied bool) {
	ticks := dt * m.rate

	defer func() {
		m.Value -= m.drain * ticks
		m.clamp()
	}()

	if dx == 0 && dy == 0 {
		m.Value += m.regen * ticks
		return geom.Vec2{}, false
	}

	force = geom.V(dx, dy)
	if dx != 0 && dy != 0 {
		force = force.Mul(1 / math.Sqrt2)
	}

	cost := m.forceCost * force.Len() * ticks
	if cost <= m.Value {
		m.Value -= cost
		return force, true
	}

	// Partial force with whatever energy remains
	if cost > 0 && m.Value > 0 {
		force = force.Mul(m.Value / cost)
		m.Value = 0
		return force, true
	}

	return geom.Vec2{}, false
}

// SpendBrake pays the flat brake cost, reporting whether any energy was
// available to spend. A partially afforded brake still works: stopping is
// cheap enough that throttling it would feel broken.
func (m *EnergyMeter) SpendBrake() bool {
	if m.Value <= 0 {
		return false
	}
	m.Value -= m.brakeCost
	m.clamp()
	return true
}

// Refill restores a fraction of the maximum capacity.
func (m *EnergyMeter) Refill(fraction float64) {
	m.Value += m.Max * fraction
	m.clamp()
}

func (m *EnergyMeter) clamp() {
	m.Value = geom.Clamp(m.Value, 0, m.Max)
}
