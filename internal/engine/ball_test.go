package engine

import (
	"testing"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

const testDT = 1.0 / 60.0

func TestBallFrictionDecaysToZero(t *testing.T) {
	// With friction < 1 and no input, speed must fall monotonically and
	// reach exactly zero, without oscillating or going negative.
	for _, friction := range []float64{0.9, 0.95, 0.99} {
		phys := config.Default().Physics
		b := NewBall(geom.V(100, 100), 15, phys)
		b.Vel = geom.V(5, -3)

		prev := b.Speed()
		reachedZero := false
		for i := 0; i < 5000; i++ {
			b.Update(testDT, friction, 1)
			speed := b.Speed()
			if speed > prev {
				t.Fatalf("friction=%g: speed increased from %g to %g at tick %d", friction, prev, speed, i)
			}
			prev = speed
			if speed == 0 {
				reachedZero = true
				break
			}
		}
		if !reachedZero {
			t.Errorf("friction=%g: speed never reached zero, still %g", friction, prev)
		}

		// Once stopped, stays stopped
		for i := 0; i < 10; i++ {
			b.Update(testDT, friction, 1)
		}
		if b.Speed() != 0 {
			t.Errorf("friction=%g: ball restarted after stopping, speed=%g", friction, b.Speed())
		}
	}
}

func TestBallVelocityCeiling(t *testing.T) {
	phys := config.Default().Physics
	b := NewBall(geom.V(100, 100), 15, phys)

	for i := 0; i < 50; i++ {
		b.ApplyForce(geom.V(100, 50))
		if b.Speed() > phys.MaxSpeed+1e-9 {
			t.Fatalf("speed %g exceeds ceiling %g after force %d", b.Speed(), phys.MaxSpeed, i)
		}
		b.Update(testDT, phys.Friction, 1)
		if b.Speed() > phys.MaxSpeed+1e-9 {
			t.Fatalf("speed %g exceeds ceiling %g after update %d", b.Speed(), phys.MaxSpeed, i)
		}
	}
}

func TestBallStandstillKick(t *testing.T) {
	// Starting from rest, the impulse gets an extra kick on top of the
	// base multiplier so first pushes feel responsive.
	phys := config.Default().Physics
	b := NewBall(geom.V(100, 100), 15, phys)

	b.ApplyForce(geom.V(1, 0))
	want := phys.ForceMultiplier + phys.StandstillKick
	if got := b.Vel.X(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("standstill push: vel.x = %g, want %g", got, want)
	}

	// A moving ball gets no kick and is throttled by current speed
	moving := NewBall(geom.V(100, 100), 15, phys)
	moving.Vel = geom.V(5, 0)
	moving.ApplyForce(geom.V(1, 0))
	throttled := 5 + phys.ForceMultiplier*(1-5/phys.MaxSpeed)
	if got := moving.Vel.X(); got < throttled-1e-9 || got > throttled+1e-9 {
		t.Errorf("moving push: vel.x = %g, want %g", got, throttled)
	}
}

func TestBallIgnoresNegligibleForce(t *testing.T) {
	phys := config.Default().Physics
	b := NewBall(geom.V(100, 100), 15, phys)

	b.ApplyForce(geom.V(0.1, 0.1))
	if b.Speed() != 0 {
		t.Errorf("force below threshold moved the ball: speed=%g", b.Speed())
	}
}

func TestBallStopSnap(t *testing.T) {
	phys := config.Default().Physics
	b := NewBall(geom.V(100, 100), 15, phys)
	b.Vel = geom.V(0.04, 0)

	b.Update(testDT, phys.Friction, 1)
	if b.Speed() != 0 {
		t.Errorf("creeping velocity did not snap to zero: speed=%g", b.Speed())
	}
}

func TestBallTimeScaleSlowsMotion(t *testing.T) {
	phys := config.Default().Physics
	normal := NewBall(geom.V(100, 100), 15, phys)
	normal.Vel = geom.V(4, 0)
	slowed := NewBall(geom.V(100, 100), 15, phys)
	slowed.Vel = geom.V(4, 0)

	normal.Update(testDT, phys.Friction, 1)
	slowed.Update(testDT, phys.Friction, 0.5)

	dNormal := normal.Pos.X() - 100
	dSlowed := slowed.Pos.X() - 100
	if dSlowed >= dNormal {
		t.Errorf("time dilation did not slow motion: normal moved %g, slowed moved %g", dNormal, dSlowed)
	}
	if dSlowed <= 0 {
		t.Errorf("slowed ball did not move at all")
	}
}
