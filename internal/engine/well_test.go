package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

func TestGravityWellPullsInward(t *testing.T) {
	phys := config.Default().Physics
	well := &GravityWell{Pos: geom.V(400, 300), Radius: 150, Strength: 20}

	b := NewBall(geom.V(400, 440), 15, phys)
	well.ApplyForce(b, phys.MaxWellForce)
	if b.Vel.Y() >= 0 {
		t.Errorf("ball below the well: vel.y = %g, want negative", b.Vel.Y())
	}
	if b.Vel.X() != 0 {
		t.Errorf("purely vertical offset produced vel.x = %g", b.Vel.X())
	}
}

func TestGravityWellLinearFalloff(t *testing.T) {
	// The pull weakens toward the rim and vanishes at the boundary.
	phys := config.Default().Physics
	well := &GravityWell{Pos: geom.V(400, 300), Radius: 150, Strength: 20}

	nearRim := NewBall(geom.V(400, 448), 15, phys)
	well.ApplyForce(nearRim, phys.MaxWellForce)

	midway := NewBall(geom.V(400, 375), 15, phys)
	well.ApplyForce(midway, phys.MaxWellForce)

	if math.Abs(nearRim.Vel.Y()) >= math.Abs(midway.Vel.Y()) {
		t.Errorf("pull near rim (%g) not weaker than midway (%g)",
			nearRim.Vel.Y(), midway.Vel.Y())
	}

	atRim := NewBall(geom.V(400, 450), 15, phys)
	well.ApplyForce(atRim, phys.MaxWellForce)
	if atRim.Speed() != 0 {
		t.Errorf("ball exactly on the rim was pulled: speed=%g", atRim.Speed())
	}
}

func TestGravityWellForceClamp(t *testing.T) {
	// Near the center the linear falloff would produce the full strength;
	// the clamp keeps the single-tick kick bounded.
	phys := config.Default().Physics
	well := &GravityWell{Pos: geom.V(400, 300), Radius: 150, Strength: 100}

	b := NewBall(geom.V(400, 301), 15, phys)
	well.ApplyForce(b, phys.MaxWellForce)
	if b.Speed() > phys.MaxWellForce+1e-9 {
		t.Errorf("well kick %g exceeds clamp %g", b.Speed(), phys.MaxWellForce)
	}
}

func TestGravityWellRepels(t *testing.T) {
	phys := config.Default().Physics
	well := &GravityWell{Pos: geom.V(400, 300), Radius: 150, Strength: -20}

	b := NewBall(geom.V(400, 350), 15, phys)
	well.ApplyForce(b, phys.MaxWellForce)
	if b.Vel.Y() <= 0 {
		t.Errorf("repulsor did not push the ball away: vel.y = %g", b.Vel.Y())
	}
}

func TestGravityWellDegenerateCenter(t *testing.T) {
	phys := config.Default().Physics
	well := &GravityWell{Pos: geom.V(400, 300), Radius: 150, Strength: 20}

	b := NewBall(geom.V(400, 300), 15, phys)
	well.ApplyForce(b, phys.MaxWellForce)
	for _, v := range []float64{b.Vel.X(), b.Vel.Y()} {
		if math.IsNaN(v) {
			t.Fatal("ball at well center produced NaN velocity")
		}
	}
}
