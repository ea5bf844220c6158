package engine

import (
	"testing"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

func TestWallBounceScenario(t *testing.T) {
	// Ball pushed right from (100, 300) into a wall at x=300 must bounce
	// off the left face with vel.x < 0 and never end up inside the wall.
	phys := config.Default().Physics
	b := NewBall(geom.V(100, 300), 15, phys)
	wall := &Wall{Rect: geom.Rect{X: 300, Y: 250, W: 20, H: 200}}

	hit := false
	for i := 0; i < 600; i++ {
		if !hit {
			b.ApplyForce(geom.V(1, 0))
		}
		b.Update(testDT, phys.Friction, 1)

		ev, collided := wall.CheckCollision(b, phys, false)
		if collided && !hit {
			hit = true
			if ev.Kind != EventWallHit {
				t.Errorf("collision event kind = %v, want %v", ev.Kind, EventWallHit)
			}
			if b.Vel.X() >= 0 {
				t.Errorf("after left-face bounce vel.x = %g, want negative", b.Vel.X())
			}
		}
		if wall.Rect.Contains(b.Pos) {
			t.Fatalf("tick %d: ball center inside wall at (%g, %g)", i, b.Pos.X(), b.Pos.Y())
		}
	}
	if !hit {
		t.Fatal("ball never reached the wall")
	}
}

func TestWallShieldAbsorbsBounce(t *testing.T) {
	phys := config.Default().Physics
	b := NewBall(geom.V(290, 300), 15, phys)
	b.Vel = geom.V(3, 0)
	wall := &Wall{Rect: geom.Rect{X: 300, Y: 250, W: 20, H: 200}}

	ev, hit := wall.CheckCollision(b, phys, true)
	if !hit {
		t.Fatal("expected contact")
	}
	if ev.Kind != EventShieldBreak {
		t.Errorf("event kind = %v, want %v", ev.Kind, EventShieldBreak)
	}
	// Push-out still happens, but the velocity is not reflected
	if b.Vel.X() <= 0 {
		t.Errorf("absorbed hit flipped velocity: vel.x = %g", b.Vel.X())
	}
	if b.Pos.X() > 300-15 {
		t.Errorf("ball not pushed out: center x = %g", b.Pos.X())
	}
}

func TestWallBounceKeepsRestitution(t *testing.T) {
	phys := config.Default().Physics
	b := NewBall(geom.V(290, 300), 15, phys)
	b.Vel = geom.V(4, 0)
	wall := &Wall{Rect: geom.Rect{X: 300, Y: 250, W: 20, H: 200}}

	if _, hit := wall.CheckCollision(b, phys, false); !hit {
		t.Fatal("expected contact")
	}
	want := -4 * phys.Restitution
	if got := b.Vel.X(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("reflected vel.x = %g, want %g", got, want)
	}
}

func TestMovingWallPatrol(t *testing.T) {
	w := &Wall{
		Rect:      geom.Rect{W: 10, H: 10},
		Waypoints: []geom.Vec2{geom.V(0, 0), geom.V(100, 0)},
		Speed:     50,
	}

	// Looped path (0,0) -> (100,0) -> (0,0), total length 200
	w.Update(1.0)
	if w.Rect.X != 50 || w.Rect.Y != 0 {
		t.Errorf("after 1s: wall at (%g, %g), want (50, 0)", w.Rect.X, w.Rect.Y)
	}
	w.Update(1.0)
	if w.Rect.X != 100 {
		t.Errorf("after 2s: wall at x=%g, want 100", w.Rect.X)
	}
	w.Update(1.0)
	if w.Rect.X != 50 {
		t.Errorf("after 3s (returning leg): wall at x=%g, want 50", w.Rect.X)
	}
	w.Update(1.0)
	if w.Rect.X != 0 {
		t.Errorf("after full loop: wall at x=%g, want 0", w.Rect.X)
	}
}

func TestStaticWallIgnoresUpdate(t *testing.T) {
	w := &Wall{Rect: geom.Rect{X: 40, Y: 50, W: 10, H: 10}}
	w.Update(5)
	if w.Rect.X != 40 || w.Rect.Y != 50 {
		t.Errorf("static wall moved to (%g, %g)", w.Rect.X, w.Rect.Y)
	}
}
