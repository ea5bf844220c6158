package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

func testPad() *BouncePad {
	return &BouncePad{
		Rect:     geom.NewRect(0, 0, 60, 20),
		Dir:      geom.V(0, -1),
		Strength: 1.5,
		Cooldown: 0.5,
	}
}

func TestBouncePadLaunchesCrawlingBallAtMinimumSpeed(t *testing.T) {
	phys := config.Default().Physics
	p := testPad()
	b := NewBall(geom.V(30, 25), 10, phys)
	b.Vel = geom.V(0.1, 0) // 0.1 * 1.5 is far below the floor

	ev, hit := p.CheckCollision(b, phys)
	if !hit {
		t.Fatal("overlapping ball did not trigger the pad")
	}
	if ev.Kind != EventBouncePad {
		t.Errorf("event kind = %v, expected EventBouncePad", ev.Kind)
	}
	if math.Abs(b.Speed()-phys.MinBounceSpeed) > 1e-9 {
		t.Errorf("launch speed = %v, expected floor %v", b.Speed(), phys.MinBounceSpeed)
	}
	if b.Vel.X() != 0 || b.Vel.Y() >= 0 {
		t.Errorf("launch velocity = %v, expected straight up", b.Vel)
	}
}

func TestBouncePadScalesFastBall(t *testing.T) {
	phys := config.Default().Physics
	p := testPad()
	b := NewBall(geom.V(30, 25), 10, phys)
	b.Vel = geom.V(4, 0)

	if _, hit := p.CheckCollision(b, phys); !hit {
		t.Fatal("overlapping ball did not trigger the pad")
	}
	want := 4 * p.Strength // Above the floor, below the ceiling
	if math.Abs(b.Speed()-want) > 1e-9 {
		t.Errorf("launch speed = %v, expected %v", b.Speed(), want)
	}
}

func TestBouncePadCooldownBlocksRepeatLaunch(t *testing.T) {
	phys := config.Default().Physics
	p := testPad()
	b := NewBall(geom.V(30, 25), 10, phys)
	b.Vel = geom.V(0.1, 0)

	if _, hit := p.CheckCollision(b, phys); !hit {
		t.Fatal("first contact did not trigger the pad")
	}
	launched := b.Vel

	// Ball still overlapping while the pad cools down: contact is
	// detected but produces no bounce and no velocity change.
	if ev, hit := p.CheckCollision(b, phys); hit {
		t.Fatalf("pad re-fired during cooldown: %+v", ev)
	}
	if b.Vel != launched {
		t.Errorf("cooldown contact changed velocity: %v -> %v", launched, b.Vel)
	}

	// Partially drained cooldown is still cooldown.
	p.Update(0.3)
	if _, hit := p.CheckCollision(b, phys); hit {
		t.Error("pad re-fired with cooldown still running")
	}

	// Once the cooldown lapses the pad fires again.
	p.Update(0.3)
	if _, hit := p.CheckCollision(b, phys); !hit {
		t.Error("pad did not re-fire after cooldown lapsed")
	}
}

func TestBouncePadNormalizesLaunchDirection(t *testing.T) {
	phys := config.Default().Physics
	p := testPad()
	p.Dir = geom.V(3, -4) // Not unit length
	b := NewBall(geom.V(30, 25), 10, phys)
	b.Vel = geom.V(1, 0)

	if _, hit := p.CheckCollision(b, phys); !hit {
		t.Fatal("overlapping ball did not trigger the pad")
	}
	want := geom.V(0.6, -0.8).Mul(phys.MinBounceSpeed)
	if math.Abs(b.Vel.X()-want.X()) > 1e-9 || math.Abs(b.Vel.Y()-want.Y()) > 1e-9 {
		t.Errorf("launch velocity = %v, expected %v", b.Vel, want)
	}
}

func TestBouncePadRespectsSpeedCeiling(t *testing.T) {
	phys := config.Default().Physics
	p := testPad()
	p.Strength = 50
	b := NewBall(geom.V(30, 25), 10, phys)
	b.Vel = geom.V(5, 0)

	if _, hit := p.CheckCollision(b, phys); !hit {
		t.Fatal("overlapping ball did not trigger the pad")
	}
	if b.Speed() > phys.MaxSpeed+1e-9 {
		t.Errorf("launch speed %v exceeds ceiling %v", b.Speed(), phys.MaxSpeed)
	}
}

func TestBouncePadIgnoresDistantBall(t *testing.T) {
	phys := config.Default().Physics
	p := testPad()
	b := NewBall(geom.V(200, 200), 10, phys)
	b.Vel = geom.V(1, 0)

	if _, hit := p.CheckCollision(b, phys); hit {
		t.Error("pad triggered without contact")
	}
}
