package engine

import (
	"testing"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/geom"
)

func TestPresetFriction(t *testing.T) {
	cases := []struct {
		preset string
		want   float64
		ok     bool
	}{
		{SurfaceNormal, 0.99, true},
		{SurfaceIce, 0.995, true},
		{SurfaceMud, 0.9, true},
		{SurfaceBouncy, 1.01, true},
		{SurfaceDeadly, 0.99, true},
		{"lava", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := PresetFriction(tc.preset)
		if ok != tc.ok || got != tc.want {
			t.Errorf("PresetFriction(%q) = %g, %v; want %g, %v", tc.preset, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSurfaceMembershipIsCenterBased(t *testing.T) {
	// Friction zones use "standing on", not "touching": the ball's edge
	// overlapping the zone is not membership until the center crosses.
	phys := config.Default().Physics
	s := &Surface{Rect: geom.Rect{X: 100, Y: 100, W: 50, H: 50}, Friction: 0.9}

	edge := NewBall(geom.V(95, 125), 15, phys)
	if inside, _ := s.Check(edge); inside {
		t.Error("edge overlap counted as membership")
	}

	center := NewBall(geom.V(110, 125), 15, phys)
	if inside, _ := s.Check(center); !inside {
		t.Error("center inside the zone not counted")
	}
}

func TestSurfaceBoostFiresOncePerEntry(t *testing.T) {
	phys := config.Default().Physics
	s := &Surface{
		Rect:     geom.Rect{X: 100, Y: 100, W: 50, H: 50},
		Friction: 1.01,
		Boost:    geom.V(2, 0),
	}
	b := NewBall(geom.V(110, 125), 15, phys)

	if _, boosted := s.Check(b); !boosted {
		t.Fatal("boost did not fire on entry")
	}
	if b.Vel.X() != 2 {
		t.Errorf("boost velocity = %g, want 2", b.Vel.X())
	}
	if _, boosted := s.Check(b); boosted {
		t.Error("boost fired again while inside")
	}

	// Leave and re-enter: the boost re-arms
	b.Pos = geom.V(300, 300)
	s.Check(b)
	b.Pos = geom.V(110, 125)
	if _, boosted := s.Check(b); !boosted {
		t.Error("boost did not re-arm after exit")
	}
}
