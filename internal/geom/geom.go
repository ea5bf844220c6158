// Package geom provides the 2D vector and intersection primitives used by
// the physics engine. Vectors are mgl64.Vec2; everything here is a pure
// function with no state.
package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the engine-wide 2D vector type.
type Vec2 = mgl64.Vec2

// V constructs a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Up is the fallback contact normal for degenerate geometry (screen
// coordinates, so up is negative Y).
var Up = Vec2{0, -1}

// Clamp restricts a value to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Normalize returns the unit vector of v. For a zero (or denormal) vector
// it reports ok=false and returns Up instead of dividing by zero.
func Normalize(v Vec2) (unit Vec2, ok bool) {
	l := v.Len()
	if l < 1e-12 {
		return Up, false
	}
	return v.Mul(1 / l), true
}

// ClampLen caps the magnitude of v at max, preserving direction.
func ClampLen(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l < 1e-12 {
		return v
	}
	return v.Mul(max / l)
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether the point p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X() >= r.X && p.X() < r.Right() && p.Y() >= r.Y && p.Y() < r.Bottom()
}

// ClosestPoint returns the point on (or in) the rectangle nearest to p,
// clamped per axis.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		Clamp(p.X(), r.X, r.Right()),
		Clamp(p.Y(), r.Y, r.Bottom()),
	}
}

// Contact describes a circle-vs-rectangle overlap.
type Contact struct {
	Normal Vec2    // Unit vector from the surface toward the circle center
	Depth  float64 // Penetration depth
	Point  Vec2    // Closest point on the rectangle
}

// CircleRectContact tests a circle against an axis-aligned rectangle.
// When the circle center coincides with the closest point (center inside
// the rectangle edge band at zero distance) the normal falls back to Up.
func CircleRectContact(center Vec2, radius float64, r Rect) (Contact, bool) {
	closest := r.ClosestPoint(center)
	delta := center.Sub(closest)
	distSq := delta.Dot(delta)
	if distSq >= radius*radius {
		return Contact{}, false
	}

	normal, ok := Normalize(delta)
	dist := 0.0
	if ok {
		dist = delta.Len()
	}
	return Contact{
		Normal: normal,
		Depth:  radius - dist,
		Point:  closest,
	}, true
}

// CircleCircleHit reports whether two circles overlap.
func CircleCircleHit(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	delta := c1.Sub(c2)
	rr := r1 + r2
	return delta.Dot(delta) < rr*rr
}
