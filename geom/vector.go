// Package geom holds the 2D primitives used by the collision engine.
// Everything here is a value type and every query is total: degenerate
// input yields "no result" instead of an error.
package geom

import "math"

// Tolerance is the epsilon used for verticality, slope equality,
// zero-length sweeps and segment containment.
const Tolerance = 0.001

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Min returns the smallest component.
func (v Vec2) Min() float64 {
	return math.Min(v.X, v.Y)
}

// Max returns the largest component.
func (v Vec2) Max() float64 {
	return math.Max(v.X, v.Y)
}

// Reverse returns the vector pointing the opposite way.
func (v Vec2) Reverse() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// IsZero reports whether the vector is shorter than Tolerance.
func (v Vec2) IsZero() bool {
	return v.Len() < Tolerance
}
