package geom

import "math"

// Segment is the line segment between P0 and P1.
type Segment struct {
	P0, P1 Vec2
}

func (s Segment) Direction() Vec2 {
	return s.P1.Sub(s.P0)
}

func (s Segment) IsVertical() bool {
	return math.Abs(s.P1.X-s.P0.X) < Tolerance
}

// Slope returns dy/dx. Callers must check IsVertical first.
func (s Segment) Slope() float64 {
	d := s.Direction()
	return d.Y / d.X
}

// PointOnLine reports whether p lies on the infinite line through the segment.
func (s Segment) PointOnLine(p Vec2) bool {
	if s.IsVertical() {
		return math.Abs(p.X-s.P0.X) < Tolerance
	}
	y := s.P0.Y + s.Slope()*(p.X-s.P0.X)
	return math.Abs(p.Y-y) < Tolerance
}

// PointWithin reports whether a point already known to be on the line lies
// between the endpoints. The parameter is taken along x unless the segment
// is vertical, in which case it is taken along y.
func (s Segment) PointWithin(p Vec2) bool {
	var t, span float64
	if s.IsVertical() {
		span = s.P1.Y - s.P0.Y
		if math.Abs(span) < Tolerance {
			return p.Sub(s.P0).IsZero()
		}
		t = (p.Y - s.P0.Y) / span
	} else {
		span = s.P1.X - s.P0.X
		t = (p.X - s.P0.X) / span
	}
	// tolerance is in world units, not in parameter space
	eps := Tolerance / math.Abs(span)
	return t >= -eps && t <= 1+eps
}
