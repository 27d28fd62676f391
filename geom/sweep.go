package geom

import "math"

// MovingPoint is a point paired with the displacement it will undergo
// during the current frame.
type MovingPoint struct {
	Pos   Vec2
	Delta Vec2
}

// MovingRect is a rectangle paired with its displacement for the frame.
type MovingRect struct {
	Rect
	Delta Vec2
}

// Corners returns the two corners of a side as moving points.
func (m MovingRect) Corners(dir QuadDirection) [2]MovingPoint {
	a, b := m.SideCorners(dir)
	return [2]MovingPoint{{Pos: a, Delta: m.Delta}, {Pos: b, Delta: m.Delta}}
}

// Reverse returns the same rectangle with the displacement negated.
func (m MovingRect) Reverse() MovingRect {
	return MovingRect{Rect: m.Rect, Delta: m.Delta.Reverse()}
}

// Contact is where a sweep meets a segment. Factor is the fraction of the
// frame's displacement needed to get there: 0 is immediate, 1 is the end
// of the frame.
type Contact struct {
	Pos    Vec2
	Factor float64
}

// LineIntersect returns the point where the infinite line traced by the
// sweep crosses the infinite line through seg. Parallel lines never meet.
func LineIntersect(mp MovingPoint, seg Segment) (Vec2, bool) {
	sweepVertical := math.Abs(mp.Delta.X) < Tolerance
	lineVertical := seg.IsVertical()

	switch {
	case sweepVertical && lineVertical:
		return Vec2{}, false
	case sweepVertical:
		x := mp.Pos.X
		a := seg.Slope()
		b := seg.P0.Y - a*seg.P0.X
		return Vec2{X: x, Y: a*x + b}, true
	case lineVertical:
		x := seg.P0.X
		a := mp.Delta.Y / mp.Delta.X
		b := mp.Pos.Y - a*mp.Pos.X
		return Vec2{X: x, Y: a*x + b}, true
	}

	a1 := mp.Delta.Y / mp.Delta.X
	b1 := mp.Pos.Y - a1*mp.Pos.X
	a2 := seg.Slope()
	b2 := seg.P0.Y - a2*seg.P0.X
	if math.Abs(a1-a2) < Tolerance {
		return Vec2{}, false
	}
	x := (b2 - b1) / (a1 - a2)
	return Vec2{X: x, Y: a1*x + b1}, true
}

// CrossesPoint reports whether a point on the sweep's line is reached
// within this frame, along with the distance factor. Points behind the
// origin have a negative factor and are never crossed. A sweep that does
// not move crosses nothing.
func CrossesPoint(mp MovingPoint, p Vec2) (float64, bool) {
	if mp.Delta.IsZero() {
		return 0, false
	}
	factor := p.Sub(mp.Pos).Dot(mp.Delta) / mp.Delta.Dot(mp.Delta)
	eps := Tolerance / mp.Delta.Len()
	if factor < -eps || factor > 1+eps {
		return factor, false
	}
	return math.Min(math.Max(factor, 0), 1), true
}

// SegmentIntersect sweeps mp against seg.
func SegmentIntersect(mp MovingPoint, seg Segment) (Contact, bool) {
	if mp.Delta.IsZero() {
		return Contact{}, false
	}
	p, ok := LineIntersect(mp, seg)
	if !ok || !seg.PointWithin(p) {
		return Contact{}, false
	}
	factor, ok := CrossesPoint(mp, p)
	if !ok {
		return Contact{}, false
	}
	return Contact{Pos: p, Factor: factor}, true
}

// WithinReach is a conservative bounding-circle test: false means the
// rectangles cannot touch during this frame.
func WithinReach(m MovingRect, other Rect) bool {
	reach := m.Radius() + m.Delta.Len() + other.Radius()
	return reach >= m.Center().Sub(other.Center()).Len()
}
