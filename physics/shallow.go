package physics

import "github.com/automoto/sweepbox/geom"

// ShallowIntersections tests a mover against a one-sided edge. Each
// declared side only blocks a mover approaching from outside that side;
// a Top edge stops bodies falling onto it and lets everything else through.
func ShallowIntersections(mover geom.MovingRect, edge geom.Rect, sides geom.QuadSet) []Intersection {
	var out []Intersection
	sides.Each(func(side geom.QuadDirection) {
		if !approaching(side, mover.Delta) {
			return
		}
		if hit, ok := sideHit(mover, edge, side.Reverse()); ok {
			out = append(out, hit)
		}
	})
	return out
}

func approaching(side geom.QuadDirection, delta geom.Vec2) bool {
	switch side {
	case geom.Top:
		return delta.Y >= 0
	case geom.Bottom:
		return delta.Y <= 0
	case geom.Right:
		return delta.X <= 0
	default:
		return delta.X >= 0
	}
}
