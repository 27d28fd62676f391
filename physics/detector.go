package physics

import (
	"fmt"

	"github.com/automoto/sweepbox/geom"
)

// Detector finds the contact between a moving rectangle and a solid one.
type Detector interface {
	Solid(mover geom.MovingRect, obstacle geom.Rect) (Intersection, bool)
}

// DetectorByName maps config names to detectors.
func DetectorByName(name string) (Detector, error) {
	switch name {
	case "", "sweep":
		return SideSweep{}, nil
	case "corner":
		return NearestCorner{}, nil
	}
	return nil, fmt.Errorf("unknown collision detector %q", name)
}

// SideSweep sweeps the leading side corners of the mover against each
// opposing side of the obstacle, and the obstacle's corners against the
// mover with the displacement reversed so narrow obstacles are not missed.
// The earliest direction wins, ties go to Top, Right, Bottom, Left. A
// later hit on another side can only come from sweeping through the
// obstacle, so loop order alone would report the wrong side.
type SideSweep struct{}

func (SideSweep) Solid(mover geom.MovingRect, obstacle geom.Rect) (Intersection, bool) {
	var best Intersection
	found := false
	for _, d := range geom.QuadDirections {
		hit, ok := sideHit(mover, obstacle, d)
		if !ok {
			continue
		}
		if !found || hit.Factor < best.Factor {
			best = hit
			found = true
		}
	}
	return best, found
}

// sideHit tests the mover's side d against the obstacle's side d.Reverse().
func sideHit(mover geom.MovingRect, obstacle geom.Rect, d geom.QuadDirection) (Intersection, bool) {
	target := obstacle.Side(d.Reverse())
	for _, c := range mover.Corners(d) {
		if hit, ok := geom.SegmentIntersect(c, target); ok {
			return Intersection{Pos: hit.Pos, Direction: d, Factor: hit.Factor}, true
		}
	}

	own := mover.Side(d)
	back := geom.MovingRect{Rect: obstacle, Delta: mover.Delta.Reverse()}
	for _, c := range back.Corners(d.Reverse()) {
		if hit, ok := geom.SegmentIntersect(c, own); ok {
			// the obstacle corner itself is the contact point
			return Intersection{Pos: c.Pos, Direction: d, Factor: hit.Factor}, true
		}
	}
	return Intersection{}, false
}

// NearestCorner is the cheaper approximation: it only follows the mover
// corner closest to the obstacle, and only tests the two obstacle edges
// around the obstacle corner closest to the mover. Contacts that begin on
// another corner are missed. The earlier of the two edge hits wins.
type NearestCorner struct{}

func (NearestCorner) Solid(mover geom.MovingRect, obstacle geom.Rect) (Intersection, bool) {
	own := nearestCorner(mover.Rect, obstacle.Center())
	other := nearestCorner(obstacle, mover.Center())

	if geom.Shared(own.Reverse(), other) == geom.OctoNone {
		return Intersection{}, false
	}

	mp := geom.MovingPoint{Pos: mover.Corner(own), Delta: mover.Delta}
	var best Intersection
	found := false
	for _, side := range other.Components() {
		hit, ok := geom.SegmentIntersect(mp, obstacle.Side(side))
		if !ok {
			continue
		}
		if !found || hit.Factor < best.Factor {
			best = Intersection{Pos: hit.Pos, Direction: side.Reverse(), Factor: hit.Factor}
			found = true
		}
	}
	return best, found
}

func nearestCorner(r geom.Rect, to geom.Vec2) geom.OctoDirection {
	best := geom.Diagonals[0]
	bestDist := r.Corner(best).Sub(to).Len()
	for _, d := range geom.Diagonals[1:] {
		if dist := r.Corner(d).Sub(to).Len(); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
