// Package physics advances rigid bodies and resolves swept collisions
// between axis-aligned rectangles. It knows nothing about the ECS; the
// systems package feeds it component data each frame.
package physics

import (
	"math"

	"github.com/automoto/sweepbox/geom"
)

// Body is the per-entity rigid body state.
type Body struct {
	Pos     geom.Vec2
	Vel     geom.Vec2
	Size    geom.Vec2
	Gravity bool // subject to gravity
	Drag    bool // subject to horizontal drag
}

// NewBody returns a body at rest. Negative sizes are clamped to zero.
func NewBody(pos, size geom.Vec2) Body {
	return Body{
		Pos:  pos,
		Size: geom.Vec2{X: math.Max(size.X, 0), Y: math.Max(size.Y, 0)},
	}
}

func (b Body) Rect() geom.Rect {
	return geom.Rect{Pos: b.Pos, Size: b.Size}
}
