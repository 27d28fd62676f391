package components

import (
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/physics"
	"github.com/yohamta/donburi"
)

// SolidColliderData marks a body that blocks from every side.
//
// A nil Resolver makes the entity a passive obstacle: others collide with
// it but it is never moved by the collision system. Colliding is written
// by UpdateCollisions every frame and is OctoNone when nothing was hit.
// When both axes resolve in the same frame it holds the diagonal (a wall
// and the floor give OctoBottomRight, not OctoBottom), so ground checks
// should use Colliding.Facing(geom.Bottom) rather than comparing equality.
type SolidColliderData struct {
	Resolver  physics.Resolver
	Colliding geom.OctoDirection
	Size      *geom.Vec2 // nil uses the body size
	Offset    geom.Vec2  // collider position relative to the body
}

// Rect returns the collider rectangle for a body.
func (c *SolidColliderData) Rect(b *physics.Body) geom.Rect {
	size := b.Size
	if c.Size != nil {
		size = *c.Size
	}
	return geom.Rect{Pos: b.Pos.Add(c.Offset), Size: size}
}

var SolidCollider = donburi.NewComponentType[SolidColliderData]()

// ShallowColliderData is a one-sided edge: it only blocks bodies moving
// into one of its declared sides.
type ShallowColliderData struct {
	Directions geom.QuadSet
}

var ShallowCollider = donburi.NewComponentType[ShallowColliderData]()
