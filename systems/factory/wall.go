package factory

import (
	"github.com/automoto/sweepbox/archetypes"
	"github.com/automoto/sweepbox/components"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/physics"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a passive solid that blocks from every side.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	components.RigidBody.SetValue(wall, physics.NewBody(geom.Vec2{X: x, Y: y}, geom.Vec2{X: w, Y: h}))
	components.SolidCollider.SetValue(wall, components.SolidColliderData{})
	newObject(ecs, wall, x, y, w, h, tags.ResolvSolid)

	return wall
}
