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

// CreateDeadZone creates an invisible area that sends bodies with a
// sensor back to their spawn point. It has no collider.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	components.RigidBody.SetValue(zone, physics.NewBody(geom.Vec2{X: x, Y: y}, geom.Vec2{X: w, Y: h}))
	newObject(ecs, zone, x, y, w, h, tags.ResolvDeadZone)

	return zone
}
