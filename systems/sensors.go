package systems

import (
	"github.com/automoto/sweepbox/components"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var sensorQuery = donburi.NewQuery(filter.Contains(components.Sensor, components.Object))

// UpdateSensors records which tagged objects overlap each sensor. resolv
// narrows the candidates by cell and the rectangles are then tested for
// strict overlap, so touching edges do not count.
func UpdateSensors(ecs *ecs.ECS) {
	sensorQuery.Each(ecs.World, func(e *donburi.Entry) {
		sensor := components.Sensor.Get(e)
		obj := components.Object.Get(e)
		sensor.Touching = sensor.Touching[:0]
		if obj.Object == nil || obj.Space == nil || len(sensor.Tags) == 0 {
			return
		}

		check := obj.Check(0, 0, sensor.Tags...)
		if check == nil {
			return
		}
		own := objectRect(*obj)
		for _, o := range check.ObjectsByTags(sensor.Tags...) {
			if o == obj.Object {
				continue
			}
			if own.Overlaps(objectRect(components.ObjectData{Object: o})) {
				sensor.Touching = append(sensor.Touching, o)
			}
		}
	})
}

// UpdateDeadZones sends every sensor body touching a dead zone back to
// its spawn point at rest.
func UpdateDeadZones(ecs *ecs.ECS) {
	sensorQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Spawn) || !e.HasComponent(components.RigidBody) {
			return
		}
		if !components.Sensor.Get(e).Touches(tags.ResolvDeadZone) {
			return
		}
		Respawn(e)
	})
}

// Respawn puts a body back on its spawn point with zero velocity.
func Respawn(e *donburi.Entry) {
	body := components.RigidBody.Get(e)
	body.Pos = components.Spawn.Get(e).Pos
	body.Vel.X, body.Vel.Y = 0, 0
	if e.HasComponent(components.SolidCollider) {
		components.SolidCollider.Get(e).Colliding = geom.OctoNone
	}
	if e.HasComponent(components.Sensor) {
		components.Sensor.Get(e).Touching = nil
	}
	if e.HasComponent(components.Object) {
		syncObject(e)
	}
}

