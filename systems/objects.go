package systems

import (
	"github.com/automoto/sweepbox/components"
	"github.com/automoto/sweepbox/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects copies each body's collider rectangle into its resolv
// object and refreshes the object's cells in the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		syncObject(e)
	}
}

// syncObject moves the resolv object of e onto its body.
func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	if e.HasComponent(components.RigidBody) {
		body := components.RigidBody.Get(e)
		rect := body.Rect()
		if e.HasComponent(components.SolidCollider) {
			rect = components.SolidCollider.Get(e).Rect(body)
		}
		obj.X, obj.Y = rect.Pos.X, rect.Pos.Y
		obj.W, obj.H = rect.Size.X, rect.Size.Y
	}
	obj.Update()
}

// objectRect returns the rectangle a resolv object currently covers.
func objectRect(obj components.ObjectData) geom.Rect {
	return geom.NewRect(obj.X, obj.Y, obj.W, obj.H)
}
