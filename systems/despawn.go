package systems

import (
	"github.com/automoto/sweepbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDespawn marks e for removal at the end of the frame. Systems that
// run later in the same frame skip it.
func QueueDespawn(e *donburi.Entry) {
	if e.Valid() && !e.HasComponent(components.Despawn) {
		e.AddComponent(components.Despawn)
	}
}

// UpdateDespawns removes every entry queued with QueueDespawn together
// with its resolv object. Must run last.
func UpdateDespawns(ecs *ecs.ECS) {
	var queued []*donburi.Entry
	components.Despawn.Each(ecs.World, func(e *donburi.Entry) {
		queued = append(queued, e)
	})

	for _, e := range queued {
		if e.HasComponent(components.Object) {
			removeObject(ecs, components.Object.Get(e))
		}
		ecs.World.Remove(e.Entity())
	}
}

func removeObject(ecs *ecs.ECS, obj *components.ObjectData) {
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
