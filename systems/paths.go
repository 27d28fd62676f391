package systems

import (
	"github.com/automoto/sweepbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var pathQuery = donburi.NewQuery(filter.Contains(components.RigidBody, components.Path))

// UpdatePaths advances each path tween and sets the body velocity so that
// UpdateVelocity lands it on the tweened position. Finished sequences
// start over.
func UpdatePaths(ecs *ecs.ECS) {
	dt := Delta(ecs)
	if dt <= 0 {
		return
	}
	pathQuery.Each(ecs.World, func(e *donburi.Entry) {
		path := components.Path.Get(e)
		if path.Sequence == nil {
			return
		}
		body := components.RigidBody.Get(e)

		progress, _, done := path.Sequence.Update(float32(dt))
		if done {
			path.Sequence.Reset()
		}
		target := path.At(float64(progress))
		body.Vel = target.Sub(body.Pos).Scale(1 / dt)
	})
}
