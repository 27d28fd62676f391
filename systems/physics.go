package systems

import (
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVelocity moves every body by its velocity.
func UpdateVelocity(ecs *ecs.ECS) {
	dt := Delta(ecs)
	components.RigidBody.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		body.Pos = physics.Integrate(body.Pos, body.Vel, dt)
	})
}

// UpdateGravity accelerates bodies with gravity enabled toward the
// terminal velocity.
func UpdateGravity(ecs *ecs.ECS) {
	dt := Delta(ecs)
	components.RigidBody.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		if !body.Gravity {
			return
		}
		body.Vel.Y = physics.ApplyGravity(body.Vel.Y, dt, cfg.Physics.Gravity, cfg.Physics.TerminalVelocity)
	})
}

// UpdateDrag slows the horizontal motion of bodies with drag enabled.
func UpdateDrag(ecs *ecs.ECS) {
	dt := Delta(ecs)
	drag := dragParams()
	components.RigidBody.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		if !body.Drag || body.Vel.X == 0 {
			return
		}
		body.Vel.X = physics.ApplyDrag(body.Vel.X, dt, drag)
	})
}

func dragParams() physics.Drag {
	return physics.Drag{
		Exponent:  cfg.Physics.DragExponent,
		Factor:    cfg.Physics.DragFactor,
		Base:      cfg.Physics.DragBase,
		StopSpeed: cfg.Physics.DragStopSpeed,
	}
}
