package systems

import (
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// jumpCutFactor scales upward velocity when jump is released early.
const jumpCutFactor = 0.5

// UpdatePlayer turns input into velocity for the sandbox player. Ground
// contact comes from the previous frame's collision direction.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.RigidBody.Get(e)
		ctrl := components.Controller.Get(e)

		if GetAction(input, cfg.ActionReset).JustPressed {
			Respawn(e)
			ctrl.GroundedFrames = 0
			return
		}

		updateGrounded(ctrl, components.SolidCollider.Get(e).Colliding)

		dir := 0.0
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			dir--
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			dir++
		}
		if dir != 0 {
			body.Vel.X = dir * cfg.Player.MoveSpeed
			ctrl.Direction = dir
		}

		jump := GetAction(input, cfg.ActionJump)
		if jump.JustPressed && ctrl.GroundedFrames > 0 {
			body.Vel.Y = -cfg.Player.JumpSpeed
			ctrl.GroundedFrames = 0
		}
		if jump.JustReleased && body.Vel.Y < 0 {
			body.Vel.Y *= jumpCutFactor
		}
	})
}

// updateGrounded refills the jump window while standing and drains it
// otherwise. Resting contact is not reported every frame, so the window
// bridges the gaps.
func updateGrounded(ctrl *components.ControllerData, colliding geom.OctoDirection) {
	if colliding.Facing(geom.Bottom) {
		ctrl.GroundedFrames = cfg.Player.CoyoteFrames
		return
	}
	if ctrl.GroundedFrames > 0 {
		ctrl.GroundedFrames--
	}
}
