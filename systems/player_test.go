package systems

import (
	"testing"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

// press marks actions as newly pressed this frame.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func TestUpdatePlayerJumpsFromGround(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 40, 256)
	components.SolidCollider.Get(player).Colliding = geom.OctoBottom

	press(e, cfg.ActionJump)
	UpdatePlayer(e)

	assert.Equal(t, -cfg.Player.JumpSpeed, bodyOf(player).Vel.Y)
	assert.Equal(t, 0, components.Controller.Get(player).GroundedFrames)
}

func TestUpdatePlayerCoyoteWindow(t *testing.T) {
	e := newTestECS(t)
	cfg.Player.CoyoteFrames = 3
	player := factory.CreatePlayer(e, 40, 256)
	collider := components.SolidCollider.Get(player)
	ctrl := components.Controller.Get(player)

	collider.Colliding = geom.OctoBottomRight
	press(e)
	UpdatePlayer(e)
	assert.Equal(t, 3, ctrl.GroundedFrames, "diagonal contact still faces bottom")

	collider.Colliding = geom.OctoNone
	for i := 0; i < 3; i++ {
		press(e)
		UpdatePlayer(e)
	}
	assert.Equal(t, 0, ctrl.GroundedFrames)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	assert.Equal(t, 0.0, bodyOf(player).Vel.Y, "no jump in the air")
}

func TestUpdatePlayerJumpCut(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 40, 256)
	bodyOf(player).Vel.Y = -200

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	press(e)
	UpdatePlayer(e)

	assert.Equal(t, -100.0, bodyOf(player).Vel.Y)
}

func TestUpdatePlayerMoves(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 40, 256)

	press(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)
	assert.Equal(t, -cfg.Player.MoveSpeed, bodyOf(player).Vel.X)
	assert.Equal(t, -1.0, components.Controller.Get(player).Direction)

	press(e, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	UpdatePlayer(e)
	assert.Equal(t, -cfg.Player.MoveSpeed, bodyOf(player).Vel.X, "opposing input leaves velocity to drag")
}

func TestUpdatePlayerReset(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 40, 256)
	bodyOf(player).Pos = geom.Vec2{X: 300, Y: 10}
	bodyOf(player).Vel = geom.Vec2{X: 5, Y: 5}

	press(e, cfg.ActionReset)
	UpdatePlayer(e)

	assert.Equal(t, geom.Vec2{X: 40, Y: 256}, bodyOf(player).Pos)
	assert.Equal(t, geom.Vec2{}, bodyOf(player).Vel)
}
