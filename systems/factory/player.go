package factory

import (
	"log"

	"github.com/automoto/sweepbox/archetypes"
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/physics"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the controllable body with its top-left corner at
// x, y. It falls, feels drag, stops at solids and respawns at x, y.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos := geom.Vec2{X: x, Y: y}
	size := geom.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height}

	body := physics.NewBody(pos, size)
	body.Gravity = true
	body.Drag = true
	components.RigidBody.SetValue(player, body)

	resolver, err := physics.ResolverByName(cfg.Physics.Detector, cfg.Physics.ContactMargin)
	if err != nil {
		log.Printf("Warning: %v, using the margin resolver", err)
		resolver = physics.NewDefaultResolver(cfg.Physics.ContactMargin)
	}
	components.SolidCollider.SetValue(player, components.SolidColliderData{
		Resolver: resolver,
	})
	components.Sensor.SetValue(player, components.SensorData{
		Tags: []string{tags.ResolvDeadZone},
	})
	components.Spawn.SetValue(player, components.SpawnData{Pos: pos})
	components.Controller.SetValue(player, components.ControllerData{Direction: 1})

	newObject(ecs, player, x, y, size.X, size.Y, tags.ResolvPlayer)

	return player
}
