package archetypes

import (
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.RigidBody,
		components.SolidCollider,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.RigidBody,
		components.ShallowCollider,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.RigidBody,
		components.SolidCollider,
		components.Object,
		components.Path,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.RigidBody,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.RigidBody,
		components.SolidCollider,
		components.Object,
		components.Sensor,
		components.Spawn,
		components.Controller,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
