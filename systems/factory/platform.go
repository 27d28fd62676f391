package factory

import (
	"github.com/automoto/sweepbox/archetypes"
	"github.com/automoto/sweepbox/components"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/physics"
	"github.com/automoto/sweepbox/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-sided edge blocking only from dirs.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64, dirs geom.QuadSet) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	components.RigidBody.SetValue(platform, physics.NewBody(geom.Vec2{X: x, Y: y}, geom.Vec2{X: w, Y: h}))
	components.ShallowCollider.SetValue(platform, components.ShallowColliderData{Directions: dirs})
	newObject(ecs, platform, x, y, w, h, tags.ResolvPlatform)

	return platform
}

// CreateMovingPlatform creates a passive solid that travels by travel and
// back, each leg taking duration seconds.
func CreateMovingPlatform(ecs *ecs.ECS, x, y, w, h float64, travel geom.Vec2, duration float64) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	origin := geom.Vec2{X: x, Y: y}
	components.RigidBody.SetValue(platform, physics.NewBody(origin, geom.Vec2{X: w, Y: h}))
	components.SolidCollider.SetValue(platform, components.SolidColliderData{})
	newObject(ecs, platform, x, y, w, h, tags.ResolvSolid)

	// The platform moves using a *gween.Sequence of tweens, moving it back and forth.
	d := float32(duration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, d, ease.InOutQuad),
		gween.New(1, 0, d, ease.InOutQuad),
	)
	components.Path.SetValue(platform, components.PathData{
		Sequence: tw,
		Origin:   origin,
		Travel:   travel,
	})

	return platform
}
