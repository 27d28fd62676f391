package systems

import (
	"testing"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns an empty world and restores the global config when
// the test ends.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	phys, player, debug := cfg.Physics, cfg.Player, cfg.Debug
	t.Cleanup(func() {
		cfg.Physics, cfg.Player, cfg.Debug = phys, player, debug
	})
	return ecs.NewECS(donburi.NewWorld())
}

func setDelta(e *ecs.ECS, dt float64) {
	GetOrCreateClock(e).Delta = dt
}

// spawnSolid creates a body with a solid collider. A nil resolver makes it
// a passive obstacle.
func spawnSolid(e *ecs.ECS, rect geom.Rect, vel geom.Vec2, r physics.Resolver) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.RigidBody, components.SolidCollider))
	body := physics.NewBody(rect.Pos, rect.Size)
	body.Vel = vel
	components.RigidBody.SetValue(entry, body)
	components.SolidCollider.SetValue(entry, components.SolidColliderData{Resolver: r})
	return entry
}

func spawnShallow(e *ecs.ECS, rect geom.Rect, dirs ...geom.QuadDirection) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.RigidBody, components.ShallowCollider))
	components.RigidBody.SetValue(entry, physics.NewBody(rect.Pos, rect.Size))
	components.ShallowCollider.SetValue(entry, components.ShallowColliderData{Directions: geom.NewQuadSet(dirs...)})
	return entry
}

func bodyOf(e *donburi.Entry) *physics.Body {
	return components.RigidBody.Get(e)
}

func collidingOf(e *donburi.Entry) geom.OctoDirection {
	return components.SolidCollider.Get(e).Colliding
}
