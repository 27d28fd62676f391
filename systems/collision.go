package systems

import (
	"log"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	solidQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.RigidBody, components.SolidCollider),
		filter.Not(filter.Contains(components.Despawn)),
	))
	shallowQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.RigidBody, components.ShallowCollider),
		filter.Not(filter.Contains(components.Despawn)),
	))
)

// UpdateCollisions sweeps every solid collider that has a resolver
// against the other colliders and resolves the earliest contact on each
// axis. Colliding is reset for all solid colliders first, so passive
// obstacles always report OctoNone.
//
// Two colliders that both have a resolver do not collide with each other.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := Delta(ecs)
	detector := activeDetector(ecs)

	solids := collect(ecs.World, solidQuery)
	shallows := collect(ecs.World, shallowQuery)

	for _, e := range solids {
		components.SolidCollider.Get(e).Colliding = geom.OctoNone
	}

	for _, e := range solids {
		if !e.Valid() {
			continue
		}
		collider := components.SolidCollider.Get(e)
		if collider.Resolver == nil {
			continue
		}
		body := components.RigidBody.Get(e)
		rect := collider.Rect(body)

		var contacts physics.Contacts
		for _, o := range solids {
			if o.Entity() == e.Entity() || !o.Valid() {
				continue
			}
			other := components.SolidCollider.Get(o)
			if other.Resolver != nil {
				continue
			}
			otherBody := components.RigidBody.Get(o)
			mover := sweepAgainst(rect, body, otherBody, dt)
			obstacle := other.Rect(otherBody)
			if !geom.WithinReach(mover, obstacle) {
				continue
			}
			if hit, ok := detector.Solid(mover, obstacle); ok {
				contacts.Add(hit)
			}
		}

		for _, o := range shallows {
			if o.Entity() == e.Entity() || !o.Valid() {
				continue
			}
			otherBody := components.RigidBody.Get(o)
			mover := sweepAgainst(rect, body, otherBody, dt)
			edge := otherBody.Rect()
			if !geom.WithinReach(mover, edge) {
				continue
			}
			sides := components.ShallowCollider.Get(o).Directions
			contacts.Add(physics.ShallowIntersections(mover, edge, sides)...)
		}

		collider.Colliding = physics.Resolve(body, collider.Offset, rect.Size, collider.Resolver, contacts)
	}
}

// sweepAgainst builds the moving rectangle for one pair. The displacement
// is relative to the obstacle, which equals the body's own displacement
// for static obstacles.
func sweepAgainst(rect geom.Rect, body, obstacle *physics.Body, dt float64) geom.MovingRect {
	return geom.MovingRect{
		Rect:  rect,
		Delta: body.Vel.Sub(obstacle.Vel).Scale(dt),
	}
}

// activeDetector resolves the detector named in the settings, falling back
// to the configured one.
func activeDetector(ecs *ecs.ECS) physics.Detector {
	name := cfg.Physics.Detector
	if entry, ok := components.Settings.First(ecs.World); ok {
		if s := components.Settings.Get(entry); s.Detector != "" {
			name = s.Detector
		}
	}
	d, err := physics.DetectorByName(name)
	if err != nil {
		log.Printf("Warning: %v, using side sweep", err)
		return physics.SideSweep{}
	}
	return d
}

// collect snapshots the query so entries removed while iterating do not
// disturb the walk.
func collect(w donburi.World, q *donburi.Query) []*donburi.Entry {
	var entries []*donburi.Entry
	q.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}
