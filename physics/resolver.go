package physics

import (
	"fmt"
	"math"

	"github.com/automoto/sweepbox/geom"
)

// Resolver moves a body out of a contact. Implementations are attached
// per entity and must not keep the body pointer.
type Resolver interface {
	Resolve(b *Body, contact, size geom.Vec2, dir geom.QuadDirection)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(b *Body, contact, size geom.Vec2, dir geom.QuadDirection)

func (f ResolverFunc) Resolve(b *Body, contact, size geom.Vec2, dir geom.QuadDirection) {
	f(b, contact, size, dir)
}

// ResolverByName returns the resolution policy that belongs to a detector:
// the margin resolver for "sweep" and the flush snap for "corner".
func ResolverByName(name string, margin float64) (Resolver, error) {
	switch name {
	case "", "sweep":
		return NewDefaultResolver(margin), nil
	case "corner":
		return SnapResolver{}, nil
	}
	return nil, fmt.Errorf("unknown collision detector %q", name)
}

// DefaultResolver parks the body Margin units outside the obstacle and
// clamps the velocity component that points into it.
type DefaultResolver struct {
	Margin float64
}

func NewDefaultResolver(margin float64) *DefaultResolver {
	return &DefaultResolver{Margin: margin}
}

func (r *DefaultResolver) Resolve(b *Body, contact, size geom.Vec2, dir geom.QuadDirection) {
	switch dir {
	case geom.Top:
		b.Pos.Y = contact.Y + r.Margin
		b.Vel.Y = math.Max(0, b.Vel.Y)
	case geom.Bottom:
		b.Pos.Y = contact.Y - size.Y - r.Margin
		b.Vel.Y = math.Min(0, b.Vel.Y)
	case geom.Left:
		b.Pos.X = contact.X + r.Margin
		b.Vel.X = math.Max(0, b.Vel.X)
	case geom.Right:
		b.Pos.X = contact.X - size.X - r.Margin
		b.Vel.X = math.Min(0, b.Vel.X)
	}
}

// SnapResolver puts the body flush against the contact and stops it on
// the contact axis.
type SnapResolver struct{}

func (SnapResolver) Resolve(b *Body, contact, size geom.Vec2, dir geom.QuadDirection) {
	switch dir {
	case geom.Top:
		b.Pos.Y = contact.Y
		b.Vel.Y = 0
	case geom.Bottom:
		b.Pos.Y = contact.Y - size.Y
		b.Vel.Y = 0
	case geom.Left:
		b.Pos.X = contact.X
		b.Vel.X = 0
	case geom.Right:
		b.Pos.X = contact.X - size.X
		b.Vel.X = 0
	}
}

// Resolve applies the earliest horizontal and the earliest vertical
// contact to b, horizontal first. offset is the collider's offset from the
// body position and size the collider size. It returns the resolved
// direction: a cardinal, a diagonal when both axes resolved, or OctoNone.
func Resolve(b *Body, offset, size geom.Vec2, r Resolver, contacts Contacts) geom.OctoDirection {
	if r == nil || len(contacts) == 0 {
		return geom.OctoNone
	}
	contacts.Sort()
	h, v := contacts.Earliest()

	colliding := geom.OctoNone
	if h != nil {
		r.Resolve(b, h.Pos.Sub(offset), size, h.Direction)
		colliding = h.Direction.Octo()
	}
	if v != nil {
		r.Resolve(b, v.Pos.Sub(offset), size, v.Direction)
		if h != nil {
			colliding = geom.Combine(h.Direction, v.Direction)
		} else {
			colliding = v.Direction.Octo()
		}
	}
	return colliding
}
