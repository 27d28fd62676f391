package physics

import (
	"sort"

	"github.com/automoto/sweepbox/geom"
)

// Intersection is a candidate contact for a moving body. Direction names
// the side of the moving body that touches; Pos lies on the obstacle's
// opposing side.
type Intersection struct {
	Pos       geom.Vec2
	Direction geom.QuadDirection
	Factor    float64
}

// Contacts collects the candidate intersections of one body for a frame.
type Contacts []Intersection

func (c *Contacts) Add(in ...Intersection) {
	*c = append(*c, in...)
}

// Sort orders contacts by time of impact. Equal factors keep insertion order.
func (c Contacts) Sort() {
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Factor < c[j].Factor
	})
}

// Earliest returns the first horizontal and first vertical contact of a
// sorted list. Either may be nil.
func (c Contacts) Earliest() (horizontal, vertical *Intersection) {
	for i := range c {
		if c[i].Direction.Horizontal() {
			if horizontal == nil {
				horizontal = &c[i]
			}
		} else if vertical == nil {
			vertical = &c[i]
		}
		if horizontal != nil && vertical != nil {
			break
		}
	}
	return horizontal, vertical
}
