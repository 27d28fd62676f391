package geom

import "strings"

// QuadDirection is one of the four cardinal directions.
type QuadDirection uint8

const (
	Top QuadDirection = iota
	Right
	Bottom
	Left
)

// QuadDirections lists the cardinal directions in sweep order.
var QuadDirections = [4]QuadDirection{Top, Right, Bottom, Left}

func (d QuadDirection) Reverse() QuadDirection {
	switch d {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	default:
		return Right
	}
}

// Horizontal reports whether the direction is Left or Right.
func (d QuadDirection) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether the direction is Top or Bottom.
func (d QuadDirection) Vertical() bool {
	return d == Top || d == Bottom
}

// Octo converts to the 8-way form.
func (d QuadDirection) Octo() OctoDirection {
	switch d {
	case Top:
		return OctoTop
	case Right:
		return OctoRight
	case Bottom:
		return OctoBottom
	default:
		return OctoLeft
	}
}

func (d QuadDirection) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "invalid"
}

// OctoDirection is a cardinal or diagonal direction. The zero value is
// OctoNone, which faces nothing.
type OctoDirection uint8

const (
	OctoNone OctoDirection = iota
	OctoTop
	OctoRight
	OctoBottom
	OctoLeft
	OctoTopLeft
	OctoTopRight
	OctoBottomRight
	OctoBottomLeft
)

// Diagonals lists the corner directions clockwise from the top-left.
var Diagonals = [4]OctoDirection{OctoTopLeft, OctoTopRight, OctoBottomRight, OctoBottomLeft}

func (d OctoDirection) Valid() bool {
	return d != OctoNone && d <= OctoBottomLeft
}

// Quad converts a cardinal direction back to the 4-way form.
func (d OctoDirection) Quad() (QuadDirection, bool) {
	switch d {
	case OctoTop:
		return Top, true
	case OctoRight:
		return Right, true
	case OctoBottom:
		return Bottom, true
	case OctoLeft:
		return Left, true
	}
	return Top, false
}

// IsDiagonal reports whether the direction is one of the four corners.
func (d OctoDirection) IsDiagonal() bool {
	return d >= OctoTopLeft && d <= OctoBottomLeft
}

// Facing reports whether d contains the cardinal component q.
// TopLeft faces Top and Left; a cardinal faces only itself.
func (d OctoDirection) Facing(q QuadDirection) bool {
	switch d {
	case OctoTopLeft:
		return q == Top || q == Left
	case OctoTopRight:
		return q == Top || q == Right
	case OctoBottomRight:
		return q == Bottom || q == Right
	case OctoBottomLeft:
		return q == Bottom || q == Left
	case OctoNone:
		return false
	}
	c, _ := d.Quad()
	return c == q
}

func (d OctoDirection) Reverse() OctoDirection {
	switch d {
	case OctoTop:
		return OctoBottom
	case OctoRight:
		return OctoLeft
	case OctoBottom:
		return OctoTop
	case OctoLeft:
		return OctoRight
	case OctoTopLeft:
		return OctoBottomRight
	case OctoTopRight:
		return OctoBottomLeft
	case OctoBottomRight:
		return OctoTopLeft
	case OctoBottomLeft:
		return OctoTopRight
	}
	return OctoNone
}

// Components splits a direction into its cardinal parts, vertical first.
func (d OctoDirection) Components() []QuadDirection {
	switch d {
	case OctoTopLeft:
		return []QuadDirection{Top, Left}
	case OctoTopRight:
		return []QuadDirection{Top, Right}
	case OctoBottomRight:
		return []QuadDirection{Bottom, Right}
	case OctoBottomLeft:
		return []QuadDirection{Bottom, Left}
	}
	if q, ok := d.Quad(); ok {
		return []QuadDirection{q}
	}
	return nil
}

// Combine joins a vertical and a horizontal direction into a diagonal.
// Two directions on the same axis yield the second one.
func Combine(a, b QuadDirection) OctoDirection {
	if a.Horizontal() == b.Horizontal() {
		return b.Octo()
	}
	v, h := a, b
	if a.Horizontal() {
		v, h = b, a
	}
	switch {
	case v == Top && h == Left:
		return OctoTopLeft
	case v == Top && h == Right:
		return OctoTopRight
	case v == Bottom && h == Right:
		return OctoBottomRight
	default:
		return OctoBottomLeft
	}
}

// Shared returns the direction two diagonals have in common: the diagonal
// itself when equal, the common cardinal when they share one, OctoNone for
// opposite corners or non-diagonal input.
func Shared(a, b OctoDirection) OctoDirection {
	if !a.IsDiagonal() || !b.IsDiagonal() {
		return OctoNone
	}
	if a == b {
		return a
	}
	for _, q := range QuadDirections {
		if a.Facing(q) && b.Facing(q) {
			return q.Octo()
		}
	}
	return OctoNone
}

func (d OctoDirection) String() string {
	switch d {
	case OctoNone:
		return "none"
	case OctoTopLeft:
		return "top-left"
	case OctoTopRight:
		return "top-right"
	case OctoBottomRight:
		return "bottom-right"
	case OctoBottomLeft:
		return "bottom-left"
	}
	if q, ok := d.Quad(); ok {
		return q.String()
	}
	return "invalid"
}

// QuadSet is a set of cardinal directions.
type QuadSet uint8

func NewQuadSet(dirs ...QuadDirection) QuadSet {
	var s QuadSet
	for _, d := range dirs {
		s = s.Add(d)
	}
	return s
}

func (s QuadSet) Add(d QuadDirection) QuadSet {
	return s | 1<<d
}

func (s QuadSet) Has(d QuadDirection) bool {
	return s&(1<<d) != 0
}

func (s QuadSet) Empty() bool {
	return s == 0
}

// Each calls fn for every member in Top, Right, Bottom, Left order.
func (s QuadSet) Each(fn func(QuadDirection)) {
	for _, d := range QuadDirections {
		if s.Has(d) {
			fn(d)
		}
	}
}

// ParseQuadSet parses a comma separated list such as "top,left".
// Unknown names are reported through ok=false; known names are still kept.
func ParseQuadSet(s string) (QuadSet, bool) {
	var set QuadSet
	ok := true
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "top", "up":
			set = set.Add(Top)
		case "right":
			set = set.Add(Right)
		case "bottom", "down":
			set = set.Add(Bottom)
		case "left":
			set = set.Add(Left)
		case "":
		default:
			ok = false
		}
	}
	return set, ok
}
