package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, so Bottom has the larger Y.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

func (r Rect) TopLeft() Vec2 {
	return r.Pos
}

func (r Rect) TopRight() Vec2 {
	return Vec2{X: r.Pos.X + r.Size.X, Y: r.Pos.Y}
}

func (r Rect) BottomRight() Vec2 {
	return r.Pos.Add(r.Size)
}

func (r Rect) BottomLeft() Vec2 {
	return Vec2{X: r.Pos.X, Y: r.Pos.Y + r.Size.Y}
}

func (r Rect) Center() Vec2 {
	return r.Pos.Add(r.Size.Scale(0.5))
}

// Radius is the radius of the rectangle's bounding circle.
func (r Rect) Radius() float64 {
	return r.Size.Len() / 2
}

// SideCorners returns the two endpoints of a side in clockwise order:
// Top TL→TR, Right TR→BR, Bottom BR→BL, Left BL→TL.
func (r Rect) SideCorners(dir QuadDirection) (Vec2, Vec2) {
	switch dir {
	case Top:
		return r.TopLeft(), r.TopRight()
	case Right:
		return r.TopRight(), r.BottomRight()
	case Bottom:
		return r.BottomRight(), r.BottomLeft()
	default:
		return r.BottomLeft(), r.TopLeft()
	}
}

// Side returns a side as a segment.
func (r Rect) Side(dir QuadDirection) Segment {
	p0, p1 := r.SideCorners(dir)
	return Segment{P0: p0, P1: p1}
}

// Corner returns the corner named by a diagonal direction. Cardinal and
// None directions fall back to the top-left corner.
func (r Rect) Corner(dir OctoDirection) Vec2 {
	switch dir {
	case OctoTopRight:
		return r.TopRight()
	case OctoBottomRight:
		return r.BottomRight()
	case OctoBottomLeft:
		return r.BottomLeft()
	default:
		return r.TopLeft()
	}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}

// Overlaps reports whether the interiors of both rectangles intersect.
// Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Pos.X < o.Pos.X+o.Size.X && o.Pos.X < r.Pos.X+r.Size.X &&
		r.Pos.Y < o.Pos.Y+o.Size.Y && o.Pos.Y < r.Pos.Y+r.Size.Y
}
