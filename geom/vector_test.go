package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	assert.Equal(t, Vec2{X: 2, Y: 6}, a.Add(b))
	assert.Equal(t, Vec2{X: 4, Y: 2}, a.Sub(b))
	assert.Equal(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, Vec2{X: -3, Y: -4}, a.Reverse())
	assert.InDelta(t, 5.0, a.Len(), 1e-9)
	assert.InDelta(t, 5.0, a.Dot(b), 1e-9)
	assert.Equal(t, 3.0, a.Min())
	assert.Equal(t, 4.0, a.Max())
}

func TestVec2IsZero(t *testing.T) {
	assert.True(t, Vec2{}.IsZero())
	assert.True(t, Vec2{X: 0.0005, Y: -0.0005}.IsZero())
	assert.False(t, Vec2{X: 0.002}.IsZero())
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, Vec2{X: 10, Y: 20}, r.TopLeft())
	assert.Equal(t, Vec2{X: 40, Y: 20}, r.TopRight())
	assert.Equal(t, Vec2{X: 40, Y: 60}, r.BottomRight())
	assert.Equal(t, Vec2{X: 10, Y: 60}, r.BottomLeft())
	assert.Equal(t, Vec2{X: 25, Y: 40}, r.Center())
	assert.InDelta(t, 25.0, r.Radius(), 1e-9)
}

func TestRectSideCornersWinding(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		dir    QuadDirection
		p0, p1 Vec2
	}{
		{Top, Vec2{0, 0}, Vec2{10, 0}},
		{Right, Vec2{10, 0}, Vec2{10, 10}},
		{Bottom, Vec2{10, 10}, Vec2{0, 10}},
		{Left, Vec2{0, 10}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			p0, p1 := r.SideCorners(tt.dir)
			assert.Equal(t, tt.p0, p0)
			assert.Equal(t, tt.p1, p1)
			// each side starts where the previous one ended
			_, prevEnd := r.SideCorners(QuadDirections[(int(tt.dir)+3)%4])
			assert.Equal(t, prevEnd, p0)
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.True(t, a.Overlaps(NewRect(5, 5, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(10, 0, 10, 10)), "touching edges do not overlap")
	assert.False(t, a.Overlaps(NewRect(0, 11, 10, 10)))
	assert.True(t, a.Overlaps(a.Translate(Vec2{X: 9.5})))
}
