package physics

import (
	"testing"

	"github.com/automoto/sweepbox/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShallowTopOnlyBlocksFalling(t *testing.T) {
	platform := geom.NewRect(0, 100, 100, 4)
	top := geom.NewQuadSet(geom.Top)

	tests := []struct {
		name    string
		mover   geom.MovingRect
		blocked bool
	}{
		{"falling_from_above", geom.MovingRect{Rect: geom.NewRect(10, 80, 10, 10), Delta: geom.Vec2{Y: 20}}, true},
		{"rising_from_below", geom.MovingRect{Rect: geom.NewRect(10, 110, 10, 10), Delta: geom.Vec2{Y: -20}}, false},
		{"rising_while_inside", geom.MovingRect{Rect: geom.NewRect(10, 96, 10, 10), Delta: geom.Vec2{Y: -20}}, false},
		{"falling_while_inside", geom.MovingRect{Rect: geom.NewRect(10, 95, 10, 10), Delta: geom.Vec2{Y: 20}}, false},
		{"sideways_past", geom.MovingRect{Rect: geom.NewRect(-20, 95, 10, 10), Delta: geom.Vec2{X: 40}}, false},
		{"sideways_under", geom.MovingRect{Rect: geom.NewRect(-20, 105, 10, 10), Delta: geom.Vec2{X: 140}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := ShallowIntersections(tt.mover, platform, top)
			if !tt.blocked {
				assert.Empty(t, hits)
				return
			}
			require.Len(t, hits, 1)
			assert.Equal(t, geom.Bottom, hits[0].Direction)
			assert.InDelta(t, 100.0, hits[0].Pos.Y, 1e-9)
			assert.InDelta(t, 0.5, hits[0].Factor, 1e-9)
		})
	}
}

func TestShallowSideEdges(t *testing.T) {
	edge := geom.NewRect(50, 0, 2, 100)

	// a Left edge only stops bodies moving right into it
	left := geom.NewQuadSet(geom.Left)
	hits := ShallowIntersections(geom.MovingRect{Rect: geom.NewRect(30, 10, 10, 10), Delta: geom.Vec2{X: 20}}, edge, left)
	require.Len(t, hits, 1)
	assert.Equal(t, geom.Right, hits[0].Direction)
	assert.Empty(t, ShallowIntersections(geom.MovingRect{Rect: geom.NewRect(60, 10, 10, 10), Delta: geom.Vec2{X: -20}}, edge, left))

	right := geom.NewQuadSet(geom.Right)
	hits = ShallowIntersections(geom.MovingRect{Rect: geom.NewRect(60, 10, 10, 10), Delta: geom.Vec2{X: -20}}, edge, right)
	require.Len(t, hits, 1)
	assert.Equal(t, geom.Left, hits[0].Direction)
}

func TestShallowNarrowPlatform(t *testing.T) {
	// narrower than the body: found through the platform's own corners
	platform := geom.NewRect(14, 30, 4, 2)
	hits := ShallowIntersections(geom.MovingRect{Rect: geom.NewRect(0, 0, 32, 20), Delta: geom.Vec2{Y: 20}}, platform, geom.NewQuadSet(geom.Top))
	require.Len(t, hits, 1)
	assert.Equal(t, geom.Bottom, hits[0].Direction)
	assert.InDelta(t, 30.0, hits[0].Pos.Y, 1e-9)
}
