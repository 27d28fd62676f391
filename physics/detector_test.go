package physics

import (
	"fmt"
	"testing"

	"github.com/automoto/sweepbox/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 32x32 body at (100,100) falling at 500 units/s for 0.1s onto a floor
// whose top edge sits at y=140.
func fallingScenario() (geom.MovingRect, geom.Rect) {
	mover := geom.MovingRect{Rect: geom.NewRect(100, 100, 32, 32), Delta: geom.Vec2{X: 0, Y: 500 * 0.1}}
	floor := geom.NewRect(100, 140, 100, 20)
	return mover, floor
}

func TestSideSweepFallingScenario(t *testing.T) {
	mover, floor := fallingScenario()

	hit, ok := SideSweep{}.Solid(mover, floor)
	require.True(t, ok)
	assert.Equal(t, geom.Bottom, hit.Direction)
	assert.InDelta(t, 140.0, hit.Pos.Y, 1e-9)
	assert.InDelta(t, 0.16, hit.Factor, 1e-9)
}

func TestSideSweepDirections(t *testing.T) {
	obstacle := geom.NewRect(50, 50, 20, 20)

	tests := []struct {
		name  string
		mover geom.MovingRect
		want  geom.QuadDirection
	}{
		{"falling_onto_top", geom.MovingRect{Rect: geom.NewRect(55, 30, 10, 10), Delta: geom.Vec2{Y: 20}}, geom.Bottom},
		{"rising_into_bottom", geom.MovingRect{Rect: geom.NewRect(55, 80, 10, 10), Delta: geom.Vec2{Y: -20}}, geom.Top},
		{"moving_right_into_left", geom.MovingRect{Rect: geom.NewRect(30, 55, 10, 10), Delta: geom.Vec2{X: 20}}, geom.Right},
		{"moving_left_into_right", geom.MovingRect{Rect: geom.NewRect(80, 55, 10, 10), Delta: geom.Vec2{X: -20}}, geom.Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := SideSweep{}.Solid(tt.mover, obstacle)
			require.True(t, ok)
			assert.Equal(t, tt.want, hit.Direction)
			assert.InDelta(t, 0.5, hit.Factor, 1e-9)
		})
	}
}

func TestSideSweepEarliestSideWins(t *testing.T) {
	// Moving down-right into the left face of a block. The top corners
	// would also reach the block's bottom edge, but only after passing
	// through it.
	mover := geom.MovingRect{Rect: geom.NewRect(0, 0, 10, 10), Delta: geom.Vec2{X: 20, Y: 20}}
	block := geom.NewRect(12, 0, 10, 12)

	late, ok := sideHit(mover, block, geom.Top)
	require.True(t, ok)
	assert.InDelta(t, 0.6, late.Factor, 1e-9)

	hit, ok := SideSweep{}.Solid(mover, block)
	require.True(t, ok)
	assert.Equal(t, geom.Right, hit.Direction)
	assert.InDelta(t, 0.1, hit.Factor, 1e-9)
	assert.InDelta(t, 12.0, hit.Pos.X, 1e-9)
}

func TestSideSweepNarrowObstacle(t *testing.T) {
	// the pillar fits between the mover's bottom corners, so only the
	// reversed sweep of the pillar's corners can find it
	mover := geom.MovingRect{Rect: geom.NewRect(0, 0, 40, 10), Delta: geom.Vec2{Y: 30}}
	pillar := geom.NewRect(15, 20, 4, 50)

	hit, ok := SideSweep{}.Solid(mover, pillar)
	require.True(t, ok)
	assert.Equal(t, geom.Bottom, hit.Direction)
	assert.Equal(t, geom.Vec2{X: 15, Y: 20}, hit.Pos)
	assert.InDelta(t, 1.0/3, hit.Factor, 1e-9)
}

func TestSideSweepMisses(t *testing.T) {
	obstacle := geom.NewRect(50, 50, 20, 20)

	tests := []struct {
		name  string
		mover geom.MovingRect
	}{
		{"too_slow", geom.MovingRect{Rect: geom.NewRect(55, 30, 10, 10), Delta: geom.Vec2{Y: 5}}},
		{"moving_away", geom.MovingRect{Rect: geom.NewRect(55, 39.5, 10, 10), Delta: geom.Vec2{Y: -20}}},
		{"passing_beside", geom.MovingRect{Rect: geom.NewRect(71, 30, 10, 10), Delta: geom.Vec2{Y: 80}}},
		{"still", geom.MovingRect{Rect: geom.NewRect(55, 39, 10, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := SideSweep{}.Solid(tt.mover, obstacle)
			assert.False(t, ok)
		})
	}
}

func TestNoPenetrationAfterResolution(t *testing.T) {
	obstacle := geom.NewRect(30, 30, 20, 20)
	starts := []struct {
		pos  geom.Vec2
		sign float64
	}{
		{geom.Vec2{X: 0, Y: 0}, 1},
		{geom.Vec2{X: 70, Y: 70}, -1},
		{geom.Vec2{X: 70, Y: 0}, 0},
	}

	for _, detector := range []Detector{SideSweep{}} {
		for _, s := range starts {
			for vx := 0.0; vx <= 100; vx += 10 {
				for vy := 0.0; vy <= 100; vy += 10 {
					vel := geom.Vec2{X: vx * s.sign, Y: vy}
					if s.sign < 0 {
						vel.Y = -vy
					} else if s.sign == 0 {
						vel.X = -vx
					}
					name := fmt.Sprintf("%v_%v", s.pos, vel)
					b := NewBody(s.pos, geom.Vec2{X: 10, Y: 10})
					b.Vel = vel

					mover := geom.MovingRect{Rect: b.Rect(), Delta: b.Vel}
					var contacts Contacts
					if hit, ok := detector.Solid(mover, obstacle); ok {
						contacts.Add(hit)
					}
					Resolve(&b, geom.Vec2{}, b.Size, NewDefaultResolver(1), contacts)
					b.Pos = Integrate(b.Pos, b.Vel, 1)

					assert.False(t, b.Rect().Overlaps(obstacle), name)
				}
			}
		}
	}
}

func TestNearestCornerFallingScenario(t *testing.T) {
	mover, floor := fallingScenario()

	hit, ok := NearestCorner{}.Solid(mover, floor)
	require.True(t, ok)
	assert.Equal(t, geom.Bottom, hit.Direction)
	assert.Equal(t, geom.Vec2{X: 132, Y: 140}, hit.Pos)
	assert.InDelta(t, 0.16, hit.Factor, 1e-9)
}

func TestNearestCornerSideApproach(t *testing.T) {
	wall := geom.NewRect(100, 0, 20, 200)
	mover := geom.MovingRect{Rect: geom.NewRect(60, 80, 20, 20), Delta: geom.Vec2{X: 40}}

	hit, ok := NearestCorner{}.Solid(mover, wall)
	require.True(t, ok)
	assert.Equal(t, geom.Right, hit.Direction)
	assert.InDelta(t, 100.0, hit.Pos.X, 1e-9)
	assert.InDelta(t, 0.5, hit.Factor, 1e-9)
}

func TestNearestCornerOppositeCornersReportNothing(t *testing.T) {
	// a plank crossing a pillar with the same centre: every corner is
	// equally near, both pick top-left and the diagonals share nothing
	mover := geom.MovingRect{Rect: geom.NewRect(0, 0, 100, 10), Delta: geom.Vec2{X: 5, Y: 5}}
	pillar := geom.NewRect(45, -45, 10, 100)

	_, ok := NearestCorner{}.Solid(mover, pillar)
	assert.False(t, ok)
}

func TestNearestCornerTriesBothEdges(t *testing.T) {
	// Centres level with each other: the mover picks its top-left corner
	// and the pillar its top-right one, so they only share Right. The
	// corner starts inside the pillar and leaves through the top edge.
	mover := geom.MovingRect{Rect: geom.NewRect(30, 40, 20, 20), Delta: geom.Vec2{Y: -80}}
	pillar := geom.NewRect(0, 0, 40, 100)
	require.Equal(t, geom.OctoRight, geom.Shared(geom.OctoTopLeft.Reverse(), geom.OctoTopRight))

	hit, ok := NearestCorner{}.Solid(mover, pillar)
	require.True(t, ok)
	assert.Equal(t, geom.Bottom, hit.Direction)
	assert.Equal(t, geom.Vec2{X: 30, Y: 0}, hit.Pos)
	assert.InDelta(t, 0.5, hit.Factor, 1e-9)
}

func TestDetectorByName(t *testing.T) {
	d, err := DetectorByName("")
	require.NoError(t, err)
	assert.IsType(t, SideSweep{}, d)

	d, err = DetectorByName("corner")
	require.NoError(t, err)
	assert.IsType(t, NearestCorner{}, d)

	_, err = DetectorByName("quadtree")
	assert.Error(t, err)
}
