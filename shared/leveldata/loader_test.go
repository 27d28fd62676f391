package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/sweepbox/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "sandbox.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, data.MapWidth)
	assert.Equal(t, 368, data.MapHeight)

	require.Len(t, data.Solids, 3)
	assert.Equal(t, Rect{X: 0, Y: 320, W: 256, H: 48}, data.Solids[0])

	t.Run("platform directions", func(t *testing.T) {
		require.Len(t, data.Platforms, 2)
		assert.Equal(t, geom.NewQuadSet(geom.Top), data.Platforms[0].Directions, "missing property defaults to top")
		assert.Equal(t, geom.NewQuadSet(geom.Top, geom.Left), data.Platforms[1].Directions)
	})

	t.Run("moving platforms", func(t *testing.T) {
		require.Len(t, data.MovingPlatforms, 2)
		assert.Equal(t, 96.0, data.MovingPlatforms[0].DX)
		assert.Equal(t, 1.5, data.MovingPlatforms[0].Duration)
		assert.Equal(t, 64.0, data.MovingPlatforms[1].DY)
		assert.Equal(t, DefaultMoveDuration, data.MovingPlatforms[1].Duration)
	})

	t.Run("dead zones", func(t *testing.T) {
		require.Len(t, data.DeadZones, 1)
		assert.Equal(t, Rect{X: 256, Y: 352, W: 64, H: 16}, data.DeadZones[0])
	})

	t.Run("spawns sorted left to right", func(t *testing.T) {
		require.Len(t, data.SpawnPoints, 2)
		assert.Equal(t, 48.0, data.SpawnPoints[0].X)
		assert.Equal(t, 0, data.SpawnPoints[0].Index)
		assert.Equal(t, 1, data.SpawnPoints[1].Index)
	})
}

func TestSpawn(t *testing.T) {
	data := &CollisionData{SpawnPoints: []SpawnPoint{{X: 10, Index: 0}, {X: 20, Index: 3}}}

	sp, ok := data.Spawn(3)
	require.True(t, ok)
	assert.Equal(t, 20.0, sp.X)

	sp, ok = data.Spawn(7)
	require.True(t, ok)
	assert.Equal(t, 10.0, sp.X, "unknown index falls back to the first spawn")

	_, ok = (&CollisionData{}).Spawn(0)
	assert.False(t, ok)
}

const badDirectionsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="0" width="16" height="4">
   <properties>
    <property name="directions" value="sideways"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const badDurationTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="MovingPlatforms">
  <object id="1" x="0" y="0" width="16" height="4">
   <properties>
    <property name="duration" type="float" value="-1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadCollisionDataErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/bad_directions.tmx": {Data: []byte(badDirectionsTMX)},
		"levels/bad_duration.tmx":   {Data: []byte(badDurationTMX)},
	}

	_, err := LoadCollisionData(fsys, "levels/bad_directions.tmx")
	assert.ErrorIs(t, err, ErrBadDirections)

	_, err = LoadCollisionData(fsys, "levels/bad_duration.tmx")
	assert.ErrorIs(t, err, ErrBadDuration)

	_, err = LoadCollisionData(fsys, "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"sandbox"}, names)
	assert.Contains(t, levels, "sandbox")

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.ErrorIs(t, err, ErrNoLevels)
}
