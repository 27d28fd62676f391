package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/sweepbox/geom"
	"github.com/lafriks/go-tiled"
)

// Object group and tile layer names read from a TMX file.
const (
	GroupSolids          = "Solids"
	GroupPlatforms       = "Platforms"
	GroupMovingPlatforms = "MovingPlatforms"
	GroupDeadZones       = "DeadZones"
	GroupPlayerSpawn     = "PlayerSpawn"
	LayerSolidTiles      = "wg-tiles"
)

// DefaultPlatformDirections is used when a platform has no "directions" property.
const DefaultPlatformDirections = "top"

// DefaultMoveDuration is the leg duration, in seconds, of a moving platform
// without a "duration" property.
const DefaultMoveDuration = 2.0

var (
	ErrBadDirections = errors.New("bad platform directions")
	ErrBadDuration   = errors.New("bad moving platform duration")
	ErrNoLevels      = errors.New("no levels found")
)

// LoadCollisionData parses a TMX file and returns its collision data. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	parseSolidTiles(levelMap, data)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				data.Solids = append(data.Solids, objectRect(o))
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				raw := o.Properties.GetString("directions")
				if raw == "" {
					raw = DefaultPlatformDirections
				}
				dirs, ok := geom.ParseQuadSet(raw)
				if !ok {
					return nil, fmt.Errorf("%s: object %d: %w %q", tmxPath, o.ID, ErrBadDirections, raw)
				}
				data.Platforms = append(data.Platforms, Platform{Rect: objectRect(o), Directions: dirs})
			}
		case GroupMovingPlatforms:
			for _, o := range og.Objects {
				duration := o.Properties.GetFloat("duration")
				if duration == 0 {
					duration = DefaultMoveDuration
				}
				if duration < 0 {
					return nil, fmt.Errorf("%s: object %d: %w %v", tmxPath, o.ID, ErrBadDuration, duration)
				}
				data.MovingPlatforms = append(data.MovingPlatforms, MovingPlatform{
					Rect:     objectRect(o),
					DX:       o.Properties.GetFloat("dx"),
					DY:       o.Properties.GetFloat("dy"),
					Duration: duration,
				})
			}
		case GroupDeadZones:
			for _, o := range og.Objects {
				data.DeadZones = append(data.DeadZones, objectRect(o))
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// parseSolidTiles adds one solid per non-empty tile of the solid tile layer.
func parseSolidTiles(levelMap *tiled.Map, data *CollisionData) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolidTiles {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Solids = append(data.Solids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		return
	}
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Spawn returns the spawn point with the given index, falling back to the
// leftmost one. ok is false when the level has no spawn points.
func (d *CollisionData) Spawn(index int) (SpawnPoint, bool) {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	for _, sp := range d.SpawnPoints {
		if sp.Index == index {
			return sp, true
		}
	}
	return d.SpawnPoints[0], true
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
