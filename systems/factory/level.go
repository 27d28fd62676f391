package factory

import (
	"log"

	"github.com/automoto/sweepbox/archetypes"
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fallbackSpawn is used when a level has no PlayerSpawn object.
var fallbackSpawn = geom.Vec2{X: 32, Y: 32}

// CreateLevel builds the resolv space and every entity described by data,
// then places the player on spawn point 0.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Name: name, Data: data})

	width, height := data.MapWidth, data.MapHeight
	if width <= 0 || height <= 0 {
		width, height = cfg.Space.Width, cfg.Space.Height
	}
	CreateSpace(ecs, width, height, cfg.Space.CellSize, cfg.Space.CellSize)

	for _, r := range data.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, p := range data.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H, p.Directions)
	}
	for _, p := range data.MovingPlatforms {
		CreateMovingPlatform(ecs, p.X, p.Y, p.W, p.H, geom.Vec2{X: p.DX, Y: p.DY}, p.Duration)
	}
	for _, r := range data.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.W, r.H)
	}

	spawn := fallbackSpawn
	if sp, ok := data.Spawn(0); ok {
		// Spawn points mark the player's feet
		spawn = geom.Vec2{X: sp.X - cfg.Player.Width/2, Y: sp.Y - cfg.Player.Height}
	} else {
		log.Printf("Warning: level %q has no player spawn, using %v", name, fallbackSpawn)
	}
	CreatePlayer(ecs, spawn.X, spawn.Y)

	log.Printf("Loaded level %q: %d solids, %d platforms, %d moving, %d dead zones",
		name, len(data.Solids), len(data.Platforms), len(data.MovingPlatforms), len(data.DeadZones))

	return level
}
