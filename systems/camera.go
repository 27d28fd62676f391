package systems

import (
	"math"

	"github.com/automoto/sweepbox/components"
	"github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the view
// inside the level.
func UpdateCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.RigidBody.Get(playerEntry).Rect().Center()

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry); level.Data != nil {
			target = clampToLevel(target, float64(level.Data.MapWidth), float64(level.Data.MapHeight))
		}
	}

	camera.Position = camera.Position.Add(target.Sub(camera.Position).Scale(config.Camera.FollowSmoothing))
}

// clampToLevel keeps a camera centre where the screen stays inside the
// level. Levels smaller than the screen are centred.
func clampToLevel(target geom.Vec2, levelW, levelH float64) geom.Vec2 {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2
	return geom.Vec2{
		X: clampAxis(target.X, halfW, levelW-halfW),
		Y: clampAxis(target.Y, halfH, levelH-halfH),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// GetOrCreateCamera returns the singleton Camera component, centred on
// the screen when first created.
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	if _, ok := components.Camera.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Camera))
		components.Camera.SetValue(ent, components.CameraData{
			Position: geom.Vec2{X: float64(config.C.Width) / 2, Y: float64(config.C.Height) / 2},
		})
	}

	ent, _ := components.Camera.First(e.World)
	return components.Camera.Get(ent)
}

// cameraOffset translates world coordinates to screen coordinates.
func cameraOffset(e *ecs.ECS, screenW, screenH int) geom.Vec2 {
	camera := GetOrCreateCamera(e)
	return geom.Vec2{
		X: float64(screenW)/2 - camera.Position.X,
		Y: float64(screenH)/2 - camera.Position.Y,
	}
}
