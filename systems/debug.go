package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/fonts"
	"github.com/automoto/sweepbox/geom"
	"github.com/automoto/sweepbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws every collider as a filled box. It is the only world
// renderer the sandbox has.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	off := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	solidQuery.Each(ecs.World, func(e *donburi.Entry) {
		rect := components.SolidCollider.Get(e).Rect(components.RigidBody.Get(e))
		c := color.RGBA{90, 90, 110, 255}
		switch {
		case e.HasComponent(tags.Player):
			c = cfg.LightBlue
		case e.HasComponent(tags.MovingPlatform):
			c = cfg.Orange
		}
		fillRect(screen, rect.Translate(off), c)
	})

	shallowQuery.Each(ecs.World, func(e *donburi.Entry) {
		fillRect(screen, components.RigidBody.Get(e).Rect().Translate(off), color.RGBA{140, 120, 60, 255})
	})

	tags.DeadZone.Each(ecs.World, func(e *donburi.Entry) {
		fillRect(screen, components.RigidBody.Get(e).Rect().Translate(off), color.RGBA{80, 20, 40, 255})
	})
}

// DrawDebug outlines colliders, marks blocking sides of one-sided edges
// and the contact side of every colliding body, and prints the player's
// state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	off := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	// Draw all collision objects in the space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := cfg.White
			if obj.HasTags(tags.ResolvDeadZone) {
				c = cfg.Purple
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Green
			}
			strokeRect(screen, geom.NewRect(obj.X, obj.Y, obj.W, obj.H).Translate(off), c)
		}
	}

	shallowQuery.Each(ecs.World, func(e *donburi.Entry) {
		rect := components.RigidBody.Get(e).Rect().Translate(off)
		components.ShallowCollider.Get(e).Directions.Each(func(d geom.QuadDirection) {
			strokeSide(screen, rect, d, cfg.Yellow)
		})
	})

	solidQuery.Each(ecs.World, func(e *donburi.Entry) {
		collider := components.SolidCollider.Get(e)
		if collider.Colliding == geom.OctoNone {
			return
		}
		rect := collider.Rect(components.RigidBody.Get(e)).Translate(off)
		for _, d := range collider.Colliding.Components() {
			strokeSide(screen, rect, d, cfg.Red)
		}
	})

	drawPlayerState(ecs, screen, settings)
}

func drawPlayerState(ecs *ecs.ECS, screen *ebiten.Image, settings *components.SettingsData) {
	lines := []string{
		fmt.Sprintf("TPS %.0f  detector %s  dt %.4f", ebiten.ActualTPS(), settings.Detector, Delta(ecs)),
	}
	if e, ok := tags.Player.First(ecs.World); ok {
		body := components.RigidBody.Get(e)
		collider := components.SolidCollider.Get(e)
		lines = append(lines, fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f  colliding %s",
			body.Pos.X, body.Pos.Y, body.Vel.X, body.Vel.Y, collider.Colliding))
	}

	face := fonts.Mono.Get()
	lh := fonts.LineHeight(face)
	y := screen.Bounds().Dy() - lh*(len(lines)-1) - 4
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, cfg.White)
		y += lh
	}
}

func fillRect(screen *ebiten.Image, r geom.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.Pos.X), float32(r.Pos.Y), float32(r.Size.X), float32(r.Size.Y), c, false)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, c color.Color) {
	for _, d := range geom.QuadDirections {
		strokeSide(screen, r, d, c)
	}
}

func strokeSide(screen *ebiten.Image, r geom.Rect, d geom.QuadDirection, c color.Color) {
	a, b := r.SideCorners(d)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
}
