package systems

import (
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state and arms single frame steps.
// This system should run AFTER UpdateInput but BEFORE the simulation.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	pause.Step = false
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if pause.IsPaused && GetAction(input, cfg.ActionStep).JustPressed {
		pause.Step = true
	}
}

// DrawPause draws the pause banner and the key hints under it.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	w := screen.Bounds().Dx()

	banner := fonts.MonoBanner.Get()
	hintFont := fonts.MonoSmall.Get()
	bannerH := fonts.LineHeight(banner)
	hintH := fonts.LineHeight(hintFont)

	vector.FillRect(screen, 0, 0, float32(w), float32(bannerH+hintH+6), cfg.Background, false)

	title := "PAUSED"
	text.Draw(screen, title, banner, (w-fonts.Width(banner, title))/2, bannerH, cfg.White)

	hint := pauseHint(getOrCreateInput(ecs).LastDevice)
	text.Draw(screen, hint, hintFont, (w-fonts.Width(hintFont, hint))/2, bannerH+hintH+2, cfg.Yellow)
}

// pauseHint names the step and resume controls for the last used device.
func pauseHint(device components.Device) string {
	if device == components.DeviceGamepad {
		return "B: step   Home: resume"
	}
	return "[.] step   [P] resume"
}

// WithPauseCheck wraps a system to skip execution when paused, unless a
// single step was requested this frame.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.Step {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
