package systems

import (
	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepads []ebiten.GamepadID

// UpdateInput samples keyboard and gamepads into the Input singleton.
// Runs right after UpdateClock so every later system sees this frame's
// actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepads = ebiten.AppendGamepadIDs(gamepads[:0])

	var fromKeys, fromPad bool
	for id, b := range cfg.Input.Bindings {
		k := anyKeyHeld(b.Keys)
		p := anyButtonHeld(gamepads, b.Buttons)
		input.Current[id] = k || p
		fromKeys = fromKeys || k
		fromPad = fromPad || p
	}

	if tilt := stickTilt(gamepads, cfg.Input.StickDeadzone); tilt != 0 {
		if tilt < 0 {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
		fromPad = true
	}

	switch {
	case fromPad:
		input.LastDevice = components.DeviceGamepad
	case fromKeys:
		input.LastDevice = components.DeviceKeyboard
	}
}

func anyKeyHeld(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyButtonHeld(pads []ebiten.GamepadID, buttons []ebiten.StandardGamepadButton) bool {
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}

// stickTilt returns the sign of the first left stick pushed past the
// deadzone, or 0.
func stickTilt(pads []ebiten.GamepadID, deadzone float64) float64 {
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case h < -deadzone:
			return -1
		case h > deadzone:
			return 1
		}
	}
	return 0
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction reports an action's held state and its edges this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	now, before := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: !now && before,
	}
}
