package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID names something the sandbox player can ask for.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionToggleDetector
	ActionReset
	ActionPause
	ActionStep
	ActionCount // array size, keep last
)

// Binding maps an action to keyboard keys and standard-layout gamepad
// buttons. Any one of them held means the action is held.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings map[ActionID]Binding
	// StickDeadzone ignores left-stick tilt below this magnitude (0..1).
	StickDeadzone float64
}

var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		StickDeadzone: 0.25,
		Bindings: map[ActionID]Binding{
			ActionMoveLeft:       {keys(ebiten.KeyLeft, ebiten.KeyA), buttons(ebiten.StandardGamepadButtonLeftLeft)},
			ActionMoveRight:      {keys(ebiten.KeyRight, ebiten.KeyD), buttons(ebiten.StandardGamepadButtonLeftRight)},
			ActionJump:           {keys(ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW), buttons(ebiten.StandardGamepadButtonRightBottom)},
			ActionToggleDebug:    {keys(ebiten.KeyF1), buttons(ebiten.StandardGamepadButtonCenterLeft)},
			ActionToggleDetector: {keys(ebiten.KeyF2), nil},
			ActionReset:          {keys(ebiten.KeyR), buttons(ebiten.StandardGamepadButtonCenterRight)},
			ActionPause:          {keys(ebiten.KeyP, ebiten.KeyEscape), buttons(ebiten.StandardGamepadButtonCenterCenter)},
			ActionStep:           {keys(ebiten.KeyPeriod), buttons(ebiten.StandardGamepadButtonRightRight)},
		},
	}
}
