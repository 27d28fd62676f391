package components

import (
	cfg "github.com/automoto/sweepbox/config"
	"github.com/yohamta/donburi"
)

// Device is the kind of controller that produced the latest input.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceGamepad
)

// ActionState is one action seen across two frames.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData double-buffers the held state of every action. Edges are
// derived from the two buffers.
type InputData struct {
	Current    [cfg.ActionCount]bool
	Previous   [cfg.ActionCount]bool
	LastDevice Device
}

var Input = donburi.NewComponentType[InputData]()
