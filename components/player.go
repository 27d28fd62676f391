package components

import "github.com/yohamta/donburi"

// ControllerData is the input-driven state of the sandbox player.
type ControllerData struct {
	GroundedFrames int // frames left in which a jump is allowed
	Direction      float64
}

var Controller = donburi.NewComponentType[ControllerData]()
