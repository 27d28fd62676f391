package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation. Step lets one frame through while
// paused.
type PauseData struct {
	IsPaused bool
	Step     bool
}

var Pause = donburi.NewComponentType[PauseData]()
