package components

import (
	"github.com/automoto/sweepbox/geom"
	"github.com/yohamta/donburi"
)

// CameraData is the centre of the view in world coordinates.
type CameraData struct {
	Position geom.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
