package components

import (
	"github.com/automoto/sweepbox/geom"
	"github.com/yohamta/donburi"
)

// SpawnData is where a body returns after touching a dead zone.
type SpawnData struct {
	Pos geom.Vec2
}

var Spawn = donburi.NewComponentType[SpawnData]()

// Despawn marks an entry for removal at the end of the frame.
var Despawn = donburi.NewTag().SetName("Despawn")
