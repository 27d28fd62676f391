package components

import (
	"github.com/automoto/sweepbox/physics"
	"github.com/yohamta/donburi"
)

// RigidBody holds position, velocity and size of every simulated entity.
var RigidBody = donburi.NewComponentType[physics.Body]()
