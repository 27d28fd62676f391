package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Wall           = donburi.NewTag().SetName("Wall")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	DeadZone       = donburi.NewTag().SetName("DeadZone")
	Level          = donburi.NewTag().SetName("Level")
)

// Resolv tags for overlap queries
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "player"
	ResolvDeadZone = "deadzone"
)
