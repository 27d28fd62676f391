package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock singleton. Delta is the step, in seconds,
// every system uses for the current frame.
type ClockData struct {
	Delta float64
	Frame uint64
	Last  time.Time
	Now   func() time.Time // nil uses time.Now
}

var Clock = donburi.NewComponentType[ClockData]()
