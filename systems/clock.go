package systems

import (
	"time"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. Must run first.
//
// With a fixed timestep configured every frame is exactly that long.
// Otherwise the delta is the wall-clock time since the previous frame,
// capped at MaxDelta so a stall does not launch bodies through walls.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	now := time.Now
	if clock.Now != nil {
		now = clock.Now
	}
	t := now()
	clock.Frame++

	switch {
	case cfg.Physics.FixedTimestep > 0:
		clock.Delta = cfg.Physics.FixedTimestep
	case clock.Last.IsZero():
		clock.Delta = 0
	default:
		clock.Delta = clampDelta(t.Sub(clock.Last).Seconds(), cfg.Physics.MaxDelta)
	}
	clock.Last = t
}

func clampDelta(dt, limit float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{})
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

// Delta returns the current frame step in seconds.
func Delta(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).Delta
}
