package systems

import (
	"testing"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseAndStep(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	wrapped := WithPauseCheck(func(*ecs.ECS) { calls++ })

	frame := func(actions ...cfg.ActionID) {
		press(e, actions...)
		UpdatePause(e)
		wrapped(e)
	}

	frame()
	assert.Equal(t, 1, calls)

	frame(cfg.ActionPause)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, 1, calls)

	frame()
	assert.Equal(t, 1, calls)

	frame(cfg.ActionStep)
	assert.Equal(t, 2, calls, "step lets one frame through")

	frame(cfg.ActionStep)
	assert.Equal(t, 2, calls, "holding step does not repeat")

	frame(cfg.ActionPause)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, 3, calls)
}

func TestStepIgnoredWhileRunning(t *testing.T) {
	e := newTestECS(t)
	press(e, cfg.ActionStep)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).Step)
}

func TestPauseHintFollowsDevice(t *testing.T) {
	assert.Contains(t, pauseHint(components.DeviceKeyboard), "[P]")
	assert.Contains(t, pauseHint(components.DeviceGamepad), "Home")
}
