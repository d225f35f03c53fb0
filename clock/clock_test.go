package clock_test

import (
	"testing"

	"git.fiblab.net/sim/drivesim/clock"
	"git.fiblab.net/sim/drivesim/utils/config"
	"github.com/stretchr/testify/assert"
)

func TestClockTick(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 3, Interval: 1.0 / 60.0})
	assert.Equal(t, int32(0), c.InternalStep)
	assert.Equal(t, 0.0, c.T)
	assert.False(t, c.Done())

	c.Tick()
	assert.Equal(t, int32(1), c.InternalStep)
	assert.InDelta(t, 1.0/60.0, c.T, 1e-12)
	assert.Equal(t, int32(1), c.Steps())

	c.Tick()
	c.Tick()
	assert.True(t, c.Done())

	// Init重置到起始步
	c.Init()
	assert.Equal(t, int32(0), c.InternalStep)
	assert.False(t, c.Done())
}

func TestClockString(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 10, Interval: 1})
	assert.Equal(t, "00:00:00", c.String())
	for i := 0; i < 3; i++ {
		c.Tick()
	}
	assert.Equal(t, "00:00:03", c.String())
}
