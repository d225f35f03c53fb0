package env_test

import (
	"math"
	"testing"

	"git.fiblab.net/sim/drivesim/env"
	"git.fiblab.net/sim/drivesim/utils/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T, mutate func(*config.Config)) *env.Env {
	c := config.Config{}
	if mutate != nil {
		mutate(&c)
	}
	rc := config.NewRuntimeConfig(c)
	return env.New(rc)
}

func TestResetObservation(t *testing.T) {
	e := newEnv(t, nil)
	obs := e.Reset(1)

	// 射线数+速度
	require.Len(t, obs, 9+1)
	for _, o := range obs {
		assert.GreaterOrEqual(t, o, 0.0)
		assert.LessOrEqual(t, o, 1.0)
	}
	// 初速度为零
	assert.Equal(t, 0.0, obs[len(obs)-1])
	// 出生点在道路内
	assert.True(t, e.Track().IsVehicleOnRoad(e.Vehicle()))
}

func TestStepIdle(t *testing.T) {
	e := newEnv(t, nil)
	e.Reset(1)

	result := e.Step(0, 0)
	assert.InDelta(t, 0.01, result.Reward, 1e-9)
	assert.True(t, result.OnRoad)
	assert.False(t, result.Finish)
	assert.False(t, result.Terminated)
	assert.False(t, result.Truncated)
	assert.Empty(t, result.Event)
}

func TestDeterminism(t *testing.T) {
	e1 := newEnv(t, nil)
	e2 := newEnv(t, nil)

	obs1 := e1.Reset(123)
	obs2 := e2.Reset(123)
	assert.Equal(t, obs1, obs2)

	// 相同动作序列下逐位复现
	for i := 0; i < 100; i++ {
		r1 := e1.Step(1, 0.3)
		r2 := e2.Step(1, 0.3)
		assert.Equal(t, r1, r2)
		if r1.Terminated || r1.Truncated {
			break
		}
	}
	assert.Equal(t, e1.Vehicle().X(), e2.Vehicle().X())
	assert.Equal(t, e1.Vehicle().Y(), e2.Vehicle().Y())
	assert.Equal(t, e1.Vehicle().Angle(), e2.Vehicle().Angle())
}

func TestTruncation(t *testing.T) {
	e := newEnv(t, func(c *config.Config) {
		c.Control.Step.Total = 5
	})
	e.Reset(1)

	for i := 0; i < 4; i++ {
		result := e.Step(0, 0)
		require.False(t, result.Truncated)
	}
	result := e.Step(0, 0)
	assert.True(t, result.Truncated)
	assert.False(t, result.Terminated)
	assert.Equal(t, env.EventTimeout, result.Event)
}

func TestOffTrackTermination(t *testing.T) {
	e := newEnv(t, nil)
	e.Reset(1)

	// 把车辆挪到窗口边距之外，远离道路
	e.Vehicle().Reset(400, 0, 0)
	result := e.Step(0, 0)
	assert.False(t, result.OnRoad)
	assert.True(t, result.Terminated)
	assert.Equal(t, env.EventOffTrack, result.Event)
	assert.Less(t, result.Reward, -19.0)
}

func TestFinishTermination(t *testing.T) {
	e := newEnv(t, nil)
	e.Reset(1)

	// 把车辆放到中心线末端附近，沿末段方向满油门驶向终点线
	line := e.Track().CenterLine()
	last := line[len(line)-1]
	prev := line[len(line)-2]
	angle := math.Atan2(last.Y-prev.Y, last.X-prev.X)
	e.Vehicle().Reset(last.X-45, last.Y, angle)

	finished := false
	for i := 0; i < 300; i++ {
		result := e.Step(1, 0)
		if result.Finish {
			assert.True(t, result.Terminated)
			assert.Equal(t, env.EventFinish, result.Event)
			assert.Greater(t, result.Reward, 99.0)
			finished = true
			break
		}
		require.True(t, result.OnRoad)
	}
	assert.True(t, finished)
}
