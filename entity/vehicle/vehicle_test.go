package vehicle_test

import (
	"math"
	"testing"

	"git.fiblab.net/sim/drivesim/entity/vehicle"
	"git.fiblab.net/sim/drivesim/utils/config"
	"github.com/stretchr/testify/assert"
)

const dt = 1.0 / 60.0

func defaultAttr() config.VehicleAttr {
	return config.VehicleAttr{
		MaxSpeed:           200,
		MaxAccel:           150,
		Drag:               1.8,
		SteeringRate:       3,
		SteeringReturnRate: 6,
		Length:             80,
		Width:              40,
	}
}

func TestStepAtRestIsNoOp(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.Reset(10, 20, 0.5)

	for i := 0; i < 100; i++ {
		v.Step(dt)
	}
	assert.Equal(t, 10.0, v.X())
	assert.Equal(t, 20.0, v.Y())
	assert.Equal(t, 0.5, v.Angle())
	assert.Equal(t, 0.0, v.V())
}

func TestDragMonotonicity(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.Reset(0, 0, 0)

	// 先加速获得初速度
	v.SetControls(1, 0)
	for i := 0; i < 60; i++ {
		v.Step(dt)
	}
	assert.Greater(t, v.V(), 1.0)

	// 松开油门后速度严格单调衰减，直到降到1e-3以下
	v.SetControls(0, 0)
	prev := v.V()
	steps := 0
	for math.Abs(v.V()) > 1e-3 {
		v.Step(dt)
		assert.Less(t, math.Abs(v.V()), math.Abs(prev))
		prev = v.V()
		steps++
		if steps > 100000 {
			t.Fatal("drag did not converge")
		}
	}
}

func TestVelocityClamp(t *testing.T) {
	attr := defaultAttr()
	attr.Drag = 0 // 关闭阻力以便触达速度上限
	v := vehicle.New(attr)
	v.Reset(0, 0, 0)

	v.SetControls(1, 0)
	for i := 0; i < 1000; i++ {
		v.Step(dt)
	}
	assert.Equal(t, attr.MaxSpeed, v.V())

	// 倒车上限为前进上限的一半
	v.SetControls(-1, 0)
	for i := 0; i < 2000; i++ {
		v.Step(dt)
	}
	assert.Equal(t, -attr.MaxSpeed/2, v.V())
}

func TestSteeringNeedsSpeed(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.Reset(0, 0, 0)

	// 静止时满舵不产生转向
	v.SetControls(0, 1)
	for i := 0; i < 10; i++ {
		v.Step(dt)
	}
	assert.Equal(t, 0.0, v.Angle())

	// 有速度后转向生效，且权重随速度比例缩放
	v.SetControls(1, 1)
	for i := 0; i < 60; i++ {
		v.Step(dt)
	}
	assert.Greater(t, v.Angle(), 0.0)
}

func TestSetControlsClamps(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.SetControls(2, -3)
	assert.Equal(t, 1.0, v.Throttle())
	assert.Equal(t, -1.0, v.Steering())
}

func TestRelaxSteering(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.SetControls(0, 1)

	// 回中速率6/s，0.1s回退0.6，两步到零且不过冲
	v.RelaxSteering(0.1)
	assert.InDelta(t, 0.4, v.Steering(), 1e-12)
	v.RelaxSteering(0.1)
	assert.Equal(t, 0.0, v.Steering())
	v.RelaxSteering(0.1)
	assert.Equal(t, 0.0, v.Steering())
}

func TestFrontPoint(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.Reset(100, 50, 0)
	front := v.FrontPoint()
	assert.InDelta(t, 140, front.X, 1e-9)
	assert.InDelta(t, 50, front.Y, 1e-9)

	v.Reset(0, 0, math.Pi/2)
	front = v.FrontPoint()
	assert.InDelta(t, 0, front.X, 1e-9)
	assert.InDelta(t, 40, front.Y, 1e-9)
}

func TestBoundingBoxVertices(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.Reset(0, 0, 0)
	vertices := v.BoundingBoxVertices()

	xs := make([]float64, 0, 4)
	ys := make([]float64, 0, 4)
	for _, p := range vertices {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	assert.InDelta(t, 40, maxOf(xs), 1e-9)
	assert.InDelta(t, -40, minOf(xs), 1e-9)
	assert.InDelta(t, 20, maxOf(ys), 1e-9)
	assert.InDelta(t, -20, minOf(ys), 1e-9)

	// 旋转90度后长宽互换
	v.Reset(0, 0, math.Pi/2)
	vertices = v.BoundingBoxVertices()
	xs = xs[:0]
	ys = ys[:0]
	for _, p := range vertices {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	assert.InDelta(t, 20, maxOf(xs), 1e-9)
	assert.InDelta(t, 40, maxOf(ys), 1e-9)
}

func TestResetClearsStateKeepsAttr(t *testing.T) {
	v := vehicle.New(defaultAttr())
	v.SetControls(1, 1)
	for i := 0; i < 30; i++ {
		v.Step(dt)
	}
	v.Reset(1, 2, 3)
	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 2.0, v.Y())
	assert.Equal(t, 3.0, v.Angle())
	assert.Equal(t, 0.0, v.V())
	assert.Equal(t, 0.0, v.Throttle())
	assert.Equal(t, 0.0, v.Steering())
	assert.Equal(t, defaultAttr(), v.Attr())
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Max(m, v)
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Min(m, v)
	}
	return m
}
