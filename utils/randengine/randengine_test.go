package randengine_test

import (
	"testing"

	"git.fiblab.net/sim/drivesim/utils/randengine"
	"github.com/stretchr/testify/assert"
)

func TestUniformRange(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 1000; i++ {
		v := e.UniformRange(70, 130)
		assert.GreaterOrEqual(t, v, 70.0)
		assert.Less(t, v, 130.0)
	}
}

func TestDeterminism(t *testing.T) {
	e1 := randengine.New(42)
	e2 := randengine.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, e1.UniformRange(0, 1), e2.UniformRange(0, 1))
	}

	e3 := randengine.New(43)
	assert.NotEqual(t, randengine.New(42).Float64(), e3.Float64())
}
