package m

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoid(t *testing.T) {
	s := Sigmoid{}
	assert.Equal(t, 0.5, s.Activate(0))
	assert.InDelta(t, 1/(1+math.Exp(-2)), s.Activate(2), 1e-15)

	// derivative takes the activation, not the sum
	a := s.Activate(0.75)
	assert.Equal(t, a*(1-a), s.Deactivate(a))
	assert.Equal(t, 0.25, s.Deactivate(0.5))
}

func TestTanhDerivativeUsesActivation(t *testing.T) {
	tanh := Tanh{}
	x := 0.3
	a := tanh.Activate(x)
	want := 1 - math.Tanh(x)*math.Tanh(x)
	assert.InDelta(t, want, tanh.Deactivate(a), 1e-15)
}

func TestReLU(t *testing.T) {
	r := ReLU{}
	assert.Equal(t, 2.0, r.Activate(2))
	assert.InDelta(t, -0.0002, r.Activate(-2), 1e-18)
	assert.Equal(t, 1.0, r.Deactivate(2))
	assert.Equal(t, 0.0001, r.Deactivate(r.Activate(-2)))
}

func TestActivatorLookup(t *testing.T) {
	for name, act := range ActivatorLookup {
		require.Equal(t, name, act.String())
	}
}

func TestFunc(t *testing.T) {
	f := Func{
		Fn: func(x float64) float64 { return 2 * x },
		Fd: func(a float64) float64 { return a + 1 },
	}
	assert.Equal(t, 6.0, f.Activate(3))
	assert.Equal(t, 4.0, f.Deactivate(3))
	assert.Equal(t, "custom", f.String())

	f.Name = "double"
	assert.Equal(t, "double", f.String())
}
