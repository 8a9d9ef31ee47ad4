package m

import (
	"fmt"
	"math"
)

// Activator is the squashing function of every non-input neuron.
// Deactivate receives the already computed activation a = Activate(sum), not
// the weighted sum, and returns the derivative expressed in terms of a.
type Activator interface {
	Activate(sum float64) float64
	Deactivate(a float64) float64
	fmt.Stringer
}

var ActivatorLookup = map[string]Activator{
	"sigmoid": Sigmoid{},
	"tanh":    Tanh{},
	"relu":    ReLU{},
}

type Sigmoid struct{}

func (s Sigmoid) Activate(sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

func (s Sigmoid) Deactivate(a float64) float64 {
	return a * (1 - a)
}

func (s Sigmoid) String() string {
	return "sigmoid"
}

type Tanh struct{}

func (t Tanh) Activate(sum float64) float64 {
	return math.Tanh(sum)
}

func (t Tanh) Deactivate(a float64) float64 {
	return 1.0 - a*a
}

func (t Tanh) String() string {
	return "tanh"
}

type ReLU struct{} // leaky, slope 0.0001 below zero

func (r ReLU) Activate(sum float64) float64 {
	if sum < 0 {
		return 0.0001 * sum
	}
	return sum
}

func (r ReLU) Deactivate(a float64) float64 {
	if a < 0 {
		return 0.0001
	}
	return 1
}

func (r ReLU) String() string {
	return "relu"
}

// Func adapts a caller-supplied activation pair. Fd must follow the same
// convention as Activator.Deactivate: it is called with the activation value.
type Func struct {
	Name string
	Fn   func(sum float64) float64
	Fd   func(a float64) float64
}

func (f Func) Activate(sum float64) float64 {
	return f.Fn(sum)
}

func (f Func) Deactivate(a float64) float64 {
	return f.Fd(a)
}

func (f Func) String() string {
	if f.Name == "" {
		return "custom"
	}
	return f.Name
}
