package m

import (
	"math"
	"time"

	"bpnet/utils"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

type Config struct {
	// LayerNum is the declared number of layers, input and output included.
	// Zero means len(Layers).
	LayerNum       int
	Layers         []int
	Activator      Activator
	LearningRate   float64
	MaxIterations  int
	ErrorThreshold float64
	// Source seeds parameter initialization. Nil uses the process-wide generator.
	Source rand.Source
	// OnEpoch, if set, is called after every epoch with the cumulative error of that epoch.
	OnEpoch func(epoch int, e float64)
}

// DefaultConfig returns a sigmoid network configuration with learning rate 0.5,
// at most 500 epochs and an error threshold of 0.0001.
func DefaultConfig(layers ...int) Config {
	return Config{
		Layers:         layers,
		Activator:      Sigmoid{},
		LearningRate:   0.5,
		MaxIterations:  500,
		ErrorThreshold: 0.0001,
	}
}

// Trace holds one vector per layer: activations for a forward pass, deltas
// for a backward pass (where index 0 is nil).
type Trace []*mat.VecDense

// Output returns a copy of the last layer.
func (t Trace) Output() []float64 {
	return toSlice(t[len(t)-1])
}

// Layer returns a copy of layer l.
func (t Trace) Layer(l int) []float64 {
	return toSlice(t[l])
}

type TrainResult struct {
	Epochs    int
	Error     float64
	Converged bool
	Timing    utils.TimingStats
}

type Network struct {
	config Config
	n      []int
	// weights[i] maps layer i onto layer i+1 and is n[i+1] x n[i].
	weights []*mat.Dense
	biases  []*mat.VecDense
}

func NewNetwork(c Config) (*Network, error) {
	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	net := &Network{
		config:  c,
		n:       append([]int(nil), c.Layers...),
		weights: make([]*mat.Dense, len(c.Layers)-1),
		biases:  make([]*mat.VecDense, len(c.Layers)-1),
	}
	net.config.Layers = net.n

	for i := range net.weights {
		rows, cols := net.n[i+1], net.n[i]
		net.weights[i] = mat.NewDense(rows, cols, randomArray(rows*cols, c.Source))
		net.biases[i] = mat.NewVecDense(rows, randomArray(rows, c.Source))
	}

	return net, nil
}

func validateConfig(c *Config) error {
	if c.LayerNum == 0 {
		c.LayerNum = len(c.Layers)
	}
	if c.LayerNum < 2 {
		return errors.Wrapf(ErrInvalidTopology, "need at least 2 layers, got %d", c.LayerNum)
	}
	if len(c.Layers) != c.LayerNum {
		return errors.Wrapf(ErrInvalidTopology, "declared %d layers but got %d widths", c.LayerNum, len(c.Layers))
	}
	for l, width := range c.Layers {
		if width <= 0 {
			return errors.Wrapf(ErrInvalidTopology, "layer %d has width %d", l, width)
		}
	}

	if c.Activator == nil {
		c.Activator = Sigmoid{}
	}
	if f, ok := c.Activator.(Func); ok && (f.Fn == nil || f.Fd == nil) {
		return errors.Wrapf(ErrInvalidHyperparameter, "activator %s is missing a function", f)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 0) {
		return errors.Wrapf(ErrInvalidHyperparameter, "learning rate %v", c.LearningRate)
	}
	if c.MaxIterations < 0 {
		return errors.Wrapf(ErrInvalidHyperparameter, "max iterations %d", c.MaxIterations)
	}
	if !(c.ErrorThreshold >= 0) {
		return errors.Wrapf(ErrInvalidHyperparameter, "error threshold %v", c.ErrorThreshold)
	}
	return nil
}

func (net *Network) lastIndex() int {
	return len(net.n) - 1
}

func (net *Network) Config() Config {
	c := net.config
	c.Layers = append([]int(nil), net.n...)
	return c
}

// Layers returns the width of every layer.
func (net *Network) Layers() []int {
	return append([]int(nil), net.n...)
}

// Forward propagates one sample and returns every layer's activations.
// Network parameters are not modified.
func (net *Network) Forward(input []float64) (Trace, error) {
	if len(input) != net.n[0] {
		return nil, errors.Wrapf(ErrInvalidInput, "input has %d values, layer 0 has %d neurons", len(input), net.n[0])
	}
	return net.feedForward(vector(input)), nil
}

// Predict is Forward restricted to the output layer.
func (net *Network) Predict(input []float64) ([]float64, error) {
	y, err := net.Forward(input)
	if err != nil {
		return nil, err
	}
	return y.Output(), nil
}

func (net *Network) feedForward(x *mat.VecDense) Trace {
	y := make(Trace, len(net.n))
	y[0] = x
	for i := 0; i < net.lastIndex(); i++ {
		sum := dot(net.weights[i], y[i])
		sum.AddVec(sum, net.biases[i])
		y[i+1] = apply(net.config.Activator.Activate, sum)
	}
	return y
}

// derivative evaluates Deactivate on a copy of layer activations.
func (net *Network) derivative(a *mat.VecDense) *mat.VecDense {
	return apply(net.config.Activator.Deactivate, mat.VecDenseCopyOf(a))
}

// calcDelta backpropagates the output error of y against target d.
func (net *Network) calcDelta(d *mat.VecDense, y Trace) Trace {
	last := net.lastIndex()
	delta := make(Trace, len(net.n))
	delta[last] = multiply(subtract(d, y[last]), net.derivative(y[last]))
	for l := last - 1; l > 0; l-- {
		delta[l] = multiply(net.derivative(y[l]), dot(net.weights[l].T(), delta[l+1]))
	}
	return delta
}

// update applies one online gradient step in place.
func (net *Network) update(y, delta Trace) {
	lr := net.config.LearningRate
	for i := range net.weights {
		net.weights[i].RankOne(net.weights[i], lr, delta[i+1], y[i])
		net.biases[i].AddScaledVec(net.biases[i], lr, delta[i+1])
	}
}

type sample struct {
	x, d *mat.VecDense
}

func (net *Network) samples(lines Lines) ([]sample, error) {
	out := make([]sample, len(lines))
	last := net.lastIndex()
	for i, line := range lines {
		if len(line.Inputs) != net.n[0] {
			return nil, errors.Wrapf(ErrInvalidInput, "sample %d has %d inputs, want %d", i, len(line.Inputs), net.n[0])
		}
		if len(line.Targets) != net.n[last] {
			return nil, errors.Wrapf(ErrInvalidInput, "sample %d has %d targets, want %d", i, len(line.Targets), net.n[last])
		}
		out[i] = sample{x: vector(line.Inputs), d: vector(line.Targets)}
	}
	return out, nil
}

// Train runs up to MaxIterations epochs over the parallel inputs and targets,
// updating parameters after every sample, and stops early once an epoch's
// cumulative error falls below ErrorThreshold.
func (net *Network) Train(inputs, targets [][]float64) (TrainResult, error) {
	if len(inputs) != len(targets) {
		return TrainResult{}, errors.Wrapf(ErrInvalidInput, "%d inputs but %d targets", len(inputs), len(targets))
	}
	lines := make(Lines, len(inputs))
	for i := range inputs {
		lines[i] = Line{Inputs: inputs[i], Targets: targets[i]}
	}
	return net.TrainLines(lines)
}

func (net *Network) TrainLines(lines Lines) (TrainResult, error) {
	samples, err := net.samples(lines)
	if err != nil {
		return TrainResult{}, err
	}

	utils.Logf("Started training: %d samples, %v, up to %d epochs", len(samples), net.n, net.config.MaxIterations)
	start := time.Now()

	var res TrainResult
	for epoch := 1; epoch <= net.config.MaxIterations; epoch++ {
		e := 0.0
		for _, s := range samples {
			e += net.trainOne(s, &res.Timing)
		}
		res.Epochs = epoch
		res.Error = e
		if net.config.OnEpoch != nil {
			net.config.OnEpoch(epoch, e)
		}
		if e < net.config.ErrorThreshold {
			res.Converged = true
			break
		}
	}

	res.Timing.TotalTime = time.Since(start)
	if res.Converged {
		utils.Logf("Converged after %d epochs, error %.6g, took %v", res.Epochs, res.Error, res.Timing.TotalTime)
	} else {
		utils.Logf("Stopped after %d epochs, error %.6g, took %v", res.Epochs, res.Error, res.Timing.TotalTime)
	}
	return res, nil
}

// trainOne runs forward, backward and update for one sample and returns its
// half squared error, measured before the update.
func (net *Network) trainOne(s sample, stats *utils.TimingStats) float64 {
	t := time.Now()
	y := net.feedForward(s.x)
	stats.ForwardPassTime += time.Since(t)

	t = time.Now()
	delta := net.calcDelta(s.d, y)
	stats.BackwardPassTime += time.Since(t)

	t = time.Now()
	net.update(y, delta)
	stats.UpdateTime += time.Since(t)

	t = time.Now()
	diff := subtract(s.d, y[net.lastIndex()])
	e := mat.Dot(diff, diff) / 2.0
	stats.LossComputationTime += time.Since(t)
	return e
}

// Weights returns copies of the weight matrices; element i is n[i+1] x n[i].
func (net *Network) Weights() []mat.Matrix {
	out := make([]mat.Matrix, len(net.weights))
	for i, w := range net.weights {
		out[i] = mat.DenseCopyOf(w)
	}
	return out
}

// Biases returns copies of the bias vectors; element i has n[i+1] entries.
func (net *Network) Biases() []mat.Vector {
	out := make([]mat.Vector, len(net.biases))
	for i, b := range net.biases {
		out[i] = mat.VecDenseCopyOf(b)
	}
	return out
}

// SetWeights overwrites every parameter in place. Shapes must match exactly.
func (net *Network) SetWeights(weights []mat.Matrix, biases []mat.Vector) error {
	if len(weights) != len(net.weights) || len(biases) != len(net.biases) {
		return errors.Wrapf(ErrInvalidTopology, "got %d weight matrices and %d bias vectors, want %d",
			len(weights), len(biases), len(net.weights))
	}
	for i := range weights {
		r, c := weights[i].Dims()
		wr, wc := net.weights[i].Dims()
		if r != wr || c != wc {
			return errors.Wrapf(ErrInvalidTopology, "weights %d are %dx%d, want %dx%d", i, r, c, wr, wc)
		}
		if biases[i].Len() != net.biases[i].Len() {
			return errors.Wrapf(ErrInvalidTopology, "biases %d have %d entries, want %d", i, biases[i].Len(), net.biases[i].Len())
		}
	}

	for i := range weights {
		net.weights[i].Copy(weights[i])
		net.biases[i].CopyVec(biases[i])
	}
	return nil
}
