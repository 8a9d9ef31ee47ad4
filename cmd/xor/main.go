// xor: trains a small network on an XOR-like dataset and prints its predictions.
//
// Usage:
//
//	xor --arch="2 6 1" --lr=0.5 --iter=5000 --eps=0.0001 --seed=42
package main

import (
	"flag"
	"fmt"
	"os"

	"bpnet/m"
	"bpnet/utils"

	"golang.org/x/exp/rand"
)

var (
	arch      = flag.String("arch", "2 6 1", "Layer widths, input first")
	lr        = flag.Float64("lr", 0.5, "Learning rate")
	iter      = flag.Int("iter", 5000, "Maximum number of epochs")
	eps       = flag.Float64("eps", 0.0001, "Cumulative error threshold")
	seed      = flag.Uint64("seed", 42, "Random seed, 0 for the process generator")
	dataFile  = flag.String("data", "", "CSV samples (inputs then targets); defaults to the built-in set")
	verbose   = flag.Bool("verbose", true, "Verbose output")
	showStats = flag.Bool("stats", false, "Print timing statistics")
)

var (
	xorInputs = [][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{0.1, 0.1}, {0.1, 0.9}, {0.94, 0.11}, {0.92, 0.83},
		{0.23, 0.13}, {0.13, 0.98}, {0.92, 0.11}, {0.92, 0.91},
	}
	xorTargets = [][]float64{
		{0}, {1}, {1}, {0},
		{0}, {1}, {1}, {0},
		{0}, {1}, {1}, {0},
	}
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "xor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	layers, err := utils.ParseArchitecture(*arch)
	if err != nil {
		return err
	}
	cfg := utils.Config{
		Architecture: layers,
		LearningRate: *lr,
		Iterations:   *iter,
		Threshold:    *eps,
	}
	if err := utils.ValidateConfig(&cfg); err != nil {
		return err
	}

	inputs, targets := xorInputs, xorTargets
	if *dataFile != "" {
		f, err := os.Open(*dataFile)
		if err != nil {
			return err
		}
		lines, err := m.ReadLines(f, layers[0], layers[len(layers)-1])
		f.Close()
		if err != nil {
			return err
		}
		inputs, targets = lines.Split()
	}

	c := m.DefaultConfig(cfg.Architecture...)
	c.LearningRate = cfg.LearningRate
	c.MaxIterations = cfg.Iterations
	c.ErrorThreshold = cfg.Threshold
	if *seed != 0 {
		c.Source = rand.NewSource(*seed)
	}

	net, err := m.NewNetwork(c)
	if err != nil {
		return err
	}
	res, err := net.Train(inputs, targets)
	if err != nil {
		return err
	}
	if *showStats {
		utils.PrintTimingStats(&res.Timing, res.Epochs*len(inputs))
	}

	// the probe points below are two-dimensional
	if layers[0] != 2 {
		return nil
	}
	for _, x := range [][]float64{{0, 1}, {0, 0}, {1, 1}, {1, 0}} {
		y, err := net.Predict(x)
		if err != nil {
			return err
		}
		fmt.Printf("%v -> %.4f\n", x, y)
	}
	return nil
}
