package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Config holds training configuration
type Config struct {
	Architecture []int
	LearningRate float64
	Iterations   int
	Threshold    float64
}

// ParseArchitecture parses "2 6 1" or "2,6,1" into layer widths
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.FieldsFunc(archStr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		arch[i] = n
	}
	return arch, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if len(config.Architecture) < 2 {
		return errors.New("architecture must have at least 2 layers (input and output)")
	}

	for i, n := range config.Architecture {
		if n <= 0 {
			return errors.Errorf("layer %d must have a positive width, got %d", i, n)
		}
	}

	if !(config.LearningRate > 0) || math.IsInf(config.LearningRate, 0) {
		return errors.New("learning rate must be positive")
	}

	if config.Iterations < 0 {
		return errors.New("iterations must not be negative")
	}

	if !(config.Threshold >= 0) {
		return errors.New("threshold must not be negative")
	}

	return nil
}
