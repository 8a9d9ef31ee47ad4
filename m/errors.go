package m

import "github.com/pkg/errors"

// These are returned wrapped with the offending layer or sample; match them
// with errors.Is.
var (
	ErrInvalidTopology       = errors.New("invalid topology")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidHyperparameter = errors.New("invalid hyperparameter")
)
