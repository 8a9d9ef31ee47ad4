package m

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Line struct {
	Inputs  []float64
	Targets []float64
}
type Lines []Line

// ReadLines parses CSV samples: each record holds inputNum inputs followed by
// outputNum targets. Lines starting with '#' are skipped.
func ReadLines(r io.Reader, inputNum, outputNum int) (Lines, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = inputNum + outputNum

	var lines Lines
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "reading record %d: %v", len(lines)+1, err)
		}

		values := make([]float64, len(record))
		for i, field := range record {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidInput, "record %d field %d: %v", len(lines)+1, i+1, err)
			}
			values[i] = x
		}

		lines = append(lines, Line{
			Inputs:  values[:inputNum:inputNum],
			Targets: values[inputNum:],
		})
	}

	return lines, nil
}

// Split returns the inputs and targets as parallel sequences.
func (lines Lines) Split() (inputs, targets [][]float64) {
	inputs = make([][]float64, len(lines))
	targets = make([][]float64, len(lines))
	for i, line := range lines {
		inputs[i] = line.Inputs
		targets[i] = line.Targets
	}
	return inputs, targets
}
