package m

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	data := `# x1, x2, xor
0, 0, 0
0, 1, 1
0.94,0.11,1
`
	lines, err := ReadLines(strings.NewReader(data), 2, 1)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, []float64{0.94, 0.11}, lines[2].Inputs)
	require.Equal(t, []float64{1}, lines[2].Targets)

	inputs, targets := lines.Split()
	require.Equal(t, [][]float64{{0, 0}, {0, 1}, {0.94, 0.11}}, inputs)
	require.Equal(t, [][]float64{{0}, {1}, {1}}, targets)
}

func TestReadLinesErrors(t *testing.T) {
	_, err := ReadLines(strings.NewReader("0,1\n"), 2, 1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ReadLines(strings.NewReader("0,x,1\n"), 2, 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTrainLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("0,1,1\n1,1,0\n"), 2, 1)
	require.NoError(t, err)

	net := seeded(t, 3, 2, 2, 1)
	res, err := net.TrainLines(lines)
	require.NoError(t, err)
	require.Greater(t, res.Epochs, 0)
	require.GreaterOrEqual(t, res.Timing.TotalTime, res.Timing.UpdateTime)
}
