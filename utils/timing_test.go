package utils

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUS(t *testing.T) {
	d := 1234*time.Microsecond + 567*time.Nanosecond
	got := DurationUS(d)
	if math.Abs(got-1234.567) > 0.001 {
		t.Fatalf("want 1234.567µs, got %.3f", got)
	}
}

func withOutput(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldVerbose := Output, Verbose
	Output, Verbose = &buf, verbose
	t.Cleanup(func() { Output, Verbose = oldOut, oldVerbose })
	return &buf
}

func TestLogf(t *testing.T) {
	buf := withOutput(t, true)
	Logf("epoch %d", 3)
	require.Equal(t, "epoch 3\n", buf.String())

	buf = withOutput(t, false)
	Logf("epoch %d", 3)
	require.Empty(t, buf.String())
}

func TestPrintTimingStats(t *testing.T) {
	buf := withOutput(t, true)
	stats := &TimingStats{
		TotalTime:       10 * time.Millisecond,
		ForwardPassTime: 4 * time.Millisecond,
	}
	PrintTimingStats(stats, 2)
	require.Contains(t, buf.String(), "Forward pass: 4ms (40.0%)")
	require.Contains(t, buf.String(), "Average time per step: 5ms")

	// no division by zero on an empty run
	buf = withOutput(t, true)
	PrintTimingStats(&TimingStats{}, 0)
	require.Contains(t, buf.String(), "Steps completed: 0")
	require.NotContains(t, buf.String(), "Average")
}
