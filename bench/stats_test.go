package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsplab/tspbench/bench"
)

func TestSummarize(t *testing.T) {
	s := bench.Summarize([]float64{4, 2, 6})
	require.Equal(t, 3, s.N)
	require.Equal(t, 2.0, s.Best)
	require.Equal(t, 4.0, s.Mean)
	require.InDelta(t, 2.0, s.Std, 1e-12)
}

func TestSummarize_Integers(t *testing.T) {
	s := bench.Summarize([]int{10, 20})
	require.Equal(t, 10.0, s.Best)
	require.Equal(t, 15.0, s.Mean)
}

func TestSummarize_Degenerate(t *testing.T) {
	require.Equal(t, bench.Summary{}, bench.Summarize([]float64(nil)))

	s := bench.Summarize([]float64{3.5})
	require.Equal(t, 1, s.N)
	require.Equal(t, 3.5, s.Best)
	require.Equal(t, 3.5, s.Mean)
	require.Equal(t, 0.0, s.Std)
}

func TestRelativeError(t *testing.T) {
	require.Equal(t, 0.25, bench.RelativeError(125, 100))
	require.Equal(t, 0.0, bench.RelativeError(100, 100))
	// Degenerate instances give a zero best length.
	require.Equal(t, 0.0, bench.RelativeError(5, 0))
}
