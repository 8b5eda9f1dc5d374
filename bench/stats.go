package bench

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Summary aggregates a sample of run outcomes (qualities or timings).
type Summary struct {
	N    int
	Best float64 // minimum — tours and wall-clock both improve downward
	Mean float64
	Std  float64 // sample standard deviation (n−1); 0 for N < 2
}

// Summarize computes min/mean/std over values.
func Summarize[T constraints.Integer | constraints.Float](values []T) Summary {
	s := Summary{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := float64(values[0])
	sum := 0.0
	for _, v := range values {
		f := float64(v)
		if f < best {
			best = f
		}
		sum += f
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = mean
	s.Std = math.Sqrt(variance)

	return s
}

// RelativeError returns (quality − best) / best, the harness's solver
// comparison metric. A zero best quality yields 0 to keep degenerate
// instances (single-vertex tours) from dividing by zero.
func RelativeError(quality, best float64) float64 {
	if best == 0 {
		return 0
	}

	return (quality - best) / best
}
