// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and avoid duplicating functionality that lives in focused test files.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsplab/tspbench/tsp"
)

const (
	// epsCost matches the solvers' cost stabilization (1e-9): exact
	// enough for optimality assertions, loose enough for FP noise.
	epsCost = 1e-9

	// seedDet is the deterministic seed used by reproducibility checks.
	seedDet = int64(42)
)

// unitSquare is the canonical 4-vertex instance; the optimal tour is the
// perimeter with length 4.
func unitSquare() tsp.Coordinates {
	return tsp.Coordinates{
		1: {X: 0, Y: 0},
		2: {X: 1, Y: 0},
		3: {X: 1, Y: 1},
		4: {X: 0, Y: 1},
	}
}

// circleCoords places n vertices (IDs 1..n) evenly on a circle of the
// given radius. The optimal tour visits them in angular order.
func circleCoords(n int, radius float64) tsp.Coordinates {
	coords := make(tsp.Coordinates, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		coords[i+1] = tsp.Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}

	return coords
}

// circleOptimal returns the length of the angular-order tour of
// circleCoords(n, radius): n equal chords.
func circleOptimal(n int, radius float64) float64 {
	chord := 2 * radius * math.Sin(math.Pi/float64(n))

	return float64(n) * chord
}

// scatterCoords builds a deterministic, irregular instance (IDs 1..n) with
// no two distances equal in practice, so optima are unique.
func scatterCoords(n int) tsp.Coordinates {
	coords := make(tsp.Coordinates, n)
	for i := 0; i < n; i++ {
		f := float64(i + 1)
		coords[i+1] = tsp.Point{
			X: math.Sin(f*1.7) * 10,
			Y: math.Cos(f*2.3) * 10,
		}
	}

	return coords
}

// requireValidTour asserts the result is a complete valid tour of coords
// whose cost matches TourLength.
func requireValidTour(t *testing.T, res tsp.Result, coords tsp.Coordinates) {
	t.Helper()

	require.NoError(t, tsp.ValidateTour(res.Tour, coords))

	recomputed, err := tsp.TourLength(res.Tour, coords)
	require.NoError(t, err)
	require.InDelta(t, recomputed, res.Cost, epsCost)
}
