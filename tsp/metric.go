// Package tsp — metric utilities shared by all solvers.
//
// This file provides the Euclidean distance primitive and the closed-tour
// length accumulator. They are intentionally minimal and side-effect free.
//
// Design:
//   - Distance never fails for finite inputs; math.Hypot keeps it stable.
//   - TourLength applies strict sentinel semantics: an ID missing from the
//     coordinate map is a caller precondition violation (ErrUnknownVertex),
//     propagated as-is.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform
//     FP noise without affecting optimality.
//
// Complexity:
//   - O(1) per distance, O(n) per tour, O(1) extra space.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Distance returns the Euclidean distance between two points.
// Pure function; never fails for finite inputs.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// TourLength sums consecutive edge distances along tour plus the closing
// edge from the last vertex back to the first. Tours of length < 2 have
// length 0 by definition.
//
// Contract:
//   - Every ID in tour must be present in coords; otherwise ErrUnknownVertex.
//
// Complexity: O(n) time, O(1) extra space.
func TourLength(tour []int, coords Coordinates) (float64, error) {
	if len(tour) < 2 {
		return 0, nil
	}

	var (
		sum  float64
		i    int
		p, q Point
		ok   bool
	)
	p, ok = coords[tour[0]]
	if !ok {
		return 0, ErrUnknownVertex
	}
	for i = 1; i < len(tour); i++ {
		q, ok = coords[tour[i]]
		if !ok {
			return 0, ErrUnknownVertex
		}
		sum += Distance(p, q)
		p = q
	}
	// Close the cycle back to the first vertex.
	q, ok = coords[tour[0]]
	if !ok {
		return 0, ErrUnknownVertex
	}
	sum += Distance(p, q)

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps costs stable across platforms without affecting correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
