// Package tsp — 2-opt polish for the genetic solver.
//
// twoOptImprove performs deterministic first-improvement 2-opt on an open
// index tour (the closing edge back to tour[0] is implicit). Classic
// symmetric move: reverse segment [i..k];
// Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d), with a=T[i−1], b=T[i], c=T[k],
// d=T[(k+1) mod n].
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Allocation-conscious: O(1) per candidate check, O(k−i) on an accepted
//     move, all in place on the caller's slice.
//   - Soft wall-clock deadline via sparse polls (every 2048 checks), so a
//     polish pass cannot blow the caller's remaining budget.
//
// Contracts:
//   - tour is an open permutation of 0..n−1; position 0 stays fixed, which
//     pins the rotation class without losing any cyclic 2-opt move.
//
// Complexity:
//   - One scan: O(n²) candidate checks; first-improvement restarts after
//     each accepted move. Terminates at a local optimum or the deadline.
package tsp

import "time"

// twoOptImprove improves tour in place and returns its resulting cost
// (unstabilized sum; callers republish through TourLength).
func twoOptImprove(pts []Point, tour []int, deadline time.Time, useDeadline bool) float64 {
	n := len(tour)
	cost := cycleCost(pts, tour)
	if n < 4 {
		return cost // no proper 2-opt move exists below four vertices
	}

	// Sparse deadline poll — keeps the hot loop branch-cheap.
	var step int
	checkDeadline := func() bool {
		step++
		if !useDeadline || (step&2047) != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	for {
		improved := false

		var (
			a, b, c, d Point
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				if checkDeadline() {
					return cost
				}

				a = pts[tour[i-1]]
				b = pts[tour[i]]
				c = pts[tour[k]]
				d = pts[tour[(k+1)%n]]

				// Δ = new − old; accept strictly improving moves.
				delta = (Distance(a, c) + Distance(b, d)) -
					(Distance(a, b) + Distance(c, d))
				if delta < 0 {
					reverseSegment(tour, i, k)
					cost += delta
					improved = true
					// First-improvement policy: restart the scan.
					break
				}
			}
			if improved {
				break
			}
		}

		if !improved {
			return cost // local optimum under the 2-opt neighborhood
		}
	}
}

// reverseSegment reverses tour[i..k] inclusive, in place.
//
// Complexity: O(k−i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// cycleCost sums the closed-cycle length of an open index tour over the
// dense point slice. Shared by the genetic solver's hot loop.
//
// Complexity: O(n).
func cycleCost(pts []Point, tour []int) float64 {
	if len(tour) < 2 {
		return 0
	}

	var (
		sum  float64
		prev = pts[tour[0]]
		i    int
		p    Point
	)
	for i = 1; i < len(tour); i++ {
		p = pts[tour[i]]
		sum += Distance(prev, p)
		prev = p
	}
	sum += Distance(prev, pts[tour[0]])

	return sum
}
