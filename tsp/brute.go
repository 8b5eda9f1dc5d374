// Package tsp — anytime exhaustive search (time-bounded brute force).
//
// TSPBruteForce enumerates candidate tours exhaustively under a wall-clock
// budget and returns the best tour seen when either the enumeration or the
// budget runs out.
//
// Rationale (succinct):
//  1. Symmetry reduction: every cyclic tour is equivalent up to rotation,
//     so one vertex (the ordinal-smallest ID) is fixed as the anchor and
//     only the (n−1)! orderings of the remaining vertices are enumerated.
//     No optimality is lost.
//  2. Enumeration order: orderings are produced lexicographically by an
//     in-place next-permutation step, so the sweep is deterministic and,
//     given enough budget, exact.
//  3. Incumbent: each full ordering is costed incrementally over a dense
//     point slice; a strictly shorter candidate replaces the incumbent.
//     Ties keep the earlier find — an artifact of enumeration order, not a
//     quality criterion.
//  4. Amortized deadline polls: reading the clock costs about as much as
//     evaluating a small candidate, so elapsed time is sampled on the first
//     candidate and thereafter every CheckInterval candidates. The budget is
//     therefore soft: the overrun is bounded by one interval's worth of
//     candidate evaluations.
//  5. Fallback: if the deadline fires before the very first candidate is
//     evaluated, the anchor followed by the remaining vertices in ascending
//     ID order is returned with its computed length. The solver never
//     returns a partial tour and never fails on a non-empty instance.
//
// Complexity:
//   - Worst case O((n−1)! · n) time (exact search), O(n) space.
//   - Budget expiry truncates the sweep; the incumbent is still valid.
package tsp

import "time"

// bfEngine holds one invocation's search state. All timing state and
// counters are local to the engine — nothing is shared across calls.
type bfEngine struct {
	n   int
	ids []int   // sorted vertex IDs; ids[0] is the anchor
	pts []Point // pts[i] == coords[ids[i]]

	// Enumeration state: perm is the current ordering of indices 1..n−1.
	perm []int

	// Incumbent — best ordering observed so far, owned by this engine.
	best     []int
	bestCost float64
	foundAny bool

	// Soft time budget.
	useDeadline bool
	deadline    time.Time
	interval    uint64
	checked     uint64 // candidates seen, including the one about to be costed
}

// expired reports whether the deadline poll should fire for the current
// candidate and, when polled, whether the budget is spent. Polls happen on
// the first candidate and every interval candidates thereafter.
func (e *bfEngine) expired() bool {
	if !e.useDeadline {
		return false
	}
	if e.checked != 1 && e.checked%e.interval != 0 {
		return false
	}

	return !time.Now().Before(e.deadline)
}

// permCost evaluates the closed tour anchor→perm→anchor over the dense
// point slice. No map lookups, no allocations.
//
// Complexity: O(n).
func (e *bfEngine) permCost() float64 {
	var (
		sum  float64
		prev = e.pts[0]
		i    int
		p    Point
	)
	for i = 0; i < len(e.perm); i++ {
		p = e.pts[e.perm[i]]
		sum += Distance(prev, p)
		prev = p
	}
	sum += Distance(prev, e.pts[0])

	return sum
}

// record commits the current ordering as the new incumbent.
func (e *bfEngine) record(cost float64) {
	copy(e.best, e.perm)
	e.bestCost = cost
	e.foundAny = true
}

// nextPermutation advances p to its lexicographic successor in place.
// Returns false when p was the last permutation (descending order).
//
// Complexity: O(n) worst case, O(1) amortized.
func nextPermutation(p []int) bool {
	// Find the rightmost ascent p[i] < p[i+1].
	var i = len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// Find the rightmost element greater than p[i] and swap.
	var j = len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	// Reverse the suffix to restore ascending order.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// TSPBruteForce runs the anytime exhaustive search over coords.
//
// Options consumed: TimeLimit (0 ⇒ unlimited, negative ⇒ already expired)
// and CheckInterval (0 ⇒ DefaultCheckInterval).
//
// Guarantees:
//   - The returned Tour is a permutation of exactly the keys of coords
//     (never partial), anchored at the ordinal-smallest ID.
//   - Cost equals TourLength(Tour, coords).
//   - If the full enumeration completes within the budget, the result is
//     the global optimum.
//
// Degenerate instances (0 or 1 vertices) are explicit successes.
//
// Errors: none under normal operation; only ErrUnknownVertex style lookup
// failures could propagate from malformed input, and the coordinate map is
// the single source of truth here, so the error path is effectively
// unreachable for well-formed maps.
func TSPBruteForce(coords Coordinates, opts Options) (Result, error) {
	start := time.Now()

	var ids = sortedVertexIDs(coords)
	switch len(ids) {
	case 0:
		return Result{Tour: []int{}, Cost: 0}, nil
	case 1:
		return Result{Tour: []int{ids[0]}, Cost: 0}, nil
	}

	// Engine setup — all state local to this invocation.
	var e bfEngine
	e.n = len(ids)
	e.ids = ids
	e.pts = pointsByIndex(ids, coords)

	e.interval = uint64(opts.CheckInterval)
	if e.interval == 0 {
		e.interval = DefaultCheckInterval
	}
	if opts.TimeLimit != 0 {
		e.useDeadline = true
		e.deadline = start.Add(opts.TimeLimit)
	}

	// Initial ordering 1..n−1 is both the first lexicographic permutation
	// and the natural-order fallback tour.
	e.perm = make([]int, e.n-1)
	e.best = make([]int, e.n-1)
	var i int
	for i = 0; i < e.n-1; i++ {
		e.perm[i] = i + 1
	}

	// Main sweep: poll, evaluate, advance. The poll precedes the candidate
	// evaluation, so no partial work happens after the deadline fires.
	var cost float64
	for {
		e.checked++
		if e.expired() {
			break
		}

		cost = e.permCost()
		if !e.foundAny || cost < e.bestCost {
			e.record(cost)
		}

		if !nextPermutation(e.perm) {
			break // full enumeration complete — incumbent is optimal
		}
	}

	// Fallback: deadline fired before the first candidate was evaluated.
	// Return the natural-order tour rather than failing or truncating.
	if !e.foundAny {
		for i = 0; i < e.n-1; i++ {
			e.best[i] = i + 1
		}
	}

	// Assemble the ID tour: anchor followed by the incumbent ordering.
	tour := make([]int, e.n)
	tour[0] = ids[0]
	for i = 0; i < e.n-1; i++ {
		tour[i+1] = ids[e.best[i]]
	}

	// Recompute through TourLength so the published pair is self-consistent
	// under the stabilized rounding.
	total, err := TourLength(tour, coords)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: total}, nil
}
