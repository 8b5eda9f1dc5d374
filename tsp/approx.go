// Package tsp — MST double-tree 2-approximation.
//
// TSPApprox computes a 2-approximate tour for the Euclidean (metric,
// symmetric) instance using the double-tree pipeline:
//
//  1. Minimum Spanning Tree on the complete Euclidean graph.
//  2. Double every MST edge, making every degree even.
//  3. Eulerian circuit on the doubled multigraph (Hierholzer).
//  4. Shortcut the Eulerian walk to a Hamiltonian cycle (skip revisits).
//
// Mathematical guarantee:
//   - For metric instances, tour length ≤ 2 · OPT: the doubled MST weighs
//     at most 2 · OPT (the MST weighs less than any tour), and triangle
//     inequality makes shortcutting non-increasing.
//
// No RNG and no budget: the pipeline is deterministic and fast (O(n²)),
// intended as the cheap-and-cheerful collaborator next to the exhaustive
// baseline and the genetic search.
//
// Returned value:
//   - Result{Tour, Cost} with the tour anchored at the ordinal-smallest ID
//     and the stabilized (1e-9) cost; Cost == TourLength(Tour, coords).
package tsp

// TSPApprox runs the double-tree approximation on coords.
// Degenerate instances (0 or 1 vertices) are explicit successes.
func TSPApprox(coords Coordinates) (Result, error) {
	var ids = sortedVertexIDs(coords)
	switch len(ids) {
	case 0:
		return Result{Tour: []int{}, Cost: 0}, nil
	case 1:
		return Result{Tour: []int{ids[0]}, Cost: 0}, nil
	}

	var (
		n   = len(ids)
		pts = pointsByIndex(ids, coords)
	)

	// 1) MST over the complete Euclidean graph.
	mstAdj := minimumSpanningTree(pts)

	// 2) Double every edge so each vertex has even degree.
	doubled := make([][]int, n)
	var u int
	for u = 0; u < n; u++ {
		row := make([]int, 0, 2*len(mstAdj[u]))
		row = append(row, mstAdj[u]...)
		row = append(row, mstAdj[u]...)
		doubled[u] = row
	}

	// 3) Eulerian circuit from the anchor (index 0 == smallest ID).
	euler := eulerianCircuit(doubled, 0)

	// 4) Shortcut revisits to a Hamiltonian cycle, then rotate to anchor.
	cycle, err := shortcutEulerian(euler, n)
	if err != nil {
		return Result{}, err
	}
	cycle, err = rotateToFront(cycle, 0)
	if err != nil {
		return Result{}, err
	}

	tour := indexTourToIDs(cycle, ids)
	cost, err := TourLength(tour, coords)
	if err != nil {
		return Result{}, err
	}

	// Invariant check is O(n) and catches wiring mistakes early.
	if verr := ValidateTour(tour, coords); verr != nil {
		return Result{}, verr
	}

	return Result{Tour: tour, Cost: cost}, nil
}
