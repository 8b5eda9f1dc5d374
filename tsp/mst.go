package tsp

import "math"

// minimumSpanningTree computes a minimum spanning tree of the complete
// Euclidean graph over pts using Prim's algorithm. It returns the MST as an
// adjacency list over point indices (each edge recorded in both rows).
//
// The graph is complete by construction, so the tree always exists for
// n ≥ 1.
//
// Time:  O(n²).
// Space: O(n) working set plus the output adjacency.
func minimumSpanningTree(pts []Point) [][]int {
	n := len(pts)

	// Track which vertices are in the tree.
	inMST := make([]bool, n)
	// Best edge weight to connect each vertex to the growing MST.
	bestCost := make([]float64, n)
	// Parent pointer for each vertex.
	parents := make([]int, n)
	adj := make([][]int, n)

	var v int
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	// Grow from vertex 0.
	if n > 0 {
		bestCost[0] = 0
	}

	var (
		it   int
		u    int
		minW float64
		w    float64
		p    int
	)
	for it = 0; it < n; it++ {
		// (a) Pick the cheapest unattached vertex.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}

		// (b) Attach it and record the tree edge.
		inMST[u] = true
		if parents[u] >= 0 {
			p = parents[u]
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}

		// (c) Relax connection costs of the remaining vertices.
		for v = 0; v < n; v++ {
			if inMST[v] {
				continue
			}
			w = Distance(pts[u], pts[v])
			if w < bestCost[v] {
				bestCost[v] = w
				parents[v] = u
			}
		}
	}

	return adj
}
