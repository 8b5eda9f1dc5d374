// Package tsp provides Travelling Salesman Problem solvers over 2D
// coordinate instances.
//
// It includes three algorithms on a coordinate map (vertex ID → point):
//
//   - TSPBruteForce — anytime exhaustive enumeration under a wall-clock
//     budget. Fixes an anchor vertex to cut the search space from n! to
//     (n−1)!, tracks the best tour found so far, and always returns a
//     complete, valid tour even when the budget expires before the first
//     full sweep. Exact when the enumeration finishes within the budget.
//
//   - TSPApprox — deterministic MST double-tree 2-approximation:
//     Prim MST → doubled edges → Eulerian circuit → shortcut.
//
//   - TSPGenetic — seeded order-crossover genetic search with tournament
//     selection, elitism and an optional 2-opt polish. Reproducible for a
//     fixed seed.
//
// All three return a Result{Tour, Cost} where Tour is an open sequence of
// vertex IDs (the closing edge back to Tour[0] is implicit) and Cost equals
// TourLength(Tour, coords).
//
// Use TSPBruteForce as a correctness/quality baseline on small instances
// (n ≲ 12 for full enumeration in reasonable time), and the other two as
// scalable heuristics.
package tsp
