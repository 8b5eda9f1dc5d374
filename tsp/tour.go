// Package tsp — tour utilities shared by all solvers.
//
// This file contains compact, allocation-conscious helpers that operate on
// tour structure, without touching distances:
//   - ValidateTour: verify a tour is a permutation of the coordinate map's keys.
//   - CopyTour: independent shallow copy of a tour slice.
//   - sortedVertexIDs / pointsByIndex: canonical instance indexing.
//   - indexTourToIDs: translate an internal index tour into vertex IDs.
//   - rotateToFront: cyclic shift of an index tour to a fixed first element.
//   - shortcutEulerian: skip revisits in an Eulerian walk to form a tour.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for all helpers; in-place mutation avoided unless stated.
//
// Solvers internally work on index tours: permutations of 0..n−1 aligned
// with the sorted vertex ID slice. Public results always carry vertex IDs.
package tsp

import "sort"

// ValidateTour checks that tour is a permutation of exactly the key set of
// coords: no duplicates, none missing, no foreign IDs.
//
// Returns ErrInvalidTour on any violation (ErrUnknownVertex when the
// offending ID is absent from the map, to preserve the lookup-failure
// taxonomy).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, coords Coordinates) error {
	if len(tour) != len(coords) {
		return ErrInvalidTour
	}
	seen := make(map[int]struct{}, len(tour))

	var (
		i  int
		v  int
		ok bool
	)
	for i = 0; i < len(tour); i++ {
		v = tour[i]
		if _, ok = coords[v]; !ok {
			return ErrUnknownVertex
		}
		if _, ok = seen[v]; ok {
			return ErrInvalidTour
		}
		seen[v] = struct{}{}
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// sortedVertexIDs returns the instance's vertex IDs in ascending order.
// ids[0] is the canonical anchor used by every solver, which makes results
// comparable across algorithms and runs.
//
// Complexity: O(n log n) time, O(n) space.
func sortedVertexIDs(coords Coordinates) []int {
	ids := make([]int, 0, len(coords))
	for id := range coords {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// pointsByIndex materializes coords into a slice aligned with ids, so hot
// loops read points by index instead of hashing map keys.
//
// Complexity: O(n) time, O(n) space.
func pointsByIndex(ids []int, coords Coordinates) []Point {
	pts := make([]Point, len(ids))

	var i int
	for i = 0; i < len(ids); i++ {
		pts[i] = coords[ids[i]]
	}

	return pts
}

// indexTourToIDs translates an index tour (permutation of 0..n−1) into the
// corresponding vertex ID tour.
//
// Complexity: O(n) time, O(n) space.
func indexTourToIDs(tour []int, ids []int) []int {
	out := make([]int, len(tour))

	var i int
	for i = 0; i < len(tour); i++ {
		out[i] = ids[tour[i]]
	}

	return out
}

// rotateToFront returns a fresh copy of the open index cycle rotated so
// that out[0] == front. The cyclic order is preserved; only the starting
// point changes (tours are rotation-invariant in cost).
//
// Contract: front must be present in cycle; otherwise ErrInvalidTour.
//
// Complexity: O(n) time, O(n) space.
func rotateToFront(cycle []int, front int) ([]int, error) {
	var (
		n     = len(cycle)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if cycle[i] == front {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidTour
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = cycle[(pivot+i)%n]
	}

	return out, nil
}

// shortcutEulerian converts an Eulerian vertex sequence (with revisits)
// into an open Hamiltonian cycle over 0..n−1 by keeping only the first
// occurrence of each vertex. This is the standard shortcutting step of the
// double-tree approximation.
//
// Contracts:
//   - 0 ≤ v < n for every v ∈ euler; every vertex appears at least once.
//   - Violations yield ErrInvalidTour.
//
// Complexity: O(len(euler) + n) time, O(n) space.
func shortcutEulerian(euler []int, n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrInvalidTour
	}

	visited := make([]bool, n)
	cycle := make([]int, 0, n)

	var (
		idx int
		v   int
	)
	for idx = 0; idx < len(euler); idx++ {
		v = euler[idx]
		if v < 0 || v >= n {
			return nil, ErrInvalidTour
		}
		if !visited[v] {
			visited[v] = true
			cycle = append(cycle, v)
		}
	}
	if len(cycle) != n {
		return nil, ErrInvalidTour
	}

	return cycle, nil
}
