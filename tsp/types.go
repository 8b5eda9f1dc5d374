package tsp

import (
	"errors"
	"time"
)

// ErrUnknownVertex is returned when a tour references a vertex ID that is
// absent from the coordinate map. This is a caller precondition violation
// and is propagated, never recovered from.
var ErrUnknownVertex = errors.New("tsp: tour references a vertex absent from the coordinate map")

// ErrInvalidTour is returned when a tour is not a permutation of the
// coordinate map's key set (duplicate, missing or foreign IDs).
var ErrInvalidTour = errors.New("tsp: tour is not a permutation of the coordinate map")

// ErrInvalidOptions is returned when solver options are internally
// inconsistent (negative rates, non-positive population, …).
var ErrInvalidOptions = errors.New("tsp: invalid solver options")

// Point is a 2D coordinate of a vertex.
type Point struct {
	X float64
	Y float64
}

// Coordinates maps a vertex ID to its point. IDs are unique within an
// instance but are not assumed contiguous or zero-based (TSPLIB assigns
// them starting from 1). The map is treated as immutable by all solvers.
type Coordinates map[int]Point

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the sequence of vertex IDs, each appearing exactly once.
	// The cycle is implicitly closed: the last vertex connects back to
	// Tour[0]. len(Tour) == len(coords) for any non-degenerate instance.
	Tour []int

	// Cost is the total Euclidean length of the closed tour,
	// stabilized to 1e-9 (see round1e9). 0 for tours of length < 2.
	Cost float64
}

// Options carries solver policy knobs shared by the budgeted solvers.
// The zero value is not directly usable for TSPGenetic; start from
// DefaultOptions and override.
type Options struct {
	// TimeLimit is the wall-clock search budget. 0 means unlimited.
	// A negative value counts as an already-expired deadline: the solver
	// terminates at its first deadline poll and returns its fallback
	// (brute force) or initial best (genetic). Budgets are soft: polls are
	// amortized, so the overrun is bounded by one poll interval's worth
	// of work, not zero.
	TimeLimit time.Duration

	// CheckInterval is the number of candidate tours evaluated between
	// consecutive deadline polls in TSPBruteForce. The first candidate is
	// always preceded by a poll. 0 selects DefaultCheckInterval.
	// Larger values trade deadline precision for enumeration throughput.
	CheckInterval int

	// Seed drives the genetic solver's private RNG. Policy as in
	// rngFromSeed: seed==0 selects a fixed default stream, so runs are
	// reproducible either way.
	Seed int64

	// Genetic algorithm knobs (ignored by TSPBruteForce and TSPApprox).
	Population     int     // individuals per generation; must be > 1
	MaxGenerations int     // hard generation cap; must be > 0
	Elite          int     // best individuals copied verbatim; in [0, Population)
	TournamentSize int     // selection pressure; must be > 0
	CrossoverRate  float64 // probability of order crossover; in [0,1]
	MutationRate   float64 // probability of swap mutation; in [0,1]

	// PolishTwoOpt enables a deterministic first-improvement 2-opt pass
	// on the genetic solver's final best tour.
	PolishTwoOpt bool
}

// DefaultCheckInterval is the default deadline-poll stride of the
// exhaustive search. At roughly O(n) work per candidate the worst-case
// budget overrun is interval × per-candidate cost, a few milliseconds on
// the instance sizes this solver is meant for.
const DefaultCheckInterval = 10_000

// DefaultOptions returns the canonical knob set: unlimited budget,
// default poll stride, and the genetic configuration used by the
// benchmark harness.
func DefaultOptions() Options {
	return Options{
		TimeLimit:      0,
		CheckInterval:  DefaultCheckInterval,
		Seed:           0,
		Population:     150,
		MaxGenerations: 400,
		Elite:          4,
		TournamentSize: 5,
		CrossoverRate:  0.90,
		MutationRate:   0.15,
		PolishTwoOpt:   true,
	}
}

// validateGeneticOptions checks the knobs consumed by TSPGenetic.
//
// Complexity: O(1).
func validateGeneticOptions(opts Options) error {
	if opts.Population <= 1 {
		return ErrInvalidOptions
	}
	if opts.MaxGenerations <= 0 {
		return ErrInvalidOptions
	}
	if opts.Elite < 0 || opts.Elite >= opts.Population {
		return ErrInvalidOptions
	}
	if opts.TournamentSize <= 0 {
		return ErrInvalidOptions
	}
	if opts.CrossoverRate < 0 || opts.CrossoverRate > 1 {
		return ErrInvalidOptions
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrInvalidOptions
	}

	return nil
}
