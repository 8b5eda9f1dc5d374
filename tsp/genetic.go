// Package tsp — randomized local search (genetic algorithm).
//
// TSPGenetic evolves a population of tour permutations with tournament
// selection, order crossover (OX), swap mutation and elitism, then
// optionally polishes the final best with a 2-opt pass.
//
// Rationale (succinct):
//  1. Population individuals are open index tours (permutations of
//     0..n−1); cost is the closed-cycle length, so rotation classes
//     compete on equal footing.
//  2. Two ping-pong populations (A and B) reuse one backing array each;
//     generation turnover is two slice swaps, no per-generation churn.
//  3. Selection: k-way tournament on the current scores; crossover: OX,
//     which preserves relative order — the property that matters for
//     tours; mutation: a single random swap.
//  4. Elitism copies the best individuals verbatim, so the per-generation
//     best is monotone non-increasing.
//  5. Stopping: MaxGenerations, or the wall-clock deadline when
//     TimeLimit > 0 — whichever fires first. With a budget generous enough
//     to reach MaxGenerations, results are bit-for-bit reproducible for a
//     fixed seed: the RNG is private to the invocation and never reseeded
//     from time.
//
// Complexity: O(MaxGenerations · Population · n) time,
// O(Population · n) space.
package tsp

import (
	"sort"
	"time"
)

// TSPGenetic runs the seeded genetic search over coords.
//
// Options consumed: Seed, TimeLimit (0 ⇒ unlimited, negative ⇒ already
// expired: the initial population's best is returned), PolishTwoOpt and
// the genetic knobs (validated; ErrInvalidOptions on inconsistency).
//
// Guarantees: the returned Tour is a complete permutation of the map's
// keys anchored at the ordinal-smallest ID, Cost == TourLength(Tour,
// coords), and identical (coords, Options) inputs yield identical results
// whenever the generation cap — not the deadline — ends the run.
func TSPGenetic(coords Coordinates, opts Options) (Result, error) {
	start := time.Now()

	if err := validateGeneticOptions(opts); err != nil {
		return Result{}, err
	}

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

	// Up to three vertices every tour is a rotation/reflection of the same
	// cycle; the natural order is already optimal.
	if n <= 3 {
		return naturalResult(ids, coords)
	}

	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit != 0 {
		useDeadline = true
		deadline = start.Add(opts.TimeLimit)
	}

	rng := rngFromSeed(opts.Seed)
	popSize := opts.Population

	// Two ping-pong populations over contiguous backing arrays.
	makePerms := func() [][]int {
		backing := make([]int, popSize*n)
		perms := make([][]int, popSize)
		for i := 0; i < popSize; i++ {
			perms[i] = backing[i*n : (i+1)*n]
		}

		return perms
	}
	permsA := makePerms()
	permsB := makePerms()
	scoresA := make([]float64, popSize)
	scoresB := make([]float64, popSize)

	// Seed the initial population with shuffled permutations.
	var i int
	for i = 0; i < popSize; i++ {
		permRange(permsA[i], rng)
		scoresA[i] = cycleCost(pts, permsA[i])
	}

	// Initial incumbent.
	bestPerm := make([]int, n)
	bestCost := scoresA[0]
	copy(bestPerm, permsA[0])
	for i = 1; i < popSize; i++ {
		if scoresA[i] < bestCost {
			bestCost = scoresA[i]
			copy(bestPerm, permsA[i])
		}
	}

	// Crossover scratch: mark/stamp avoid clearing a seen-set per child.
	mark := make([]int, n)
	stamp := 1
	scratchChild := make([]int, n)

	idxs := make([]int, popSize)
	for i = range idxs {
		idxs[i] = i
	}

	var gen int
	for gen = 0; gen < opts.MaxGenerations; gen++ {
		// Budget is polled once per generation — cheap relative to the
		// Population·n evaluation work a generation performs.
		if useDeadline && !time.Now().Before(deadline) {
			break
		}

		// Rank the current generation.
		sort.Slice(idxs, func(a, b int) bool {
			return scoresA[idxs[a]] < scoresA[idxs[b]]
		})

		write := 0

		// Elitism: carry the best individuals unchanged.
		var e int
		for e = 0; e < opts.Elite; e++ {
			src := idxs[e]
			copy(permsB[write], permsA[src])
			scoresB[write] = scoresA[src]
			write++
		}

		// Breed the remainder of the next generation.
		for write < popSize {
			p1 := tournamentSelect(scoresA, opts.TournamentSize, rng)
			p2 := tournamentSelect(scoresA, opts.TournamentSize, rng)
			for p2 == p1 {
				p2 = tournamentSelect(scoresA, opts.TournamentSize, rng)
			}

			child1 := permsB[write]
			hasSecond := write+1 < popSize
			child2 := scratchChild
			if hasSecond {
				child2 = permsB[write+1]
			}

			if rng.Float64() < opts.CrossoverRate {
				orderCrossoverOX(permsA[p1], permsA[p2], child1, child2, rng, mark, &stamp)
			} else {
				copy(child1, permsA[p1])
				if hasSecond {
					copy(child2, permsA[p2])
				}
			}

			if rng.Float64() < opts.MutationRate {
				mutateSwap(child1, rng)
			}
			if hasSecond && rng.Float64() < opts.MutationRate {
				mutateSwap(child2, rng)
			}

			c1 := cycleCost(pts, child1)
			scoresB[write] = c1
			if c1 < bestCost {
				bestCost = c1
				copy(bestPerm, child1)
			}
			write++

			if hasSecond {
				c2 := cycleCost(pts, child2)
				scoresB[write] = c2
				if c2 < bestCost {
					bestCost = c2
					copy(bestPerm, child2)
				}
				write++
			}
		}

		// Generation turnover.
		permsA, permsB = permsB, permsA
		scoresA, scoresB = scoresB, scoresA
	}

	// Anchor the winner at index 0 (ordinal-smallest ID), then polish.
	anchored, err := rotateToFront(bestPerm, 0)
	if err != nil {
		return Result{}, err
	}
	if opts.PolishTwoOpt {
		twoOptImprove(pts, anchored, deadline, useDeadline)
	}

	tour := indexTourToIDs(anchored, ids)
	cost, err := TourLength(tour, coords)
	if err != nil {
		return Result{}, err
	}
	if verr := ValidateTour(tour, coords); verr != nil {
		return Result{}, verr
	}

	return Result{Tour: tour, Cost: cost}, nil
}

// naturalResult returns the ascending-ID tour with its computed length.
func naturalResult(ids []int, coords Coordinates) (Result, error) {
	tour := CopyTour(ids)
	cost, err := TourLength(tour, coords)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: cost}, nil
}
