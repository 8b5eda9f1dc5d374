// Package tsp — genetic operators on index-tour permutations.
package tsp

import "math/rand"

// tournamentSelect returns the index of the fittest individual among
// tournamentSize uniformly drawn candidates (minimum cycle cost wins).
//
// Complexity: O(tournamentSize).
func tournamentSelect(scores []float64, tournamentSize int, rng *rand.Rand) int {
	best := rng.Intn(len(scores))
	bestScore := scores[best]

	var (
		i    int
		cand int
	)
	for i = 1; i < tournamentSize; i++ {
		cand = rng.Intn(len(scores))
		if scores[cand] < bestScore {
			best = cand
			bestScore = scores[cand]
		}
	}

	return best
}

// orderCrossoverOX applies the Order Crossover operator, producing two
// children from two parents. A random segment [a, b) is copied from one
// parent; the remaining positions are filled with the other parent's
// vertices in their relative order, starting after the segment.
//
// mark/stamp implement a reusable seen-set: bumping the stamp invalidates
// all previous marks without clearing the slice.
//
// Complexity: O(n) per child.
func orderCrossoverOX(p1, p2, c1, c2 []int, rng *rand.Rand, mark []int, stamp *int) {
	n := len(p1)

	// Random non-empty segment [a, b).
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		b = (a + 1) % n
		if a > b {
			a, b = b, a
		}
	}

	fill := func(dst []int) {
		for i := range dst {
			dst[i] = -1
		}
	}
	fill(c1)
	fill(c2)

	// First child: segment from p1, remainder from p2.
	*stamp++
	curStamp := *stamp
	for i := a; i < b; i++ {
		gene := p1[i]
		c1[i] = gene
		mark[gene] = curStamp
	}
	pos := b % n
	for i := 0; i < n; i++ {
		gene := p2[(b+i)%n]
		if mark[gene] == curStamp {
			continue
		}
		for c1[pos] != -1 {
			pos = (pos + 1) % n
		}
		c1[pos] = gene
		mark[gene] = curStamp
	}

	// Second child: roles swapped.
	*stamp++
	curStamp = *stamp
	for i := a; i < b; i++ {
		gene := p2[i]
		c2[i] = gene
		mark[gene] = curStamp
	}
	pos = b % n
	for i := 0; i < n; i++ {
		gene := p1[(b+i)%n]
		if mark[gene] == curStamp {
			continue
		}
		for c2[pos] != -1 {
			pos = (pos + 1) % n
		}
		c2[pos] = gene
		mark[gene] = curStamp
	}
}

// mutateSwap exchanges two distinct random positions.
//
// Complexity: O(1).
func mutateSwap(p []int, rng *rand.Rand) {
	if len(p) < 2 {
		return
	}
	i := rng.Intn(len(p))
	j := rng.Intn(len(p) - 1)
	if j >= i {
		j++
	}
	p[i], p[j] = p[j], p[i]
}
