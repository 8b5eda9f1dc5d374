package tsp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tsplab/tspbench/tsp"
)

func TestTSPBruteForce_Degenerate(t *testing.T) {
	res, err := tsp.TSPBruteForce(tsp.Coordinates{}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.Tour)
	require.Equal(t, 0.0, res.Cost)

	res, err = tsp.TSPBruteForce(tsp.Coordinates{7: {X: 3, Y: 4}}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{7}, res.Tour)
	require.Equal(t, 0.0, res.Cost)
}

func TestTSPBruteForce_UnitSquareOptimal(t *testing.T) {
	coords := unitSquare()

	res, err := tsp.TSPBruteForce(coords, tsp.DefaultOptions())
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.Equal(t, 4.0, res.Cost)
	// Anchored at the smallest ID.
	require.Equal(t, 1, res.Tour[0])
}

func TestTSPBruteForce_CircleOptimal(t *testing.T) {
	const n = 9
	coords := circleCoords(n, 10)

	res, err := tsp.TSPBruteForce(coords, tsp.DefaultOptions())
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.InDelta(t, circleOptimal(n, 10), res.Cost, epsCost)
}

func TestTSPBruteForce_DeterministicUnderFullEnumeration(t *testing.T) {
	coords := scatterCoords(8)

	first, err := tsp.TSPBruteForce(coords, tsp.DefaultOptions())
	require.NoError(t, err)

	second, err := tsp.TSPBruteForce(coords, tsp.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first.Tour, second.Tour)
	require.Equal(t, first.Cost, second.Cost)
}

func TestTSPBruteForce_ExpiredBudgetFallback(t *testing.T) {
	// An already-expired deadline fires on the very first poll, before any
	// candidate is evaluated: the natural-order tour must come back whole.
	coords := scatterCoords(10)

	opts := tsp.DefaultOptions()
	opts.TimeLimit = -time.Nanosecond

	res, err := tsp.TSPBruteForce(coords, opts)
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.Len(t, res.Tour, 10)

	natural := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.Equal(t, natural, res.Tour)

	want, err := tsp.TourLength(natural, coords)
	require.NoError(t, err)
	require.Equal(t, want, res.Cost)
}

func TestTSPBruteForce_BudgetApproximatelyRespected(t *testing.T) {
	// 12 vertices ⇒ 11! ≈ 4·10⁷ orderings — far beyond a 50 ms budget.
	coords := scatterCoords(12)

	opts := tsp.DefaultOptions()
	opts.TimeLimit = 50 * time.Millisecond

	start := time.Now()
	res, err := tsp.TSPBruteForce(coords, opts)
	elapsed := time.Since(start)

	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.Len(t, res.Tour, 12)
	// Soft budget: overrun is bounded by one poll interval's worth of
	// candidate evaluations. Generous ceiling to stay CI-proof.
	require.Less(t, elapsed, 5*time.Second)
}

func TestTSPBruteForce_IncumbentNotWorseThanNaturalOrder(t *testing.T) {
	// Whatever the budget, the result can never be worse than the
	// natural-order tour: that tour is the first candidate evaluated and
	// also the fallback.
	coords := scatterCoords(9)

	natural, err := tsp.TourLength([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, coords)
	require.NoError(t, err)

	for _, budget := range []time.Duration{0, time.Millisecond, 20 * time.Millisecond} {
		opts := tsp.DefaultOptions()
		opts.TimeLimit = budget

		res, rerr := tsp.TSPBruteForce(coords, opts)
		require.NoError(t, rerr)
		requireValidTour(t, res, coords)
		require.LessOrEqual(t, res.Cost, natural+epsCost)
	}
}

func TestTSPBruteForce_SmallCheckInterval(t *testing.T) {
	// A stride of 1 polls the clock on every candidate; semantics must not
	// change, only the throughput trade-off.
	coords := unitSquare()

	opts := tsp.DefaultOptions()
	opts.CheckInterval = 1

	res, err := tsp.TSPBruteForce(coords, opts)
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
}
