package tsp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tsplab/tspbench/tsp"
)

func TestTSPGenetic_Degenerate(t *testing.T) {
	res, err := tsp.TSPGenetic(tsp.Coordinates{}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.Tour)
	require.Equal(t, 0.0, res.Cost)

	res, err = tsp.TSPGenetic(tsp.Coordinates{5: {X: 2, Y: 2}}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{5}, res.Tour)
	require.Equal(t, 0.0, res.Cost)
}

func TestTSPGenetic_InvalidOptions(t *testing.T) {
	coords := unitSquare()

	for _, mutate := range []func(*tsp.Options){
		func(o *tsp.Options) { o.Population = 1 },
		func(o *tsp.Options) { o.MaxGenerations = 0 },
		func(o *tsp.Options) { o.Elite = -1 },
		func(o *tsp.Options) { o.Elite = o.Population },
		func(o *tsp.Options) { o.TournamentSize = 0 },
		func(o *tsp.Options) { o.CrossoverRate = 1.5 },
		func(o *tsp.Options) { o.MutationRate = -0.1 },
	} {
		opts := tsp.DefaultOptions()
		mutate(&opts)
		_, err := tsp.TSPGenetic(coords, opts)
		require.ErrorIs(t, err, tsp.ErrInvalidOptions)
	}
}

func TestTSPGenetic_ReproducibleForFixedSeed(t *testing.T) {
	coords := scatterCoords(12)

	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	opts.MaxGenerations = 60 // small cap so the run ends on generations, not time

	first, err := tsp.TSPGenetic(coords, opts)
	require.NoError(t, err)
	second, err := tsp.TSPGenetic(coords, opts)
	require.NoError(t, err)

	require.Equal(t, first.Tour, second.Tour)
	require.Equal(t, first.Cost, second.Cost)
}

func TestTSPGenetic_UnitSquareWithPolish(t *testing.T) {
	// On four vertices a single 2-opt move uncrosses any crossing tour, so
	// the polished result is the perimeter.
	coords := unitSquare()

	opts := tsp.DefaultOptions()
	opts.Seed = seedDet

	res, err := tsp.TSPGenetic(coords, opts)
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.Equal(t, 4.0, res.Cost)
}

func TestTSPGenetic_ValidAndAnchored(t *testing.T) {
	coords := scatterCoords(18)

	opts := tsp.DefaultOptions()
	opts.Seed = 7
	opts.MaxGenerations = 40

	res, err := tsp.TSPGenetic(coords, opts)
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.Equal(t, 1, res.Tour[0])
}

func TestTSPGenetic_NearOptimalOnCircle(t *testing.T) {
	// With the 2-opt polish the evolved tour should land well within the
	// double-tree factor on an easy geometric instance.
	const n = 12
	coords := circleCoords(n, 3)
	opt := circleOptimal(n, 3)

	opts := tsp.DefaultOptions()
	opts.Seed = seedDet

	res, err := tsp.TSPGenetic(coords, opts)
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.GreaterOrEqual(t, res.Cost, opt-epsCost)
	require.LessOrEqual(t, res.Cost, 1.5*opt)
}

func TestTSPGenetic_ExpiredBudgetStillComplete(t *testing.T) {
	coords := scatterCoords(14)

	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	opts.TimeLimit = -time.Nanosecond

	res, err := tsp.TSPGenetic(coords, opts)
	require.NoError(t, err)
	requireValidTour(t, res, coords)
	require.Len(t, res.Tour, 14)
}

func TestTSPGenetic_TinyInstances(t *testing.T) {
	// Up to three vertices every tour is optimal; the natural order comes
	// back directly.
	coords := tsp.Coordinates{
		1: {X: 0, Y: 0},
		2: {X: 3, Y: 0},
		3: {X: 0, Y: 4},
	}

	res, err := tsp.TSPGenetic(coords, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Tour)
	require.Equal(t, 12.0, res.Cost)
}
