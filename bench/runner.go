// Package bench drives the three TSP solvers over a set of instances and
// aggregates solution quality, wall-clock time and relative error into a
// results CSV.
//
// The harness treats every solver through one contract — a function from a
// coordinate map (plus a per-run seed for the randomized one) to a
// (tour, cost) result. Failures are isolated per solver/instance cell: a
// bad run is recorded in the cell's Err field and the sweep continues, so
// one defective instance never aborts a multi-instance run.
//
// Relative error is computed per instance against the best quality seen
// across all solvers on that instance: (quality − best) / best.
package bench

import (
	"log/slog"
	"time"

	"github.com/tsplab/tspbench/tsp"
	"github.com/tsplab/tspbench/tsplib"
)

// SolveFunc is the uniform solver contract consumed by the harness.
// Deterministic solvers ignore the seed.
type SolveFunc func(coords tsp.Coordinates, seed int64) (tsp.Result, error)

// Algorithm is one benchmarked solver.
type Algorithm struct {
	// Name labels the CSV rows (BF, Approx, LS).
	Name string

	// Runs is the number of seeded repetitions per instance; 1 for
	// deterministic solvers.
	Runs int

	// Solve invokes the solver.
	Solve SolveFunc
}

// Cell is one solver's aggregate outcome on one instance.
type Cell struct {
	Algo     string
	Runs     int
	Time     Summary // seconds
	Quality  Summary // tour length
	RelError float64 // vs the best quality across solvers on this instance
	FullTour bool    // every run returned a complete tour
	Err      string  // non-empty when the solver failed on this instance
}

// Row is one instance's outcome across all solvers.
type Row struct {
	Instance  string
	Dimension int
	Cells     []Cell
}

// Runner owns one benchmark sweep.
type Runner struct {
	Loader     *tsplib.Loader
	Algorithms []Algorithm
	BaseSeed   int64
	Log        *slog.Logger // nil disables progress logging
}

// StandardAlgorithms wires the three solvers of the suite under cfg's
// budgets: exhaustive baseline, deterministic approximation, and the
// seeded genetic local search.
func StandardAlgorithms(cfg Config) []Algorithm {
	bfOpts := tsp.DefaultOptions()
	bfOpts.TimeLimit = cfg.BFCutoff()

	lsOpts := tsp.DefaultOptions()
	lsOpts.TimeLimit = cfg.LSCutoff()

	return []Algorithm{
		{
			Name: "BF",
			Runs: 1,
			Solve: func(coords tsp.Coordinates, _ int64) (tsp.Result, error) {
				return tsp.TSPBruteForce(coords, bfOpts)
			},
		},
		{
			Name: "Approx",
			Runs: 1,
			Solve: func(coords tsp.Coordinates, _ int64) (tsp.Result, error) {
				return tsp.TSPApprox(coords)
			},
		},
		{
			Name: "LS",
			Runs: cfg.LSRuns,
			Solve: func(coords tsp.Coordinates, seed int64) (tsp.Result, error) {
				opts := lsOpts
				opts.Seed = seed
				return tsp.TSPGenetic(coords, opts)
			},
		},
	}
}

// RunInstance benchmarks every algorithm on the named instance.
// Solver errors land in the corresponding cell; only a load failure is
// returned as an error.
func (r Runner) RunInstance(name string) (Row, error) {
	inst, err := r.Loader.Load(name)
	if err != nil {
		return Row{}, err
	}
	r.info("instance loaded", "name", name, "dimension", inst.Dimension)

	row := Row{
		Instance:  name,
		Dimension: inst.Dimension,
		Cells:     make([]Cell, 0, len(r.Algorithms)),
	}

	for _, algo := range r.Algorithms {
		row.Cells = append(row.Cells, r.runCell(inst, algo))
	}

	// Best quality across all successful cells on this instance.
	best, haveBest := bestQuality(row.Cells)
	if haveBest {
		for i := range row.Cells {
			if row.Cells[i].Err == "" {
				row.Cells[i].RelError = RelativeError(row.Cells[i].Quality.Mean, best)
			}
		}
	}

	return row, nil
}

// runCell executes one algorithm's seeded repetitions on one instance.
func (r Runner) runCell(inst *tsplib.Instance, algo Algorithm) Cell {
	cell := Cell{Algo: algo.Name, Runs: algo.Runs, FullTour: true}

	var (
		qualities = make([]float64, 0, algo.Runs)
		times     = make([]float64, 0, algo.Runs)
		i         int
	)
	for i = 0; i < algo.Runs; i++ {
		seed := r.BaseSeed + int64(i)

		start := time.Now()
		res, err := algo.Solve(inst.Coords, seed)
		elapsed := time.Since(start)

		if err != nil {
			// Record and keep going: one bad cell must not sink the sweep.
			cell.Err = err.Error()
			cell.FullTour = false
			r.info("solver failed", "instance", inst.Name, "algo", algo.Name, "seed", seed, "err", err)

			return cell
		}

		qualities = append(qualities, res.Cost)
		times = append(times, elapsed.Seconds())
		if len(res.Tour) != inst.Dimension {
			cell.FullTour = false
		}
	}

	cell.Quality = Summarize(qualities)
	cell.Time = Summarize(times)
	r.info("solver finished", "instance", inst.Name, "algo", algo.Name,
		"best", cell.Quality.Best, "mean", cell.Quality.Mean, "time_mean_s", cell.Time.Mean)

	return cell
}

// RunAll benchmarks every named instance and returns the collected rows.
// A row-level (load) failure is logged and skipped, matching the
// per-instance isolation policy.
func (r Runner) RunAll(names []string) []Row {
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		row, err := r.RunInstance(name)
		if err != nil {
			r.info("instance skipped", "name", name, "err", err)
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

func (r Runner) info(msg string, args ...any) {
	if r.Log != nil {
		r.Log.Info(msg, args...)
	}
}

// bestQuality returns the minimum best quality over the successful cells.
func bestQuality(cells []Cell) (float64, bool) {
	var (
		best float64
		have bool
	)
	for _, c := range cells {
		if c.Err != "" || c.Quality.N == 0 {
			continue
		}
		if !have || c.Quality.Best < best {
			best = c.Quality.Best
			have = true
		}
	}

	return best, have
}
