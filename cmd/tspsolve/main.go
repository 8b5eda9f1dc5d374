// Command tspsolve runs one TSP solver on one TSPLIB instance and writes
// the two-line solution file.
//
// Usage:
//
//	tspsolve -inst <name> -alg BF|Approx|LS -time <seconds> [-seed <seed>] [-data DATA] [-out .]
//
// The instance name is resolved as <data>/<name>.tsp. The cutoff bounds
// the BF and LS solvers; Approx ignores it. The seed is consumed only by
// LS and recorded in the solution file name.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tsplab/tspbench/report"
	"github.com/tsplab/tspbench/tsp"
	"github.com/tsplab/tspbench/tsplib"
)

func main() {
	var (
		inst    = flag.String("inst", "", "instance name (without .tsp)")
		alg     = flag.String("alg", "BF", "algorithm: BF, Approx or LS")
		cutoff  = flag.Float64("time", 60, "cutoff time in seconds")
		seed    = flag.Int64("seed", 0, "random seed (LS only)")
		dataDir = flag.String("data", "DATA", "directory with .tsp instance files")
		outDir  = flag.String("out", ".", "directory for the .sol file")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *inst == "" {
		fmt.Fprintln(os.Stderr, "missing -inst")
		flag.Usage()
		os.Exit(2)
	}
	if *cutoff <= 0 {
		fmt.Fprintln(os.Stderr, "cutoff time must be positive")
		os.Exit(2)
	}

	loader, err := tsplib.NewLoader(*dataDir, 0)
	if err != nil {
		log.Error("loader init failed", "err", err)
		os.Exit(1)
	}
	instance, err := loader.Load(*inst)
	if err != nil {
		log.Error("instance load failed", "name", *inst, "err", err)
		os.Exit(1)
	}
	log.Info("instance loaded", "name", instance.Name, "dimension", instance.Dimension)

	budget := time.Duration(*cutoff * float64(time.Second))
	opts := tsp.DefaultOptions()
	opts.TimeLimit = budget
	opts.Seed = *seed

	var (
		res    tsp.Result
		seeded bool
	)
	start := time.Now()
	switch *alg {
	case "BF":
		res, err = tsp.TSPBruteForce(instance.Coords, opts)
	case "Approx":
		res, err = tsp.TSPApprox(instance.Coords)
	case "LS":
		seeded = true
		res, err = tsp.TSPGenetic(instance.Coords, opts)
	default:
		fmt.Fprintf(os.Stderr, "unknown algorithm %q; want BF, Approx or LS\n", *alg)
		os.Exit(2)
	}
	elapsed := time.Since(start)

	if err != nil {
		log.Error("solve failed", "algo", *alg, "err", err)
		os.Exit(1)
	}
	log.Info("solved", "algo", *alg, "cost", res.Cost, "elapsed", elapsed)

	path, err := report.WriteSolution(*outDir, instance.Name, *alg, int(*cutoff), *seed, seeded, res)
	if err != nil {
		log.Error("solution write failed", "err", err)
		os.Exit(1)
	}
	fmt.Println("Solution written to:", path)
}
