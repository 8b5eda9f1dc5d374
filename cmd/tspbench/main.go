// Command tspbench benchmarks the three TSP solvers over every instance
// in a data directory and writes the aggregated results CSV.
//
// Usage:
//
//	tspbench [-config bench.yaml] [-data DATA] [-out results.csv]
//	         [-bf-cutoff 60] [-ls-cutoff 60] [-ls-runs 10] [-seed 0]
//
// Flags override values loaded from the optional YAML config.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsplab/tspbench/bench"
	"github.com/tsplab/tspbench/tsplib"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		dataDir    = flag.String("data", "", "directory with .tsp instance files")
		out        = flag.String("out", "", "results CSV path")
		bfCutoff   = flag.Float64("bf-cutoff", 0, "brute-force cutoff in seconds")
		lsCutoff   = flag.Float64("ls-cutoff", 0, "local-search cutoff in seconds")
		lsRuns     = flag.Int("ls-runs", 0, "seeded local-search runs per instance")
		baseSeed   = flag.Int64("seed", -1, "base seed for local-search runs")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := bench.DefaultConfig()
	if *configPath != "" {
		loaded, err := bench.ReadConfig(*configPath)
		if err != nil {
			log.Error("config load failed", "path", *configPath, "err", err)
			os.Exit(2)
		}
		cfg = loaded
	}

	// Flag overrides (zero values mean "keep config").
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *out != "" {
		cfg.Out = *out
	}
	if *bfCutoff > 0 {
		cfg.BFCutoffSeconds = *bfCutoff
	}
	if *lsCutoff > 0 {
		cfg.LSCutoffSeconds = *lsCutoff
	}
	if *lsRuns > 0 {
		cfg.LSRuns = *lsRuns
	}
	if *baseSeed >= 0 {
		cfg.BaseSeed = *baseSeed
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	loader, err := tsplib.NewLoader(cfg.DataDir, cfg.CacheCapacity)
	if err != nil {
		log.Error("loader init failed", "err", err)
		os.Exit(1)
	}
	names, err := loader.List()
	if err != nil {
		log.Error("instance listing failed", "dir", cfg.DataDir, "err", err)
		os.Exit(1)
	}
	if len(names) == 0 {
		log.Error("no .tsp instances found", "dir", cfg.DataDir)
		os.Exit(1)
	}
	log.Info("benchmark starting", "instances", len(names),
		"bf_cutoff_s", cfg.BFCutoffSeconds, "ls_cutoff_s", cfg.LSCutoffSeconds, "ls_runs", cfg.LSRuns)

	runner := bench.Runner{
		Loader:     loader,
		Algorithms: bench.StandardAlgorithms(cfg),
		BaseSeed:   cfg.BaseSeed,
		Log:        log,
	}

	rows := runner.RunAll(names)
	if err := bench.WriteCSV(cfg.Out, rows); err != nil {
		log.Error("CSV write failed", "path", cfg.Out, "err", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", cfg.Out)
}
