// Package report serializes solver results into the two-line solution
// format consumed by the grading/benchmark tooling:
//
//	Line 1: tour length, formatted to 2 decimal places.
//	Line 2: comma-separated vertex IDs in tour order.
//
// File names follow the "<instance> <method> <cutoff>[ <seed>].sol"
// convention, with the instance name lower-cased.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsplab/tspbench/tsp"
)

// SolutionFileName builds the canonical solution file name. The seed
// component is included only when seeded is true (the brute-force and
// approximation methods take no seed).
func SolutionFileName(instance, method string, cutoffSeconds int, seed int64, seeded bool) string {
	base := fmt.Sprintf("%s %s %d", strings.ToLower(instance), method, cutoffSeconds)
	if seeded {
		base += " " + strconv.FormatInt(seed, 10)
	}

	return base + ".sol"
}

// FormatSolution renders the two-line record for res.
func FormatSolution(res tsp.Result) string {
	ids := make([]string, len(res.Tour))
	for i, v := range res.Tour {
		ids[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("%.2f\n%s\n", res.Cost, strings.Join(ids, ", "))
}

// WriteSolution writes the solution file for res into dir and returns the
// full path written.
func WriteSolution(dir, instance, method string, cutoffSeconds int, seed int64, seeded bool, res tsp.Result) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	path := filepath.Join(dir, SolutionFileName(instance, method, cutoffSeconds, seed, seeded))
	if err := os.WriteFile(path, []byte(FormatSolution(res)), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
