// Package tsplib reads TSP instances in the TSPLIB coordinate format.
//
// The parser extracts the subset of the format the solvers consume: the
// instance NAME, its DIMENSION and the NODE_COORD_SECTION of vertex
// ID / x / y triples. Both "KEY: value" and "KEY : value" spellings are
// accepted; everything else (EDGE_WEIGHT_TYPE, COMMENT, …) is skipped.
//
// Design:
//   - Fail loudly on malformed input: every defect wraps ErrInvalidFormat
//     with the offending detail, so callers can branch on the sentinel and
//     log the specifics.
//   - No logging, no panics; pure line-by-line scan, O(file) time.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsplab/tspbench/tsp"
)

// ErrInvalidFormat is returned (wrapped) for any structural defect of the
// instance file: missing NAME or DIMENSION, an empty coordinate section,
// unparsable coordinate lines, or a DIMENSION/coordinate-count mismatch.
var ErrInvalidFormat = errors.New("tsplib: invalid instance format")

// Instance is one parsed TSP instance.
type Instance struct {
	// Name is the NAME header value.
	Name string

	// Dimension is the DIMENSION header value; always equal to
	// len(Coords) for a successfully parsed instance.
	Dimension int

	// Coords maps vertex ID to its 2D point. IDs come from the file
	// verbatim (TSPLIB numbers them from 1).
	Coords tsp.Coordinates
}

// Parse reads a TSPLIB coordinate instance from r.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst = Instance{Coords: tsp.Coordinates{}}

		haveName      bool
		haveDimension bool
		inCoords      bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if line == "" || line == "EOF" {
			if inCoords {
				break
			}
			continue
		}

		if !inCoords {
			switch {
			case strings.HasPrefix(line, "NAME"):
				v, ok := headerValue(line)
				if !ok {
					return nil, fmt.Errorf("%w: malformed NAME line %q", ErrInvalidFormat, line)
				}
				inst.Name = v
				haveName = true
				continue
			case strings.HasPrefix(line, "DIMENSION"):
				v, ok := headerValue(line)
				if !ok {
					return nil, fmt.Errorf("%w: malformed DIMENSION line %q", ErrInvalidFormat, line)
				}
				d, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("%w: DIMENSION %q is not an integer", ErrInvalidFormat, v)
				}
				inst.Dimension = d
				haveDimension = true
				continue
			case line == "NODE_COORD_SECTION":
				inCoords = true
				continue
			default:
				continue // unrelated header (COMMENT, TYPE, EDGE_WEIGHT_TYPE, …)
			}
		}

		// Coordinate triple: <id> <x> <y>.
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: malformed coordinate line %q", ErrInvalidFormat, line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: vertex ID %q is not an integer", ErrInvalidFormat, fields[0])
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: x coordinate %q", ErrInvalidFormat, fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: y coordinate %q", ErrInvalidFormat, fields[2])
		}
		if _, dup := inst.Coords[id]; dup {
			return nil, fmt.Errorf("%w: duplicate vertex ID %d", ErrInvalidFormat, id)
		}
		inst.Coords[id] = tsp.Point{X: x, Y: y}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !haveName || !haveDimension || len(inst.Coords) == 0 {
		return nil, fmt.Errorf("%w: missing NAME, DIMENSION or coordinates", ErrInvalidFormat)
	}
	if inst.Dimension != len(inst.Coords) {
		return nil, fmt.Errorf("%w: DIMENSION %d but %d coordinates",
			ErrInvalidFormat, inst.Dimension, len(inst.Coords))
	}

	return &inst, nil
}

// ParseFile reads and parses the instance at path.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// headerValue splits "KEY: value" / "KEY : value" and returns the trimmed
// value part.
func headerValue(line string) (string, bool) {
	_, v, ok := strings.Cut(line, ":")
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}

	return v, true
}
