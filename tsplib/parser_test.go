package tsplib_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsplab/tspbench/tsp"
	"github.com/tsplab/tspbench/tsplib"
)

const sampleInstance = `NAME: Toy4
COMMENT: four corners of the unit square
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0.0 0.0
2 1.0 0.0
3 1.0 1.0
4 0.0 1.0
EOF
`

func TestParse_Sample(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	require.Equal(t, "Toy4", inst.Name)
	require.Equal(t, 4, inst.Dimension)
	require.Len(t, inst.Coords, 4)
	require.Equal(t, tsp.Point{X: 1, Y: 1}, inst.Coords[3])
}

func TestParse_SpacedHeaders(t *testing.T) {
	// TSPLIB files in the wild write "KEY : value" as often as "KEY: value".
	content := `NAME : spaced
DIMENSION : 2
NODE_COORD_SECTION
1 0 0
2 5 0
EOF
`
	inst, err := tsplib.Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, "spaced", inst.Name)
	require.Equal(t, 2, inst.Dimension)
}

func TestParse_FractionalAndNegativeCoordinates(t *testing.T) {
	content := `NAME: frac
DIMENSION: 2
NODE_COORD_SECTION
10 -1.5 2.25
20 3e2 -0.5
EOF
`
	inst, err := tsplib.Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, tsp.Point{X: -1.5, Y: 2.25}, inst.Coords[10])
	require.Equal(t, tsp.Point{X: 300, Y: -0.5}, inst.Coords[20])
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"missing name": `DIMENSION: 1
NODE_COORD_SECTION
1 0 0
EOF
`,
		"missing dimension": `NAME: x
NODE_COORD_SECTION
1 0 0
EOF
`,
		"no coordinates": `NAME: x
DIMENSION: 1
EOF
`,
		"dimension mismatch": `NAME: x
DIMENSION: 3
NODE_COORD_SECTION
1 0 0
2 1 1
EOF
`,
		"short coordinate line": `NAME: x
DIMENSION: 1
NODE_COORD_SECTION
1 0
EOF
`,
		"non-numeric id": `NAME: x
DIMENSION: 1
NODE_COORD_SECTION
a 0 0
EOF
`,
		"duplicate id": `NAME: x
DIMENSION: 2
NODE_COORD_SECTION
1 0 0
1 1 1
EOF
`,
		"bad dimension value": `NAME: x
DIMENSION: many
NODE_COORD_SECTION
1 0 0
EOF
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(content))
			require.ErrorIs(t, err, tsplib.ErrInvalidFormat)
		})
	}
}
