package tsplib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tsplab/tspbench/tsplib"
)

func writeInstance(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_LoadCaches(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "toy4.tsp", sampleInstance)

	loader, err := tsplib.NewLoader(dir, 0)
	require.NoError(t, err)

	first, err := loader.Load("toy4")
	require.NoError(t, err)
	require.Equal(t, 4, first.Dimension)

	// Second load must be a cache hit: same pointer, even after the file
	// is gone.
	require.NoError(t, os.Remove(filepath.Join(dir, "toy4.tsp")))
	second, err := loader.Load("toy4")
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestLoader_LoadMissing(t *testing.T) {
	loader, err := tsplib.NewLoader(t.TempDir(), 4)
	require.NoError(t, err)

	_, err = loader.Load("nope")
	require.Error(t, err)
}

func TestLoader_List(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "berlin52.tsp", sampleInstance)
	writeInstance(t, dir, "att48.tsp", sampleInstance)
	writeInstance(t, dir, "notes.txt", "not an instance")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.tsp"), 0o755))

	loader, err := tsplib.NewLoader(dir, 0)
	require.NoError(t, err)

	names, err := loader.List()
	require.NoError(t, err)
	require.Equal(t, []string{"att48", "berlin52"}, names)
}
