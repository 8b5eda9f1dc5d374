package tsplib

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheCapacity bounds the loader cache when callers pass a
// non-positive capacity. A benchmark sweep touches each instance once per
// solver, so even a small cache removes all repeated parsing.
const defaultCacheCapacity = 64

// Loader resolves instance names against a data directory and caches
// parsed instances in an LRU. Parsed instances are treated as immutable;
// callers must not mutate the returned Coords. Safe for concurrent use
// (the underlying cache is synchronized).
type Loader struct {
	dataDir string
	cache   *lru.Cache[string, *Instance]
}

// NewLoader creates a Loader rooted at dataDir with the given cache
// capacity (<= 0 selects defaultCacheCapacity).
func NewLoader(dataDir string, cacheCapacity int) (*Loader, error) {
	if cacheCapacity <= 0 {
		cacheCapacity = defaultCacheCapacity
	}
	cache, err := lru.New[string, *Instance](cacheCapacity)
	if err != nil {
		return nil, err
	}

	return &Loader{dataDir: dataDir, cache: cache}, nil
}

// Load returns the parsed instance for name (without the .tsp extension),
// from cache when possible.
func (l *Loader) Load(name string) (*Instance, error) {
	path := filepath.Join(l.dataDir, name+".tsp")
	if inst, ok := l.cache.Get(path); ok {
		return inst, nil
	}

	inst, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	l.cache.Add(path, inst)

	return inst, nil
}

// List enumerates the instance names (file base names without .tsp) found
// in the loader's data directory, sorted ascending.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".tsp") {
			names = append(names, strings.TrimSuffix(n, ".tsp"))
		}
	}
	sort.Strings(names)

	return names, nil
}
