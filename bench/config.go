package bench

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a harness configuration is internally
// inconsistent.
var ErrInvalidConfig = errors.New("bench: invalid configuration")

// Config is the harness configuration. It is loadable from YAML and
// overridable from flags; DefaultConfig supplies the canonical values.
type Config struct {
	// DataDir holds the *.tsp instance files.
	DataDir string `yaml:"data-dir"`

	// Out is the results CSV path.
	Out string `yaml:"out"`

	// BFCutoffSeconds bounds each brute-force run.
	BFCutoffSeconds float64 `yaml:"bf-cutoff-seconds"`

	// LSCutoffSeconds bounds each genetic (local search) run.
	LSCutoffSeconds float64 `yaml:"ls-cutoff-seconds"`

	// LSRuns is the number of seeded genetic repetitions per instance.
	LSRuns int `yaml:"ls-runs"`

	// BaseSeed is the first genetic seed; run i uses BaseSeed+i.
	BaseSeed int64 `yaml:"base-seed"`

	// CacheCapacity bounds the parsed-instance LRU (0 ⇒ loader default).
	CacheCapacity int `yaml:"cache-capacity"`
}

// DefaultConfig mirrors the harness defaults: 60 s cutoffs and ten seeded
// local-search runs starting at seed 0.
func DefaultConfig() Config {
	return Config{
		DataDir:         "DATA",
		Out:             "results.csv",
		BFCutoffSeconds: 60,
		LSCutoffSeconds: 60,
		LSRuns:          10,
		BaseSeed:        0,
	}
}

// ReadConfig loads YAML from path over DefaultConfig, so absent keys keep
// their defaults.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the knob ranges.
func (c Config) Validate() error {
	if c.DataDir == "" || c.Out == "" {
		return ErrInvalidConfig
	}
	if c.BFCutoffSeconds <= 0 || c.LSCutoffSeconds <= 0 {
		return ErrInvalidConfig
	}
	if c.LSRuns <= 0 {
		return ErrInvalidConfig
	}
	if c.CacheCapacity < 0 {
		return ErrInvalidConfig
	}

	return nil
}

// BFCutoff returns the brute-force budget as a duration.
func (c Config) BFCutoff() time.Duration {
	return time.Duration(c.BFCutoffSeconds * float64(time.Second))
}

// LSCutoff returns the local-search budget as a duration.
func (c Config) LSCutoff() time.Duration {
	return time.Duration(c.LSCutoffSeconds * float64(time.Second))
}
