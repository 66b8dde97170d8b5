package harness

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isomorph/refine"
)

// ErrInvalidConfig is returned by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("harness: invalid config")

// Config describes one batch run.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Mode is the refinement mode name ("canonical" or "weightmap").
	Mode string `yaml:"mode"`

	// Workers parallelizes each refinement (refine.WithWorkers).
	Workers int `yaml:"workers"`

	// Parallel bounds the number of pairs decided concurrently.
	Parallel int `yaml:"parallel"`

	// Strict makes unresolved ties inconclusive instead of individualizing.
	Strict bool `yaml:"strict"`

	// FailureDir, when set, receives DOT and vflib dumps of failed pairs.
	FailureDir string `yaml:"failure_dir"`

	// Corpus configures CorpusSource.
	Corpus CorpusConfig `yaml:"corpus"`

	// Random configures RandomSource and PermutedSource.
	Random RandomConfig `yaml:"random"`
}

// CorpusConfig names the pair files of a vflib graph database.
type CorpusConfig struct {
	Dir string `yaml:"dir"`

	// PatternA and PatternB are fmt patterns taking (size, index).
	PatternA string `yaml:"pattern_a"`
	PatternB string `yaml:"pattern_b"`

	Sizes []int `yaml:"sizes"`
	First int   `yaml:"first"`
	Last  int   `yaml:"last"`

	// Isomorphic marks every corpus pair as known-isomorphic.
	Isomorphic bool `yaml:"isomorphic"`
}

// RandomConfig drives the random sources.
type RandomConfig struct {
	NodesMin        int     `yaml:"nodes_min"`
	NodesMax        int     `yaml:"nodes_max"`
	Iterations      int     `yaml:"iterations"`
	EdgeProbability float64 `yaml:"edge_probability"`
	Seed            int64   `yaml:"seed"`
}

// DefaultConfig returns the settings of the reference batch: size-20 pairs
// 00..99 of the r001 isomorphic corpus, and one dense random pair of
// 10..50 vertices.
func DefaultConfig() Config {
	return Config{
		Mode:     refine.ModeCanonicalForm.String(),
		Workers:  1,
		Parallel: 4,
		Corpus: CorpusConfig{
			Dir:        "graphs",
			PatternA:   "iso_r001_s%d.A%02d",
			PatternB:   "iso_r001_s%d.B%02d",
			Sizes:      []int{20},
			First:      0,
			Last:       99,
			Isomorphic: true,
		},
		Random: RandomConfig{
			NodesMin:        10,
			NodesMax:        50,
			Iterations:      1,
			EdgeProbability: 0.5,
			Seed:            1,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %s: %v: %w", path, err, ErrInvalidConfig)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// RefineMode parses Mode.
func (c Config) RefineMode() (refine.Mode, error) {
	m, err := refine.ParseMode(c.Mode)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return m, nil
}

// Validate checks every field that a run depends on.
func (c Config) Validate() error {
	if _, err := c.RefineMode(); err != nil {
		return err
	}
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidConfig, c.Workers)
	case c.Parallel < 1:
		return fmt.Errorf("%w: parallel must be ≥ 1, got %d", ErrInvalidConfig, c.Parallel)
	case c.Corpus.First < 0 || c.Corpus.Last < c.Corpus.First:
		return fmt.Errorf("%w: corpus index range [%d,%d]", ErrInvalidConfig, c.Corpus.First, c.Corpus.Last)
	case c.Random.NodesMin < 1 || c.Random.NodesMax < c.Random.NodesMin:
		return fmt.Errorf("%w: random nodes range [%d,%d]", ErrInvalidConfig, c.Random.NodesMin, c.Random.NodesMax)
	case c.Random.Iterations < 0:
		return fmt.Errorf("%w: random iterations must be ≥ 0, got %d", ErrInvalidConfig, c.Random.Iterations)
	case c.Random.EdgeProbability < 0 || c.Random.EdgeProbability > 1:
		return fmt.Errorf("%w: edge probability %.3f not in [0,1]", ErrInvalidConfig, c.Random.EdgeProbability)
	}
	for _, s := range c.Corpus.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: corpus size %d", ErrInvalidConfig, s)
		}
	}

	return nil
}
