package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/covec/pkg/covec/internalerr"
)

// Config holds the training parameters for a vector model
type Config struct {
	// WindowSize is the skip-gram window width in tokens.
	WindowSize int `yaml:"window_size"`

	// MinWordCount is the corpus-wide frequency floor; words occurring
	// fewer times are removed before windowing.
	MinWordCount int `yaml:"min_word_count"`

	// NumDimensions is the number of singular vectors retained by the
	// factorizer.
	NumDimensions int `yaml:"num_dimensions"`

	// MaxIterations caps the iterative SVD solver.
	MaxIterations int `yaml:"max_iterations"`

	// Epsilon is the PMI smoothing constant. Zero means plain PMI with
	// zero-co-occurrence pairs omitted.
	Epsilon float64 `yaml:"epsilon"`

	// StoplistPath optionally points at a YAML stopword list applied
	// during tokenization. Empty means no stopword filtering.
	StoplistPath string `yaml:"stoplist"`
}

// Default returns the standard training configuration
func Default() Config {
	return Config{
		WindowSize:    8,
		MinWordCount:  20,
		NumDimensions: 256,
		MaxIterations: 1000,
	}
}

// Load reads a configuration file, filling unset fields with defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every parameter is usable
func (c Config) Validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window_size must be >= 1, got %d", internalerr.ErrInvalidConfig, c.WindowSize)
	}
	if c.MinWordCount < 1 {
		return fmt.Errorf("%w: min_word_count must be >= 1, got %d", internalerr.ErrInvalidConfig, c.MinWordCount)
	}
	if c.NumDimensions < 1 {
		return fmt.Errorf("%w: num_dimensions must be >= 1, got %d", internalerr.ErrInvalidConfig, c.NumDimensions)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be >= 1, got %d", internalerr.ErrInvalidConfig, c.MaxIterations)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must be >= 0, got %f", internalerr.ErrInvalidConfig, c.Epsilon)
	}
	return nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stoplist: %w", err)
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist: %w", err)
	}

	return &sl, nil
}
