// Package config loads resampling recipes from YAML.
//
// A recipe names the dataset size and the strategy:
//
//	dataset_size: 768
//	strategy:
//	  kind: kfold          # holdout | kfold | loo | repeated
//	  k: 10
//	  seed: 7
//	  test_fraction: 0.33  # holdout, repeated
//	  repeats: 10          # repeated
//	  shuffle: true        # kfold
//
// Absent keys keep the values of Default. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/resample/split"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for a strategy kind other than the split.Kind* values.
var ErrUnknownKind = errors.New("config: unknown strategy kind")

// Defaults applied before a document is decoded.
const (
	DefaultKind         = split.KindKFold
	DefaultK            = 10
	DefaultSeed         = int64(7)
	DefaultTestFraction = 0.33
	DefaultRepeats      = 10
)

// Config is the root of a recipe file.
type Config struct {
	DatasetSize int            `yaml:"dataset_size"` // number of rows, > 0
	Strategy    StrategyConfig `yaml:"strategy"`
}

// StrategyConfig describes one split.Strategy. Fields that do not apply
// to Kind are ignored.
type StrategyConfig struct {
	Kind         string  `yaml:"kind"`          // holdout | kfold | loo | repeated
	K            int     `yaml:"k"`             // kfold
	Seed         int64   `yaml:"seed"`          // holdout, kfold, repeated
	TestFraction float64 `yaml:"test_fraction"` // holdout, repeated
	Repeats      int     `yaml:"repeats"`       // repeated
	Shuffle      bool    `yaml:"shuffle"`       // kfold
}

// Default returns the recipe defaults; DatasetSize is left at 0 and must
// be provided.
func Default() Config {
	return Config{
		Strategy: StrategyConfig{
			Kind:         DefaultKind,
			K:            DefaultK,
			Seed:         DefaultSeed,
			TestFraction: DefaultTestFraction,
			Repeats:      DefaultRepeats,
			Shuffle:      true,
		},
	}
}

// Load reads and parses the recipe at path. The result is not validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a recipe over Default. An empty document yields the
// defaults. The result is not validated.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &cfg, nil
}

// BuildStrategy builds the split.Strategy described by c.Strategy.
func (c *Config) BuildStrategy() (split.Strategy, error) {
	return c.Strategy.Build()
}

// Validate checks that the strategy can partition DatasetSize rows.
// split sentinels (ErrEmptyDataset, ErrInvalidK, ...) are preserved.
func (c *Config) Validate() error {
	s, err := c.Strategy.Build()
	if err != nil {
		return err
	}
	if err := s.Validate(c.DatasetSize); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Build converts the description into a split.Strategy.
func (sc StrategyConfig) Build() (split.Strategy, error) {
	switch sc.Kind {
	case split.KindHoldOut:
		return split.HoldOutStrategy{TestFraction: sc.TestFraction, Seed: sc.Seed}, nil
	case split.KindKFold:
		return split.KFoldStrategy{K: sc.K, Seed: sc.Seed, NoShuffle: !sc.Shuffle}, nil
	case split.KindLeaveOneOut:
		return split.LeaveOneOutStrategy{}, nil
	case split.KindRepeated:
		return split.RepeatedSplitStrategy{Repeats: sc.Repeats, TestFraction: sc.TestFraction, Seed: sc.Seed}, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of: %s, %s, %s, %s)", ErrUnknownKind, sc.Kind,
			split.KindHoldOut, split.KindKFold, split.KindLeaveOneOut, split.KindRepeated)
	}
}
