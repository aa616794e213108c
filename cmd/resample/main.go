// Command resample prints the train/test partitions of a resampling recipe.
//
// The recipe comes from a YAML file (see package config) and/or flags;
// flags override file values:
//
//	resample --config recipe.yaml
//	resample -n 768 --kind kfold -k 10 --seed 7 --format json
//	resample -n 100 --kind repeated --repeats 10 --test-fraction 0.33
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/katalvlaran/resample/config"
	"github.com/katalvlaran/resample/internal/logging"
	"github.com/katalvlaran/resample/split"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatSummary = "summary"
	formatJSON    = "json"
	formatYAML    = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

type args struct {
	Config       string   `arg:"-c,--config" help:"YAML recipe file"`
	Kind         *string  `arg:"--kind" help:"strategy: holdout, kfold, loo, repeated"`
	Size         *int     `arg:"-n,--size" help:"dataset size (number of rows)"`
	K            *int     `arg:"-k,--folds" help:"fold count for kfold"`
	Seed         *int64   `arg:"--seed" help:"random seed"`
	TestFraction *float64 `arg:"--test-fraction" help:"test share for holdout and repeated, in (0,1)"`
	Repeats      *int     `arg:"--repeats" help:"repeat count for repeated"`
	NoShuffle    bool     `arg:"--no-shuffle" help:"kfold: cut contiguous folds without shuffling"`
	Format       string   `arg:"-f,--format" default:"summary" help:"output format: summary, json, yaml"`
	Check        bool     `arg:"--check" help:"verify every partition covers the dataset without overlap"`
	Verbose      bool     `arg:"-v,--verbose" help:"debug logging on stderr"`
}

func (args) Version() string {
	return "resample 0.1.0"
}

func (args) Description() string {
	return `Generate train/test partitions (hold-out, k-fold, leave-one-out, repeated random splits) for a dataset of n rows.`
}

// partitionOut is the serialized form of one partition.
type partitionOut struct {
	Index int   `json:"index" yaml:"index"`
	Train []int `json:"train" yaml:"train,flow"`
	Test  []int `json:"test" yaml:"test,flow"`
}

type output struct {
	Strategy    string         `json:"strategy" yaml:"strategy"`
	DatasetSize int            `json:"dataset_size" yaml:"dataset_size"`
	Partitions  []partitionOut `json:"partitions" yaml:"partitions"`
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := newLogger(a.Verbose)
	if err := run(a, os.Stdout, logger); err != nil {
		logger.Error("resample failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) logging.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return logging.NewSlog(slog.New(h))
}

func run(a args, w io.Writer, log logging.Logger) error {
	switch a.Format {
	case formatSummary, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, a.Format)
	}

	cfg, err := recipe(a)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s, err := cfg.BuildStrategy()
	if err != nil {
		return err
	}
	seq, err := s.Partitions(cfg.DatasetSize)
	if err != nil {
		return err
	}
	log.Debug("generating partitions", "strategy", s.String(), "n", cfg.DatasetSize)

	out := output{Strategy: s.String(), DatasetSize: cfg.DatasetSize}
	for i, p := range seq {
		if a.Check {
			if err := split.Check(cfg.DatasetSize, p); err != nil {
				return fmt.Errorf("partition %d: %w", i, err)
			}
		}
		if a.Format == formatSummary {
			if _, err := fmt.Fprintf(w, "fold=%d train=%d test=%d\n", i, len(p.Train), len(p.Test)); err != nil {
				return err
			}

			continue
		}
		out.Partitions = append(out.Partitions, partitionOut{Index: i, Train: p.Train, Test: p.Test})
	}

	switch a.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(out); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", a.Format, err)
	}
	log.Debug("partitions written", "strategy", out.Strategy, "format", a.Format)

	return nil
}

// recipe loads the config file, if any, and applies flag overrides.
func recipe(a args) (*config.Config, error) {
	cfg := config.Default()
	if a.Config != "" {
		loaded, err := config.Load(a.Config)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if a.Kind != nil {
		cfg.Strategy.Kind = *a.Kind
	}
	if a.Size != nil {
		cfg.DatasetSize = *a.Size
	}
	if a.K != nil {
		cfg.Strategy.K = *a.K
	}
	if a.Seed != nil {
		cfg.Strategy.Seed = *a.Seed
	}
	if a.TestFraction != nil {
		cfg.Strategy.TestFraction = *a.TestFraction
	}
	if a.Repeats != nil {
		cfg.Strategy.Repeats = *a.Repeats
	}
	if a.NoShuffle {
		cfg.Strategy.Shuffle = false
	}

	return &cfg, nil
}
