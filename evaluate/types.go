// SPDX-License-Identifier: MIT
// Package: resample/evaluate
//
// types.go: the Evaluator contract, options and sentinel errors.

// Package evaluate defines the Model Evaluator contract and the loop that
// fits and scores a model over a sequence of split partitions.
package evaluate

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/resample/internal/logging"
	"github.com/katalvlaran/resample/split"
)

// Sentinel errors for evaluation.
var (
	// ErrNilEvaluator is returned when no evaluator (or a nil fit/score
	// function) is supplied.
	ErrNilEvaluator = errors.New("evaluate: evaluator is nil")

	// ErrNoPartitions is returned when the partition sequence is nil or empty.
	ErrNoPartitions = errors.New("evaluate: no partitions to evaluate")

	// ErrEmptyTrain is returned for a partition without training indices.
	ErrEmptyTrain = errors.New("evaluate: partition has an empty train set")

	// ErrEmptyTest is returned for a partition without test indices.
	ErrEmptyTest = errors.New("evaluate: partition has an empty test set")

	// ErrScoreOutOfRange is returned when Score reports an accuracy outside [0,1].
	ErrScoreOutOfRange = errors.New("evaluate: score outside [0,1]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("evaluate: invalid option supplied")
)

// Model is whatever the caller's Fit returns; the loop only hands it back
// to Score.
type Model any

// Evaluator is the caller-supplied modeling capability. Fit trains on the
// given row indices; Score returns the accuracy of a trained model on the
// given row indices, in [0,1].
type Evaluator interface {
	Fit(ctx context.Context, train []int) (Model, error)
	Score(ctx context.Context, m Model, test []int) (float64, error)
}

// EvaluatorFuncs adapts a pair of functions to Evaluator.
type EvaluatorFuncs struct {
	FitFunc   func(ctx context.Context, train []int) (Model, error)
	ScoreFunc func(ctx context.Context, m Model, test []int) (float64, error)
}

// Fit calls FitFunc.
func (f EvaluatorFuncs) Fit(ctx context.Context, train []int) (Model, error) {
	if f.FitFunc == nil {
		return nil, fmt.Errorf("%w: FitFunc", ErrNilEvaluator)
	}

	return f.FitFunc(ctx, train)
}

// Score calls ScoreFunc.
func (f EvaluatorFuncs) Score(ctx context.Context, m Model, test []int) (float64, error) {
	if f.ScoreFunc == nil {
		return 0, fmt.Errorf("%w: ScoreFunc", ErrNilEvaluator)
	}

	return f.ScoreFunc(ctx, m, test)
}

// Partitioner supplies the partitions of a strategy. A *cache.Partitioner
// shared across several CrossValidate calls makes them score identical
// folds while shuffling only once.
type Partitioner interface {
	Split(s split.Strategy, n int) ([]split.Partition, error)
}

// Option configures Run and CrossValidate.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the evaluation knobs and hooks.
type Options struct {
	// Ctx is passed to Fit/Score and checked before each partition.
	Ctx context.Context

	// Logger receives a debug line per partition and an info summary.
	Logger logging.Logger

	// SplitOptions are forwarded to Strategy.Partitions by CrossValidate.
	SplitOptions []split.Option

	// Partitioner, when set, replaces Strategy.Partitions in CrossValidate.
	Partitioner Partitioner

	// OnPartition is called before a partition is fitted.
	OnPartition func(i int, p split.Partition)

	// OnScore is called after a partition is scored. Returning an error
	// aborts the evaluation; the error is wrapped with the partition index.
	OnScore func(i int, score float64) error

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      logging.NewNop(),
		OnPartition: func(int, split.Partition) {},
		OnScore:     func(int, float64) error { return nil },
	}
}

// WithContext sets the context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)

			return
		}
		o.Ctx = ctx
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSplitOptions forwards options (WithRand, WithSeed, WithShuffle) to
// the strategy in CrossValidate. Run ignores them.
func WithSplitOptions(opts ...split.Option) Option {
	return func(o *Options) {
		o.SplitOptions = append(o.SplitOptions, opts...)
	}
}

// WithPartitioner makes CrossValidate take its partitions from p.
// Run ignores it. A nil p is an ErrOptionViolation.
func WithPartitioner(p Partitioner) Option {
	return func(o *Options) {
		if p == nil {
			o.err = fmt.Errorf("%w: nil partitioner", ErrOptionViolation)

			return
		}
		o.Partitioner = p
	}
}

// WithOnPartition registers a hook run before each partition is fitted.
func WithOnPartition(fn func(i int, p split.Partition)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPartition = fn
		}
	}
}

// WithOnScore registers a hook run after each partition is scored.
func WithOnScore(fn func(i int, score float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScore = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
