// SPDX-License-Identifier: MIT
// Package: resample/evaluate
//
// evaluate.go: the sequential fit/score loop.
//
// Contract:
//   • Partitions are evaluated in sequence order, one at a time.
//   • Every failure is wrapped with its partition index and aborts the run;
//     a failed run returns no report.
//   • The context is checked before each partition, not inside Fit/Score.

package evaluate

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/resample/split"
)

// Run fits and scores ev on every partition of seq, in order.
//
// For each partition i:
//  1. stop if the context is done;
//  2. OnPartition(i, p);
//  3. reject empty Train/Test sides;
//  4. model = Fit(Train); score = Score(model, Test);
//  5. reject scores outside [0,1];
//  6. OnScore(i, score).
//
// The first failure aborts the run and is returned wrapped with the
// partition index; no partial report is returned.
//
// Errors: ErrNilEvaluator, ErrNoPartitions, ErrEmptyTrain, ErrEmptyTest,
// ErrScoreOutOfRange, ErrOptionViolation, the context error, or any error
// from Fit, Score or OnScore.
func Run(ev Evaluator, seq iter.Seq2[int, split.Partition], opts ...Option) (*Report, error) {
	if ev == nil {
		return nil, ErrNilEvaluator
	}
	if seq == nil {
		return nil, ErrNoPartitions
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := &runner{ev: ev, opts: o}
	if err := r.run(seq); err != nil {
		return nil, err
	}
	if len(r.scores) == 0 {
		return nil, ErrNoPartitions
	}

	return newReport("", r.scores), nil
}

// CrossValidate validates s against n, then runs ev over its partitions.
// Options given by WithSplitOptions are forwarded to the strategy. With
// WithPartitioner the partitions come from the partitioner instead, and
// split options are rejected with ErrOptionViolation.
func CrossValidate(ev Evaluator, s split.Strategy, n int, opts ...Option) (*Report, error) {
	if ev == nil {
		return nil, ErrNilEvaluator
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil strategy", ErrOptionViolation)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	seq, err := o.partitions(s, n)
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("cross-validation started", "strategy", s.String(), "n", n)
	rep, err := Run(ev, seq, opts...)
	if err != nil {
		o.Logger.Error("cross-validation failed", "strategy", s.String(), "err", err)

		return nil, err
	}
	rep.Strategy = s.String()
	o.Logger.Info("cross-validation finished",
		"strategy", rep.Strategy, "partitions", len(rep.Scores), "mean", rep.Mean, "std", rep.StdDev)

	return rep, nil
}

// partitions resolves the partition sequence for CrossValidate.
func (o Options) partitions(s split.Strategy, n int) (iter.Seq2[int, split.Partition], error) {
	if o.Partitioner == nil {
		return s.Partitions(n, o.SplitOptions...)
	}
	if len(o.SplitOptions) > 0 {
		return nil, fmt.Errorf("%w: split options with a partitioner", ErrOptionViolation)
	}
	parts, err := o.Partitioner.Split(s, n)
	if err != nil {
		return nil, err
	}

	return slices.All(parts), nil
}

// runner holds the mutable state of one Run.
type runner struct {
	ev     Evaluator
	opts   Options
	scores []float64
}

// run drains seq, stopping at the first failure.
//
// Complexity: O(P) calls to Fit and Score for P partitions.
func (r *runner) run(seq iter.Seq2[int, split.Partition]) error {
	ctx := r.opts.Ctx
	for i, p := range seq {
		// 1) Cancellation is observed between partitions.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("evaluate: partition %d: %w", i, err)
		}
		r.opts.OnPartition(i, p)

		// 2) Fit and score; evaluate wraps its own errors.
		score, err := r.evaluate(i, p)
		if err != nil {
			return err
		}

		// 3) A hook error aborts the run like any other failure.
		if err := r.opts.OnScore(i, score); err != nil {
			return fmt.Errorf("evaluate: on-score partition %d: %w", i, err)
		}
		r.scores = append(r.scores, score)
		r.opts.Logger.Debug("partition scored",
			"partition", i, "train", len(p.Train), "test", len(p.Test), "score", score)
	}

	return nil
}

// evaluate fits and scores one partition and range-checks the score.
func (r *runner) evaluate(i int, p split.Partition) (float64, error) {
	if len(p.Train) == 0 {
		return 0, fmt.Errorf("%w: partition %d", ErrEmptyTrain, i)
	}
	if len(p.Test) == 0 {
		return 0, fmt.Errorf("%w: partition %d", ErrEmptyTest, i)
	}

	ctx := r.opts.Ctx
	m, err := r.ev.Fit(ctx, p.Train)
	if err != nil {
		return 0, fmt.Errorf("evaluate: fit partition %d: %w", i, err)
	}
	score, err := r.ev.Score(ctx, m, p.Test)
	if err != nil {
		return 0, fmt.Errorf("evaluate: score partition %d: %w", i, err)
	}
	if math.IsNaN(score) || score < 0 || score > 1 {
		return 0, fmt.Errorf("%w: partition %d scored %v", ErrScoreOutOfRange, i, score)
	}

	return score, nil
}
