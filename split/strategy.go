// SPDX-License-Identifier: MIT
// Package: resample/split
//
// strategy.go: Strategy values that bind generator parameters to a name.

package split

import (
	"fmt"
	"iter"
	"strconv"
)

// Strategy kinds, as used by String and by recipe files.
const (
	KindHoldOut     = "holdout"
	KindKFold       = "kfold"
	KindLeaveOneOut = "loo"
	KindRepeated    = "repeated"
)

// Strategy is a resampling configuration that can be applied to any
// dataset size.
//
// Seeded strategies pass their Seed as the first option, so a caller's
// WithSeed or WithRand given to Partitions/Split takes precedence.
// String is canonical: two strategies with equal String produce equal
// partitions for the same n when no RNG option overrides the seed.
type Strategy interface {
	// Kind returns one of the Kind* constants.
	Kind() string
	// Validate reports whether the strategy can partition n indices.
	Validate(n int) error
	// Count returns the number of partitions produced for n.
	Count(n int) (int, error)
	// Partitions returns the lazy partition sequence for n.
	Partitions(n int, opts ...Option) (iter.Seq2[int, Partition], error)
	// Split returns all partitions for n.
	Split(n int, opts ...Option) ([]Partition, error)

	fmt.Stringer
}

// HoldOutStrategy is a single shuffled split (see HoldOut).
type HoldOutStrategy struct {
	TestFraction float64
	Seed         int64
}

// KFoldStrategy is k-fold cross-validation (see KFold).
// NoShuffle keeps the folds as contiguous runs of [0,n).
type KFoldStrategy struct {
	K         int
	Seed      int64
	NoShuffle bool
}

// LeaveOneOutStrategy is leave-one-out cross-validation (see LeaveOneOut).
type LeaveOneOutStrategy struct{}

// RepeatedSplitStrategy is a series of independent hold-out draws
// (see RepeatedRandomSplit).
type RepeatedSplitStrategy struct {
	Repeats      int
	TestFraction float64
	Seed         int64
}

var (
	_ Strategy = HoldOutStrategy{}
	_ Strategy = KFoldStrategy{}
	_ Strategy = LeaveOneOutStrategy{}
	_ Strategy = RepeatedSplitStrategy{}
)

func (s HoldOutStrategy) Kind() string         { return KindHoldOut }
func (s HoldOutStrategy) Validate(n int) error { return validateHoldOut(n, s.TestFraction) }

func (s HoldOutStrategy) Count(n int) (int, error) {
	if err := s.Validate(n); err != nil {
		return 0, err
	}

	return 1, nil
}

func (s HoldOutStrategy) Partitions(n int, opts ...Option) (iter.Seq2[int, Partition], error) {
	return HoldOutSeq(n, s.TestFraction, seeded(s.Seed, opts)...)
}

func (s HoldOutStrategy) Split(n int, opts ...Option) ([]Partition, error) {
	p, err := HoldOut(n, s.TestFraction, seeded(s.Seed, opts)...)
	if err != nil {
		return nil, err
	}

	return []Partition{p}, nil
}

func (s HoldOutStrategy) String() string {
	return fmt.Sprintf("%s(test_fraction=%s,seed=%d)", KindHoldOut, formatFraction(s.TestFraction), s.Seed)
}

func (s KFoldStrategy) Kind() string         { return KindKFold }
func (s KFoldStrategy) Validate(n int) error { return validateKFold(n, s.K) }

func (s KFoldStrategy) Count(n int) (int, error) {
	if err := s.Validate(n); err != nil {
		return 0, err
	}

	return s.K, nil
}

func (s KFoldStrategy) Partitions(n int, opts ...Option) (iter.Seq2[int, Partition], error) {
	return KFoldSeq(n, s.K, s.options(opts)...)
}

func (s KFoldStrategy) Split(n int, opts ...Option) ([]Partition, error) {
	return KFold(n, s.K, s.options(opts)...)
}

func (s KFoldStrategy) String() string {
	return fmt.Sprintf("%s(k=%d,seed=%d,shuffle=%t)", KindKFold, s.K, s.Seed, !s.NoShuffle)
}

func (s KFoldStrategy) options(opts []Option) []Option {
	return append([]Option{WithSeed(s.Seed), WithShuffle(!s.NoShuffle)}, opts...)
}

func (LeaveOneOutStrategy) Kind() string         { return KindLeaveOneOut }
func (LeaveOneOutStrategy) Validate(n int) error { return validateSize(n) }

func (s LeaveOneOutStrategy) Count(n int) (int, error) {
	if err := s.Validate(n); err != nil {
		return 0, err
	}

	return n, nil
}

// Partitions ignores opts; leave-one-out is deterministic.
func (LeaveOneOutStrategy) Partitions(n int, _ ...Option) (iter.Seq2[int, Partition], error) {
	return LeaveOneOutSeq(n)
}

// Split ignores opts; leave-one-out is deterministic.
func (LeaveOneOutStrategy) Split(n int, _ ...Option) ([]Partition, error) {
	return LeaveOneOut(n)
}

func (LeaveOneOutStrategy) String() string { return KindLeaveOneOut + "()" }

func (s RepeatedSplitStrategy) Kind() string { return KindRepeated }

func (s RepeatedSplitStrategy) Validate(n int) error {
	return validateRepeated(n, s.Repeats, s.TestFraction)
}

func (s RepeatedSplitStrategy) Count(n int) (int, error) {
	if err := s.Validate(n); err != nil {
		return 0, err
	}

	return s.Repeats, nil
}

func (s RepeatedSplitStrategy) Partitions(n int, opts ...Option) (iter.Seq2[int, Partition], error) {
	return RepeatedRandomSplitSeq(n, s.Repeats, s.TestFraction, seeded(s.Seed, opts)...)
}

func (s RepeatedSplitStrategy) Split(n int, opts ...Option) ([]Partition, error) {
	return RepeatedRandomSplit(n, s.Repeats, s.TestFraction, seeded(s.Seed, opts)...)
}

func (s RepeatedSplitStrategy) String() string {
	return fmt.Sprintf("%s(repeats=%d,test_fraction=%s,seed=%d)",
		KindRepeated, s.Repeats, formatFraction(s.TestFraction), s.Seed)
}

// seeded puts WithSeed(seed) ahead of the caller's options.
func seeded(seed int64, opts []Option) []Option {
	return append([]Option{WithSeed(seed)}, opts...)
}

func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
