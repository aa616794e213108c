// SPDX-License-Identifier: MIT
// Package: resample/split
//
// split.go: the four partition generators and their lazy forms.
//
// Contract:
//   • Validation and every draw from the caller's RNG happen before a
//     sequence is returned, so ranging over it twice replays it.
//   • Memory held by a lazy sequence is O(n), whatever the repeat count.
//   • Invalid input yields an error, never a panic or a partial result.

package split

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
	"slices"
)

// HoldOut: single shuffled train/test split
//
// Algorithm:
//  1. perm = [0,n) shuffled with the call's RNG.
//  2. cut  = round(n · (1 − testFraction)).
//  3. Train = perm[:cut], Test = perm[cut:].
//
// Small n may leave one side empty (e.g. n=1); such a partition is still
// valid, evaluate rejects it when scoring.
//
// Errors:
//   - ErrEmptyDataset   : n ≤ 0.
//   - ErrInvalidFraction: testFraction ∉ (0,1).
//
// Complexity: O(n) time, O(n) memory.
func HoldOut(n int, testFraction float64, opts ...Option) (Partition, error) {
	if err := validateHoldOut(n, testFraction); err != nil {
		return Partition{}, err
	}
	cfg := newConfig(opts...)

	return holdOut(n, testFraction, cfg.rng), nil
}

// HoldOutSeq is the lazy form of HoldOut; the sequence yields exactly one
// partition at index 0.
func HoldOutSeq(n int, testFraction float64, opts ...Option) (iter.Seq2[int, Partition], error) {
	p, err := HoldOut(n, testFraction, opts...)
	if err != nil {
		return nil, err
	}

	return func(yield func(int, Partition) bool) {
		yield(0, p.Clone())
	}, nil
}

// KFold: k-fold cross-validation partitions
//
// Algorithm:
//  1. perm = [0,n) shuffled once (identity order with WithShuffle(false)).
//  2. Cut perm into k contiguous folds. Every fold holds n/k indices and
//     the first n%k folds hold one extra.
//  3. Partition i tests fold i and trains on the other folds concatenated
//     in fold order.
//
// Test sets are pairwise disjoint and their union is [0,n). With k == n
// every fold has exactly one index.
//
// Errors:
//   - ErrEmptyDataset: n ≤ 0.
//   - ErrInvalidK    : k < 2 or k > n.
//
// Complexity: O(k·n) time and memory.
func KFold(n, k int, opts ...Option) ([]Partition, error) {
	seq, err := KFoldSeq(n, k, opts...)
	if err != nil {
		return nil, err
	}

	return collect(seq, k), nil
}

// KFoldSeq is the lazy form of KFold. The permutation is drawn when
// KFoldSeq is called, so ranging over the sequence twice yields the same
// folds.
func KFoldSeq(n, k int, opts ...Option) (iter.Seq2[int, Partition], error) {
	if err := validateKFold(n, k); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	var perm []int
	if cfg.shuffle {
		perm = permutation(n, cfg.rng)
	} else {
		perm = identity(n)
	}
	bounds := foldBounds(n, k)

	return func(yield func(int, Partition) bool) {
		for i := 0; i < k; i++ {
			lo, hi := bounds[i], bounds[i+1]
			train := make([]int, 0, n-(hi-lo))
			train = append(train, perm[:lo]...)
			train = append(train, perm[hi:]...)
			p := Partition{Train: train, Test: slices.Clone(perm[lo:hi])}
			if !yield(i, p) {
				return
			}
		}
	}, nil
}

// LeaveOneOut returns n partitions where partition i tests {i} and trains
// on every other index in ascending order. No randomness is involved.
//
// Errors:
//   - ErrEmptyDataset: n ≤ 0.
//
// Complexity: O(n²) time and memory.
func LeaveOneOut(n int) ([]Partition, error) {
	seq, err := LeaveOneOutSeq(n)
	if err != nil {
		return nil, err
	}

	return collect(seq, n), nil
}

// LeaveOneOutSeq is the lazy form of LeaveOneOut.
func LeaveOneOutSeq(n int) (iter.Seq2[int, Partition], error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	return func(yield func(int, Partition) bool) {
		for i := 0; i < n; i++ {
			train := make([]int, 0, n-1)
			for j := 0; j < n; j++ {
				if j != i {
					train = append(train, j)
				}
			}
			if !yield(i, Partition{Train: train, Test: []int{i}}) {
				return
			}
		}
	}, nil
}

// RepeatedRandomSplit: repeated independent hold-out draws
//
// The call takes one base seed from its RNG (rng.Int63()). A generator
// seeded with the base then hands each repeat a fresh sub-seed, and the
// repeat shuffles with a private generator seeded from it, so no shuffle
// state is reused. Repeats are independent draws: test sets of different
// repeats may overlap.
//
// Errors:
//   - ErrEmptyDataset   : n ≤ 0.
//   - ErrInvalidRepeats : repeats < 1.
//   - ErrInvalidFraction: testFraction ∉ (0,1).
//
// Complexity: O(repeats·n) time and memory.
func RepeatedRandomSplit(n, repeats int, testFraction float64, opts ...Option) ([]Partition, error) {
	seq, err := RepeatedRandomSplitSeq(n, repeats, testFraction, opts...)
	if err != nil {
		return nil, err
	}

	return collect(seq, repeats), nil
}

// RepeatedRandomSplitSeq is the lazy form of RepeatedRandomSplit. The
// caller's stream advances by exactly one draw per call; sub-seeds are
// derived while the sequence is consumed, so stopping early costs nothing.
//
// Complexity: O(n) time per partition, O(n) memory.
func RepeatedRandomSplitSeq(n, repeats int, testFraction float64, opts ...Option) (iter.Seq2[int, Partition], error) {
	if err := validateRepeated(n, repeats, testFraction); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	base := cfg.rng.Int63()

	return func(yield func(int, Partition) bool) {
		// 1) Restart the sub-seed stream on every range.
		seeds := rand.New(rand.NewSource(base))
		for i := 0; i < repeats; i++ {
			// 2) One private generator per repeat.
			sub := rand.New(rand.NewSource(seeds.Int63()))
			if !yield(i, holdOut(n, testFraction, sub)) {
				return
			}
		}
	}, nil
}

// holdOut shuffles [0,n) with rng and cuts it at round(n·(1−f)).
// Train is capacity-limited so appending to it never touches Test.
//
// Complexity: O(n).
func holdOut(n int, f float64, rng *rand.Rand) Partition {
	perm := permutation(n, rng)
	cut := holdOutCut(n, f)

	return Partition{Train: perm[:cut:cut], Test: perm[cut:]}
}

// holdOutCut returns the train size for n rows and test share f.
// For f ∈ (0,1) the result lies in [0,n].
func holdOutCut(n int, f float64) int {
	return int(math.Round(float64(n) * (1 - f)))
}

// foldBounds returns k+1 offsets; fold i spans [b[i], b[i+1]).
// Requires 1 ≤ k ≤ n. The first n%k folds are one element wider.
//
// Complexity: O(k).
func foldBounds(n, k int) []int {
	size, extra := n/k, n%k
	b := make([]int, k+1)
	for i := 0; i < k; i++ {
		w := size
		if i < extra {
			w++ // remainder goes to the leading folds
		}
		b[i+1] = b[i] + w
	}

	return b
}

// identity returns [0,1,…,n-1].
func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// permutation returns a Fisher-Yates shuffle of [0,n) drawn from rng.
//
// Complexity: O(n).
func permutation(n int, rng *rand.Rand) []int {
	perm := identity(n)
	rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	return perm
}

// maxCollectHint bounds the up-front capacity of collect; larger results
// grow by append.
const maxCollectHint = 1 << 10

// collect drains seq into a slice. hint is the expected length and only
// sizes the first allocation.
func collect(seq iter.Seq2[int, Partition], hint int) []Partition {
	out := make([]Partition, 0, min(hint, maxCollectHint))
	for _, p := range seq {
		out = append(out, p)
	}

	return out
}

// --- validation -------------------------------------------------------------

func validateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrEmptyDataset, n)
	}

	return nil
}

func validateFraction(f float64) error {
	if math.IsNaN(f) || f <= 0 || f >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidFraction, f)
	}

	return nil
}

func validateHoldOut(n int, f float64) error {
	if err := validateSize(n); err != nil {
		return err
	}

	return validateFraction(f)
}

func validateKFold(n, k int) error {
	if err := validateSize(n); err != nil {
		return err
	}
	if k < 2 || k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrInvalidK, k, n)
	}

	return nil
}

func validateRepeated(n, repeats int, f float64) error {
	if err := validateSize(n); err != nil {
		return err
	}
	if repeats < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRepeats, repeats)
	}

	return validateFraction(f)
}
