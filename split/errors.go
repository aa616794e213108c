// SPDX-License-Identifier: MIT
// Package: resample/split
//
// errors.go: sentinel errors for the split package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (the offending value) is attached with %w at the call site.
//   • Every validation runs before the first partition is produced, so a
//     failing call never returns a partial result.
//   • Priority when several checks fail: ErrEmptyDataset, then the strategy
//     parameter (ErrInvalidK / ErrInvalidRepeats / ErrInvalidFraction).

package split

import "errors"

// ErrEmptyDataset indicates a dataset size n ≤ 0.
var ErrEmptyDataset = errors.New("split: dataset size must be positive")

// ErrInvalidFraction indicates a test fraction outside the open interval (0,1).
// NaN is rejected as well.
var ErrInvalidFraction = errors.New("split: test fraction must be in (0,1)")

// ErrInvalidK indicates a fold count with k < 2 or k > n.
var ErrInvalidK = errors.New("split: fold count must satisfy 2 <= k <= n")

// ErrInvalidRepeats indicates a repeat count below 1 for RepeatedRandomSplit.
var ErrInvalidRepeats = errors.New("split: repeat count must be positive")

// ErrIndexOutOfRange is reported by Check for an index outside [0,n).
var ErrIndexOutOfRange = errors.New("split: index out of range")

// ErrOverlap is reported by Check when an index appears more than once
// across Train and Test.
var ErrOverlap = errors.New("split: train and test overlap")

// ErrIncomplete is reported by Check when Train ∪ Test does not cover [0,n).
var ErrIncomplete = errors.New("split: partition does not cover the dataset")
