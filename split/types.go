// SPDX-License-Identifier: MIT
// Package: resample/split
//
// types.go: the Partition value and its validity check.

package split

import (
	"fmt"
	"slices"
)

// Partition is one train/test pair of indices into a dataset of size n.
//
// Train and Test are disjoint and together cover [0,n). Randomized
// strategies keep the shuffled order; LeaveOneOut keeps ascending order.
type Partition struct {
	Train []int
	Test  []int
}

// Len returns the number of indices in the partition (|Train| + |Test|).
func (p Partition) Len() int {
	return len(p.Train) + len(p.Test)
}

// Clone returns a deep copy of p.
func (p Partition) Clone() Partition {
	return Partition{Train: slices.Clone(p.Train), Test: slices.Clone(p.Test)}
}

// Check verifies that p is a valid partition of [0,n): every index in
// range, no index repeated across or within Train and Test, and the union
// covering the whole dataset.
func Check(n int, p Partition) error {
	if err := validateSize(n); err != nil {
		return err
	}
	seen := make([]bool, n)
	count := 0
	for _, side := range [2][]int{p.Train, p.Test} {
		for _, idx := range side {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, n)
			}
			if seen[idx] {
				return fmt.Errorf("%w: index %d", ErrOverlap, idx)
			}
			seen[idx] = true
			count++
		}
	}
	if count != n {
		return fmt.Errorf("%w: %d of %d indices", ErrIncomplete, count, n)
	}

	return nil
}
