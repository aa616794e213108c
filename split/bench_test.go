package split_test

import (
	"testing"

	"github.com/katalvlaran/resample/split"
)

// BenchmarkHoldOut_768 measures one shuffled split of a 768-row dataset.
func BenchmarkHoldOut_768(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := split.HoldOut(768, 0.33, split.WithSeed(int64(i))); err != nil {
			b.Fatalf("HoldOut failed: %v", err)
		}
	}
}

// BenchmarkKFold_768x10 measures a full 10-fold result.
func BenchmarkKFold_768x10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := split.KFold(768, 10, split.WithSeed(7)); err != nil {
			b.Fatalf("KFold failed: %v", err)
		}
	}
}

// BenchmarkLeaveOneOutSeq_768 ranges over the lazy leave-one-out sequence.
func BenchmarkLeaveOneOutSeq_768(b *testing.B) {
	for i := 0; i < b.N; i++ {
		seq, err := split.LeaveOneOutSeq(768)
		if err != nil {
			b.Fatalf("LeaveOneOutSeq failed: %v", err)
		}
		for range seq {
		}
	}
}

// BenchmarkRepeatedRandomSplit_100x10 measures the ten-repeat recipe.
func BenchmarkRepeatedRandomSplit_100x10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := split.RepeatedRandomSplit(100, 10, 0.33, split.WithSeed(7)); err != nil {
			b.Fatalf("RepeatedRandomSplit failed: %v", err)
		}
	}
}
