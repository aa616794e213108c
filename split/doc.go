// Package split generates train/test partitions of a dataset for estimating
// the generalization accuracy of a model.
//
// 🚀 What is a partition?
//
//	A Partition is a pair of disjoint index sets drawn from [0,n):
//	the model is fitted on Train and scored on Test.  Repeating the
//	fit/score round over several partitions turns a single noisy
//	accuracy figure into a mean and a spread.
//
// ✨ Strategies:
//   - HoldOut            : one shuffled split at round(n·(1−f))
//   - KFold              : k contiguous folds of one shuffle; each fold tests once
//   - LeaveOneOut        : n folds of size 1, no randomness
//   - RepeatedRandomSplit: r independent hold-out draws (repeats may overlap)
//
// Each strategy is available as an eager function returning []Partition,
// a lazy *Seq form returning iter.Seq2[int, Partition], and a value type
// implementing Strategy (HoldOutStrategy, KFoldStrategy, ...) for code
// that decides the strategy at run time.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/resample/split"
//
//	folds, err := split.KFold(768, 10, split.WithSeed(7))
//	if err != nil {
//	  // handle ErrEmptyDataset or ErrInvalidK
//	}
//	for _, p := range folds {
//	  model := fit(p.Train)
//	  acc := score(model, p.Test)
//	}
//
// Determinism:
//
//	There is no package-level RNG.  Randomized calls draw from the
//	*rand.Rand given by WithRand, or from a private generator built by
//	WithSeed (DefaultSeed when neither is given).  Identical arguments
//	always produce identical partitions, and independent calls are safe
//	to run from separate goroutines as long as they do not share a
//	*rand.Rand.
//
// Complexity:
//
//   - HoldOut:             O(n) time, O(n) memory
//   - KFold:               O(k·n) time and memory for the full result
//   - LeaveOneOut:         O(n²) time and memory for the full result
//   - RepeatedRandomSplit: O(r·n) time and memory
//
// The lazy forms keep only the shared permutation plus one partition alive.
package split
