// Package resample estimates how well a classifier generalizes by
// resampling its dataset into train/test partitions.
//
// 🚀 What is resample?
//
//	A small, dependency-light toolkit around four classic recipes:
//		• Hold-out split:          one shuffled train/test cut
//		• k-fold cross-validation: k folds, each tested once
//		• Leave-one-out:           n folds of a single row
//		• Repeated random splits:  r independent hold-out draws
//
// ✨ Why resample?
//
//   - Deterministic – explicit seeds or caller-owned *rand.Rand, no globals
//   - Model-agnostic – any model fits behind the two-method Evaluator
//   - Lazy or eager – iter.Seq2 sequences or plain slices
//   - Validated up front – sentinel errors, never a partial result
//
// Under the hood, everything is organized under these subpackages:
//
//	split/   : Partition, the four generators, Strategy values, Check
//	evaluate/: Evaluator contract, Run / CrossValidate loop, Report (mean ± std)
//	cache/   : LRU memoization of seeded strategies
//	config/  : YAML recipe files
//	cmd/resample: CLI printing the partitions of a recipe
//
// Quick example:
//
//	rep, err := evaluate.CrossValidate(myModel, split.KFoldStrategy{K: 10, Seed: 7}, 768)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	fmt.Println(rep) // Accuracy: 76.951% (4.841%)
//
//	go get github.com/katalvlaran/resample
package resample
