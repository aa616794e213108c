// SPDX-License-Identifier: MIT
// Package: resample/evaluate
//
// report.go: summary statistics over per-partition scores.

package evaluate

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes the per-partition accuracies of one evaluation.
//
// Mean and StdDev are population statistics over Scores (no Bessel
// correction), the usual way cross-validation results are reported.
type Report struct {
	Strategy string    // canonical strategy name; empty for Run
	Scores   []float64 // one accuracy per partition, in partition order
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

func newReport(strategy string, scores []float64) *Report {
	mean, std := stat.PopMeanStdDev(scores, nil)

	return &Report{
		Strategy: strategy,
		Scores:   slices.Clone(scores),
		Mean:     mean,
		StdDev:   std,
		Min:      floats.Min(scores),
		Max:      floats.Max(scores),
	}
}

// String renders the report as "Accuracy: 76.951% (4.841%)".
func (r *Report) String() string {
	return fmt.Sprintf("Accuracy: %.3f%% (%.3f%%)", r.Mean*100, r.StdDev*100)
}
