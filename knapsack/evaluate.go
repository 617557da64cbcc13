// Package knapsack - selection evaluation.
//
// Evaluate is the single source of truth for the value/weight of a selection
// vector. It is pure and idempotent: no hidden state, identical results on
// repeated calls. Both dot products delegate to gonum's floats.Dot.
package knapsack

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// roundScale controls result stabilization precision (1e-9). It removes tiny
// FP drift across platforms without affecting any acceptance decision.
const roundScale = 1e9

// round1e9 stabilizes x to 9 decimal places.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Evaluate computes the total value and total weight of a selection vector:
//
//	value  = Σ selection[i]·values[i]
//	weight = Σ selection[i]·weights[i]
//
// Contract:
//   - len(selection) == len(values) == len(weights), else ErrDimensionMismatch.
//   - selection entries are {0,1} for integer solutions or [0,1] for
//     fractional ones; Evaluate itself does not enforce the range.
//
// Both sums are stabilized to 1e-9.
//
// Complexity: O(n) time, O(1) space.
func Evaluate(selection, values, weights []float64) (float64, float64, error) {
	if len(selection) != len(values) || len(values) != len(weights) {
		return 0, 0, ErrDimensionMismatch
	}

	value, weight := evaluate(selection, values, weights)

	return round1e9(value), round1e9(weight), nil
}

// evaluate is the unchecked hot-path kernel behind Evaluate; callers are
// expected to have validated lengths already.
func evaluate(selection, values, weights []float64) (float64, float64) {
	if len(selection) == 0 {
		return 0, 0
	}

	return floats.Dot(selection, values), floats.Dot(selection, weights)
}
