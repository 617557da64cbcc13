// Package knapsack - shared validation stages.
//
// Small, deterministic, side-effect-free helpers used by every public solver
// before its timed core loop starts. Only sentinel errors from types.go are
// returned; no logging, no panics on user input.
package knapsack

import "math"

// validateInputs verifies the instance arrays and capacity.
//
// Checks, in priority order (documented, enforced in tests):
//  1. len(values) == len(weights)            → ErrDimensionMismatch
//  2. any NaN/±Inf value or weight           → ErrDimensionMismatch
//  3. any weight < 0                         → ErrNegativeWeight
//  4. capacity < 0 or NaN                    → ErrBadCapacity
//
// Zero weights pass: ratio computation floors them with Options.Eps.
//
// Complexity: O(n).
func validateInputs(values, weights []float64, capacity float64) error {
	if len(values) != len(weights) {
		return ErrDimensionMismatch
	}

	var i int
	for i = 0; i < len(values); i++ {
		// NaN/Inf entries make every comparison below ill-posed.
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return ErrDimensionMismatch
		}
		if math.IsNaN(weights[i]) || math.IsInf(weights[i], 0) {
			return ErrDimensionMismatch
		}
		if weights[i] < 0 {
			return ErrNegativeWeight
		}
	}

	if math.IsNaN(capacity) || capacity < 0 {
		return ErrBadCapacity
	}

	return nil
}

// validateOptions checks internal consistency of Options.
//
// A negative Eps would invert acceptance logic (Δ > Eps tests) and a negative
// MaxIters has no meaning as an iteration cap; both are rejected.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return ErrBadOptions
	}
	if opts.MaxIters < 0 {
		return ErrBadOptions
	}

	return nil
}

// validateSelection verifies that sel is parallel to an n-item instance and
// that each entry is a finite number within [-eps, 1+eps]. Normalization of
// fractional entries to {0,1} is the caller's business, never rejected here.
//
// Complexity: O(n).
func validateSelection(sel []float64, n int, eps float64) error {
	if len(sel) != n {
		return ErrDimensionMismatch
	}

	var i int
	for i = 0; i < n; i++ {
		if math.IsNaN(sel[i]) || math.IsInf(sel[i], 0) {
			return ErrDimensionMismatch
		}
		if sel[i] < -eps || sel[i] > 1+eps {
			return ErrFractionOutOfRange
		}
	}

	return nil
}
