// Package knapsack - greedy-by-ratio constructive heuristic.
//
// Greedy builds a feasible integer solution by walking items in descending
// value/weight ratio and committing each item only after checking that it
// still fits. Feasibility is therefore guaranteed by construction.
//
// Determinism:
//   - Ratio ties keep original input order (stable sort, see ratio.go).
//   - No RNG, no time-based decisions.
//
// Complexity: O(n log n) time (sorting dominates), O(n) space.
package knapsack

import (
	"math"
	"time"
)

// Greedy solves the 0-1 knapsack approximately by descending value/weight ratio.
//
// Contract:
//   - len(values) == len(weights); weights ≥ 0; capacity ≥ 0 (validateInputs).
//   - Returned Solution is always feasible: Weight ≤ capacity.
//   - An empty instance yields the all-zero selection with Value 0; this is a
//     valid degenerate solution, not an error.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrBadCapacity, ErrBadOptions.
func Greedy(values, weights []float64, capacity float64, opts Options) (Solution, error) {
	if err := validateInputs(values, weights, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	start := time.Now()

	n := len(values)
	order := ratioOrder(values, weights, opts.Eps)
	sel := make([]float64, n)

	// Walk the ratio order; include an item only when it still fits.
	var (
		remaining = capacity
		i         int
	)
	for _, i = range order {
		if weights[i] <= remaining {
			sel[i] = 1
			remaining -= weights[i]
		}
	}

	value, weight := evaluate(sel, values, weights)

	return Solution{
		Selection: sel,
		Value:     round1e9(value),
		Weight:    round1e9(weight),
		Elapsed:   time.Since(start),
		Method:    MethodGreedy,
	}, nil
}

// BestSingleItem returns the single highest-value item that fits the capacity
// alone, as a one-item (or empty) integer solution. Ties keep the earliest
// index (strict > while scanning). It is the trivial baseline competitor in
// the RoundingRepair tournament, exported because it is occasionally useful
// as a sanity bound on its own.
//
// Contract: same input validation as Greedy. When no item fits, the all-zero
// selection with Value 0 is returned.
//
// Complexity: O(n) time, O(n) space.
func BestSingleItem(values, weights []float64, capacity float64) (Solution, error) {
	if err := validateInputs(values, weights, capacity); err != nil {
		return Solution{}, err
	}

	start := time.Now()

	n := len(values)
	sel := make([]float64, n)

	var (
		bestIdx = -1
		bestVal = math.Inf(-1)
		i       int
	)
	for i = 0; i < n; i++ {
		if weights[i] <= capacity && values[i] > bestVal {
			bestIdx = i
			bestVal = values[i]
		}
	}
	if bestIdx >= 0 {
		sel[bestIdx] = 1
	}

	value, weight := evaluate(sel, values, weights)

	return Solution{
		Selection: sel,
		Value:     round1e9(value),
		Weight:    round1e9(weight),
		Elapsed:   time.Since(start),
		Method:    MethodSingleBest,
	}, nil
}
