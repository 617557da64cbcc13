// Package knapsack - fractional (continuous) relaxation.
//
// FractionalRelaxation solves the knapsack with the integrality constraint
// dropped: items may be taken in any fraction of [0,1]. By the classical
// exchange argument, walking items in descending value/weight ratio, taking
// each fully while it fits and at most one final item fractionally, is exactly
// optimal for the relaxation. The optimum never underestimates the best
// integer solution, so its Value serves as the universal upper bound (UB) in
// gap computation.
//
// Complexity: O(n log n) time (sorting dominates), O(n) space.
package knapsack

import "time"

// FractionalRelaxation computes the continuous-relaxation optimum.
//
// Contract:
//   - Same input validation as Greedy.
//   - Returned Selection is fractional: entries in [0,1], at most one strictly
//     between 0 and 1.
//   - Capacity 0 (or an empty instance) yields the zero vector with Value 0.
//   - Solution.Value ≥ value of every feasible integer selection (UB property).
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrBadCapacity, ErrBadOptions.
func FractionalRelaxation(values, weights []float64, capacity float64, opts Options) (Solution, error) {
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

	var (
		remaining = capacity
		total     float64
		frac      float64
		i         int
	)
	for _, i = range order {
		// Residual capacity below the tolerance counts as exhausted.
		if remaining <= opts.Eps {
			break
		}
		if weights[i] <= remaining {
			sel[i] = 1
			remaining -= weights[i]
			total += values[i]

			continue
		}

		// First item that does not fully fit: take the exact fraction that
		// fills the remaining capacity, then stop the scan.
		frac = remaining / weights[i]
		sel[i] = frac
		total += frac * values[i]

		break
	}

	_, weight := evaluate(sel, values, weights)

	return Solution{
		Selection: sel,
		Value:     round1e9(total),
		Weight:    round1e9(weight),
		Elapsed:   time.Since(start),
		Method:    MethodRelaxation,
	}, nil
}
