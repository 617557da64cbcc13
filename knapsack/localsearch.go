// Package knapsack - first-improvement local search (1-add, 1-1 swap).
//
// LocalSearch improves a feasible seed solution by two move types, attempted
// strictly in order within each iteration:
//
//	(a) Add: scan unselected items in index order; the first item that fits and
//	    has strictly positive value is committed immediately.
//	(b) Swap: only when no add fired. Selected items outer, unselected inner,
//	    both in index order; the first exchange that stays feasible and strictly
//	    increases total value is committed (remove outer, add inner).
//
// After any commit the iteration restarts (first-improvement, never
// best-improvement). When neither move improves, the solution is a local
// optimum and the search halts.
//
// Termination: every accepted move strictly increases total value, which is
// bounded above by Σ max(0, value[i]); the MaxIters cap is a defensive
// backstop against pathological floating-point ties, not expected to bind.
//
// Complexity: O(iters·n²) worst case (swap scan), O(n) space.
package knapsack

import "time"

// LocalSearch runs first-improvement local search from a seed selection.
//
// Contract:
//   - Same input validation as Greedy.
//   - seed is optional: nil means "seed with the internal greedy solution".
//     A non-nil seed must be parallel to the instance; entries are normalized
//     to {0,1} with the same ≥ 0.5 threshold used by RoundingRepair, and the
//     normalized seed must be feasible (its weight is the search's starting
//     point — an infeasible seed is the caller's bug, see Evaluate to check).
//   - The seed slice is never mutated; the search works on a private copy.
//   - Final Value ≥ seed value (monotone, non-decreasing value sequence).
//
// Iterations reports the number of outer iterations executed, including the
// final one that proves local optimality.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrBadCapacity,
// ErrBadOptions, ErrFractionOutOfRange.
func LocalSearch(values, weights []float64, capacity float64, seed []float64, opts Options) (Solution, error) {
	if err := validateInputs(values, weights, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	n := len(values)
	if seed != nil {
		if err := validateSelection(seed, n, opts.Eps); err != nil {
			return Solution{}, err
		}
	}

	start := time.Now()

	// Seed: private copy of the caller's vector, or the greedy solution.
	sel := make([]float64, n)
	if seed == nil {
		g, err := Greedy(values, weights, capacity, opts)
		if err != nil {
			return Solution{}, err
		}
		copy(sel, g.Selection)
	} else {
		var i int
		for i = 0; i < n; i++ {
			if seed[i] >= 0.5 {
				sel[i] = 1
			}
		}
	}

	value, weight := evaluate(sel, values, weights)

	var (
		iterations int
		improved   bool
		i, j       int
		dValue     float64
		dWeight    float64
	)
	for iterations < opts.MaxIters {
		iterations++
		improved = false

		// (a) Add move: first unselected item that fits with positive value.
		for j = 0; j < n; j++ {
			if sel[j] != 0 {
				continue
			}
			if weight+weights[j] <= capacity && values[j] > 0 {
				sel[j] = 1
				value += values[j]
				weight += weights[j]
				improved = true

				break
			}
		}
		if improved {
			continue
		}

		// (b) Swap move: selected outer, unselected inner, first improvement.
	swap:
		for i = 0; i < n; i++ {
			if sel[i] != 1 {
				continue
			}
			for j = 0; j < n; j++ {
				if sel[j] != 0 {
					continue
				}
				dWeight = weights[j] - weights[i]
				if weight+dWeight > capacity {
					continue
				}
				dValue = values[j] - values[i]
				if dValue > 0 {
					sel[i] = 0
					sel[j] = 1
					value += dValue
					weight += dWeight
					improved = true

					break swap
				}
			}
		}

		if !improved {
			// Local optimum under the add+swap neighborhood.
			break
		}
	}

	return Solution{
		Selection:  sel,
		Value:      round1e9(value),
		Weight:     round1e9(weight),
		Elapsed:    time.Since(start),
		Method:     MethodLocalSearch,
		Iterations: iterations,
	}, nil
}
