// Package knapsack - LP-rounding with repair, greedy fill and tournament.
//
// RoundingRepair turns a fractional relaxation vector into a feasible integer
// solution in five fixed stages (the order is part of the contract; it makes
// the solver reproducible and testable):
//
//  1. Threshold: round every fraction ≥ 0.5 up to 1, else down to 0.
//     An entry at exactly 0.5 rounds up (documented midpoint bias).
//  2. Repair: while the rounded selection exceeds capacity, evict the
//     currently-selected item with the WORST value/weight ratio. Low-efficiency
//     items are sacrificed first; the highest-ratio items survive longest.
//  3. Greedy fill: among unselected items, in descending ratio order, add any
//     item that still fits. Pure best-effort completion — nothing is removed.
//  4. Competitors: the best single item that fits alone, and the greedy-by-ratio
//     solution (reused when the caller already has one).
//  5. Tournament: return the highest-value candidate; the repaired-and-filled
//     solution wins ties against later competitors (non-strict max, fixed
//     encounter order). Plain threshold rounding can underperform trivial
//     baselines on adversarial instances; the tournament guarantees the result
//     is never worse than the best of the three known-feasible alternatives.
//
// The eviction and fill stages use priority queues keyed by ratio (min-heap
// for repair, max-heap for fill); heap contents are inserted in ascending
// index order, so the whole pipeline stays deterministic.
//
// Complexity: O(n log n) time, O(n) space.
package knapsack

import (
	"time"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// RoundingRepair rounds a fractional selection to a feasible integer solution.
//
// Contract:
//   - frac must be parallel to values/weights with entries in [0,1]
//     (ErrFractionOutOfRange otherwise); typically FractionalRelaxation's
//     Selection, but any fractional vector is accepted.
//   - greedySeed is optional: when non-nil it must be a parallel 0/1 vector
//     and is used as the greedy competitor without recomputation; when nil the
//     greedy solution is computed internally.
//   - The raw thresholded state may transiently violate capacity; the returned
//     Solution never does.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrBadCapacity,
// ErrBadOptions, ErrFractionOutOfRange.
func RoundingRepair(frac, values, weights []float64, capacity float64, greedySeed []float64, opts Options) (Solution, error) {
	if err := validateInputs(values, weights, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	n := len(values)
	if err := validateSelection(frac, n, opts.Eps); err != nil {
		return Solution{}, err
	}
	if greedySeed != nil {
		if err := validateSelection(greedySeed, n, opts.Eps); err != nil {
			return Solution{}, err
		}
	}

	start := time.Now()

	// Stage 1 - midpoint threshold.
	sel := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		if frac[i] >= 0.5 {
			sel[i] = 1
		}
	}
	value, weight := evaluate(sel, values, weights)

	r := ratios(values, weights, opts.Eps)

	// Stage 2 - repair: evict worst-ratio selected items until feasible.
	if weight > capacity {
		evict := priorityqueue.New[int, float64](priorityqueue.MinHeap)
		for i = 0; i < n; i++ {
			if sel[i] == 1 {
				evict.Put(i, r[i])
			}
		}
		for weight > capacity && evict.Len() > 0 {
			worst := evict.Get()
			sel[worst.Value] = 0
			value -= values[worst.Value]
			weight -= weights[worst.Value]
		}
	}

	// Stage 3 - greedy fill: best-ratio unselected items that still fit.
	if weight < capacity {
		fill := priorityqueue.New[int, float64](priorityqueue.MaxHeap)
		for i = 0; i < n; i++ {
			if sel[i] == 0 {
				fill.Put(i, r[i])
			}
		}
		for fill.Len() > 0 {
			next := fill.Get()
			if weight+weights[next.Value] <= capacity {
				sel[next.Value] = 1
				value += values[next.Value]
				weight += weights[next.Value]
			}
		}
	}

	// Stage 4 - competitors.
	single, err := BestSingleItem(values, weights, capacity)
	if err != nil {
		return Solution{}, err
	}

	var gSel []float64
	var gValue, gWeight float64
	if greedySeed != nil {
		gSel = greedySeed
		gValue, gWeight = evaluate(greedySeed, values, weights)
	} else {
		g, gErr := Greedy(values, weights, capacity, opts)
		if gErr != nil {
			return Solution{}, gErr
		}
		gSel, gValue, gWeight = g.Selection, g.Value, g.Weight
	}

	// Stage 5 - tournament, non-strict max in encounter order:
	// repaired-and-filled first, then single-best, then greedy.
	bestSel, bestValue, bestWeight := sel, value, weight
	if single.Value > bestValue {
		bestSel, bestValue, bestWeight = single.Selection, single.Value, single.Weight
	}
	if gValue > bestValue {
		bestSel, bestValue, bestWeight = gSel, gValue, gWeight
	}

	// The winner may alias a caller-supplied seed; return a private copy so
	// the Solution keeps exclusive ownership of its Selection.
	out := make([]float64, n)
	copy(out, bestSel)

	return Solution{
		Selection: out,
		Value:     round1e9(bestValue),
		Weight:    round1e9(bestWeight),
		Elapsed:   time.Since(start),
		Method:    MethodRoundingRepair,
	}, nil
}
