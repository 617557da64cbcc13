// Package knapsack - ratio ordering shared by greedy, relaxation and repair.
//
// The value/weight ratio is the single ordering key of the whole package.
// Determinism contract: equal ratios keep original input order (stable sort),
// so every solver is exactly reproducible for a given input.
package knapsack

import (
	"math"
	"sort"
)

// ratios returns value[i] / max(weight[i], eps) for every item.
//
// The epsilon floor turns a degenerate zero-weight item into one with an
// astronomically high — but finite and comparable — ratio, so it sorts ahead
// of every regular item without producing ±Inf.
//
// Complexity: O(n) time, O(n) space.
func ratios(values, weights []float64, eps float64) []float64 {
	r := make([]float64, len(values))

	var i int
	for i = 0; i < len(values); i++ {
		r[i] = values[i] / math.Max(weights[i], eps)
	}

	return r
}

// ratioOrder returns item indices sorted by descending value/weight ratio.
// Ties are broken by original input order (sort.SliceStable over ascending
// indices), which the greedy and relaxation solvers rely on for reproducible
// results.
//
// Complexity: O(n log n) time, O(n) space.
func ratioOrder(values, weights []float64, eps float64) []int {
	r := ratios(values, weights, eps)

	order := make([]int, len(r))
	var i int
	for i = 0; i < len(order); i++ {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return r[order[a]] > r[order[b]]
	})

	return order
}
