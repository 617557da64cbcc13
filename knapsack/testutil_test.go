// Package knapsack_test shares small helpers and canonical fixtures across
// the solver tests. Helpers stay minimal; anything algorithmic belongs to the
// package under test.
package knapsack_test

import (
	"github.com/katalvlaran/knapkit/knapsack"
)

// The canonical three-item instance used throughout the tests:
//
//	item  value  weight  ratio
//	0     60     10      6
//	1     100    20      5
//	2     120    30      4
//	capacity 50
//
// Known results: greedy 160 (items 0,1), relaxation UB 240 (items 0,1 full,
// item 2 at 2/3), rounding-and-repair 160, local search 220 (items 1,2).
var (
	trioValues   = []float64{60, 100, 120}
	trioWeights  = []float64{10, 20, 30}
	trioCapacity = 50.0
)

// feasible reports whether sol respects cap, using the solver's own weight.
func feasible(sol knapsack.Solution, cap float64) bool {
	return sol.Weight <= cap
}

// binary reports whether every selection entry is exactly 0 or 1.
func binary(sel []float64) bool {
	for _, x := range sel {
		if x != 0 && x != 1 {
			return false
		}
	}

	return true
}
