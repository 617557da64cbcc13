// Package bench: result records for knapsack heuristic comparisons.
package bench

import (
	"github.com/katalvlaran/knapkit/knapsack"
)

// Row aggregates one instance's complete benchmark outcome: every solver's
// Solution, the relaxation upper bound, derived gap percentages, and the
// winning method. A Row is created once per instance by Run and never mutated
// afterwards.
type Row struct {
	Instance string  // instance name
	Items    int     // item count
	Capacity float64 // knapsack capacity

	Greedy      knapsack.Solution // greedy-by-ratio result
	Relaxation  knapsack.Solution // fractional relaxation (Value == UpperBound)
	Rounding    knapsack.Solution // rounding-and-repair result
	LocalSearch knapsack.Solution // local-search result (seeded, see Run)

	UpperBound float64 // relaxation value, the reference for all gaps

	GapGreedy      float64 // 100·max(0, UB−greedy)/max(UB, eps)
	GapRounding    float64 // same, for rounding-and-repair
	GapLocalSearch float64 // same, for local search

	BestMethod knapsack.Method // highest raw value among the integer solvers
	BestValue  float64         // its value
}

// Skipped records an instance that failed to run: the harness logs it as data
// and continues with the remaining instances instead of aborting the batch.
type Skipped struct {
	Instance string
	Err      error
}

// Table is the cross-instance comparison: rows sorted by item count, then by
// instance name, plus the skipped instances. Never mutated after RunAll
// returns.
type Table struct {
	Rows    []Row
	Skipped []Skipped
}
