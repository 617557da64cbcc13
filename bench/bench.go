// Package bench - the per-instance harness.
//
// Run executes the full solver pipeline on one instance in the canonical
// order: greedy → fractional relaxation → rounding-and-repair (consuming
// both) → local search (seeded with the better of greedy/rounding). Gaps are
// measured against the relaxation upper bound; the best method is chosen by
// raw value with ties resolved toward the earlier solver in the fixed order
// greedy, rounding, local search.
//
// Determinism: the pipeline inherits the fixed tie-break rules of package
// knapsack, so a Row is exactly reproducible for a given instance.
package bench

import (
	"math"

	"github.com/katalvlaran/knapkit/knapsack"
)

// gap returns the percentage shortfall of value against the upper bound:
// 100·max(0, ub−value)/max(ub, eps). The eps floor keeps a zero bound
// (empty or zero-capacity instance) from dividing by zero — the gap is then 0.
func gap(ub, value, eps float64) float64 {
	return 100 * math.Max(0, ub-value) / math.Max(ub, eps)
}

// Run benchmarks a single instance.
//
// Contract:
//   - inst must pass knapsack.Instance.Validate; the error is returned
//     untouched so callers can errors.Is against knapsack sentinels.
//   - opts applies to every solver in the pipeline.
//
// Complexity: O(n²) worst case (local search dominates).
func Run(inst knapsack.Instance, opts knapsack.Options) (Row, error) {
	if err := inst.Validate(); err != nil {
		return Row{}, err
	}

	greedy, err := knapsack.Greedy(inst.Values, inst.Weights, inst.Capacity, opts)
	if err != nil {
		return Row{}, err
	}

	relax, err := knapsack.FractionalRelaxation(inst.Values, inst.Weights, inst.Capacity, opts)
	if err != nil {
		return Row{}, err
	}

	rounding, err := knapsack.RoundingRepair(
		relax.Selection, inst.Values, inst.Weights, inst.Capacity, greedy.Selection, opts)
	if err != nil {
		return Row{}, err
	}

	// Local search starts from the better of the two integer solutions;
	// greedy wins ties (it comes first in the pipeline).
	seed := greedy.Selection
	if rounding.Value > greedy.Value {
		seed = rounding.Selection
	}
	search, err := knapsack.LocalSearch(inst.Values, inst.Weights, inst.Capacity, seed, opts)
	if err != nil {
		return Row{}, err
	}

	row := Row{
		Instance:    inst.Name,
		Items:       len(inst.Values),
		Capacity:    inst.Capacity,
		Greedy:      greedy,
		Relaxation:  relax,
		Rounding:    rounding,
		LocalSearch: search,
		UpperBound:  relax.Value,

		GapGreedy:      gap(relax.Value, greedy.Value, opts.Eps),
		GapRounding:    gap(relax.Value, rounding.Value, opts.Eps),
		GapLocalSearch: gap(relax.Value, search.Value, opts.Eps),
	}

	// Best integer method by raw value; strict > keeps encounter order on ties.
	row.BestMethod, row.BestValue = greedy.Method, greedy.Value
	if rounding.Value > row.BestValue {
		row.BestMethod, row.BestValue = rounding.Method, rounding.Value
	}
	if search.Value > row.BestValue {
		row.BestMethod, row.BestValue = search.Method, search.Value
	}

	return row, nil
}

// RunAll benchmarks a batch of instances with partial-failure tolerance: an
// instance that fails (malformed data, bad options) lands in Table.Skipped
// with its error and the batch continues. Rows come back sorted by item
// count, then name.
func RunAll(instances []knapsack.Instance, opts knapsack.Options) Table {
	var t Table

	var (
		inst knapsack.Instance
		row  Row
		err  error
	)
	for _, inst = range instances {
		row, err = Run(inst, opts)
		if err != nil {
			t.Skipped = append(t.Skipped, Skipped{Instance: inst.Name, Err: err})

			continue
		}
		t.Rows = append(t.Rows, row)
	}

	t.sort()

	return t
}
