// Package bench - comparison-table assembly and rendering.
package bench

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/knapkit/knapsack"
)

// sort orders rows by item count ascending, then instance name ascending.
// Stable, so equal (count, name) pairs keep insertion order.
func (t *Table) sort() {
	sort.SliceStable(t.Rows, func(a, b int) bool {
		if t.Rows[a].Items != t.Rows[b].Items {
			return t.Rows[a].Items < t.Rows[b].Items
		}

		return t.Rows[a].Instance < t.Rows[b].Instance
	})
}

// MeanGaps returns the mean gap percentage per integer method across all
// rows, keyed by knapsack.Method. An empty table yields an empty map rather
// than NaNs.
func (t Table) MeanGaps() map[knapsack.Method]float64 {
	if len(t.Rows) == 0 {
		return map[knapsack.Method]float64{}
	}

	greedy := make([]float64, len(t.Rows))
	rounding := make([]float64, len(t.Rows))
	search := make([]float64, len(t.Rows))
	var i int
	for i = 0; i < len(t.Rows); i++ {
		greedy[i] = t.Rows[i].GapGreedy
		rounding[i] = t.Rows[i].GapRounding
		search[i] = t.Rows[i].GapLocalSearch
	}

	return map[knapsack.Method]float64{
		knapsack.MethodGreedy:         stat.Mean(greedy, nil),
		knapsack.MethodRoundingRepair: stat.Mean(rounding, nil),
		knapsack.MethodLocalSearch:    stat.Mean(search, nil),
	}
}

// String renders the comparison as two aligned text tables — values and gaps,
// then per-method times — followed by skipped instances, if any. Suitable for
// terminal output or inclusion in a plain-text report.
func (t Table) String() string {
	var b strings.Builder

	if len(t.Rows) == 0 && len(t.Skipped) == 0 {
		return "bench: no results\n"
	}

	if len(t.Rows) > 0 {
		b.WriteString("Comparative summary (values and gaps):\n")
		w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Instance\tItems\tCapacity\tGreedy\tRounding\tLocalSearch\tUB\tGapGreedy%\tGapRounding%\tGapLS%\tBest\tBestValue")
		for _, r := range t.Rows {
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%.2f\n",
				r.Instance, r.Items, r.Capacity,
				r.Greedy.Value, r.Rounding.Value, r.LocalSearch.Value, r.UpperBound,
				r.GapGreedy, r.GapRounding, r.GapLocalSearch,
				r.BestMethod, r.BestValue)
		}
		w.Flush()

		b.WriteString("\nTimes:\n")
		w = tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Instance\tGreedy\tRelaxation\tRounding\tLocalSearch\tLS iters")
		for _, r := range t.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				r.Instance,
				fmtDur(r.Greedy.Elapsed), fmtDur(r.Relaxation.Elapsed),
				fmtDur(r.Rounding.Elapsed), fmtDur(r.LocalSearch.Elapsed),
				r.LocalSearch.Iterations)
		}
		w.Flush()
	}

	if len(t.Skipped) > 0 {
		b.WriteString("\nSkipped instances:\n")
		for _, s := range t.Skipped {
			fmt.Fprintf(&b, "  %s: %v\n", s.Instance, s.Err)
		}
	}

	return b.String()
}

// fmtDur prints a duration rounded to the microsecond; sub-microsecond runs
// are common on small instances and would otherwise render noisily.
func fmtDur(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
