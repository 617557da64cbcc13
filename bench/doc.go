// Package bench compares the knapsack heuristics against the fractional
// relaxation upper bound, per instance and across batches.
//
// Pipeline per instance (Run):
//
//	greedy ──┐
//	         ├─→ rounding-and-repair ──┐
//	relaxation (UB)                    ├─→ local search (best seed)
//	                                   │
//	gaps: 100·max(0, UB−value)/max(UB, eps) per integer method
//
// RunAll applies Run to a batch with partial-failure tolerance: instances
// that fail are collected in Table.Skipped together with their errors, and
// the remaining instances still produce rows. This is deliberate — one
// malformed CSV must not abort an overnight comparison run.
//
// Table holds the aggregate: rows sorted by instance size then name, mean
// gaps per method (MeanGaps), and a plain-text rendering (String) suitable
// for terminals and reports. Plotting and file export stay outside this
// module.
package bench
