// Package loader reads knapsack instances from CSV tabular input.
//
// The expected shape mirrors the coursework data files: a header with the
// columns item, value and weight (case-insensitive), one row per item, and an
// optional row whose item field is "capacity" carrying the knapsack capacity
// in its value column:
//
//	Item,Value,Weight
//	Notebook,7500,2.8
//	Camera,4200,1.9
//	Capacity,5.0,
//
// Behavior highlights:
//
//   - A capacity row overrides Options.DefaultCapacity; without one, the
//     default applies.
//   - Rows missing a value or weight are dropped silently (lossy, by design);
//     present-but-malformed numbers fail with ErrBadNumber.
//   - A missing required column fails with ErrMissingColumn naming the column.
//   - The returned knapsack.Instance is already validated, so degenerate data
//     (negative weights, negative capacity) is rejected at load time.
//
// Loading is the only file-touching corner of the module; the solver core in
// package knapsack never performs I/O.
package loader
