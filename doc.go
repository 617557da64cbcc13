// Package knapkit is a compact toolkit for the 0-1 knapsack problem:
// fast approximation heuristics, a computable upper bound, and a
// benchmarking harness for comparing them across instances.
//
// 🚀 What is knapkit?
//
//	A deterministic, dependency-light library that brings together:
//		• Evaluator: total value/weight of a selection vector
//		• Greedy-by-ratio: feasible solution by descending value/weight ratio
//		• Fractional relaxation: continuous optimum, the universal upper bound
//		• Rounding + repair: threshold the relaxation, repair, fill, tournament
//		• Local search: first-improvement 1-add and 1-1 swap moves
//		• Benchmarking: per-instance gap analysis and comparison tables
//
// ✨ Why choose knapkit?
//
//   - Reproducible – fixed tie-break rules everywhere; same input, same output
//   - Rock-solid guarantees – every integer solver returns a feasible solution
//   - Pure Go – no cgo, no external LP/MIP solver required
//   - Testable – explicit Options, sentinel errors, no global state
//
// Under the hood, everything is organized under three subpackages:
//
//	knapsack/ — the heuristics core: evaluator, solvers, bound
//	loader/   — CSV instance loading (items, values, weights, capacity)
//	bench/    — per-instance benchmark rows, gaps and comparison tables
//
// Quick sketch:
//
//	items:    (60,10) (100,20) (120,30)   capacity: 50
//	greedy:   picks by ratio 6 > 5 > 4  → value 160
//	bound:    fractional fill           → value 240
//	search:   one swap later            → value 220
//
// Dive into the package docs for full examples and contracts.
//
//	go get github.com/katalvlaran/knapkit
package knapkit
