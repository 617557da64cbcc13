// Package knapsack provides approximation heuristics for the 0-1 knapsack
// problem, together with the fractional-relaxation upper bound used to
// measure their quality.
//
// It includes four solvers over plain parallel arrays (values, weights) and a
// scalar capacity:
//
//   - Greedy — constructive heuristic by descending value/weight ratio.
//     Complexity: O(n log n). Feasible by construction.
//
//   - FractionalRelaxation — exact optimum of the continuous relaxation
//     (one item may be taken fractionally). Its Value upper-bounds every
//     integer solution and drives gap computation.
//     Complexity: O(n log n).
//
//   - RoundingRepair — thresholds a fractional vector at 0.5, repairs
//     infeasibility by evicting worst-ratio items, greedily fills remaining
//     slack, and tournament-selects against the best single item and the
//     greedy solution. Complexity: O(n log n).
//
//   - LocalSearch — first-improvement 1-add and 1-1 swap moves from a seed
//     selection until a local optimum. Complexity: O(iters·n²).
//
// All solvers are single-threaded, side-effect-free on their inputs, and
// deterministic: ratio ties keep input order, scans run in fixed index order,
// and no RNG is involved. Each call times its core loop with the monotonic
// clock and returns an immutable Solution snapshot.
//
// Use this package when a near-optimal answer in microseconds beats an exact
// answer from a MIP solver; typical gaps against the relaxation bound are a
// few percent on value-correlated instances.
package knapsack
