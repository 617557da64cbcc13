// Package knapsack: core types, sentinel errors and configuration.
// This file defines ONLY the shared vocabulary of the package. All solvers
// MUST return these sentinels and tests MUST check them via errors.Is.
// No solver panics on user-triggered error conditions.
package knapsack

import (
	"errors"
	"time"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "knapsack: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates that parallel inputs disagree in length
	// (values vs weights vs selection), or that a value is NaN/±Inf where a
	// finite number is required. Fatal, surfaced immediately, never retried.
	ErrDimensionMismatch = errors.New("knapsack: dimension mismatch")

	// ErrNegativeWeight indicates a strictly negative item weight. Negative
	// weights make the value/weight ratio ordering meaningless, so they are
	// rejected outright rather than silently producing undefined results.
	// Zero weights are allowed and handled by an epsilon floor (Options.Eps).
	ErrNegativeWeight = errors.New("knapsack: negative item weight")

	// ErrBadCapacity indicates a negative or NaN knapsack capacity.
	ErrBadCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrBadOptions indicates an internally inconsistent Options value
	// (negative Eps or negative MaxIters).
	ErrBadOptions = errors.New("knapsack: invalid options")

	// ErrFractionOutOfRange indicates a fractional selection entry outside
	// [0,1] handed to RoundingRepair.
	ErrFractionOutOfRange = errors.New("knapsack: fractional selection outside [0,1]")
)

// Method identifies the solver that produced a Solution.
type Method string

const (
	// MethodGreedy is the greedy-by-ratio constructive heuristic.
	MethodGreedy Method = "greedy"

	// MethodRelaxation is the fractional (continuous) relaxation; its Value
	// is the universal upper bound for gap computation.
	MethodRelaxation Method = "relaxation"

	// MethodRoundingRepair is threshold rounding with repair, greedy fill and
	// a three-way tournament.
	MethodRoundingRepair Method = "rounding+repair"

	// MethodLocalSearch is first-improvement local search (1-add, 1-1 swap).
	MethodLocalSearch Method = "local-search"

	// MethodSingleBest is the best single item that fits alone; a trivial
	// baseline used as a tournament competitor.
	MethodSingleBest Method = "single-best"
)

const (
	// DefaultEps is the default numeric tolerance: the epsilon floor applied
	// to weights in ratio computation and the denominator floor in gaps.
	DefaultEps = 1e-12

	// DefaultMaxIters is the default local-search iteration cap. Every
	// accepted move strictly increases value, so the cap is a defensive
	// backstop against pathological floating-point ties, not a tuning knob.
	DefaultMaxIters = 10000
)

// Options configures the numeric policy of all solvers.
//
// Eps      – numeric tolerance ≥ 0 (ratio floor, gap denominator floor,
// residual-capacity cutoff in the fractional relaxation).
// MaxIters – local-search iteration cap ≥ 0 (0 forbids any move).
//
// Options is always passed explicitly; there is no package-level mutable
// configuration, which keeps every solver pure and independently testable.
type Options struct {
	Eps      float64 // numeric tolerance
	MaxIters int     // local-search iteration cap
}

// DefaultOptions returns the canonical configuration (Eps=1e-12, MaxIters=10000).
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, MaxIters: DefaultMaxIters}
}

// Solution is the immutable outcome snapshot of a single solver invocation.
//
// Selection holds one entry per item: {0,1} for integer solvers, [0,1] for
// the fractional relaxation. The slice is owned exclusively by the caller;
// solvers never alias their inputs or each other's outputs.
//
// Iterations is populated by LocalSearch only (diagnostics); other solvers
// leave it zero.
type Solution struct {
	Selection  []float64     // per-item inclusion, parallel to the instance arrays
	Value      float64       // Σ Selection[i]·value[i], stabilized to 1e-9
	Weight     float64       // Σ Selection[i]·weight[i], stabilized to 1e-9
	Elapsed    time.Duration // wall time of the core loop (monotonic clock)
	Method     Method        // producing solver
	Iterations int           // local-search iterations (0 elsewhere)
}

// Instance is an immutable 0-1 knapsack instance.
//
// Items is optional (may be nil when names are unknown); when present it must
// be parallel to Values and Weights. Weights must be non-negative; zero
// weights are tolerated via the ratio epsilon floor. Capacity must be ≥ 0.
type Instance struct {
	Name     string    // instance label (file base name when loaded from CSV)
	Items    []string  // optional item identifiers
	Values   []float64 // item values, ≥ 0 in well-formed instances
	Weights  []float64 // item weights, ≥ 0 (strictly positive recommended)
	Capacity float64   // knapsack capacity, ≥ 0
}

// Validate checks the Instance invariants: parallel array lengths, finite
// entries, non-negative weights and capacity. It never mutates the receiver.
//
// Complexity: O(n).
func (in Instance) Validate() error {
	if in.Items != nil && len(in.Items) != len(in.Values) {
		return ErrDimensionMismatch
	}

	return validateInputs(in.Values, in.Weights, in.Capacity)
}
