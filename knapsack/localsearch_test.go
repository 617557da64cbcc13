package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapkit/knapsack"
)

// TestLocalSearch_SwapEscapesGreedy: on the canonical instance the greedy
// solution (items 0,1 — value 160) is not locally optimal; swapping item 0
// for item 2 fills the knapsack exactly and reaches value 220.
func TestLocalSearch_SwapEscapesGreedy(t *testing.T) {
	sol, err := knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, nil, knapsack.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, knapsack.MethodLocalSearch, sol.Method)
	require.Equal(t, []float64{0, 1, 1}, sol.Selection)
	require.Equal(t, 220.0, sol.Value)
	require.Equal(t, 50.0, sol.Weight)
	require.True(t, feasible(sol, trioCapacity))

	// One improving iteration plus the closing iteration that proves local
	// optimality.
	require.Equal(t, 2, sol.Iterations)
}

// TestLocalSearch_AddMove: the first fitting positive-value unselected item
// (index order) is added immediately.
func TestLocalSearch_AddMove(t *testing.T) {
	seed := []float64{0, 0, 0}
	sol, err := knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, seed, knapsack.DefaultOptions())
	require.NoError(t, err)

	// From the empty seed: add 0, add 1, then swap 0→2 for the optimum.
	require.Equal(t, []float64{0, 1, 1}, sol.Selection)
	require.Equal(t, 220.0, sol.Value)

	// The caller's seed is never mutated.
	require.Equal(t, []float64{0, 0, 0}, seed)
}

// TestLocalSearch_MonotoneOverSeed: the result never drops below the seed's
// value, whichever feasible seed is supplied.
func TestLocalSearch_MonotoneOverSeed(t *testing.T) {
	seeds := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 1},
		{1, 1, 0},
	}

	opts := knapsack.DefaultOptions()
	for _, seed := range seeds {
		seedValue, _, err := knapsack.Evaluate(seed, trioValues, trioWeights)
		require.NoError(t, err)

		sol, err := knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, seed, opts)
		require.NoError(t, err)
		require.GreaterOrEqual(t, sol.Value, seedValue)
		require.True(t, feasible(sol, trioCapacity))
		require.True(t, binary(sol.Selection))
	}
}

// TestLocalSearch_IterationCap: MaxIters 0 forbids any move — the seed comes
// back unchanged in value with zero iterations.
func TestLocalSearch_IterationCap(t *testing.T) {
	opts := knapsack.DefaultOptions()
	opts.MaxIters = 0

	sol, err := knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, []float64{1, 0, 0}, opts)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0}, sol.Selection)
	require.Equal(t, 60.0, sol.Value)
	require.Zero(t, sol.Iterations)
}

// TestLocalSearch_LocalOptimumHalts: a solution with no improving add or swap
// terminates after the single proving iteration.
func TestLocalSearch_LocalOptimumHalts(t *testing.T) {
	// Already optimal: items 1,2 fill the capacity exactly.
	sol, err := knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, []float64{0, 1, 1}, knapsack.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1}, sol.Selection)
	require.Equal(t, 220.0, sol.Value)
	require.Equal(t, 1, sol.Iterations)
}

// TestLocalSearch_Boundaries: zero capacity and the oversized single item
// leave the empty seed untouched.
func TestLocalSearch_Boundaries(t *testing.T) {
	sol, err := knapsack.LocalSearch(trioValues, trioWeights, 0, nil, knapsack.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, sol.Value)
	require.Zero(t, sol.Weight)

	sol, err = knapsack.LocalSearch([]float64{99}, []float64{7}, 5, nil, knapsack.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, sol.Value)
	require.Equal(t, []float64{0}, sol.Selection)
}

// TestLocalSearch_SeedValidation: a seed of the wrong length or with entries
// outside [0,1] is rejected up front.
func TestLocalSearch_SeedValidation(t *testing.T) {
	opts := knapsack.DefaultOptions()

	_, err := knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, []float64{1, 0}, opts)
	require.ErrorIs(t, err, knapsack.ErrDimensionMismatch)

	_, err = knapsack.LocalSearch(trioValues, trioWeights, trioCapacity, []float64{2, 0, 0}, opts)
	require.ErrorIs(t, err, knapsack.ErrFractionOutOfRange)
}
