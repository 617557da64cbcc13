package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapkit/knapsack"
)

// TestEvaluate_Basics verifies the two dot products on the canonical fixture.
func TestEvaluate_Basics(t *testing.T) {
	value, weight, err := knapsack.Evaluate([]float64{1, 1, 0}, trioValues, trioWeights)
	require.NoError(t, err)
	require.Equal(t, 160.0, value)
	require.Equal(t, 30.0, weight)
}

// TestEvaluate_Fractional verifies fractional selections are summed as-is.
func TestEvaluate_Fractional(t *testing.T) {
	value, weight, err := knapsack.Evaluate([]float64{1, 1, 0.5}, trioValues, trioWeights)
	require.NoError(t, err)
	require.Equal(t, 220.0, value)
	require.Equal(t, 45.0, weight)
}

// TestEvaluate_DimensionMismatch checks every length-skew combination.
func TestEvaluate_DimensionMismatch(t *testing.T) {
	_, _, err := knapsack.Evaluate([]float64{1, 0}, trioValues, trioWeights)
	require.ErrorIs(t, err, knapsack.ErrDimensionMismatch)

	_, _, err = knapsack.Evaluate([]float64{1, 0, 0}, trioValues, []float64{1, 2})
	require.ErrorIs(t, err, knapsack.ErrDimensionMismatch)
}

// TestEvaluate_Empty confirms an empty instance evaluates to (0, 0).
func TestEvaluate_Empty(t *testing.T) {
	value, weight, err := knapsack.Evaluate(nil, nil, nil)
	require.NoError(t, err)
	require.Zero(t, value)
	require.Zero(t, weight)
}

// TestEvaluate_Idempotent asserts no hidden state: two calls on the same
// inputs return bit-identical results.
func TestEvaluate_Idempotent(t *testing.T) {
	sel := []float64{0, 1, 1}

	v1, w1, err := knapsack.Evaluate(sel, trioValues, trioWeights)
	require.NoError(t, err)
	v2, w2, err := knapsack.Evaluate(sel, trioValues, trioWeights)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
	require.Equal(t, w1, w2)
}
