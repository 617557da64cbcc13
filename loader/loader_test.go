// Package loader_test exercises the CSV loading contract: required columns,
// the capacity marker row, silent dropping of incomplete rows, and error
// taxonomy.
package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapkit/knapsack"
	"github.com/katalvlaran/knapkit/loader"
)

func TestLoad_HappyPath(t *testing.T) {
	const csv = `Item,Value,Weight
Notebook,7500,2.8
Camera,4200,1.9
Tablet,2300,0.7
`
	inst, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, []string{"Notebook", "Camera", "Tablet"}, inst.Items)
	require.Equal(t, []float64{7500, 4200, 2300}, inst.Values)
	require.Equal(t, []float64{2.8, 1.9, 0.7}, inst.Weights)
	require.Equal(t, loader.DefaultCapacity, inst.Capacity)
}

func TestLoad_CapacityRowOverridesDefault(t *testing.T) {
	const csv = `item,value,weight
a,10,1
Capacity,5.5,
b,20,2
`
	inst, err := loader.Load(strings.NewReader(csv), loader.Options{DefaultCapacity: 99})
	require.NoError(t, err)

	require.Equal(t, 5.5, inst.Capacity)
	require.Equal(t, []string{"a", "b"}, inst.Items)
}

func TestLoad_FirstCapacityRowWins(t *testing.T) {
	const csv = `item,value,weight
capacity,7,
capacity,9,
a,1,1
`
	inst, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 7.0, inst.Capacity)
	require.Equal(t, []string{"a"}, inst.Items)
}

func TestLoad_HeaderCaseInsensitive(t *testing.T) {
	const csv = `ITEM, VALUE ,WeIgHt
x,1,2
`
	inst, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, inst.Items)
}

func TestLoad_MissingColumn(t *testing.T) {
	const csv = `item,value
a,10
`
	_, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.ErrorIs(t, err, loader.ErrMissingColumn)
	require.Contains(t, err.Error(), "weight")
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := loader.Load(strings.NewReader(""), loader.DefaultOptions())
	require.ErrorIs(t, err, loader.ErrMissingColumn)
}

func TestLoad_IncompleteRowsDroppedSilently(t *testing.T) {
	const csv = `item,value,weight
a,10,1
b,,2
c,30,
,40,4
d,50,5
`
	inst, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "d"}, inst.Items)
	require.Equal(t, []float64{10, 50}, inst.Values)
	require.Equal(t, []float64{1, 5}, inst.Weights)
}

func TestLoad_BadNumber(t *testing.T) {
	const csv = `item,value,weight
a,ten,1
`
	_, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.ErrorIs(t, err, loader.ErrBadNumber)
	require.Contains(t, err.Error(), "row 2")
}

func TestLoad_NegativeWeightRejected(t *testing.T) {
	const csv = `item,value,weight
a,10,-1
`
	_, err := loader.Load(strings.NewReader(csv), loader.DefaultOptions())
	require.ErrorIs(t, err, knapsack.ErrNegativeWeight)
}

func TestLoadFile_NameFromBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "C1.csv")
	require.NoError(t, os.WriteFile(path, []byte("item,value,weight\na,10,1\n"), 0o600))

	inst, err := loader.LoadFile(path, loader.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "C1.csv", inst.Name)
	require.Equal(t, []string{"a"}, inst.Items)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.csv"), loader.DefaultOptions())
	require.Error(t, err)
}
