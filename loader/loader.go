// Package loader - CSV parsing into knapsack.Instance.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapkit/knapsack"
)

// Sentinel errors returned by the loader. ErrMissingColumn and ErrBadNumber
// are wrapped with context (column name, row number); match with errors.Is.
var (
	// ErrMissingColumn indicates that a required header (item, value, weight)
	// is absent from the input.
	ErrMissingColumn = errors.New("loader: missing required column")

	// ErrBadNumber indicates a present but unparseable numeric field.
	// Blank/absent fields do not trigger it — those rows are dropped silently.
	ErrBadNumber = errors.New("loader: malformed numeric field")
)

// Required column names, matched case-insensitively against trimmed headers.
const (
	colItem   = "item"
	colValue  = "value"
	colWeight = "weight"
)

// capacityMarker identifies the optional capacity row by its item field.
const capacityMarker = "capacity"

// DefaultCapacity is the capacity assumed when the input has no capacity row.
const DefaultCapacity = 15.0

// Options configures loading.
//
// DefaultCapacity – capacity used when the input carries no capacity marker
// row. A capacity row, when present, always overrides it.
type Options struct {
	DefaultCapacity float64
}

// DefaultOptions returns the canonical loader configuration.
func DefaultOptions() Options {
	return Options{DefaultCapacity: DefaultCapacity}
}

// Load parses CSV tabular input into a knapsack.Instance.
//
// Input contract:
//   - The first record is a header; it must contain the columns "item",
//     "value" and "weight" (any capitalization, surrounding spaces ignored).
//     A missing column fails with ErrMissingColumn naming the column.
//   - An optional row whose item field equals "capacity" (case-insensitive)
//     sets the instance capacity from its value field and is excluded from
//     the item list. The first such row wins; all of them are excluded.
//   - Rows with a blank value or weight field are dropped silently
//     (documented lossy behavior, mirrors the upstream data files).
//   - A non-blank, non-numeric value or weight fails with ErrBadNumber and
//     the 1-based row number.
//
// The returned Instance has been validated (knapsack.Instance.Validate), so
// negative weights or capacities surface here, not later inside a solver.
// Instance.Name is left empty; LoadFile fills it with the file base name.
//
// Complexity: O(rows).
func Load(r io.Reader, opts Options) (knapsack.Instance, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows are handled per-field below

	records, err := cr.ReadAll()
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("loader: reading csv: %w", err)
	}
	if len(records) == 0 {
		// No header at all means every required column is missing.
		return knapsack.Instance{}, fmt.Errorf("%w: %q", ErrMissingColumn, colItem)
	}

	// Header: lower-cased, trimmed name -> column index.
	header := make(map[string]int, len(records[0]))
	var c int
	for c = 0; c < len(records[0]); c++ {
		header[strings.ToLower(strings.TrimSpace(records[0][c]))] = c
	}

	var itemIdx, valueIdx, weightIdx int
	var ok bool
	if itemIdx, ok = header[colItem]; !ok {
		return knapsack.Instance{}, fmt.Errorf("%w: %q", ErrMissingColumn, colItem)
	}
	if valueIdx, ok = header[colValue]; !ok {
		return knapsack.Instance{}, fmt.Errorf("%w: %q", ErrMissingColumn, colValue)
	}
	if weightIdx, ok = header[colWeight]; !ok {
		return knapsack.Instance{}, fmt.Errorf("%w: %q", ErrMissingColumn, colWeight)
	}

	inst := knapsack.Instance{Capacity: opts.DefaultCapacity}

	var (
		row         []string
		item        string
		value       float64
		weight      float64
		capacitySet bool
		i           int
	)
	for i = 1; i < len(records); i++ {
		row = records[i]

		item = strings.TrimSpace(field(row, itemIdx))

		// Capacity marker row: consume and exclude from the item list.
		if strings.EqualFold(item, capacityMarker) {
			if capacitySet {
				continue
			}
			value, err = parseField(field(row, valueIdx), i+1)
			if err != nil {
				return knapsack.Instance{}, err
			}
			inst.Capacity = value
			capacitySet = true

			continue
		}

		// Incomplete rows are dropped silently.
		if item == "" ||
			strings.TrimSpace(field(row, valueIdx)) == "" ||
			strings.TrimSpace(field(row, weightIdx)) == "" {
			continue
		}

		value, err = parseField(field(row, valueIdx), i+1)
		if err != nil {
			return knapsack.Instance{}, err
		}
		weight, err = parseField(field(row, weightIdx), i+1)
		if err != nil {
			return knapsack.Instance{}, err
		}

		inst.Items = append(inst.Items, item)
		inst.Values = append(inst.Values, value)
		inst.Weights = append(inst.Weights, weight)
	}

	if err = inst.Validate(); err != nil {
		return knapsack.Instance{}, err
	}

	return inst, nil
}

// LoadFile opens path and delegates to Load; the instance name is the file's
// base name (extension included, matching the upstream instance labels).
func LoadFile(path string, opts Options) (knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	inst, err := Load(f, opts)
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("%s: %w", path, err)
	}
	inst.Name = filepath.Base(path)

	return inst, nil
}

// field returns row[idx] or "" when the row is too short (ragged input).
func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return row[idx]
}

// parseField parses a trimmed numeric field; row is 1-based for messages.
func parseField(s string, row int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: %q", ErrBadNumber, row, strings.TrimSpace(s))
	}

	return v, nil
}
