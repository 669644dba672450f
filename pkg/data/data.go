// Package data defines the tabular data boundary for figure rendering.
//
// The rendering core never owns data. It sees a [Source] capability (column
// lookup by name) yielding typed column views, and treats those views as
// read-only for the duration of one render pass. Adapters for concrete
// storage formats (CSV files, columnar engines) live outside this module and
// only need to implement [Source].
//
// # Usage
//
// Build an in-memory source:
//
//	frame := data.NewFrame().
//	    AddNums("x", 0, 1, 2, 3).
//	    AddNums("y", 10, 12, 9, 14)
//
// Numeric columns use NaN as the null marker; renderers split line paths at
// nulls instead of interpolating across them.
package data

import "math"

// Source is the capability contract for tabular data: column lookup by name.
// Implementations must be safe for concurrent read access during a render.
type Source interface {
	// Column returns the named column view and whether it exists.
	Column(name string) (Column, bool)
}

// Column is a typed, fixed-length sequence of values. The concrete type is
// either [NumColumn] or [CatColumn].
type Column interface {
	Len() int
}

// NumColumn is a numeric column view. NaN entries are nulls.
type NumColumn []float64

// Len returns the number of entries including nulls.
func (c NumColumn) Len() int { return len(c) }

// LenValid returns the number of non-null entries.
func (c NumColumn) LenValid() int {
	n := 0
	for _, v := range c {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Bounds returns the min and max of the finite entries. ok is false when the
// column holds no finite value.
func (c NumColumn) Bounds() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// CatColumn is a categorical column view: an ordered label sequence.
type CatColumn []string

// Len returns the number of labels.
func (c CatColumn) Len() int { return len(c) }
