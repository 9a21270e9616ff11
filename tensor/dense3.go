// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Dense3 is a mode-major M×C×C tensor of float64 values.
// m is the number of transport modes, c the number of cities,
// and data holds m*c*c elements (see package doc for the layout).
type Dense3 struct {
	m, c int       // modes and cities
	data []float64 // flat backing storage, length == m*c*c
}

// New creates an M×C×C tensor initialized to zeros.
// Complexity: O(M·C²) time and memory.
func New(modes, cities int) (*Dense3, error) {
	if modes <= 0 || cities <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", modes, cities, ErrBadShape)
	}

	return &Dense3{m: modes, c: cities, data: make([]float64, modes*cities*cities)}, nil
}

// Filled creates an M×C×C tensor with every entry set to v.
// Filled(m, c, math.NaN()) is the usual starting point for a graph with no edges.
func Filled(modes, cities int, v float64) (*Dense3, error) {
	t, err := New(modes, cities)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range t.data {
		t.data[i] = v
	}

	return t, nil
}

// FromSlices builds a tensor from nested slices indexed [mode][from][to].
// Stage 1 (Validate): non-empty and square per mode, identical across modes.
// Stage 2 (Execute): copy values into the flat buffer.
// Complexity: O(M·C²).
func FromSlices(v [][][]float64) (*Dense3, error) {
	// Stage 1: shape checks.
	if len(v) == 0 || len(v[0]) == 0 {
		return nil, fmt.Errorf("FromSlices: %w", ErrBadShape)
	}
	var (
		m = len(v)
		c = len(v[0])
	)
	var mode, from int
	for mode = 0; mode < m; mode++ {
		if len(v[mode]) != c {
			return nil, fmt.Errorf("FromSlices: mode %d has %d rows, want %d: %w", mode, len(v[mode]), c, ErrBadShape)
		}
		for from = 0; from < c; from++ {
			if len(v[mode][from]) != c {
				return nil, fmt.Errorf("FromSlices: row (%d,%d) has %d cols, want %d: %w",
					mode, from, len(v[mode][from]), c, ErrBadShape)
			}
		}
	}

	// Stage 2: copy.
	t := &Dense3{m: m, c: c, data: make([]float64, m*c*c)}
	for mode = 0; mode < m; mode++ {
		for from = 0; from < c; from++ {
			copy(t.data[t.offset(mode, from, 0):], v[mode][from])
		}
	}

	return t, nil
}

// Modes returns the size of the first axis.
func (t *Dense3) Modes() int { return t.m }

// Cities returns the size of the second and third axes.
func (t *Dense3) Cities() int { return t.c }

// Len returns the total number of entries (M·C²).
func (t *Dense3) Len() int { return len(t.data) }

// SameShape reports whether o has the same (M, C) shape as t.
func (t *Dense3) SameShape(o *Dense3) bool {
	return o != nil && t.m == o.m && t.c == o.c
}

// offset computes the flat index without bounds checks.
func (t *Dense3) offset(mode, from, to int) int {
	return mode*t.c*t.c + from*t.c + to
}

// indexOf computes the flat index for (mode, from, to) or returns ErrOutOfRange.
func (t *Dense3) indexOf(method string, mode, from, to int) (int, error) {
	if mode < 0 || mode >= t.m || from < 0 || from >= t.c || to < 0 || to >= t.c {
		return 0, tensorErrorf(method, mode, from, to, ErrOutOfRange)
	}

	return t.offset(mode, from, to), nil
}

// At retrieves the entry at (mode, from, to).
// Complexity: O(1).
func (t *Dense3) At(mode, from, to int) (float64, error) {
	idx, err := t.indexOf("At", mode, from, to)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns v at (mode, from, to).
// Complexity: O(1).
func (t *Dense3) Set(mode, from, to int, v float64) error {
	idx, err := t.indexOf("Set", mode, from, to)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// Surface copies the (mode, to) slice for a fixed from-city into dst, flattened
// mode-major (position mode·C + to), and returns it. dst is reused when it has
// enough capacity.
//
// Complexity: O(M·C).
func (t *Dense3) Surface(from int, dst []float64) ([]float64, error) {
	if from < 0 || from >= t.c {
		return nil, tensorErrorf("Surface", 0, from, 0, ErrOutOfRange)
	}
	n := t.m * t.c
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	var mode int
	for mode = 0; mode < t.m; mode++ {
		copy(dst[mode*t.c:(mode+1)*t.c], t.data[t.offset(mode, from, 0):t.offset(mode, from, 0)+t.c])
	}

	return dst, nil
}

// Clone returns a deep copy.
// Complexity: O(M·C²).
func (t *Dense3) Clone() *Dense3 {
	data := make([]float64, len(t.data))
	copy(data, t.data)

	return &Dense3{m: t.m, c: t.c, data: data}
}

// Equal reports whether t and o have the same shape and identical entries,
// treating NaN as equal to NaN.
func (t *Dense3) Equal(o *Dense3) bool {
	if !t.SameShape(o) {
		return false
	}
	var i int
	for i = range t.data {
		a, b := t.data[i], o.data[i]
		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}
		if a != b {
			return false
		}
	}

	return true
}

// String renders one C×C block per mode.
func (t *Dense3) String() string {
	var sb strings.Builder
	var mode, from, to int
	for mode = 0; mode < t.m; mode++ {
		fmt.Fprintf(&sb, "mode %d:\n", mode)
		for from = 0; from < t.c; from++ {
			sb.WriteString("[")
			for to = 0; to < t.c; to++ {
				if to > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%g", t.data[t.offset(mode, from, to)])
			}
			sb.WriteString("]\n")
		}
	}

	return sb.String()
}
