// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// NaNSumSquares returns Σ x² over all finite entries and the number of entries
// that contributed. NaN (missing edge) and ±Inf (impassable edge) are skipped.
//
// Complexity: O(M·C²).
func (t *Dense3) NaNSumSquares() (float64, int) {
	var (
		sum float64
		n   int
		x   float64
	)
	for _, x = range t.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		sum += x * x
		n++
	}

	return sum, n
}

// NaNNorm returns the L2 norm over finite entries.
// Returns ErrNoFiniteValues when no entry is finite.
func (t *Dense3) NaNNorm() (float64, error) {
	sum, n := t.NaNSumSquares()
	if n == 0 {
		return 0, ErrNoFiniteValues
	}

	return math.Sqrt(sum), nil
}

// NaNSum returns Σ x over non-NaN entries.
func (t *Dense3) NaNSum() float64 {
	var sum, x float64
	for _, x = range t.data {
		if !math.IsNaN(x) {
			sum += x
		}
	}

	return sum
}

// Scale returns a new tensor with every entry multiplied by f. NaN stays NaN.
// Complexity: O(M·C²).
func (t *Dense3) Scale(f float64) *Dense3 {
	out := &Dense3{m: t.m, c: t.c, data: make([]float64, len(t.data))}
	var i int
	for i = range t.data {
		out.data[i] = t.data[i] * f
	}

	return out
}

// AddCounts adds weight·count to every entry touched by k, in place.
// k must share the tensor's shape.
//
// Complexity: O(nnz(k)).
func (t *Dense3) AddCounts(k *Counts, weight float64) error {
	if k == nil || k.m != t.m || k.c != t.c {
		return fmt.Errorf("AddCounts: %w", ErrDimensionMismatch)
	}
	var idx int
	for _, idx = range k.order {
		t.data[idx] += weight * float64(k.n[idx])
	}

	return nil
}

// DotCounts returns Σ t[i]·k[i] over the entries touched by k, skipping NaN
// entries of t (they contribute 0).
//
// Complexity: O(nnz(k)).
func (t *Dense3) DotCounts(k *Counts) (float64, error) {
	if k == nil || k.m != t.m || k.c != t.c {
		return 0, fmt.Errorf("DotCounts: %w", ErrDimensionMismatch)
	}
	var (
		sum float64
		idx int
		x   float64
	)
	for _, idx = range k.order {
		x = t.data[idx]
		if math.IsNaN(x) {
			continue
		}
		sum += x * float64(k.n[idx])
	}

	return sum, nil
}
