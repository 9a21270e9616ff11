// SPDX-License-Identifier: MIT

// Package tensor provides the small array facility used by the colony search:
// a dense three-axis float64 tensor indexed by (mode, from, to) and a sparse
// integer tensor of the same shape that counts travelled transitions.
//
// Layout:
//
//	Dense3 stores M·C·C values in a flat slice, mode-major:
//	    index(mode, from, to) = mode·C·C + from·C + to
//
// NaN semantics:
//
//	NaN marks "no edge". Every reduction in this package is NaN-aware
//	(NaN entries are skipped, as if absent), while elementwise transforms
//	preserve NaN in place. ±Inf is kept as an ordinary value, except that the
//	norm helpers skip it together with NaN.
//
// Determinism:
//
//	All loops use a fixed mode→from→to order, and Counts iterates its entries in
//	first-touch order, so sums are bit-for-bit reproducible for a given input.
//
// Errors (sentinel, use errors.Is):
//
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNoFiniteValues.
package tensor
