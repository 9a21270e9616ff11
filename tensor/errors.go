// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (modes<=0 or cities<=0),
	// or when nested input slices are ragged.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that a (mode, from, to) index is outside valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates that two operands do not share a shape.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNoFiniteValues is returned by reductions that need at least one
	// non-NaN entry (for example a norm used as a divisor).
	ErrNoFiniteValues = errors.New("tensor: no non-NaN values")
)

// tensorErrorf wraps err with the method name and index triple.
func tensorErrorf(method string, mode, from, to int, err error) error {
	return fmt.Errorf("Dense3.%s(%d,%d,%d): %w", method, mode, from, to, err)
}
