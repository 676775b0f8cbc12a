// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for dimension and operand checks.
//   - Return plain sentinels so call sites wrap them uniformly.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// validateSize ensures 1 ≤ n ≤ MaxMatrixSize.
// Complexity: O(1).
func validateSize(n int) error {
	if n <= 0 || n > MaxMatrixSize {
		return fmt.Errorf("dimension %d: %w", n, ErrBadSize)
	}

	return nil
}

// validateOperand ensures o is non-nil and has the same dimension as m.
// Assumes m is non-nil (method receiver).
// Complexity: O(1).
func validateOperand[T vector.Number](m, o *Matrix[T]) error {
	if o == nil {
		return ErrNilMatrix
	}
	if len(m.rows) != len(o.rows) {
		return fmt.Errorf("dimensions %d and %d: %w", len(m.rows), len(o.rows), ErrShapeMismatch)
	}

	return nil
}

// validateVecLen ensures v is non-nil and its length equals the dimension n.
// Complexity: O(1).
func validateVecLen[T vector.Number](v *vector.Vector[T], n int) error {
	if v == nil {
		return ErrNilVector
	}
	if v.Len() != n {
		return fmt.Errorf("vector length %d, dimension %d: %w", v.Len(), n, ErrShapeMismatch)
	}

	return nil
}
