// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerance-based comparison for floating-point matrices, where exact
//     Equal is too strict after arithmetic.
//
// Determinism:
//   - Fixed i→j loop order with early exit on the first violation.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

const opAllClose = "AllClose"

// AllClose reports whether |a[i][j] - b[i][j]| ≤ atol + rtol*|b[i][j]| for
// every element. Negative tolerances are treated as their absolute values.
//
// Errors:
//   - ErrBadTolerance if rtol or atol is NaN or ±Inf.
//   - ErrNilMatrix if a or b is nil.
//   - ErrShapeMismatch if dimensions differ.
//
// Complexity: O(n²) time, O(n) scratch per row.
func AllClose[T constraints.Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol=%v atol=%v: %w", rtol, atol, ErrBadTolerance))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if err := validateOperand(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i, row := range a.rows {
		av, bv := row.Values(), b.rows[i].Values()
		for j := range av {
			x, y := float64(av[j]), float64(bv[j])
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				return false, nil
			}
		}
	}

	return true, nil
}
