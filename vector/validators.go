// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for length and operand checks.
//   - Return plain sentinels; call sites wrap them with their op tag.

package vector

// validateLength ensures 1 ≤ n ≤ MaxVectorSize.
// Complexity: O(1).
func validateLength(n int) error {
	if n <= 0 || n > MaxVectorSize {
		return ErrBadSize
	}

	return nil
}

// validateOperand ensures o is non-nil and has the same length as v.
// Assumes v itself is non-nil (method receiver).
// Complexity: O(1).
func validateOperand[T Number](v, o *Vector[T]) error {
	if o == nil {
		return ErrNilVector
	}
	if len(v.data) != len(o.data) {
		return ErrShapeMismatch
	}

	return nil
}
