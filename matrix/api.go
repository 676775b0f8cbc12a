// SPDX-License-Identifier: MIT
// Package matrix — convenience constructors.
//
// Purpose:
//   - Intention-revealing entry points layered on New.
//   - No logic duplication: every constructor validates through validateSize.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// Default returns a DefaultSize×DefaultSize zero matrix.
func Default[T vector.Number]() *Matrix[T] {
	row := vector.Default[T]()

	return &Matrix[T]{rows: []*vector.Vector[T]{row}}
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Returns ErrBadSize if n ≤ 0 or n > MaxMatrixSize.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[T vector.Number](n int) (*Matrix[T], error) {
	m, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, T(1)) // in range after New
	}

	return m, nil
}

// FromRows returns a matrix holding a copy of a square literal.
// Returns ErrBadSize for an empty or oversized literal and ErrShapeMismatch
// when any row length differs from the number of rows.
// Complexity: O(n²).
func FromRows[T vector.Number](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if err := validateSize(n); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	out := make([]*vector.Vector[T], n)
	for i, r := range rows {
		if len(r) != n {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has length %d, want %d: %w", i, len(r), n, ErrShapeMismatch))
		}
		row, err := vector.FromSlice(r)
		if err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		out[i] = row
	}

	return &Matrix[T]{rows: out}, nil
}
