// SPDX-License-Identifier: MIT
// Package matrix: arithmetic on Matrix values.
//
// Purpose:
//   - Matrix arithmetic expressed through the row vectors' own kernels
//     (MulScalar, Add, Sub, Hadamard, Dot) so element loops live in one place.
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Semantics:
//   - Add/Sub/Hadamard are elementwise: out[i][j] = a[i][j] ∘ b[i][j].
//   - Mul is the standard product: out[i][j] = Σ_k a[i][k]*b[k][j].
//   - MulVec is the standard product: out[i] = Σ_j a[i][j]*x[j].
//
// Determinism:
//   - Fixed i→j loop orders; dot products accumulate left to right from zero.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// rowOp is a binary row kernel such as (*vector.Vector[T]).Add.
type rowOp[T vector.Number] func(a, b *vector.Vector[T]) (*vector.Vector[T], error)

// zipRows applies op to each pair of corresponding rows after validating o.
// Complexity: O(n²) time and space.
func (m *Matrix[T]) zipRows(o *Matrix[T], opTag string, op rowOp[T]) (*Matrix[T], error) {
	if err := validateOperand(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		r, err := op(row, o.rows[i])
		if err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}

// MulScalar returns x*m; every row is scalar-multiplied.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(x T) *Matrix[T] {
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		rows[i] = row.MulScalar(x)
	}

	return &Matrix[T]{rows: rows}
}

// MulVec returns y = m·x with y[i] the dot product of row i and x.
// Returns ErrNilVector for a nil x and ErrShapeMismatch when x.Len() != Size().
// Complexity: O(n²).
func (m *Matrix[T]) MulVec(x *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := validateVecLen(x, len(m.rows)); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make([]T, len(m.rows))
	for i, row := range m.rows {
		s, err := row.Dot(x)
		if err != nil {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("row %d: %w", i, err))
		}
		out[i] = s
	}
	y, err := vector.FromSlice(out)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return y, nil
}

// Add returns the elementwise sum m + o.
// Returns ErrNilMatrix for a nil o and ErrShapeMismatch when dimensions differ.
// Complexity: O(n²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(o, opAdd, (*vector.Vector[T]).Add)
}

// Sub returns the elementwise difference m - o.
// Returns ErrNilMatrix for a nil o and ErrShapeMismatch when dimensions differ.
// Complexity: O(n²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(o, opSub, (*vector.Vector[T]).Sub)
}

// Hadamard returns the elementwise product m ⊙ o.
// Returns ErrNilMatrix for a nil o and ErrShapeMismatch when dimensions differ.
// Complexity: O(n²).
func (m *Matrix[T]) Hadamard(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(o, opHadamard, (*vector.Vector[T]).Hadamard)
}

// Mul returns the matrix product m × o.
// o is transposed once so every output element is a row·row dot product.
// Returns ErrNilMatrix for a nil o and ErrShapeMismatch when dimensions differ.
// Complexity: O(n³) time, O(n²) extra space.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := validateOperand(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ot := o.Transpose()
	n := len(m.rows)
	rows := make([]*vector.Vector[T], n)
	for i, row := range m.rows {
		vals := make([]T, n)
		for j, col := range ot.rows {
			s, err := row.Dot(col)
			if err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			vals[j] = s
		}
		r, err := vector.FromSlice(vals)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}

// Transpose returns mᵀ.
// Complexity: O(n²).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	n := len(m.rows)
	cols := make([][]T, n)
	for j := range cols {
		cols[j] = make([]T, n)
	}
	for i, row := range m.rows {
		for j, x := range row.Values() {
			cols[j][i] = x
		}
	}
	rows := make([]*vector.Vector[T], n)
	for j, col := range cols {
		rows[j], _ = vector.FromSlice(col) // len(col) == n, within bounds
	}

	return &Matrix[T]{rows: rows}
}
