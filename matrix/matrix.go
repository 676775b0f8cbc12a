// SPDX-License-Identifier: MIT

// Package matrix: Matrix type, construction, assignment and element access.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// Matrix is a square n×n container of T, stored as n owned row vectors.
// The zero value is a drained matrix (Size() == 0).
type Matrix[T vector.Number] struct {
	rows []*vector.Vector[T] // len(rows) == n, every row has Len() == n
}

// New returns an n×n matrix of zero-valued elements.
// Returns ErrBadSize if n ≤ 0 or n > MaxMatrixSize.
// Complexity: O(n²) time and memory.
func New[T vector.Number](n int) (*Matrix[T], error) {
	if err := validateSize(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		row, err := vector.New[T](n)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{rows: rows}, nil
}

// Clone returns a deep copy of m; every row is copied.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m.rows == nil {
		return &Matrix[T]{}
	}
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}

	return &Matrix[T]{rows: rows}
}

// CopyFrom replaces m's contents with a deep copy of src; m's dimension
// follows src. Self-assignment is a no-op. The copy is built in full before
// m is touched.
// Returns ErrNilMatrix if src is nil.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	m.rows = tmp.rows

	return nil
}

// Move transfers src's rows to a new matrix in O(1) and leaves src drained.
// Returns ErrNilMatrix if src is nil.
func Move[T vector.Number](src *Matrix[T]) (*Matrix[T], error) {
	if src == nil {
		return nil, matrixErrorf(opMove, ErrNilMatrix)
	}
	out := &Matrix[T]{rows: src.rows}
	src.rows = nil

	return out, nil
}

// MoveFrom transfers src's rows into m in O(1) and leaves src drained.
// Moving a matrix into itself is a no-op.
// Returns ErrNilMatrix if src is nil.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opMoveFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.rows, src.rows = src.rows, nil

	return nil
}

// Swap exchanges the contents of a and b in O(1). Both must be non-nil.
func Swap[T vector.Number](a, b *Matrix[T]) {
	if a == nil || b == nil {
		panic(panicNilSwap)
	}
	a.rows, b.rows = b.rows, a.rows
}

// Size returns the dimension n. A nil or drained matrix has size 0.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Row returns a view of row i.
// Returns ErrOutOfRange if i < 0 or i ≥ Size().
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) (Row[T], error) {
	if i < 0 || i >= m.Size() {
		return Row[T]{}, matrixErrorf(opRow, fmt.Errorf("index %d, size %d: %w", i, m.Size(), ErrOutOfRange))
	}

	return Row[T]{i: i, v: m.rows[i]}, nil
}

// Ptr returns a pointer to element (i, j), checking i and then j.
func (m *Matrix[T]) Ptr(i, j int) (*T, error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return row.Ptr(j)
}

// At returns element (i, j).
// Returns ErrOutOfRange if either index is outside [0, Size()).
func (m *Matrix[T]) At(i, j int) (T, error) {
	p, err := m.Ptr(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set assigns x to element (i, j).
// Returns ErrOutOfRange if either index is outside [0, Size()).
func (m *Matrix[T]) Set(i, j int, x T) error {
	p, err := m.Ptr(i, j)
	if err != nil {
		return err
	}
	*p = x

	return nil
}

// Equal reports whether m and o have the same dimension and all rows are
// pairwise equal. Differing dimensions are unequal; this is not an error.
// Complexity: O(n²), early exit on first differing row.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i, row := range m.rows {
		if !row.Equal(o.rows[i]) {
			return false
		}
	}

	return true
}
