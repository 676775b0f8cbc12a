// SPDX-License-Identifier: MIT

// Package matrix: size caps and the Row view.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

const (
	// MaxMatrixSize is the largest dimension New accepts.
	// MaxMatrixSize² does not exceed vector.MaxVectorSize.
	MaxMatrixSize = 10_000

	// DefaultSize is the dimension produced by Default.
	DefaultSize = 1
)

// Row is a view of one matrix row. Writes through a Row are visible in the
// matrix it came from. A Row cannot change the row's length.
type Row[T vector.Number] struct {
	i int               // row index, used in error context
	v *vector.Vector[T] // the live row owned by the matrix
}

// Len returns the row length, equal to the matrix dimension.
func (r Row[T]) Len() int { return r.v.Len() }

// Ptr returns a pointer to element j of the row.
// Returns ErrOutOfRange if j < 0 or j ≥ Len().
func (r Row[T]) Ptr(j int) (*T, error) {
	p, err := r.v.Ptr(j)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", r.i, err)
	}

	return p, nil
}

// At returns element j of the row.
// Returns ErrOutOfRange if j < 0 or j ≥ Len().
func (r Row[T]) At(j int) (T, error) {
	p, err := r.Ptr(j)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set assigns x to element j of the row.
// Returns ErrOutOfRange if j < 0 or j ≥ Len().
func (r Row[T]) Set(j int, x T) error {
	p, err := r.Ptr(j)
	if err != nil {
		return err
	}
	*p = x

	return nil
}

// Values returns a copy of the row's elements.
func (r Row[T]) Values() []T { return r.v.Values() }

// Vector returns a detached deep copy of the row.
func (r Row[T]) Vector() *vector.Vector[T] { return r.v.Clone() }

// String formats the row like vector.Vector.String.
func (r Row[T]) String() string { return r.v.String() }
