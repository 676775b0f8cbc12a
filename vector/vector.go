// SPDX-License-Identifier: MIT

// Package vector: Vector type, construction, assignment and element access.
package vector

import "fmt"

// Vector is a fixed-length sequence of T backed by exclusively owned storage.
// The zero value is a drained vector (Len() == 0); use New, Default or
// FromSlice to obtain a usable one.
type Vector[T Number] struct {
	data []T // owned storage; nil only once drained by a move
}

// New returns a vector of length zero-valued elements.
// Returns ErrBadSize if length ≤ 0 or length > MaxVectorSize.
// Complexity: O(length).
func New[T Number](length int) (*Vector[T], error) {
	if err := validateLength(length); err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return &Vector[T]{data: make([]T, length)}, nil
}

// Default returns a vector of DefaultLength zero-valued elements.
func Default[T Number]() *Vector[T] {
	return &Vector[T]{data: make([]T, DefaultLength)}
}

// FromSlice returns a vector holding a copy of src.
// A nil src is a programmer error and panics. An empty src, or one longer
// than MaxVectorSize, yields ErrBadSize.
// Complexity: O(len(src)).
func FromSlice[T Number](src []T) (*Vector[T], error) {
	if src == nil {
		panic(panicNilSlice)
	}
	if err := validateLength(len(src)); err != nil {
		return nil, vectorErrorf(opFromSlice, err)
	}
	data := make([]T, len(src))
	copy(data, src)

	return &Vector[T]{data: data}, nil
}

// Clone returns a deep copy of v. The copy shares no storage with v.
// Cloning a drained vector yields a drained vector.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v.data == nil {
		return &Vector[T]{}
	}
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data}
}

// CopyFrom replaces v's contents with a deep copy of src; v's length follows src.
// Assigning a vector to itself is a no-op. The copy is built in full before v
// is touched, so v is either fully replaced or unchanged.
// Returns ErrNilVector if src is nil.
// Complexity: O(len(src)).
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(opCopyFrom, ErrNilVector)
	}
	if v == src {
		return nil
	}
	tmp := src.Clone()
	v.data = tmp.data

	return nil
}

// Move transfers src's storage to a new vector in O(1) and leaves src drained.
// Returns ErrNilVector if src is nil.
func Move[T Number](src *Vector[T]) (*Vector[T], error) {
	if src == nil {
		return nil, vectorErrorf(opMove, ErrNilVector)
	}
	out := &Vector[T]{data: src.data}
	src.data = nil

	return out, nil
}

// MoveFrom transfers src's storage into v in O(1) and leaves src drained.
// v's previous storage is released. Moving a vector into itself is a no-op.
// Returns ErrNilVector if src is nil.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(opMoveFrom, ErrNilVector)
	}
	if v == src {
		return nil
	}
	v.data, src.data = src.data, nil

	return nil
}

// Swap exchanges the storage of a and b in O(1). Both must be non-nil.
func Swap[T Number](a, b *Vector[T]) {
	if a == nil || b == nil {
		panic(panicNilSwap)
	}
	a.data, b.data = b.data, a.data
}

// Len returns the number of elements. A nil or drained vector has length 0.
// Complexity: O(1).
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Ptr returns a pointer to element i, the single checked-access primitive
// behind At and Set. Writes through the pointer are observed by later reads.
// Returns ErrOutOfRange if i < 0 or i ≥ Len().
// Complexity: O(1).
func (v *Vector[T]) Ptr(i int) (*T, error) {
	if i < 0 || i >= v.Len() {
		return nil, vectorErrorf(opAccess, fmt.Errorf("index %d, length %d: %w", i, v.Len(), ErrOutOfRange))
	}

	return &v.data[i], nil
}

// At returns element i.
// Returns ErrOutOfRange if i < 0 or i ≥ Len().
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.Ptr(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set assigns x to element i.
// Returns ErrOutOfRange if i < 0 or i ≥ Len().
func (v *Vector[T]) Set(i int, x T) error {
	p, err := v.Ptr(i)
	if err != nil {
		return err
	}
	*p = x

	return nil
}

// Values returns a copy of the elements in order.
func (v *Vector[T]) Values() []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports whether v and o have the same length and pairwise equal
// elements. Vectors of differing length are unequal; this is not an error.
// Two nil vectors are equal.
// Complexity: O(n), early exit on first difference.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
