// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and elementwise kernels shared by the public arithmetic methods.
//   - Every kernel allocates a fresh result; operands are never mutated.
//
// Determinism:
//   - Fixed 0..n-1 loop order; Dot accumulates left to right from zero.

package vector

// mapScalar returns a new vector with out[i] = f(v[i], x).
// Complexity: O(n) time and space.
func (v *Vector[T]) mapScalar(x T, f func(a, b T) T) *Vector[T] {
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i, a := range v.data {
		out.data[i] = f(a, x)
	}

	return out
}

// zip returns a new vector with out[i] = f(v[i], o[i]) after validating o.
// Complexity: O(n) time and space.
func (v *Vector[T]) zip(o *Vector[T], opTag string, f func(a, b T) T) (*Vector[T], error) {
	if err := validateOperand(v, o); err != nil {
		return nil, vectorErrorf(opTag, err)
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i, a := range v.data {
		out.data[i] = f(a, o.data[i])
	}

	return out, nil
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }

// AddScalar returns v + x elementwise.
func (v *Vector[T]) AddScalar(x T) *Vector[T] { return v.mapScalar(x, add[T]) }

// SubScalar returns v - x elementwise.
func (v *Vector[T]) SubScalar(x T) *Vector[T] { return v.mapScalar(x, sub[T]) }

// MulScalar returns v * x elementwise.
func (v *Vector[T]) MulScalar(x T) *Vector[T] { return v.mapScalar(x, mul[T]) }

// Add returns the elementwise sum v + o.
// Returns ErrNilVector for a nil o and ErrShapeMismatch when lengths differ.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) { return v.zip(o, opAdd, add[T]) }

// Sub returns the elementwise difference v - o.
// Returns ErrNilVector for a nil o and ErrShapeMismatch when lengths differ.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) { return v.zip(o, opSub, sub[T]) }

// Hadamard returns the elementwise product v ⊙ o.
// Returns ErrNilVector for a nil o and ErrShapeMismatch when lengths differ.
func (v *Vector[T]) Hadamard(o *Vector[T]) (*Vector[T], error) {
	return v.zip(o, opHadamard, mul[T])
}

// Dot returns Σ v[i]*o[i], accumulated left to right starting from zero.
// Returns ErrNilVector for a nil o and ErrShapeMismatch when lengths differ.
// Complexity: O(n) time, O(1) space.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := validateOperand(v, o); err != nil {
		return sum, vectorErrorf(opDot, err)
	}
	for i, a := range v.data {
		sum += a * o.data[i]
	}

	return sum, nil
}
