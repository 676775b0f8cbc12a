// SPDX-License-Identifier: MIT
// Package vector_test contains small fixtures shared by the vector tests.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

// MustNew allocates a zeroed vector of length n or fails the test.
func MustNew[T vector.Number](t testing.TB, n int) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](n)
	require.NoError(t, err)

	return v
}

// MustFrom builds a vector from literal values or fails the test.
func MustFrom[T vector.Number](t testing.TB, vals ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(vals)
	require.NoError(t, err)

	return v
}

// MustSet writes x at i or fails the test.
func MustSet[T vector.Number](t testing.TB, v *vector.Vector[T], i int, x T) {
	t.Helper()
	require.NoError(t, v.Set(i, x))
}

// MustAt reads element i or fails the test.
func MustAt[T vector.Number](t testing.TB, v *vector.Vector[T], i int) T {
	t.Helper()
	x, err := v.At(i)
	require.NoError(t, err)

	return x
}
