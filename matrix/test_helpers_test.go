// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures so each test states only what it checks.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

// MustNew allocates an n×n zero matrix or fails the test.
func MustNew[T vector.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	require.NoError(t, err)

	return m
}

// MustRows builds a matrix from a square literal or fails the test.
func MustRows[T vector.Number](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustSet writes x at (i, j) or fails the test.
func MustSet[T vector.Number](t testing.TB, m *matrix.Matrix[T], i, j int, x T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, x))
}

// MustAt reads (i, j) or fails the test.
func MustAt[T vector.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)

	return x
}

// Dump returns the elements of m as a slice of rows.
func Dump[T vector.Number](t testing.TB, m *matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Size())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row.Values()
	}

	return out
}
