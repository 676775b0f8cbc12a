// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

func TestAdd_EqualSize(t *testing.T) {
	m := MustNew[int](t, 5)
	MustSet(t, m, 0, 0, 1)
	MustSet(t, m, 1, 1, 2)
	m1 := MustNew[int](t, 5)
	MustSet(t, m1, 0, 0, 3)
	want := MustNew[int](t, 5)
	MustSet(t, want, 0, 0, 4)
	MustSet(t, want, 1, 1, 2)

	got, err := m.Add(m1)
	require.NoError(t, err)
	require.True(t, want.Equal(got), "got:\n%v", got)
}

func TestSub_EqualSize(t *testing.T) {
	m := MustNew[int](t, 5)
	MustSet(t, m, 0, 0, 4)
	MustSet(t, m, 1, 1, 2)
	m1 := MustNew[int](t, 5)
	MustSet(t, m1, 0, 0, 1)
	want := MustNew[int](t, 5)
	MustSet(t, want, 0, 0, 3)
	MustSet(t, want, 1, 1, 2)

	got, err := m.Sub(m1)
	require.NoError(t, err)
	require.True(t, want.Equal(got), "got:\n%v", got)
}

// Non-symmetric operands catch a transposed read of the right-hand side.
func TestAddSub_Asymmetric(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{11, 22}, {33, 44}}, Dump(t, sum))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 18}, {27, 36}}, Dump(t, diff))
}

func TestMul_StandardProduct(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{2, 0}, {1, 2}})

	got, err := a.Mul(b)
	require.NoError(t, err)
	// [[1*2+2*1, 1*0+2*2], [3*2+4*1, 3*0+4*2]]
	require.Equal(t, [][]int{{4, 4}, {10, 8}}, Dump(t, got))
}

func TestMul_Identity(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)

	left, err := id.Mul(a)
	require.NoError(t, err)
	right, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	require.True(t, right.Equal(a))
}

func TestHadamard(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{5, 6}, {7, 8}})

	got, err := a.Hadamard(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 12}, {21, 32}}, Dump(t, got))
}

func TestMulScalar(t *testing.T) {
	a := MustRows(t, [][]int{{1, -2}, {0, 4}})

	got := a.MulScalar(3)
	require.Equal(t, [][]int{{3, -6}, {0, 12}}, Dump(t, got))
	require.Equal(t, [][]int{{1, -2}, {0, 4}}, Dump(t, a), "operand must not change")
}

func TestMulVec(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	x, err := vector.FromSlice([]int{1, 0, -1})
	require.NoError(t, err)

	y, err := a.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, []int{-2, -2, -2}, y.Values())

	x2, err := vector.FromSlice([]int{1, 1, 1})
	require.NoError(t, err)
	y2, err := a.MulVec(x2)
	require.NoError(t, err)
	require.Equal(t, []int{6, 15, 24}, y2.Values(), "each element is a full row sum, not the last product")
}

func TestMulVec_Errors(t *testing.T) {
	a := MustNew[int](t, 3)

	x, err := vector.New[int](4)
	require.NoError(t, err)
	_, err = a.MulVec(x)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = a.MulVec(nil)
	require.ErrorIs(t, err, matrix.ErrNilVector)
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	got := a.Transpose()
	require.Equal(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, Dump(t, got))
	require.True(t, got.Transpose().Equal(a))
}

func TestBinaryOps_ShapeMismatch(t *testing.T) {
	m := MustNew[int](t, 5)
	m1 := MustNew[int](t, 4)

	_, err := m.Add(m1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = m.Sub(m1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = m.Mul(m1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = m.Hadamard(m1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestBinaryOps_NilOperand(t *testing.T) {
	m := MustNew[int](t, 2)

	_, err := m.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBinaryOps_DoNotMutateOperands(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{5, 6}, {7, 8}})
	wantA, wantB := a.Clone(), b.Clone()

	_, _ = a.Add(b)
	_, _ = a.Sub(b)
	_, _ = a.Mul(b)
	_, _ = a.Hadamard(b)
	_ = a.Transpose()

	require.True(t, a.Equal(wantA))
	require.True(t, b.Equal(wantB))
}
