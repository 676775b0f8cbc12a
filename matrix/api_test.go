// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Dump(t, id))

	_, err = matrix.Identity[int](0)
	require.ErrorIs(t, err, matrix.ErrBadSize)
}

func TestFromRows_CopiesLiteral(t *testing.T) {
	lit := [][]int{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(lit)
	require.NoError(t, err)

	lit[0][0] = 99
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

func TestFromRows_Errors(t *testing.T) {
	_, err := matrix.FromRows([][]int{})
	require.ErrorIs(t, err, matrix.ErrBadSize)

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
