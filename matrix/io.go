// SPDX-License-Identifier: MIT

// Package matrix: row-wise text input and output.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadText scans Size() rows of Size() elements each from r, delegating each
// row to vector.Vector.ReadText. All rows are read into a scratch copy and
// committed together, so on error m is unchanged.
// Returns ErrParse (wrapped with the row index) on malformed or short input.
// Complexity: O(n²).
func (m *Matrix[T]) ReadText(r io.Reader) error {
	tmp := m.Clone()
	for i, row := range tmp.rows {
		if err := row.ReadText(r); err != nil {
			return matrixErrorf(opReadText, fmt.Errorf("row %d: %w", i, err))
		}
	}
	m.rows = tmp.rows

	return nil
}

// WriteText writes one row per line in the vector text format; every line,
// including the last, ends with '\n'.
// Complexity: O(n²).
func (m *Matrix[T]) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, row := range m.rows {
		if err := row.WriteText(bw); err != nil {
			return matrixErrorf(opWriteText, fmt.Errorf("row %d: %w", i, err))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return matrixErrorf(opWriteText, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWriteText, err)
	}

	return nil
}

// String implements fmt.Stringer using the WriteText format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.WriteText(&sb) // strings.Builder never fails

	return sb.String()
}
