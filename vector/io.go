// SPDX-License-Identifier: MIT

// Package vector: whitespace-separated text input and output.
package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// elemSep separates elements on output.
const elemSep = ' '

// ReadText scans exactly Len() elements from r, in order, using fmt.Fscan.
// Elements are parsed into scratch storage and committed only once all of
// them scanned, so on error v is unchanged.
// Returns ErrParse (wrapping the scan error) on malformed or short input.
//
// Note: fmt.Fscan may consume one rune past the last element unless r
// implements io.RuneScanner; pass a *bufio.Reader when reading several
// containers back to back from one stream.
// Complexity: O(n).
func (v *Vector[T]) ReadText(r io.Reader) error {
	tmp := make([]T, len(v.data))
	for i := range tmp {
		if _, err := fmt.Fscan(r, &tmp[i]); err != nil {
			return vectorErrorf(opReadText, fmt.Errorf("element %d: %w: %w", i, ErrParse, err))
		}
	}
	copy(v.data, tmp)

	return nil
}

// WriteText writes the elements to w in order, separated by single spaces,
// with no trailing separator or newline.
// Complexity: O(n).
func (v *Vector[T]) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, x := range v.data {
		if i > 0 {
			if err := bw.WriteByte(elemSep); err != nil {
				return vectorErrorf(opWriteText, err)
			}
		}
		if _, err := fmt.Fprint(bw, x); err != nil {
			return vectorErrorf(opWriteText, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return vectorErrorf(opWriteText, err)
	}

	return nil
}

// String implements fmt.Stringer using the WriteText format.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_ = v.WriteText(&sb) // strings.Builder never fails

	return sb.String()
}
