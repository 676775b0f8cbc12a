// SPDX-License-Identifier: MIT

// Package matrix offers Matrix[T], a square numeric container built from
// vector.Vector rows.
//
// The matrix package provides:
//
//   - Construction: New, Default, Identity, FromRows, Clone, Move.
//   - Assignment: CopyFrom (strong guarantee), MoveFrom, Swap.
//   - Checked access: Row(i) hands out a Row view, so m.Row(i) followed by
//     row.At(j) performs two independent bounds checks; At/Set/Ptr are
//     shortcuts for the same two steps.
//   - Arithmetic: MulScalar, MulVec, Add, Sub, Mul, Hadamard, Transpose.
//   - Text I/O: ReadText, WriteText, String (one row per line).
//
// A Matrix of dimension n owns n rows, each of length n. Rows are reachable
// only through Row views, which expose element access but never resizing, so
// the square invariant holds for the life of the value.
//
// Errors are the vector package's sentinels re-exported under the same names
// (ErrBadSize, ErrOutOfRange, ErrShapeMismatch, ...), plus ErrNilMatrix.
// An index failure inside a row therefore matches both matrix.ErrOutOfRange
// and vector.ErrOutOfRange.
package matrix
