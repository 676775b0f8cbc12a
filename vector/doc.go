// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a generic numeric sequence whose length
// is fixed at construction.
//
// What & Why:
//
//	A Vector owns its backing storage exclusively. Copies are deep, moves are
//	O(1) ownership transfers that leave the donor drained but usable, and every
//	indexed access is bounds-checked: an out-of-range index is reported as
//	ErrOutOfRange, never answered with a default element.
//
// Operations:
//   - Construction: New, Default, FromSlice, Clone, Move.
//   - Assignment: CopyFrom (strong guarantee), MoveFrom, Swap.
//   - Access: Len, Ptr, At, Set, Values.
//   - Arithmetic: AddScalar/SubScalar/MulScalar, Add/Sub/Hadamard, Dot.
//   - Comparison: Equal.
//   - Text I/O: ReadText, WriteText, String (whitespace separated).
//
// Errors:
//
//	All failures are package sentinels wrapped with the operation name, so
//	callers match them with errors.Is:
//
//	  v, err := vector.New[int](0)
//	  if errors.Is(err, vector.ErrBadSize) { ... }
//
// Complexity:
//
//	Access is O(1). Arithmetic, Equal, Clone and text I/O are O(n).
//	Move, MoveFrom and Swap are O(1).
package vector
