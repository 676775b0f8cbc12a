// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every public operation returns one of these, wrapped as "<Op>: <sentinel>"
// by vectorErrorf. Tests MUST match them via errors.Is.
// Panics are reserved for programmer errors (nil buffer, nil Swap operand).

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when a requested length is zero, negative,
	// or exceeds MaxVectorSize.
	ErrBadSize = errors.New("vector: invalid size")

	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrShapeMismatch indicates operands of differing length in a binary operation.
	ErrShapeMismatch = errors.New("vector: shape mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrParse indicates that text input could not be scanned into elements.
	ErrParse = errors.New("vector: cannot parse element")
)

// Operation tags used for error wrapping (no magic strings at call sites).
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opCopyFrom  = "CopyFrom"
	opMove      = "Move"
	opMoveFrom  = "MoveFrom"
	opAccess    = "At"
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDot       = "Dot"
	opReadText  = "ReadText"
	opWriteText = "WriteText"
)

// Panic messages for programmer errors.
const (
	panicNilSlice = "vector: FromSlice: source slice must be non-nil"
	panicNilSwap  = "vector: Swap: both operands must be non-nil"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
