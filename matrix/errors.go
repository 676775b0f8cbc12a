// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The shape/index/size sentinels are shared with package vector so that a
// failure raised by a row is matched by either name via errors.Is.
// No operation panics on user-triggered error conditions; panics are
// reserved for programmer errors (nil Swap operands).

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

var (
	// ErrBadSize is returned when a requested dimension is ≤ 0 or exceeds MaxMatrixSize.
	ErrBadSize = vector.ErrBadSize

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrShapeMismatch indicates operands of differing dimension, a vector of
	// the wrong length in MulVec, or a non-square literal in FromRows.
	ErrShapeMismatch = vector.ErrShapeMismatch

	// ErrNilVector indicates that a nil *vector.Vector operand was passed.
	ErrNilVector = vector.ErrNilVector

	// ErrParse indicates that text input could not be scanned into elements.
	ErrParse = vector.ErrParse

	// ErrNilMatrix indicates that a nil *Matrix operand was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadTolerance indicates a NaN or ±Inf tolerance passed to AllClose.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite")
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opCopyFrom  = "CopyFrom"
	opMove      = "Move"
	opMoveFrom  = "MoveFrom"
	opRow       = "Row"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opMulVec    = "MulVec"
	opReadText  = "ReadText"
	opWriteText = "WriteText"
)

const panicNilSwap = "matrix: Swap: both operands must be non-nil"

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
