// Package dynmat is a small library of generic numeric containers: a
// fixed-length dynamic vector and a square dynamic matrix built from it.
//
// What's inside:
//
//	vector/      — Vector[T]: owned storage, checked access, scalar and
//	               elementwise arithmetic, dot product, text I/O
//	matrix/      — Matrix[T]: n rows of vector.Vector[T], checked two-step
//	               access, Add/Sub/Mul/MulVec/Hadamard/Transpose, text I/O
//	cmd/dynmat/  — CLI applying one operation to operands read from stdin
//
// Element types are any integer, float or complex type. Every failure is a
// sentinel error (ErrBadSize, ErrOutOfRange, ErrShapeMismatch, ...) matched
// with errors.Is; nothing is silently clamped or defaulted.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	x, _ := vector.FromSlice([]int{1, 1})
//	y, _ := a.MulVec(x) // 3 7
//
//	go get github.com/katalvlaran/dynmat
package dynmat
