// SPDX-License-Identifier: MIT

// Package vector: element constraint and size caps.
package vector

import "golang.org/x/exp/constraints"

// Number is the set of element types a Vector can hold. Every member has a
// usable zero value, supports + - * and ==, and is understood by fmt's
// scanning and printing verbs.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

const (
	// MaxVectorSize is the largest length New and FromSlice accept.
	MaxVectorSize = 100_000_000

	// DefaultLength is the length produced by Default.
	DefaultLength = 1
)
