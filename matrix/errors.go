// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and validators MUST return these sentinels and tests
// MUST check them via errors.Is. No exported function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with matrixErrorf, so
// callers always match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> order/shape -> binary values -> diagonal -> symmetry.

var (
	// ErrNilMatrix indicates that a nil *Adjacency (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil adjacency")

	// ErrBadOrder is returned when a requested vertex count is negative or exceeds MaxOrder.
	ErrBadOrder = errors.New("matrix: invalid vertex count")

	// ErrNonSquare signals that the input rows do not form an n×n matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that entry (i,j) differs from entry (j,i).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNonBinary signals an integer entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: non-binary entry")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSelfLoop is returned by AddEdge when both endpoints coincide.
	ErrSelfLoop = errors.New("matrix: self-loop not allowed")

	// ErrBadPermutation is returned when a relabeling is not a bijection on [0, n).
	ErrBadPermutation = errors.New("matrix: invalid permutation")
)

// matrixErrorf wraps an underlying error with the given call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with the offending coordinates, so malformed input
// can be located without re-scanning the matrix.
func cellErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}
