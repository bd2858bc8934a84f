// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation may panic on user-triggered error conditions.
// Panics are reserved for programmer errors (negative allocation counts,
// malformed literals in the Must* builders).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrIncorrectDataSize is returned by New when the supplied backing slice
	// length does not equal rows*cols. Construction validates eagerly; a
	// Matrix with inconsistent storage is never observable.
	ErrIncorrectDataSize = errors.New("matrix: data length does not match rows*columns")

	// ErrIndexOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic; the
	// wrapped message carries the offending coordinates for diagnostics.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Mul where the mutual transpose rule
	// (a.Rows == b.Cols && a.Cols == b.Rows) is violated.
	ErrDimensionMismatch = errors.New("matrix: incompatible dimensions")

	// ErrNonSquare signals that a square matrix was required (Det, Trace)
	// but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
