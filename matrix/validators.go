// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/square checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (receivers guarantee a; callers ensure b).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func validateSameShape(a, b *Matrix) error {
	// Execute comparisons
	if a.rows != b.rows {
		return validatorErrorf("validateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("validateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures a and b satisfy the Mul shape precondition:
// a.rows == b.cols AND a.cols == b.rows (mutual transpose compatibility).
//
// This is deliberately stricter than the textbook rule (a.cols == b.rows
// alone) and rejects some conventionally valid products, e.g. a non-square
// m×n by n×p with p != m. The behavior is preserved from the original
// product semantics; do not relax it without confirming intent.
// Complexity: O(1).
func validateMulCompatible(a, b *Matrix) error {
	if a.rows != b.cols {
		return validatorErrorf("validateMulCompatible: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.rows {
		return validatorErrorf("validateMulCompatible: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare checks that m is square (rows == cols).
// Returns nil or wrapped ErrNonSquare.
// Complexity: O(1).
func validateSquare(m *Matrix) error {
	// Check the square condition explicitly.
	if m.rows != m.cols {
		return validatorErrorf("validateSquare", ErrNonSquare)
	}

	return nil
}
