// Package approx provides absolute-epsilon comparison for floating-point
// results. A scalar check underlies everything; composite types (the vector
// and matrix kernels) implement componentwise conjunction on top of it via
// the Comparer interface.
package approx

import "math"

// DefaultEpsilon is the absolute tolerance applied by the default-epsilon
// variants across the module.
const DefaultEpsilon = 1e-6

// Comparer reports approximate equality of a value with another of the same
// type within an absolute tolerance. Implementations must be symmetric:
// a.ApproxEq(b, eps) == b.ApproxEq(a, eps).
type Comparer[T any] interface {
	// ApproxEq reports whether every pairwise scalar difference between the
	// receiver and other is at most eps in magnitude.
	ApproxEq(other T, eps float64) bool
}

// Eq reports |a−b| <= eps.
// Complexity: O(1).
func Eq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// EqDefault reports |a−b| <= DefaultEpsilon.
// Complexity: O(1).
func EqDefault(a, b float64) bool {
	return Eq(a, b, DefaultEpsilon)
}
