// Package matrix offers a dense, row-major float64 matrix with validated
// construction, indexed access, shape-checked arithmetic and a recursive
// cofactor determinant.
//
// The matrix package provides:
//
//   - Validated constructors (New) plus direct allocators (Zeros,
//     SquareZeros, Identity) and literal builders (MustNew, MustFromRows).
//   - O(1) element access via At/Set with explicit bounds errors.
//   - Shape-checked Add and Mul, plus Scale, Transpose and Trace.
//   - Det: Laplace expansion along row 0, O(n!) — intended for the small
//     matrices (2×2..4×4) this kernel exists to serve.
//
// All failures are package sentinels matched via errors.Is; operations
// return fresh matrices and never mutate their operands (Set is the one
// in-place mutator).
//
// See the examples in this package for usage patterns.
package matrix
