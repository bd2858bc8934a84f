// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over the row-major Matrix storage.
// All kernels perform strict fail-fast validation via the central validators,
// allocate exactly one fresh result, and never mutate their operands.
// Errors are the package sentinels wrapped with an operation tag.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opMul   = "Mul"
	opDet   = "Det"
	opTrace = "Trace"
)

// detBaseSize is the dimension at which the determinant recursion bottoms out
// with the closed-form ad − bc evaluation.
const detBaseSize = 2

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the sentinels. Call only with err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = m + other and returns a fresh Matrix.
// Stage 1 (Validate): operands must have identical shapes.
// Stage 2 (Execute): single flat loop over the backing slices.
// Errors: ErrDimensionMismatch wrapped with opAdd.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	// Validate shapes match
	if err := validateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Allocate result and fill with elementwise sums.
	res := Zeros(m.rows, m.cols)
	var idx int
	for idx = 0; idx < len(m.data); idx++ { // deterministic 0..n-1
		res.data[idx] = m.data[idx] + other.data[idx]
	}

	// Return result
	return res, nil
}

// Mul computes the standard matrix product C = m · other.
// Stage 1 (Validate): the mutual transpose precondition
// m.rows == other.cols && m.cols == other.rows (see validateMulCompatible
// for why this is stricter than the textbook rule).
// Stage 2 (Execute): triple loop, C[row,col] = Σ_k m[row,k] * other[k,col],
// result shape m.rows × other.cols.
// Errors: ErrDimensionMismatch wrapped with opMul.
// Complexity: O(n³) time, O(rows*cols) memory for the result.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	// Validate the product precondition
	if err := validateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Matrix
	res := Zeros(m.rows, other.cols)

	// Accumulate inner products with fixed row→col→k order for determinism.
	var row, col, k int
	var sum float64
	for row = 0; row < m.rows; row++ {
		for col = 0; col < other.cols; col++ {
			sum = 0.0
			for k = 0; k < m.cols; k++ {
				sum += m.data[row*m.cols+k] * other.data[k*other.cols+col]
			}
			res.data[row*other.cols+col] = sum
		}
	}

	// Return result
	return res, nil
}

// Scale returns a fresh Matrix with every element multiplied by alpha.
// The receiver is not mutated.
// Complexity: O(rows*cols).
func (m *Matrix) Scale(alpha float64) *Matrix {
	res := Zeros(m.rows, m.cols)
	var idx int
	for idx = 0; idx < len(m.data); idx++ { // flat walk over storage
		res.data[idx] = alpha * m.data[idx]
	}

	return res
}

// Transpose returns a fresh cols×rows Matrix with T[j,i] = m[i,j].
// Complexity: O(rows*cols).
func (m *Matrix) Transpose() *Matrix {
	res := Zeros(m.cols, m.rows)
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			res.data[j*res.cols+i] = m.data[i*m.cols+j]
		}
	}

	return res
}

// Trace returns the sum of the main-diagonal elements.
// Errors: ErrNonSquare wrapped with opTrace when rows != cols.
// Complexity: O(n).
func (m *Matrix) Trace() (float64, error) {
	// Validate squareness
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	// Sum the diagonal
	var sum float64
	var i int
	for i = 0; i < m.rows; i++ {
		sum += m.data[i*m.cols+i]
	}

	return sum, nil
}

// Det computes the determinant by Laplace (cofactor) expansion along row 0.
//
// Stage 1 (Validate): the matrix must be square, else ErrNonSquare.
// Stage 2 (Base): a 2×2 matrix evaluates directly as ad − bc.
// Stage 3 (Recurse): for each column mask, take the signed coefficient
// (+1 for even masks, −1 for odd) times m[0,mask], build the fresh
// (n−1)×(n−1) submatrix that drops row 0 and column mask (rows 1..n in
// order, columns skipping mask), and accumulate coefficient × sub-determinant.
//
// Each recursion level owns its freshly allocated submatrices; no state is
// shared across levels. Matrices smaller than the 2×2 base case yield 0.0
// (the empty expansion), so a 1×1 determinant is 0.0 — preserved behavior.
//
// Errors: ErrNonSquare wrapped with opDet.
// Complexity: O(n!) time — intended for small n (2×2/3×3/4×4).
func (m *Matrix) Det() (float64, error) {
	// Validate squareness
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	// Base case: closed-form 2×2 determinant.
	if m.rows == detBaseSize {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	// General case: expand along row 0.
	var result float64
	var mask, row, col, subCol int
	var sign, sub float64
	var err error
	for mask = 0; mask < m.cols; mask++ {
		// Sign alternates with the column position.
		sign = 1.0
		if mask%2 != 0 {
			sign = -1.0
		}

		// Build the minor: drop row 0 and column mask.
		subM := SquareZeros(m.rows - 1)
		for row = 1; row < m.rows; row++ {
			subCol = 0
			for col = 0; col < m.cols; col++ {
				if col == mask {
					continue // skip the masked column
				}
				subM.data[(row-1)*subM.cols+subCol] = m.data[row*m.cols+col]
				subCol++
			}
		}

		// Recurse on the minor; it is square by construction.
		sub, err = subM.Det()
		if err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		result += sign * m.data[mask] * sub
	}

	return result, nil
}
