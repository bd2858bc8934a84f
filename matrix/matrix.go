// Package matrix provides core linear algebra primitives for array-based
// computations. Matrix is a concrete, row-major container of float64 values,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/JoeSharp/go-gaming/approx"
)

// panicNegativeDimensions is the stable message for direct-allocation
// constructors called with negative counts. These constructors have no error
// return; a negative count is a programmer error, not user input.
const panicNegativeDimensions = "matrix: dimensions must be non-negative"

// Matrix is a row-major matrix of float64 values.
// rows and cols are the dimensions; data holds rows*cols elements with
// element (r,c) at index r*cols + c. The storage invariant
// len(data) == rows*cols holds for every constructed Matrix.
type Matrix struct {
	rows, cols int       // number of rows and columns
	data       []float64 // flat backing storage, length == rows*cols
}

// indexErrorf wraps an underlying error with method context and the offending
// coordinates, so diagnostics always carry the (row, col) that failed.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols Matrix over the provided backing slice.
// Stage 1 (Validate): counts must be non-negative and len(data) must equal
// rows*cols, else ErrIncorrectDataSize.
// Stage 2 (Finalize): adopt data unchanged — order preserved, no copy.
// The Matrix takes ownership of data; callers must not alias it afterwards.
// Complexity: O(1) time and memory.
func New(rows, cols int, data []float64) (*Matrix, error) {
	// Negative counts are unrepresentable in the unsigned dimension model
	// and must not slip through the length check (a both-negative product
	// can match a real slice length: -2 * -2 == 4).
	if rows < 0 || cols < 0 {
		return nil, ErrIncorrectDataSize
	}
	// Validate storage length against the requested shape.
	if len(data) != rows*cols {
		return nil, ErrIncorrectDataSize
	}

	// Return initialized Matrix
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Zeros creates a rows×cols Matrix with every element 0.0.
// Panics with a stable message on negative counts (programmer error).
// Complexity: O(rows*cols) time and memory.
func Zeros(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(panicNegativeDimensions)
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// SquareZeros creates an n×n zero Matrix.
// Complexity: O(n²).
func SquareZeros(n int) *Matrix {
	return Zeros(n, n)
}

// Identity creates the n×n identity Matrix: square zeros with 1.0 on the
// main diagonal.
// Complexity: O(n²).
func Identity(n int) *Matrix {
	m := SquareZeros(n)
	var i int
	for i = 0; i < n; i++ { // walk the diagonal
		m.data[i*n+i] = 1.0
	}

	return m
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, ErrIndexOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	// Compute flat offset
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Errors: ErrIndexOutOfRange wrapped with the offending coordinates.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, indexErrorf("At", row, col, err)
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col). On failure the matrix is unmodified;
// there is no other observable side effect on success.
// Errors: ErrIndexOutOfRange wrapped with the offending coordinates.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return indexErrorf("Set", row, col, err)
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Matrix, independent of the original.
// Complexity: O(rows*cols) time and memory for copy.
func (m *Matrix) Clone() *Matrix {
	clone := *m
	// Detach storage so mutations on either copy stay invisible to the other.
	clone.data = append([]float64(nil), m.data...)

	return &clone
}

// ApproxEq reports whether m and other have identical shape and all elements
// equal within the configured absolute epsilon (approx.DefaultEpsilon unless
// overridden via WithEpsilon).
// Complexity: O(rows*cols).
func (m *Matrix) ApproxEq(other *Matrix, opts ...Option) bool {
	// Nil handling: only nil matches nil.
	if m == nil || other == nil {
		return m == other
	}
	// Shapes must agree before any element comparison.
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}

	// Resolve comparison policy.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Elementwise absolute comparison over the flat storage.
	var idx int
	for idx = 0; idx < len(m.data); idx++ { // deterministic 0..n-1
		if !approx.Eq(m.data[idx], other.data[idx], o.eps) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, values comma-separated in %g form.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
