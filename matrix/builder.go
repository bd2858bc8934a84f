// Package matrix: literal construction helpers for trusted, fixed data.
// These builders keep test fixtures and hand-written matrices terse by
// trading the error return of New for a panic on malformed input. They are
// intended for literals whose shape is known when the code is written; use
// New for data that arrives at runtime.
package matrix

import "fmt"

// MustNew builds a rows×cols Matrix from variadic literal values, delegating
// to New. It panics when the value count does not match the shape, which is
// the contract for trusted fixed data (test fixtures, known constants).
// Complexity: O(1).
func MustNew(rows, cols int, data ...float64) *Matrix {
	m, err := New(rows, cols, data)
	if err != nil {
		// Shape mismatch in a literal is a programmer error.
		panic(fmt.Sprintf("matrix: MustNew(%d,%d) with %d values: %v", rows, cols, len(data), err))
	}

	return m
}

// MustFromRows builds a Matrix from row-grouped literal values. The shape is
// inferred: len(rows) rows, len(rows[0]) columns. Panics when any row has a
// different length than the first (ragged literal).
// Complexity: O(rows*cols).
func MustFromRows(rows ...[]float64) *Matrix {
	// Empty literal: the 0×0 matrix.
	if len(rows) == 0 {
		return Zeros(0, 0)
	}

	// Infer column count from the first row, then flatten in row-major order.
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	var i int
	var row []float64
	for i, row = range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix: MustFromRows: row %d has %d values, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}

	// Delegate to New; the flattened length matches by construction.
	m, err := New(len(rows), cols, data)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustFromRows: %v", err))
	}

	return m
}
