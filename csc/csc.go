package csc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable sparse matrix in column-compressed form: column j
// owns the entry range colPtr[j]..colPtr[j+1] of the row-index and value
// arrays. Row indices within a column carry no ordering guarantee.
//
// A Matrix is read-only after construction and may be shared freely across
// goroutines.
type Matrix struct {
	rows, cols int
	colPtr     []int
	rowIdx     []int
	values     []float64
}

// New wraps raw CSC arrays in a Matrix after validating every structural
// invariant: len(colPtr) == cols+1 with colPtr[0] == 0, non-decreasing
// entries and colPtr[cols] == len(rowIdx); every row index in [0, rows);
// len(values) == len(rowIdx). Zero rows or cols are permitted (the matrix
// then has no entries).
//
// The arrays are retained, not copied; the caller must not mutate them for
// the lifetime of the Matrix.
func New(rows, cols int, colPtr, rowIdx []int, values []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimension, rows, cols)
	}
	if len(colPtr) != cols+1 {
		return nil, fmt.Errorf("%w: len %d, want %d", ErrColPtr, len(colPtr), cols+1)
	}
	if colPtr[0] != 0 {
		return nil, fmt.Errorf("%w: colPtr[0] = %d", ErrColPtr, colPtr[0])
	}
	for j := 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, fmt.Errorf("%w: colPtr decreases at column %d", ErrColPtr, j)
		}
	}
	if colPtr[cols] != len(rowIdx) {
		return nil, fmt.Errorf("%w: colPtr[%d] = %d, want %d", ErrColPtr, cols, colPtr[cols], len(rowIdx))
	}
	if len(values) != len(rowIdx) {
		return nil, fmt.Errorf("%w: %d values, %d indices", ErrValueCount, len(values), len(rowIdx))
	}
	for p, i := range rowIdx {
		if i < 0 || i >= rows {
			return nil, fmt.Errorf("%w: rowIdx[%d] = %d, rows = %d", ErrRowIndex, p, i, rows)
		}
	}

	return &Matrix{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx, values: values}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return m.colPtr[m.cols] }

// Dims returns the dimensions of the matrix (gonum mat.Matrix).
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at row i, column j, scanning the column's entries;
// absent positions are zero. O(nnz in column j). Panics if the indices are
// out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic("csc: row index out of range")
	}
	if j < 0 || j >= m.cols {
		panic("csc: column index out of range")
	}
	v := 0.0
	for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
		if m.rowIdx[p] == i {
			v += m.values[p] // duplicates, if any, act additively
		}
	}

	return v
}

// T returns the transpose as a gonum view without copying (gonum
// mat.Matrix). Use Transpose for a materialized CSC transpose.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }
