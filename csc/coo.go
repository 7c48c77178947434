package csc

import "sort"

// COO accumulates matrix entries in coordinate (triplet) form for later
// conversion to CSC. Entries may arrive in any order; duplicates at the
// same position sum. The zero value is not usable, use NewCOO.
type COO struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	values     []float64
}

// NewCOO returns an empty coordinate-form builder with the given shape.
// Panics if either dimension is negative.
func NewCOO(rows, cols int) *COO {
	if rows < 0 || cols < 0 {
		panic("csc: dimensions must be non-negative")
	}

	return &COO{rows: rows, cols: cols}
}

// Append records the entry (i, j, v). Panics if the position is out of
// range.
func (c *COO) Append(i, j int, v float64) {
	if i < 0 || i >= c.rows {
		panic("csc: row index out of range")
	}
	if j < 0 || j >= c.cols {
		panic("csc: column index out of range")
	}
	c.rowIdx = append(c.rowIdx, i)
	c.colIdx = append(c.colIdx, j)
	c.values = append(c.values, v)
}

// NNZ returns the number of recorded entries, duplicates included.
func (c *COO) NNZ() int { return len(c.values) }

// ToCSC converts the accumulated entries into a CSC Matrix, sorting by
// column then row and summing duplicate positions. The builder is left
// unchanged and may keep accumulating. Runs in O(nnz·log nnz).
func (c *COO) ToCSC() *Matrix {
	order := make([]int, len(c.values))
	for p := range order {
		order[p] = p
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := order[a], order[b]
		if c.colIdx[pa] != c.colIdx[pb] {
			return c.colIdx[pa] < c.colIdx[pb]
		}

		return c.rowIdx[pa] < c.rowIdx[pb]
	})

	colPtr := make([]int, c.cols+1)
	rowIdx := make([]int, 0, len(c.values))
	values := make([]float64, 0, len(c.values))
	lastI, lastJ := -1, -1
	for _, p := range order {
		i, j, v := c.rowIdx[p], c.colIdx[p], c.values[p]
		if i == lastI && j == lastJ {
			values[len(values)-1] += v
			continue
		}
		rowIdx = append(rowIdx, i)
		values = append(values, v)
		colPtr[j+1]++
		lastI, lastJ = i, j
	}
	for j := 0; j < c.cols; j++ {
		colPtr[j+1] += colPtr[j]
	}

	return &Matrix{rows: c.rows, cols: c.cols, colPtr: colPtr, rowIdx: rowIdx, values: values}
}
