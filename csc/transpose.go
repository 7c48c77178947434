package csc

// Transpose materializes Aᵀ as a new CSC matrix via a counting sort over the
// stored entries: count the entries per row of A, prefix-sum the counts into
// the transposed column pointer, then scatter each entry (i, j, v) into the
// next free slot of transposed column i. Runs in O(nnz + rows + cols).
//
// Because columns of A are scanned in order, each column of the result holds
// its row indices in strictly increasing order, even when the receiver does
// not.
func (m *Matrix) Transpose() *Matrix {
	tp := make([]int, m.rows+1)
	ti := make([]int, m.NNZ())
	tv := make([]float64, m.NNZ())

	for _, i := range m.rowIdx {
		tp[i+1]++
	}
	for i := 0; i < m.rows; i++ {
		tp[i+1] += tp[i]
	}

	// next[i] is the cursor into transposed column i.
	next := make([]int, m.rows)
	copy(next, tp[:m.rows])
	for j := 0; j < m.cols; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			q := next[m.rowIdx[p]]
			ti[q] = j
			tv[q] = m.values[p]
			next[m.rowIdx[p]]++
		}
	}

	return &Matrix{rows: m.cols, cols: m.rows, colPtr: tp, rowIdx: ti, values: tv}
}
