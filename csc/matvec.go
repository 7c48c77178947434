package csc

import "sync"

// MulVecAdd accumulates y += A·x by scattering each stored entry into y.
// x must have length Cols, y length Rows; a mismatch panics. Runs in
// O(nnz).
func (m *Matrix) MulVecAdd(y, x []float64) {
	if len(x) != m.cols {
		panic("csc: x length does not match column count")
	}
	if len(y) != m.rows {
		panic("csc: y length does not match row count")
	}
	for j := 0; j < m.cols; j++ {
		xj := x[j]
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			y[m.rowIdx[p]] += m.values[p] * xj
		}
	}
}

// MulTransVecAdd accumulates y += Aᵀ·x by gathering each column of A
// against x: y[j] += ⟨A[:,j], x⟩. x must have length Rows, y length Cols;
// a mismatch panics. Runs in O(nnz).
func (m *Matrix) MulTransVecAdd(y, x []float64) {
	if len(x) != m.rows {
		panic("csc: x length does not match row count")
	}
	if len(y) != m.cols {
		panic("csc: y length does not match column count")
	}
	m.gatherRange(y, x, 0, m.cols)
}

// MulTransVecAddWorkers is MulTransVecAdd with the gather loop split across
// workers goroutines, each owning a contiguous block of output columns.
// Output slots are disjoint per worker, so no synchronization beyond the
// final join is needed. workers <= 1 runs serially; workers above Cols is
// clamped.
func (m *Matrix) MulTransVecAddWorkers(y, x []float64, workers int) {
	if len(x) != m.rows {
		panic("csc: x length does not match row count")
	}
	if len(y) != m.cols {
		panic("csc: y length does not match column count")
	}
	if workers > m.cols {
		workers = m.cols
	}
	if workers <= 1 {
		m.gatherRange(y, x, 0, m.cols)
		return
	}

	chunk := m.cols / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = m.cols // last worker absorbs the remainder
		}
		go func(lo, hi int) {
			defer wg.Done()
			m.gatherRange(y, x, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// gatherRange accumulates y[j] += ⟨A[:,j], x⟩ for j in [lo, hi).
func (m *Matrix) gatherRange(y, x []float64, lo, hi int) {
	for j := lo; j < hi; j++ {
		yj := y[j]
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			yj += m.values[p] * x[m.rowIdx[p]]
		}
		y[j] = yj
	}
}

// ColNormsSq returns ‖A[:,j]‖² for every column j. The result is freshly
// allocated.
func (m *Matrix) ColNormsSq() []float64 {
	norms := make([]float64, m.cols)
	for j := 0; j < m.cols; j++ {
		s := 0.0
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			s += m.values[p] * m.values[p]
		}
		norms[j] = s
	}

	return norms
}
