package indirect

// Bridges for white-box tests; compiled into test builds only.

// Jacobi exposes the preconditioner builder.
var Jacobi = jacobi

// ToleranceForTest exposes the per-call tolerance schedule.
func (s *Solver) ToleranceForTest(norm float64, iter int) float64 {
	return s.tolerance(norm, iter)
}

// ApplyNormalForTest exposes the matrix-free operator dst = ρx + Aᵀ(Ax).
func (s *Solver) ApplyNormalForTest(dst, x []float64) {
	s.applyNormal(dst, x)
}

// AddIterationsForTest bumps the iteration counter as a solve with
// iter ≥ 0 would.
func (s *Solver) AddIterationsForTest(its int) {
	s.totalIters += its
}
