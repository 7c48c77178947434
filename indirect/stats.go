package indirect

import (
	"fmt"
	"time"
)

// Stats is a snapshot of the running solve counters. Reading it resets
// nothing; Summary does.
type Stats struct {
	// TotalIterations is the CG iteration count accumulated by solves with
	// iter ≥ 0 since construction or the last Summary.
	TotalIterations int

	// TotalTime is the wall time spent inside Solve since construction or
	// the last Summary.
	TotalTime time.Duration

	// Solves counts every completed Solve call; never reset.
	Solves int
}

// Stats returns the current counters.
func (s *Solver) Stats() Stats {
	return Stats{TotalIterations: s.totalIters, TotalTime: s.totalTime, Solves: s.solves}
}

// Method describes the solver configuration, for banner logs.
func (s *Solver) Method() string {
	return fmt.Sprintf("sparse-indirect, nnz in A = %d, CG tol ~ 1/iter^(%.2f)", s.a.NNZ(), s.opts.CGRate)
}

// Summary reports CG iterations and solve time averaged over totalIters+1
// outer iterations, then resets the iteration and time counters so the
// next report covers a fresh window.
func (s *Solver) Summary(totalIters int) string {
	per := float64(totalIters + 1)
	str := fmt.Sprintf("\tLin-sys: avg # CG iterations: %.2f, avg solve time: %.2es\n",
		float64(s.totalIters)/per, s.totalTime.Seconds()/per)
	s.totalIters = 0
	s.totalTime = 0

	return str
}
