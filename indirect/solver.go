package indirect

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/splitkit/linsys/csc"
	"github.com/splitkit/linsys/pcg"
)

// Solver owns everything one matrix needs for repeated normal-equations
// solves: the cached transpose, the Jacobi diagonal, the CG workspace and
// the product scratch. Build once with New, reuse for every solve against
// the same A, drop with Release.
//
// Not safe for concurrent use; the matrix passed to New stays caller-owned
// and must not change while the Solver lives.
type Solver struct {
	a    *csc.Matrix // m×n problem matrix
	at   *csc.Matrix // cached Aᵀ; both products run in gather form
	diag []float64   // Jacobi inverse diagonal, length n
	ws   *pcg.Workspace
	tmp  []float64 // m-length scratch inside the normal operator
	opts Options
	m, n int

	totalIters int
	totalTime  time.Duration
	solves     int

	released bool
}

// New builds a Solver for the m×n matrix a. It materializes Aᵀ, computes
// the preconditioner and allocates all per-solve scratch, so Solve itself
// never allocates. The matrix must have at least one column; zero rows are
// fine and reduce the system to (ρI)x = b₁.
func New(a *csc.Matrix, opts ...Option) (*Solver, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Cols() < 1 {
		return nil, fmt.Errorf("%w: matrix has no columns", ErrDimensionMismatch)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{
		a:    a,
		at:   a.Transpose(),
		diag: jacobi(a, o.Rho),
		ws:   pcg.NewWorkspace(a.Cols()),
		tmp:  make([]float64, a.Rows()),
		opts: o,
		m:    a.Rows(),
		n:    a.Cols(),
	}, nil
}

// Release drops the solver's owned buffers and marks the handle unusable;
// any later Solve returns ErrReleased. Idempotent.
func (s *Solver) Release() {
	s.at = nil
	s.diag = nil
	s.ws = nil
	s.tmp = nil
	s.released = true
}

// Solve solves (ρI + AᵀA)·x = b₁ + Aᵀ·b₂ in place. rhs stacks b₁ (length
// n) over b₂ (length m); on return rhs[:n] is the solution x and rhs[n:]
// is A·x − b₂. warm, when non-nil, seeds CG with a previous solution of
// length n.
//
// iter is the caller's outer iteration number and steers the tolerance
// schedule; pass a negative iter for a one-off solve at the floor
// tolerance, which also keeps the call out of the iteration statistics.
// The returned count is the CG iterations used; exhausting the budget is
// not an error.
func (s *Solver) Solve(rhs, warm []float64, iter int) (int, error) {
	if s.released {
		return 0, ErrReleased
	}
	if len(rhs) != s.n+s.m {
		return 0, fmt.Errorf("%w: len(rhs) = %d, want n+m = %d", ErrDimensionMismatch, len(rhs), s.n+s.m)
	}
	if warm != nil && len(warm) != s.n {
		return 0, fmt.Errorf("%w: len(warm) = %d, want n = %d", ErrDimensionMismatch, len(warm), s.n)
	}

	b1, b2 := rhs[:s.n], rhs[s.n:]

	// The schedule sees ‖b₁‖ as passed in, before the fold below.
	tol := s.tolerance(floats.Norm(b1, 2), iter)

	start := time.Now()

	// Fold the m-block into the normal-equations RHS: b₁ += Aᵀ·b₂.
	s.gather(s.a, b1, b2)

	budget := s.opts.MaxIterations
	if budget == 0 {
		budget = s.n
	}
	res, err := s.ws.Solve(s.applyNormal, s.diag, b1, warm, budget, tol)
	if err != nil {
		return 0, err
	}

	// Back-substitute: b₂ := A·x − b₂.
	floats.Scale(-1, b2)
	s.gather(s.at, b2, b1)

	s.totalTime += time.Since(start)
	s.solves++
	if iter >= 0 {
		s.totalIters += res.Iterations
	}
	if s.opts.Verbose != nil {
		fmt.Fprintf(s.opts.Verbose, "lin-sys: tol %.2e, CG iterations %d, residual %.2e\n",
			tol, res.Iterations, res.Residual)
	}

	return res.Iterations, nil
}

// tolerance computes the per-call CG target max(norm·τ(iter), TolFloor):
// τ = 1/(iter+1)^rate during the outer loop, TolFloor for one-off solves.
func (s *Solver) tolerance(norm float64, iter int) float64 {
	tau := TolFloor
	if iter >= 0 {
		tau = 1 / math.Pow(float64(iter+1), s.opts.CGRate)
	}
	tol := norm * tau
	if tol < TolFloor {
		tol = TolFloor
	}

	return tol
}

// applyNormal computes dst = ρ·x + Aᵀ(A·x) without forming AᵀA: gather
// A·x into the m-length scratch through the cached transpose, gather that
// back through A, then add the regularization.
func (s *Solver) applyNormal(dst, x []float64) {
	for i := range s.tmp {
		s.tmp[i] = 0
	}
	s.gather(s.at, s.tmp, x) // tmp = A·x
	for i := range dst {
		dst[i] = 0
	}
	s.gather(s.a, dst, s.tmp) // dst = Aᵀ·tmp
	floats.AddScaled(dst, s.opts.Rho, x)
}

// gather runs y += Mᵀ·x, chunked across goroutines when Workers asks for
// it.
func (s *Solver) gather(m *csc.Matrix, y, x []float64) {
	if s.opts.Workers > 1 {
		m.MulTransVecAddWorkers(y, x, s.opts.Workers)
		return
	}
	m.MulTransVecAdd(y, x)
}
