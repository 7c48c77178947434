package pcg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operator applies a symmetric positive definite linear map, writing
// dst = Op(x). Implementations must treat x as read-only and overwrite dst
// entirely; dst and x never alias when called by Solve.
type Operator func(dst, x []float64)

// Workspace holds the scratch vectors of one CG instance: the search
// direction, the residual, the preconditioned residual and the operator
// output, all of a fixed dimension. Allocate once with NewWorkspace and
// reuse across solves; a Workspace is not safe for concurrent use.
type Workspace struct {
	p  []float64 // search direction
	r  []float64 // residual
	z  []float64 // preconditioned residual
	ap []float64 // Op(p)
}

// NewWorkspace allocates scratch for systems of dimension n. Panics if n
// is negative.
func NewWorkspace(n int) *Workspace {
	if n < 0 {
		panic("pcg: negative workspace dimension")
	}

	return &Workspace{
		p:  make([]float64, n),
		r:  make([]float64, n),
		z:  make([]float64, n),
		ap: make([]float64, n),
	}
}

// Dim returns the system dimension the workspace was allocated for.
func (w *Workspace) Dim() int { return len(w.p) }

// Result reports how a Solve call ended.
type Result struct {
	// Iterations is the number of CG iterations performed. 0 means the
	// initial residual already satisfied the tolerance.
	Iterations int
	// Residual is the Euclidean norm of the final residual.
	Residual float64
	// Converged is true when Residual dropped below the tolerance, false
	// when the budget ran out or the recurrence broke down.
	Converged bool
}

// Solve runs preconditioned conjugate gradients on Op(x) = b.
//
// b is a dual-role buffer: it carries the right-hand side in and the
// solution out. diag is the inverse-diagonal (Jacobi) preconditioner,
// applied elementwise; nil means no preconditioning. warm seeds the
// iterate: nil starts from zero, otherwise x starts at warm and the
// initial residual is b − Op(warm). maxIter bounds the iteration count
// and tol is the absolute residual-norm target.
//
// Running out of budget or hitting a breakdown is not an error: the best
// iterate reached so far is left in b and Result describes the outcome.
// Errors are reserved for misuse (nil operator, length mismatches, a
// negative budget), and b is untouched on error.
func (w *Workspace) Solve(apply Operator, diag, b, warm []float64, maxIter int, tol float64) (Result, error) {
	n := w.Dim()
	if apply == nil {
		return Result{}, ErrNilOperator
	}
	if len(b) != n {
		return Result{}, fmt.Errorf("%w: len(b) = %d, dim = %d", ErrDimensionMismatch, len(b), n)
	}
	if warm != nil && len(warm) != n {
		return Result{}, fmt.Errorf("%w: len(warm) = %d, dim = %d", ErrDimensionMismatch, len(warm), n)
	}
	if diag != nil && len(diag) != n {
		return Result{}, fmt.Errorf("%w: len(diag) = %d, dim = %d", ErrDimensionMismatch, len(diag), n)
	}
	if maxIter < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadIteration, maxIter)
	}

	// Seed iterate and residual. From here on b is the iterate x.
	if warm == nil {
		copy(w.r, b)
		for i := range b {
			b[i] = 0
		}
	} else {
		apply(w.r, warm)      // r = Op(warm)
		floats.Scale(-1, w.r) // r = −Op(warm)
		floats.Add(w.r, b)    // r = b − Op(warm)
		copy(b, warm)
	}

	res := floats.Norm(w.r, 2)
	if res < tol {
		return Result{Iterations: 0, Residual: res, Converged: true}, nil
	}

	ipzr := w.precondition(diag)
	copy(w.p, w.z)

	for i := 0; i < maxIter; i++ {
		apply(w.ap, w.p)
		denom := floats.Dot(w.p, w.ap)
		if !(denom > 0) || math.IsInf(denom, 0) {
			// curvature lost: keep the current iterate
			return Result{Iterations: i, Residual: res, Converged: false}, nil
		}
		alpha := ipzr / denom
		floats.AddScaled(b, alpha, w.p)     // x += α·p
		floats.AddScaled(w.r, -alpha, w.ap) // r −= α·Op(p)

		res = floats.Norm(w.r, 2)
		if res < tol {
			return Result{Iterations: i + 1, Residual: res, Converged: true}, nil
		}

		ipzrOld := ipzr
		ipzr = w.precondition(diag)
		floats.Scale(ipzr/ipzrOld, w.p) // p = β·p, β = ⟨z,r⟩/⟨z,r⟩_old
		floats.Add(w.p, w.z)            // p += z
	}

	return Result{Iterations: maxIter, Residual: res, Converged: false}, nil
}

// precondition computes z = diag⊙r (or z = r when diag is nil) and
// returns ⟨z, r⟩.
func (w *Workspace) precondition(diag []float64) float64 {
	if diag == nil {
		copy(w.z, w.r)

		return floats.Dot(w.r, w.r)
	}
	floats.MulTo(w.z, diag, w.r)

	return floats.Dot(w.z, w.r)
}
