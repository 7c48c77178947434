// Package indirect solves the regularized normal equations
//
//	(ρI + AᵀA)·x = b₁ + Aᵀ·b₂
//
// for a sparse m×n matrix A, the linear subproblem at the heart of an
// operator-splitting conic solver. "Indirect" marks the method: nothing is
// factorized and AᵀA is never formed; the system is solved by
// preconditioned conjugate gradients against a matrix-free operator built
// from two sparse products per iteration.
//
// What
//
//   - Solver: a reusable handle over one matrix A. New caches Aᵀ, builds
//     the Jacobi preconditioner diag(ρ + ‖A col‖²)⁻¹ and allocates all
//     scratch once; Solve reuses it, allocation-free, call after call.
//   - Solve: consumes a stacked right-hand side rhs = (b₁, b₂) of length
//     n+m in place. On return rhs[:n] holds the solution x and rhs[n:]
//     holds A·x − b₂, the form the outer splitting iteration consumes
//     directly.
//   - Method, Summary, Stats: diagnostics over the accumulated CG
//     iteration counts and solve times.
//
// Tolerance schedule
//
//	Each call gets tol = max(‖b₁‖ · τ, TolFloor). The outer iteration
//	number steers τ: pass iter ≥ 0 during the splitting loop for
//	τ = 1/(iter+1)^rate, a schedule that starts loose and tightens as the
//	outer iterate settles, and pass iter < 0 for one-off solves at the
//	floor tolerance. Solves with iter < 0 also stay out of the iteration
//	statistics.
//
// Why warm starts
//
//	Consecutive outer iterations solve almost the same system, so the
//	previous solution is an excellent first iterate: pass it as warm and
//	CG typically needs a handful of iterations, sometimes none. Budget
//	exhaustion is an ordinary outcome, not an error; the outer loop
//	absorbs the inexactness.
//
// Concurrency
//
//	A Solver is single-goroutine: its scratch vectors are reused by every
//	call. WithWorkers opts into data parallelism inside the two sparse
//	products only, where the output ranges are disjoint by construction.
//
// Errors
//
//	New reports a nil or zero-column matrix and invalid options; Solve
//	reports length mismatches and use after Release. Slow convergence and
//	exhausted budgets are not errors: they show up in the returned
//	iteration count and in Stats.
package indirect
