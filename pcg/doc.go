// Package pcg implements a warm-startable, Jacobi-preconditioned conjugate
// gradient kernel over matrix-free operators.
//
// What
//
//   - Operator: a closure dst = Op(x); the kernel never sees a matrix, so
//     any symmetric positive definite action fits, materialized or not.
//   - Workspace: the four scratch vectors CG cycles through (direction,
//     residual, preconditioned residual, operator output), allocated once
//     for a fixed dimension and reused across solves.
//   - Solve: the loop itself. The right-hand side buffer doubles as the
//     solution: b holds the RHS on entry and the iterate on return.
//   - Result: iterations used, final residual norm, converged flag.
//
// Why
//
//	Inside an operator-splitting outer loop the same system is solved
//	thousands of times with slowly drifting right-hand sides. Warm starts
//	and a zero-allocation inner loop are worth more there than generality:
//	every vector CG touches lives in the Workspace, and the previous outer
//	iterate seeds the next solve.
//
// Termination
//
//	Solve stops as soon as ‖r‖ drops below tol, the iteration budget runs
//	out, or the curvature ⟨p, Op(p)⟩ stops being positive and finite
//	(numerical breakdown). The last two are ordinary outcomes, not errors:
//	the best iterate so far is always left in b, and Result says how far
//	the solver got. An already-converged warm start returns after zero
//	iterations.
//
// Errors
//
//	Only misuse errors: a nil operator, slice lengths that disagree with
//	the workspace dimension, or a negative budget. See errors.go.
//
// Concurrency
//
//	A Workspace must not be shared between goroutines; give each solving
//	goroutine its own.
package pcg
