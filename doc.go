// Package linsys is the linear-system core of an operator-splitting conic
// optimizer: repeated, warm-started solves of the regularized normal
// equations (ρI + AᵀA)x = b₁ + Aᵀb₂ over one fixed sparse matrix A.
//
// What is linsys?
//
//	A small, allocation-disciplined solver stack built for the inner loop
//	of a first-order optimizer:
//		• Sparse primitives: immutable CSC matrices, a triplet builder,
//		  transposition and accumulating products
//		• A matrix-free PCG kernel with warm starts and reusable scratch
//		• An indirect solver handle tying both together: Jacobi
//		  preconditioning, a per-call tolerance schedule, in-place
//		  right-hand-side consumption and running solve statistics
//
// Why indirect?
//
//   - No factorization, no fill-in: AᵀA is never formed; every iteration
//     is two sparse products
//   - Warm starts make repeated solves cheap; the outer loop's previous
//     answer is almost the next one
//   - Tolerances start loose and tighten with the outer iteration count,
//     spending accuracy only where it pays
//
// Everything is organized under three subpackages:
//
//	csc/      — column-compressed matrices, transpose, product kernels
//	pcg/      — the preconditioned conjugate gradient loop
//	indirect/ — the solver handle: setup, solve orchestration & statistics
//
// Quick example:
//
//	a, _ := csc.New(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 1})
//	s, _ := indirect.New(a, indirect.WithRho(1))
//	rhs := []float64{2, 2, 0, 0}    // b₁ over b₂, consumed in place
//	its, _ := s.Solve(rhs, nil, -1) // rhs[:2] is now x = (1, 1)
//
// See each subpackage's doc.go for contracts, invariants and error
// semantics.
//
//	go get github.com/splitkit/linsys
package linsys
