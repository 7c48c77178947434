// Package csc provides immutable column-compressed (CSC) sparse matrices
// together with the small set of kernels an iterative linear solver needs:
// transposition, accumulating matrix-vector products, and column norms.
//
// What
//
//   - Matrix: a validated, read-only CSC triple (column pointers, row
//     indices, values) over float64, constructible from raw arrays (New)
//     or assembled incrementally from triplets (COO).
//   - Transpose: a counting-sort scatter producing the CSC form of Aᵀ in
//     O(nnz + rows), with sorted row indices as a by-product.
//   - MulVecAdd / MulTransVecAdd: accumulating products dst += A·x and
//     dst += Aᵀ·x. The gather form (MulTransVecAdd) writes each output
//     entry exactly once, so it also comes in a chunked multi-goroutine
//     variant (MulTransVecAddWorkers).
//   - ColNormsSq: per-column squared Euclidean norms, the raw material of
//     Jacobi (diagonal) preconditioners.
//
// Why
//
//	Solvers that never materialize AᵀA apply it as two sparse products
//	against A and a cached Aᵀ. Keeping both products in the gather form
//	(one kernel, run once against A and once against the transpose) makes
//	every per-iteration pass parallelizable by output index with no
//	synchronization at all.
//
// Concurrency
//
//	A Matrix is immutable after construction and safe for any number of
//	concurrent readers. The Workers product variant partitions the output
//	range into contiguous chunks, one goroutine each; chunks never share
//	an output element.
//
// Errors
//
//   - New returns ErrDimension, ErrColPtr, ErrRowIndex or ErrValueCount
//     when the raw arrays violate a CSC invariant.
//   - The product kernels and At panic on dimension misuse (stable
//     package-prefixed messages): they sit on per-iteration hot paths and
//     their buffer lengths are fixed once by the owning solver.
package csc
