package indirect

import "github.com/splitkit/linsys/csc"

// jacobi builds the inverse-diagonal preconditioner of ρI + AᵀA: entry j
// is 1/(ρ + ‖A[:,j]‖²). Every entry is strictly positive for ρ > 0, empty
// columns included.
func jacobi(a *csc.Matrix, rho float64) []float64 {
	diag := a.ColNormsSq()
	for j, s := range diag {
		diag[j] = 1 / (rho + s)
	}

	return diag
}
