package indirect

import "errors"

var (
	// ErrNilMatrix is returned by New when the matrix is nil.
	ErrNilMatrix = errors.New("indirect: matrix is nil")

	// ErrOptionViolation is returned by New when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("indirect: invalid option supplied")

	// ErrDimensionMismatch is returned when a matrix or slice dimension
	// disagrees with the solver's.
	ErrDimensionMismatch = errors.New("indirect: dimension mismatch")

	// ErrReleased is returned by Solve after Release has been called.
	ErrReleased = errors.New("indirect: solver released")
)
