package pcg

import "errors"

var (
	// ErrNilOperator is returned by Solve when apply is nil.
	ErrNilOperator = errors.New("pcg: nil operator")

	// ErrDimensionMismatch is returned by Solve when a slice argument does
	// not match the workspace dimension.
	ErrDimensionMismatch = errors.New("pcg: slice length does not match workspace dimension")

	// ErrBadIteration is returned by Solve when the iteration budget is
	// negative.
	ErrBadIteration = errors.New("pcg: negative iteration budget")
)
