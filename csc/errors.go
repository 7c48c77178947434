package csc

import "errors"

var (
	// ErrDimension indicates a negative row or column count.
	ErrDimension = errors.New("csc: dimensions must be non-negative")
	// ErrColPtr indicates a column-pointer array of the wrong length, with a
	// nonzero start, decreasing entries, or a final entry that disagrees
	// with the entry count.
	ErrColPtr = errors.New("csc: malformed column pointer array")
	// ErrRowIndex indicates a row index outside [0, rows).
	ErrRowIndex = errors.New("csc: row index out of range")
	// ErrValueCount indicates value and row-index arrays of differing length.
	ErrValueCount = errors.New("csc: value count disagrees with row-index count")
)
