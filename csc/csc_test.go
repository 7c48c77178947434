package csc_test

import (
	"testing"

	"github.com/splitkit/linsys/csc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// testMatrix returns the 3x4 reference matrix used across this package's
// tests:
//
//	[ 1  0  2  0 ]
//	[ 0  3  0  4 ]
//	[ 5  0  6  0 ]
func testMatrix(t *testing.T) *csc.Matrix {
	t.Helper()
	m, err := csc.New(3, 4,
		[]int{0, 2, 3, 5, 6},
		[]int{0, 2, 1, 0, 2, 1},
		[]float64{1, 5, 3, 2, 6, 4},
	)
	require.NoError(t, err, "reference matrix must construct")

	return m
}

// testDense is the dense counterpart of testMatrix.
func testDense() *mat.Dense {
	return mat.NewDense(3, 4, []float64{
		1, 0, 2, 0,
		0, 3, 0, 4,
		5, 0, 6, 0,
	})
}

// TestNew_Valid verifies that a well-formed CSC triple constructs and the
// accessors report its shape.
func TestNew_Valid(t *testing.T) {
	m := testMatrix(t)
	assert.Equal(t, 3, m.Rows(), "row count")
	assert.Equal(t, 4, m.Cols(), "column count")
	assert.Equal(t, 6, m.NNZ(), "stored entry count")

	r, c := m.Dims()
	assert.Equal(t, 3, r, "Dims rows")
	assert.Equal(t, 4, c, "Dims cols")
}

// TestNew_EmptyShapes verifies that zero-row and zero-column matrices are
// accepted.
func TestNew_EmptyShapes(t *testing.T) {
	m, err := csc.New(0, 0, []int{0}, nil, nil)
	require.NoError(t, err, "0x0 must construct")
	assert.Equal(t, 0, m.NNZ(), "0x0 has no entries")

	m, err = csc.New(0, 2, []int{0, 0, 0}, nil, nil)
	require.NoError(t, err, "0x2 must construct")
	assert.Equal(t, 2, m.Cols(), "0x2 keeps its column count")
}

// TestNew_Invalid runs every malformed-input class through New and checks
// the sentinel each one maps to.
func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		colPtr     []int
		rowIdx     []int
		values     []float64
		want       error
	}{
		{"negative rows", -1, 2, []int{0, 0, 0}, nil, nil, csc.ErrDimension},
		{"negative cols", 2, -1, []int{0}, nil, nil, csc.ErrDimension},
		{"colPtr too short", 2, 2, []int{0, 0}, nil, nil, csc.ErrColPtr},
		{"colPtr nonzero start", 2, 2, []int{1, 1, 1}, nil, nil, csc.ErrColPtr},
		{"colPtr decreasing", 2, 2, []int{0, 1, 0}, []int{0}, []float64{1}, csc.ErrColPtr},
		{"colPtr misses nnz", 2, 2, []int{0, 1, 1}, []int{0, 1}, []float64{1, 2}, csc.ErrColPtr},
		{"row index too big", 2, 2, []int{0, 1, 1}, []int{2}, []float64{1}, csc.ErrRowIndex},
		{"row index negative", 2, 2, []int{0, 1, 1}, []int{-1}, []float64{1}, csc.ErrRowIndex},
		{"value count mismatch", 2, 2, []int{0, 1, 1}, []int{0}, []float64{1, 2}, csc.ErrValueCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csc.New(tc.rows, tc.cols, tc.colPtr, tc.rowIdx, tc.values)
			assert.ErrorIs(t, err, tc.want, "sentinel for %s", tc.name)
		})
	}
}

// TestAt verifies element access, including absent positions and the
// additive treatment of duplicate entries.
func TestAt(t *testing.T) {
	m := testMatrix(t)
	assert.Equal(t, 1.0, m.At(0, 0), "stored entry")
	assert.Equal(t, 0.0, m.At(1, 0), "absent entry is zero")
	assert.Equal(t, 6.0, m.At(2, 2), "stored entry in later column")

	dup, err := csc.New(2, 1, []int{0, 2}, []int{0, 0}, []float64{1.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, 4.0, dup.At(0, 0), "duplicate entries sum")

	assert.Panics(t, func() { m.At(3, 0) }, "row out of range panics")
	assert.Panics(t, func() { m.At(0, -1) }, "column out of range panics")
}

// TestGonumConformance checks the mat.Matrix view against a dense copy,
// both directly and through the transpose view.
func TestGonumConformance(t *testing.T) {
	m := testMatrix(t)
	assert.True(t, mat.Equal(m, testDense()), "CSC and dense views must agree")
	assert.True(t, mat.Equal(m.T(), testDense().T()), "transpose views must agree")
	assert.Equal(t, 2.0, m.T().At(2, 0), "T view swaps indices")
}

// TestCOO_Build verifies that scrambled, duplicated triplets convert into
// the expected CSC matrix.
func TestCOO_Build(t *testing.T) {
	b := csc.NewCOO(3, 4)
	b.Append(2, 2, 4)
	b.Append(0, 0, 1)
	b.Append(1, 3, 4)
	b.Append(2, 0, 5)
	b.Append(0, 2, 2)
	b.Append(1, 1, 3)
	b.Append(2, 2, 2) // duplicate of (2,2): 4+2 = 6
	assert.Equal(t, 7, b.NNZ(), "builder counts duplicates")

	m := b.ToCSC()
	assert.Equal(t, 6, m.NNZ(), "conversion merges duplicates")
	assert.True(t, mat.Equal(m, testDense()), "converted matrix matches dense reference")
}

// TestCOO_Empty verifies that a builder with no entries yields a valid
// all-zero matrix.
func TestCOO_Empty(t *testing.T) {
	m := csc.NewCOO(2, 3).ToCSC()
	assert.Equal(t, 0, m.NNZ(), "no entries recorded")
	assert.Equal(t, 2, m.Rows(), "shape preserved")
	assert.Equal(t, 3, m.Cols(), "shape preserved")
	assert.Equal(t, 0.0, m.At(1, 2), "all positions zero")
}

// TestCOO_Misuse verifies the panic guards on the builder.
func TestCOO_Misuse(t *testing.T) {
	assert.Panics(t, func() { csc.NewCOO(-1, 2) }, "negative dimension panics")

	b := csc.NewCOO(2, 2)
	assert.Panics(t, func() { b.Append(2, 0, 1) }, "row out of range panics")
	assert.Panics(t, func() { b.Append(0, 2, 1) }, "column out of range panics")
}
