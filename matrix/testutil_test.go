package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woji/linalg/matrix"
	"github.com/woji/linalg/rational"
)

// Shared helpers for building Float and Rational fixtures tersely.
// Rational fixtures go through FromInt/New so every value holds the
// lowest-terms invariant.

// fl converts float64 literals to a Float slice.
func fl(vs ...float64) []matrix.Float {
	out := make([]matrix.Float, len(vs))
	for i, v := range vs {
		out[i] = matrix.Float(v)
	}

	return out
}

// flMat builds a Float matrix from nested rows or aborts the test.
func flMat(t *testing.T, rows [][]float64) *matrix.Dense[matrix.Float] {
	t.Helper()
	conv := make([][]matrix.Float, len(rows))
	for i, row := range rows {
		conv[i] = fl(row...)
	}
	m, err := matrix.NewDenseFromRows(conv)
	require.NoError(t, err, "NewDenseFromRows must construct the fixture")

	return m
}

// ratOf builds num/den or aborts the test.
func ratOf(t *testing.T, num, den int64) rational.Rational {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err, "rational.New(%d,%d) must construct", num, den)

	return r
}

// ratVec converts integer literals to a Rational slice.
func ratVec(vs ...int64) []rational.Rational {
	out := make([]rational.Rational, len(vs))
	for i, v := range vs {
		out[i] = rational.FromInt(v)
	}

	return out
}

// ratMat builds a Rational matrix from nested integer rows or aborts the test.
func ratMat(t *testing.T, rows [][]int64) *matrix.Dense[rational.Rational] {
	t.Helper()
	conv := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		conv[i] = ratVec(row...)
	}
	m, err := matrix.NewDenseFromRows(conv)
	require.NoError(t, err, "NewDenseFromRows must construct the fixture")

	return m
}

// mustAt reads an element or aborts the test.
func mustAt[T matrix.Ring[T]](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}
