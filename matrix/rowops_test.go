// Package matrix_test contains unit tests for the elementary row
// operations.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woji/linalg/matrix"
)

// Swap, scale and add-multiple compose as plain sequential mutation;
// the exact post-state is checked after every call.
func TestRowOps_SequentialComposition(t *testing.T) {
	m := flMat(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.SwapRows(0, 2))
	assert.True(t, matrix.Equal(m, flMat(t, [][]float64{{5, 6}, {3, 4}, {1, 2}})), "after SwapRows(0,2)")

	require.NoError(t, m.ScaleRow(1, 2))
	assert.True(t, matrix.Equal(m, flMat(t, [][]float64{{5, 6}, {6, 8}, {1, 2}})), "after ScaleRow(1,2)")

	require.NoError(t, m.AddRow(2, 0, -5))
	assert.True(t, matrix.Equal(m, flMat(t, [][]float64{{0, -4}, {6, 8}, {1, 2}})), "after AddRow(2,0,-5)")
}

func TestSwapRows_SelfIsNoop(t *testing.T) {
	m := flMat(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.SwapRows(1, 1))
	assert.True(t, matrix.Equal(m, flMat(t, [][]float64{{1, 2}, {3, 4}})))
}

// Scaling by the additive identity is permitted: it zeroes the row.
func TestScaleRow_ByZero(t *testing.T) {
	m := flMat(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.ScaleRow(0, 0))
	assert.True(t, matrix.Equal(m, flMat(t, [][]float64{{0, 0}, {3, 4}})))
}

// AddRow with src == dst scales the row by 1+k in one pass.
func TestAddRow_SelfTarget(t *testing.T) {
	m := flMat(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.AddRow(0, 0, 1))
	assert.True(t, matrix.Equal(m, flMat(t, [][]float64{{2, 4}, {3, 4}})))
}

func TestRowOps_Bounds(t *testing.T) {
	fresh := func() *matrix.Dense[matrix.Float] {
		return flMat(t, [][]float64{{1, 2}, {3, 4}})
	}
	pristine := fresh()

	m := fresh()
	assert.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.ScaleRow(2, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.AddRow(0, 2, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.AddRow(-1, 0, 1), matrix.ErrOutOfRange)

	// Failed calls must leave no partial mutation behind.
	assert.True(t, matrix.Equal(m, pristine), "failed row ops must not mutate")
}
