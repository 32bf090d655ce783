// Package matrix_test contains unit tests for elementary row operations
// and partial pivot selection.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

func TestSwapRows(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, m.SwapRows(0, 2))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	// i == j is a no-op.
	require.NoError(t, m.SwapRows(1, 1))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestScaleRow(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.ScaleRow(1, 0.5))
	CompareExact(t, [][]float64{{1, 2}, {1.5, 2}}, m)

	require.ErrorIs(t, m.ScaleRow(2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.ScaleRow(0, math.NaN()), matrix.ErrNaNInf)
	// Failed calls leave the row untouched.
	CompareExact(t, [][]float64{{1, 2}, {1.5, 2}}, m)
}

func TestAddScaledRow(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.AddScaledRow(1, 0, -3))
	CompareExact(t, [][]float64{{1, 2}, {0, -2}}, m)

	// target == source scales by (1+k).
	require.NoError(t, m.AddScaledRow(0, 0, 1))
	CompareExact(t, [][]float64{{2, 4}, {0, -2}}, m)

	require.ErrorIs(t, m.AddScaledRow(0, 5, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRow(0, 1, math.Inf(1)), matrix.ErrNaNInf)
}

func TestSelectPivotRow(t *testing.T) {
	m := MustFrom(t, [][]float64{
		{0, 1, 0},
		{-4, 2, 0},
		{3, 5, 1e-12},
	})

	tests := []struct {
		name     string
		col, row int
		want     int
	}{
		{"largest magnitude wins over sign", 0, 0, 1},
		{"scan starts at fromRow", 0, 2, 2},
		{"column 1 from top", 1, 0, 2},
		{"all below eps", 2, 0, matrix.NoPivot},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.SelectPivotRow(tc.col, tc.row, matrix.DefaultEpsilon)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := m.SelectPivotRow(3, 0, matrix.DefaultEpsilon)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SelectPivotRow(0, 3, matrix.DefaultEpsilon)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Panics(t, func() { _, _ = m.SelectPivotRow(0, 0, -1) })
}

// TestSelectPivotRow_TieKeepsUpper: equal magnitudes keep the first row.
func TestSelectPivotRow_TieKeepsUpper(t *testing.T) {
	m := MustFrom(t, [][]float64{{2}, {-2}, {2}})
	got, err := m.SelectPivotRow(0, 0, matrix.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestIsZero(t *testing.T) {
	require.True(t, matrix.IsZero(0, matrix.DefaultEpsilon))
	require.True(t, matrix.IsZero(-1e-10, matrix.DefaultEpsilon))
	require.False(t, matrix.IsZero(1e-8, matrix.DefaultEpsilon))
}
