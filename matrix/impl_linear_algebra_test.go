// Package matrix_test contains unit tests for the Mul/MatVec/MaxAbsDiff kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, slow)
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(nil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{2, 1}, {1, 3}})
	y, err := matrix.MatVec(m, []float64{0.8, 1.4})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 5}, y, 1e-12)

	y, err = matrix.MatVec(hide{m}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbsDiffAndMaxNorm(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{1, 2.5}, {2, 4}})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	_, err = matrix.MaxAbsDiff(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Equal(t, 3.0, matrix.MaxNorm([]float64{1, -3, 2}))
	require.Equal(t, 0.0, matrix.MaxNorm(nil))
}
