// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators and
// structural predicates.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateNotNilAndSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestIsTridiagonal(t *testing.T) {
	t.Parallel()

	tri := MustFrom(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	require.True(t, matrix.IsTridiagonal(tri, matrix.DefaultEpsilon))

	full := MustFrom(t, [][]float64{{2, -1, 1}, {-1, 2, -1}, {0, -1, 2}})
	require.False(t, matrix.IsTridiagonal(full, matrix.DefaultEpsilon))

	require.False(t, matrix.IsTridiagonal(MustDense(t, 2, 3), matrix.DefaultEpsilon))
	require.False(t, matrix.IsTridiagonal(nil, matrix.DefaultEpsilon))
}

func TestIsDiagonallyDominant(t *testing.T) {
	t.Parallel()

	require.True(t, matrix.IsDiagonallyDominant(MustFrom(t, [][]float64{{4, 1, 1}, {1, 5, 2}, {0, 1, 3}})))
	// Equality is not strict dominance.
	require.False(t, matrix.IsDiagonallyDominant(MustFrom(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})))
	require.False(t, matrix.IsDiagonallyDominant(MustDense(t, 2, 3)))
}
