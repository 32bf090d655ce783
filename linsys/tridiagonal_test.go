// Package linsys_test contains unit tests for the Thomas algorithm.
package linsys_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveTridiagonal_Known(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
		want []float64
	}{
		{"poisson 3x3", [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}, []float64{1, 0, 1}, []float64{1, 1, 1}},
		{"1x1", [][]float64{{5}}, []float64{10}, []float64{2}},
		{"2x2", [][]float64{{2, 1}, {1, 3}}, []float64{3, 5}, []float64{0.8, 1.4}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x, err := MustSystem(t, tc.a, tc.b).SolveTridiagonal()
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, x, tol)
		})
	}
}

// TestSolveTridiagonal_IgnoresOffBand: entries outside the three diagonals are not read.
func TestSolveTridiagonal_IgnoresOffBand(t *testing.T) {
	a := [][]float64{{2, -1, 99}, {-1, 2, -1}, {-42, -1, 2}}
	x, err := MustSystem(t, a, []float64{1, 0, 1}).SolveTridiagonal()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, x, tol)
}

func TestSolveTridiagonal_Precondition(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
	}{
		{"zero first diagonal", [][]float64{{0, 1}, {1, 2}}},
		{"vanishing recurrence", [][]float64{{1, 1}, {1, 1}}},
		{"1x1 zero", [][]float64{{0}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x, err := MustSystem(t, tc.a, make([]float64, len(tc.a))).SolveTridiagonal()
			require.ErrorIs(t, err, linsys.ErrTridiagonalPrecondition)
			assert.Nil(t, x)
		})
	}
}

func TestSolveTridiagonal_MatchesElimination(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 5, 17, 64} {
		a, b := tridiagonalData(rng, n)
		s := MustSystem(t, a, b)

		xt, err := s.SolveTridiagonal()
		require.NoError(t, err)
		xe, err := s.SolveByElimination()
		require.NoError(t, err)
		assert.InDeltaSlice(t, xe, xt, tol, "n=%d", n)
	}
}
