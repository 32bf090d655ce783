// SPDX-License-Identifier: MIT
// Package linsys_test contains test helpers
//
// Purpose:
//   • Deterministic, well-conditioned fixtures (seeded, diagonally dominant).
//   • Must* wrappers that fail the test instead of returning errors.

package linsys_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/linsys"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for direct-solver comparisons on fixtures.
const tol = 1e-9

// MustSystem builds a System from literals or fails the test.
func MustSystem(t testing.TB, a [][]float64, b []float64, opts ...linsys.Option) *linsys.System {
	t.Helper()
	s, err := linsys.NewFromData(a, b, opts...)
	require.NoError(t, err)

	return s
}

// dominantData returns a random n×n strictly row diagonally dominant matrix
// and a random RHS. Off-diagonals lie in [-1,1]; each diagonal exceeds its
// off-diagonal row sum by at least 1 and carries a random sign.
func dominantData(rng *rand.Rand, n int) ([][]float64, []float64) {
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		var off float64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			a[i][j] = 2*rng.Float64() - 1
			if a[i][j] < 0 {
				off -= a[i][j]
			} else {
				off += a[i][j]
			}
		}
		a[i][i] = off + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			a[i][i] = -a[i][i]
		}
		b[i] = 10*rng.Float64() - 5
	}

	return a, b
}

// tridiagonalData returns a random strictly dominant tridiagonal system.
func tridiagonalData(rng *rand.Rand, n int) ([][]float64, []float64) {
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		var off float64
		if i > 0 {
			a[i][i-1] = 2*rng.Float64() - 1
			off += abs(a[i][i-1])
		}
		if i < n-1 {
			a[i][i+1] = 2*rng.Float64() - 1
			off += abs(a[i][i+1])
		}
		a[i][i] = off + 1 + rng.Float64()
		b[i] = 10*rng.Float64() - 5
	}

	return a, b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
