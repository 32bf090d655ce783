// SPDX-License-Identifier: MIT

// Package linsys - Gaussian elimination, determinant and back-substitution.
//
// Purpose:
//   - Diagonalize: forward elimination of [A | b] to unit upper-triangular form.
//   - SolveByElimination: Diagonalize on a private copy, then back-substitute.
//   - Determinant: the product of the pivots with the swap sign.
//
// Determinism:
//   - Fixed column-by-column order; ties in pivot selection keep the upper row.
//
// AI-Hints:
//   - WithPartialPivoting() trades a column scan per step for bounded multipliers.

package linsys

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Diagonalize reduces the receiver in place to row-echelon form with a unit
// diagonal and returns det(A).
// MAIN DESCRIPTION:
//   - Mutates the receiver. Use SolveByElimination or Determinant to keep a
//     system intact.
//
// Implementation (for each pivot row i):
//   - Stage 1: if |a[i,i]| <= eps (or always under WithPartialPivoting), pick the
//     partial pivot of column i at or below row i and swap it up; every real swap
//     flips the determinant sign. No pivot means A is singular.
//   - Stage 2: accumulate a[i,i] into the determinant, scale row i (and b[i]) by 1/a[i,i].
//   - Stage 3: subtract a[j,i]·row i from every row j > i; a row that overflows
//     to ±Inf (or NaN) aborts the reduction.
//
// Returns:
//   - det = (-1)^swaps · Π pivots; the receiver holds U·x = c with diag(U) = 1.
//
// Errors:
//   - ErrNonSquare, ErrSingular (det reported as 0; the receiver is left
//     partially reduced and must not be used for solving).
//   - ErrSingular also for a pivot too small to invert (subnormal, eps = 0).
//   - ErrNaNInf when finite input overflows during elimination.
//
// Complexity:
//   - Time O(n³), Space O(1) beyond the receiver.
func (s *System) Diagonalize() (float64, error) {
	if err := s.requireSquare(opDiagonalize); err != nil {
		return 0, err
	}

	var (
		n     = s.size
		eps   = s.opts.eps
		det   = 1.0
		pivot float64
		p     int
		err   error
	)
	for i := 0; i < n; i++ {
		pivot = s.mustRow(i)[i]
		if s.opts.alwaysPivot || matrix.IsZero(pivot, eps) {
			if p, err = s.a.SelectPivotRow(i, i, eps); err != nil {
				return 0, systemErrorf(opDiagonalize, err)
			}
			if p == matrix.NoPivot {
				return 0, systemErrorf(opDiagonalize, fmt.Errorf("column %d: %w", i, ErrSingular))
			}
			if p != i {
				if err = s.SwapRows(p, i); err != nil {
					return 0, systemErrorf(opDiagonalize, err)
				}
				det = -det
			}
			pivot = s.mustRow(i)[i]
		}
		if math.IsNaN(pivot) || math.IsInf(pivot, 0) {
			return 0, systemErrorf(opDiagonalize, fmt.Errorf("column %d: pivot %g: %w", i, pivot, ErrNaNInf))
		}
		// A subnormal pivot passes any eps >= 0 but has no finite reciprocal.
		inv := 1 / pivot
		if math.IsInf(inv, 0) {
			return 0, systemErrorf(opDiagonalize, fmt.Errorf("column %d: pivot %g: %w", i, pivot, ErrSingular))
		}

		det *= pivot
		if err = s.ScaleRow(i, inv); err != nil {
			return 0, systemErrorf(opDiagonalize, err)
		}
		s.mustRow(i)[i] = 1 // exact unit diagonal, free of 1/p·p round-off

		for j := i + 1; j < n; j++ {
			f := s.mustRow(j)[i]
			if f == 0 {
				continue
			}
			if err = s.AddScaledRow(j, i, -f); err != nil {
				return 0, systemErrorf(opDiagonalize, err)
			}
			s.mustRow(j)[i] = 0 // eliminated entry
			if !s.rowFinite(j) {
				return 0, systemErrorf(opDiagonalize,
					fmt.Errorf("row %d overflowed eliminating column %d: %w", j, i, ErrNaNInf))
			}
		}
	}

	return det, nil
}

// SolveByElimination solves A·x = b by Gaussian elimination on a private copy.
// MAIN DESCRIPTION:
//   - The receiver is never mutated.
//
// Implementation:
//   - Stage 1: clone and Diagonalize.
//   - Stage 2: back-substitute: x[n-1] = c[n-1]; x[i] = c[i] - Σ_{j>i} u[i,j]·x[j].
//
// Errors:
//   - ErrNonSquare, ErrSingular.
//   - ErrNaNInf if elimination or back-substitution overflows.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the copy.
func (s *System) SolveByElimination() ([]float64, error) {
	if err := s.requireSquare(opSolveByElimination); err != nil {
		return nil, err
	}
	work := s.Clone()
	if _, err := work.Diagonalize(); err != nil {
		return nil, systemErrorf(opSolveByElimination, err)
	}

	x := work.backSubstitute()
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, systemErrorf(opSolveByElimination, fmt.Errorf("x[%d] = %g: %w", i, v, ErrNaNInf))
		}
	}

	return x, nil
}

// backSubstitute solves the unit upper-triangular system left by Diagonalize.
func (s *System) backSubstitute() []float64 {
	n := s.size
	x := make([]float64, n)
	var sum float64
	for i := n - 1; i >= 0; i-- {
		row := s.mustRow(i)
		sum = matrix.ZeroSum
		for j := i + 1; j < n; j++ {
			sum += row[j] * x[j]
		}
		x[i] = s.b[i] - sum
	}

	return x
}

// Determinant returns det(A) computed by elimination on a private copy.
// A singular matrix, or one whose pivot is too small to invert, yields 0
// with a nil error.
// Errors: ErrNonSquare, ErrNaNInf (overflow during elimination or in the
// pivot product).
// Complexity: O(n³).
func (s *System) Determinant() (float64, error) {
	if err := s.requireSquare(opDeterminant); err != nil {
		return 0, err
	}
	det, err := s.Clone().Diagonalize()
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, systemErrorf(opDeterminant, err)
	}
	if math.IsInf(det, 0) || math.IsNaN(det) {
		return 0, systemErrorf(opDeterminant, fmt.Errorf("pivot product %g: %w", det, ErrNaNInf))
	}

	return det, nil
}
