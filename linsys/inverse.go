// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// Invert returns A⁻¹ by solving A·x = e_i for every unit vector e_i.
// MAIN DESCRIPTION:
//   - Column i of the result is the solution for e_i; the receiver (including
//     its RHS) is never mutated.
//
// Implementation:
//   - Stage 1: validate square; allocate the n×n result.
//   - Stage 2: for each i, copy the coefficients with RHS = e_i and run
//     SolveByElimination; write x into column i.
//
// Errors:
//   - ErrNonSquare, ErrSingular (from the first failing column).
//   - ErrNaNInf when elimination overflows on finite input.
//
// Complexity:
//   - Time O(n⁴) (n independent eliminations), Space O(n²).
//
// Notes:
//   - One elimination with n right-hand sides would be O(n³); the per-column
//     form keeps each solve identical to SolveByElimination.
func (s *System) Invert() (*matrix.Dense, error) {
	if err := s.requireSquare(opInvert); err != nil {
		return nil, err
	}

	n := s.size
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, systemErrorf(opInvert, err)
	}

	var x []float64
	for i := 0; i < n; i++ {
		unit := &System{a: s.a, b: make([]float64, n), size: n, opts: s.opts}
		unit.b[i] = 1
		// SolveByElimination clones before mutating, so sharing s.a is safe.
		if x, err = unit.SolveByElimination(); err != nil {
			return nil, systemErrorf(opInvert, fmt.Errorf("column %d: %w", i, err))
		}
		for j := 0; j < n; j++ {
			if err = inv.Set(j, i, x[j]); err != nil {
				return nil, systemErrorf(opInvert, err)
			}
		}
	}

	return inv, nil
}
