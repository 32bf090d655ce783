// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// SolveTridiagonal solves A·x = b with the Thomas algorithm in O(n).
// MAIN DESCRIPTION:
//   - Reads only the sub-, main and super-diagonal of A; any other entry is
//     ignored. Check matrix.IsTridiagonal first if the input is untrusted.
//
// Implementation:
//   - Stage 1 (forward sweep): with sub a_i = A[i,i-1], diag d_i = A[i,i],
//     super c_i = A[i,i+1] and den_i = d_i + a_i·p[i-1],
//     p[i] = -c_i / den_i and q[i] = (b_i - a_i·q[i-1]) / den_i,
//     so that x[i] = p[i]·x[i+1] + q[i].
//   - Stage 2 (backward sweep): x[n-1] = q[n-1]; x[i] = p[i]·x[i+1] + q[i].
//
// Errors:
//   - ErrNonSquare.
//   - ErrTridiagonalPrecondition when |den_i| <= eps; strict diagonal
//     dominance guarantees this never happens.
//
// Complexity:
//   - Time O(n), Space O(n).
func (s *System) SolveTridiagonal() ([]float64, error) {
	if err := s.requireSquare(opSolveTridiagonal); err != nil {
		return nil, err
	}

	n := s.size
	p := make([]float64, n) // p[n-1] stays 0: the last row has no super-diagonal
	q := make([]float64, n)

	var sub, den, prevP, prevQ float64
	for i := 0; i < n; i++ {
		row := s.mustRow(i)
		sub, prevP, prevQ = 0, 0, 0
		if i > 0 {
			sub, prevP, prevQ = row[i-1], p[i-1], q[i-1]
		}
		den = row[i] + sub*prevP
		if matrix.IsZero(den, s.opts.eps) {
			return nil, systemErrorf(opSolveTridiagonal,
				fmt.Errorf("row %d: denominator %g: %w", i, den, ErrTridiagonalPrecondition))
		}
		if i < n-1 {
			p[i] = -row[i+1] / den
		}
		q[i] = (s.b[i] - sub*prevQ) / den
	}

	x := make([]float64, n)
	x[n-1] = q[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = p[i]*x[i+1] + q[i]
	}

	return x, nil
}
