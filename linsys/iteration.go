// SPDX-License-Identifier: MIT

// Package linsys - fixed-point (Jacobi) iteration.
//
// Purpose:
//   - Representation: rewrite A·x = b as x = C·x + d.
//   - SolveByIteration: iterate x⁽ᵏ⁺¹⁾ = C·x⁽ᵏ⁾ + d from x⁽⁰⁾ = 0 until the
//     max-norm step is <= eps, bounded by the iteration cap.
//
// Notes:
//   - Convergence is guaranteed when the spectral radius of C is < 1; strict
//     row diagonal dominance of A is sufficient (‖C‖∞ < 1).

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Representation returns the system x = C·x + d as a new System whose matrix
// is C and whose RHS is d:
//
//	C[i,j] = -A[i,j]/A[i,i] (j ≠ i),  C[i,i] = 0,  d[i] = b[i]/A[i,i].
//
// The receiver is not mutated.
// Errors: ErrNonSquare, ErrZeroDiagonal when |A[i,i]| <= eps.
// Complexity: O(n²).
func (s *System) Representation() (*System, error) {
	if err := s.requireSquare(opRepresentation); err != nil {
		return nil, err
	}

	rep := s.Clone()
	var diag float64
	for i := 0; i < rep.size; i++ {
		diag = rep.mustRow(i)[i]
		if matrix.IsZero(diag, rep.opts.eps) {
			return nil, systemErrorf(opRepresentation, fmt.Errorf("row %d: %w", i, ErrZeroDiagonal))
		}
		// Row i becomes -A[i,·]/A[i,i] and b[i] becomes -b[i]/A[i,i] in lockstep;
		// then the diagonal is cleared and the RHS sign restored.
		if err := rep.ScaleRow(i, -1/diag); err != nil {
			return nil, systemErrorf(opRepresentation, err)
		}
		rep.mustRow(i)[i] = 0
		rep.b[i] = -rep.b[i]
	}

	return rep, nil
}

// IterationResult reports a converged fixed-point solve.
type IterationResult struct {
	X          []float64 // converged iterate
	Iterations int       // number of C·x + d applications
	Step       float64   // max-norm of the final step, <= the requested eps
}

// Iterate runs the fixed-point iteration and reports how it converged.
// MAIN DESCRIPTION:
//   - Same algorithm as SolveByIteration, with iteration count and final step.
//
// Implementation:
//   - Stage 1: validate eps; build C, d via Representation.
//   - Stage 2: from x = 0 apply x' = C·x + d; stop when max|x' - x| <= eps.
//   - Stage 3: fail once the cap is reached or an iterate stops being finite.
//
// Errors:
//   - ErrInvalidTolerance, ErrNonSquare, ErrZeroDiagonal, ErrNonConvergent.
//
// Complexity:
//   - Time O(k·n²) for k iterations, Space O(n²) for C.
func (s *System) Iterate(eps float64) (*IterationResult, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return nil, systemErrorf(opSolveByIteration, fmt.Errorf("eps=%g: %w", eps, ErrInvalidTolerance))
	}
	rep, err := s.Representation()
	if err != nil {
		return nil, systemErrorf(opSolveByIteration, err)
	}

	n := rep.size
	prev := make([]float64, n)
	next := make([]float64, n)
	var sum, step, d float64
	for k := 1; k <= rep.opts.maxIter; k++ {
		step = 0
		for i := 0; i < n; i++ {
			row := rep.mustRow(i)
			sum = rep.b[i]
			for j := 0; j < n; j++ {
				if j != i {
					sum += row[j] * prev[j]
				}
			}
			next[i] = sum
			if d = math.Abs(sum - prev[i]); d > step || math.IsNaN(d) {
				step = d
			}
		}
		if math.IsNaN(step) || math.IsInf(step, 0) {
			return nil, systemErrorf(opSolveByIteration,
				fmt.Errorf("iterate %d is not finite: %w", k, ErrNonConvergent))
		}
		if step <= eps {
			return &IterationResult{X: next, Iterations: k, Step: step}, nil
		}
		prev, next = next, prev
	}

	return nil, systemErrorf(opSolveByIteration,
		fmt.Errorf("no convergence to %g within %d iterations (last step %g): %w",
			eps, rep.opts.maxIter, step, ErrNonConvergent))
}

// SolveByIteration solves A·x = b by fixed-point iteration to tolerance eps.
// See Iterate for the algorithm and errors.
func (s *System) SolveByIteration(eps float64) ([]float64, error) {
	res, err := s.Iterate(eps)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}
