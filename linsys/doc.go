// Package linsys solves dense linear systems A·x = b.
//
// A System pairs a matrix.Dense with its right-hand side and offers four
// solvers:
//
//   - SolveByElimination: Gaussian elimination with pivoting on a zero
//     diagonal (or always, WithPartialPivoting), then back-substitution.
//   - Invert: A⁻¹ column by column, one elimination per unit vector.
//   - SolveTridiagonal: the O(n) Thomas algorithm for tridiagonal A.
//   - SolveByIteration: Jacobi-style fixed-point iteration x = C·x + d,
//     capped by WithMaxIterations.
//
// Every solver works on a private copy, so a System can be solved repeatedly
// (and from several goroutines, as long as nobody mutates it) without change.
// Failures are reported with the sentinels in errors.go: ErrSingular,
// ErrTridiagonalPrecondition, ErrNonConvergent, ErrZeroDiagonal,
// ErrDimensionMismatch, ErrIndexOutOfRange. No solver returns a partial result.
//
// Quick example:
//
//	s, _ := linsys.NewFromData([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	x, _ := s.SolveByElimination() // [0.8 1.4]
package linsys
