// Package linsys is a small, dependency-light toolkit for dense linear
// systems A·x = b: direct elimination, inversion, the O(n) tridiagonal sweep
// and fixed-point iteration, all on float64 row-major matrices.
//
// 🚀 What is in the box?
//
//	• Dense matrices with bounds-checked access and row primitives
//	• Gaussian elimination with optional partial pivoting + determinant
//	• Inversion by column-wise solving
//	• Thomas algorithm for tridiagonal systems
//	• Jacobi-style iteration with a hard iteration cap
//	• Maclaurin-series sine with a term-by-term stopping rule
//
// Everything is organized under three library packages and one command:
//
//	matrix/      — Dense storage, row operations, pivot search, Mul/MatVec kernels
//	linsys/      — System (matrix + RHS in lockstep) and every solver
//	series/      — Taylor sine and tables of it
//	cmd/linsys/  — CLI reading YAML problem files (solve, invert, det, sine)
//
// Quick example:
//
//	    ⎡2 1⎤ x = ⎡3⎤   →   x = [0.8 1.4]
//	    ⎣1 3⎦     ⎣5⎦
//
//	s, _ := linsys.NewFromData([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	x, _ := s.SolveByElimination()
//
// Solvers never mutate the receiver and never return partial results: a
// failure is always one of the sentinel errors in linsys/errors.go.
//
//	go install github.com/katalvlaran/linsys/cmd/linsys@latest
package linsys
