// Package matrix provides the dense numeric container under the linsys solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major rows×cols grid of float64 with bounds-checked At/Set,
//     a finite-only numeric policy and deep-copy Clone.
//   - Elementary row operations (SwapRows, ScaleRow, AddScaledRow) and the
//     partial-pivot query SelectPivotRow.
//   - Small kernels (Mul, MatVec, MaxAbsDiff, MaxNorm) and structural
//     predicates (IsTridiagonal, IsDiagonallyDominant).
//
// Dense knows nothing about right-hand sides; linsys.System pairs a Dense with
// a vector and mirrors every row operation on both.
//
// All errors are package sentinels (errors.go) wrapped with call-site context;
// match them with errors.Is.
package matrix
