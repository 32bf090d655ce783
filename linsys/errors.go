// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
// All solvers return these sentinels wrapped with operation context
// ("SolveByElimination: Diagonalize: column 2: linsys: singular matrix");
// callers match them with errors.Is. No solver panics on numeric input and
// none returns a partial result together with an error.

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// Shared with package matrix so one errors.Is check covers both layers.
var (
	// ErrDimensionMismatch: coefficient row count differs from the RHS length,
	// or a literal coefficient slice is ragged.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrIndexOutOfRange: a row operation index is outside [0, Size()).
	ErrIndexOutOfRange = matrix.ErrOutOfRange

	// ErrNonSquare: a solver needs a square coefficient matrix.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNaNInf: non-finite input, or finite input that overflowed during elimination.
	ErrNaNInf = matrix.ErrNaNInf
)

var (
	// ErrSingular is returned when elimination or inversion finds no usable pivot.
	ErrSingular = errors.New("linsys: singular matrix")

	// ErrTridiagonalPrecondition is returned when a denominator of the Thomas
	// recurrence is (numerically) zero. Diagonal dominance rules this out.
	ErrTridiagonalPrecondition = errors.New("linsys: tridiagonal precondition violated")

	// ErrNonConvergent is returned when fixed-point iteration exceeds its
	// iteration cap or produces non-finite iterates.
	ErrNonConvergent = errors.New("linsys: iteration did not converge")

	// ErrZeroDiagonal is returned when the x = Cx + d rewrite meets a zero diagonal entry.
	ErrZeroDiagonal = errors.New("linsys: zero diagonal entry")

	// ErrInvalidTolerance is returned for a convergence tolerance that is not finite and > 0.
	ErrInvalidTolerance = errors.New("linsys: tolerance must be finite and > 0")

	// ErrNilSystem indicates a nil *System receiver.
	ErrNilSystem = errors.New("linsys: nil system")
)

// Operation tags for uniform error wrapping.
const (
	opNew                = "New"
	opNewFromData        = "NewFromData"
	opNewFromMatrix      = "NewFromMatrix"
	opSwapRows           = "SwapRows"
	opScaleRow           = "ScaleRow"
	opAddScaledRow       = "AddScaledRow"
	opDiagonalize        = "Diagonalize"
	opSolveByElimination = "SolveByElimination"
	opDeterminant        = "Determinant"
	opInvert             = "Invert"
	opSolveTridiagonal   = "SolveTridiagonal"
	opRepresentation     = "Representation"
	opSolveByIteration   = "SolveByIteration"
	opResidual           = "Residual"
)

// systemErrorf wraps err with an operation tag, preserving it for errors.Is.
func systemErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
