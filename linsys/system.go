// SPDX-License-Identifier: MIT

// Package linsys - System: coefficient matrix + right-hand side.
//
// Purpose:
//   - Own one *matrix.Dense and one RHS vector whose length equals the row count.
//   - Keep the pair consistent: the only row mutations are the lockstep
//     operations in rowops.go.
//   - Hand out copies, never aliases, so a caller cannot desynchronize the pair.
//
// Complexity quicksheet:
//   - New/NewFromData/NewFromMatrix/Clone: O(r*c); accessors O(1) or O(r*c) for copies.

package linsys

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/matrix"
)

// System is a linear system A·x = b.
//   - a is rows×cols; b has len == rows == size.
//   - opts carries the numeric policy (tolerance, iteration cap, pivoting).
type System struct {
	a    *matrix.Dense
	b    []float64
	size int
	opts Options
}

var _ fmt.Stringer = (*System)(nil)

// New returns a zero-filled rows×cols system with a zero RHS.
// MAIN DESCRIPTION:
//   - Dimension constructor; fill it with SetCoefficient / SetRHS.
//
// Errors:
//   - matrix.ErrInvalidDimensions if rows or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*System, error) {
	a, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, systemErrorf(opNew, err)
	}

	return &System{
		a:    a,
		b:    make([]float64, rows),
		size: rows,
		opts: gatherOptions(opts...),
	}, nil
}

// NewFromData builds a system from literal coefficients and RHS values.
// MAIN DESCRIPTION:
//   - Both inputs are deep-copied; later edits to them do not affect the system.
//
// Implementation:
//   - Stage 1: len(coef) must equal len(rhs) (ErrDimensionMismatch).
//   - Stage 2: coefficients go through matrix.NewDenseFrom (shape + finiteness).
//   - Stage 3: RHS values must be finite.
//
// Errors:
//   - ErrDimensionMismatch, matrix.ErrInvalidDimensions, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromData(coef [][]float64, rhs []float64, opts ...Option) (*System, error) {
	if len(coef) != len(rhs) {
		return nil, systemErrorf(opNewFromData,
			fmt.Errorf("%d coefficient rows, %d rhs entries: %w", len(coef), len(rhs), ErrDimensionMismatch))
	}
	a, err := matrix.NewDenseFrom(coef)
	if err != nil {
		return nil, systemErrorf(opNewFromData, err)
	}
	b, err := copyFinite(rhs)
	if err != nil {
		return nil, systemErrorf(opNewFromData, err)
	}

	return &System{a: a, b: b, size: len(b), opts: gatherOptions(opts...)}, nil
}

// NewFromMatrix builds a system from any Matrix implementation and a RHS.
// The matrix is deep-copied. Errors: matrix.ErrNilMatrix, ErrDimensionMismatch,
// matrix.ErrNaNInf.
// Complexity: O(r*c).
func NewFromMatrix(m matrix.Matrix, rhs []float64, opts ...Option) (*System, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, systemErrorf(opNewFromMatrix, err)
	}
	if m.Rows() != len(rhs) {
		return nil, systemErrorf(opNewFromMatrix,
			fmt.Errorf("%d coefficient rows, %d rhs entries: %w", m.Rows(), len(rhs), ErrDimensionMismatch))
	}

	var a *matrix.Dense
	if d, ok := m.(*matrix.Dense); ok {
		a = d.CloneDense()
	} else {
		var err error
		if a, err = matrix.NewDense(m.Rows(), m.Cols()); err != nil {
			return nil, systemErrorf(opNewFromMatrix, err)
		}
		var v float64
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, systemErrorf(opNewFromMatrix, err)
				}
				if err = a.Set(i, j, v); err != nil {
					return nil, systemErrorf(opNewFromMatrix, err)
				}
			}
		}
	}
	b, err := copyFinite(rhs)
	if err != nil {
		return nil, systemErrorf(opNewFromMatrix, err)
	}

	return &System{a: a, b: b, size: len(b), opts: gatherOptions(opts...)}, nil
}

// copyFinite returns a copy of xs or matrix.ErrNaNInf naming the first bad index.
func copyFinite(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("rhs[%d]: %w", i, matrix.ErrNaNInf)
		}
		out[i] = v
	}

	return out, nil
}

// Clone returns a deep copy (matrix, RHS and options).
// Complexity: O(r*c).
func (s *System) Clone() *System {
	b := make([]float64, len(s.b))
	copy(b, s.b)

	return &System{a: s.a.CloneDense(), b: b, size: s.size, opts: s.opts}
}

// Size returns the number of equations (== len(RHS()) == Matrix().Rows()).
func (s *System) Size() int { return s.size }

// Cols returns the number of unknowns.
func (s *System) Cols() int { return s.a.Cols() }

// Matrix returns a copy of the coefficient matrix.
func (s *System) Matrix() *matrix.Dense { return s.a.CloneDense() }

// RHS returns a copy of the right-hand side.
func (s *System) RHS() []float64 {
	out := make([]float64, len(s.b))
	copy(out, s.b)

	return out
}

// Coefficient returns a[i,j]. Errors: ErrIndexOutOfRange.
func (s *System) Coefficient(i, j int) (float64, error) {
	return s.a.At(i, j)
}

// SetCoefficient stores a[i,j] = v. Errors: ErrIndexOutOfRange, matrix.ErrNaNInf.
func (s *System) SetCoefficient(i, j int, v float64) error {
	return s.a.Set(i, j, v)
}

// SetRHS stores b[i] = v. Errors: ErrIndexOutOfRange, matrix.ErrNaNInf.
func (s *System) SetRHS(i int, v float64) error {
	if i < 0 || i >= s.size {
		return fmt.Errorf("SetRHS(%d): %w", i, ErrIndexOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("SetRHS(%d): %w", i, matrix.ErrNaNInf)
	}
	s.b[i] = v

	return nil
}

// requireSquare guards every solver; op tags the returned error.
func (s *System) requireSquare(op string) error {
	if s == nil {
		return systemErrorf(op, ErrNilSystem)
	}
	if err := matrix.ValidateSquare(s.a); err != nil {
		return systemErrorf(op, err)
	}

	return nil
}

// Residual returns max_i |(A·x)_i - b_i|, the max-norm of A·x - b.
// Errors: ErrDimensionMismatch if len(x) != Cols().
// Complexity: O(r*c).
func (s *System) Residual(x []float64) (float64, error) {
	ax, err := matrix.MatVec(s.a, x)
	if err != nil {
		return 0, systemErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= s.b[i]
	}

	return matrix.MaxNorm(ax), nil
}

// String renders each row as its coefficients separated by spaces, then a
// tab and the RHS entry; one row per line.
func (s *System) String() string {
	var sb strings.Builder
	for i := 0; i < s.size; i++ {
		row, _ := s.a.RowView(i) // i < Rows() by construction
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\t')
		sb.WriteString(strconv.FormatFloat(s.b[i], 'g', -1, 64))
		sb.WriteByte('\n')
	}

	return sb.String()
}
