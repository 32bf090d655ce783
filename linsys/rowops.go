// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"
)

// Row operations on the augmented matrix [A | b]. Each one applies the same
// transform to the coefficient row and to the RHS entry, so the two never
// drift apart. A failed operation leaves both untouched.

// SwapRows exchanges equations i and j.
// Errors: ErrIndexOutOfRange.
func (s *System) SwapRows(i, j int) error {
	if err := s.a.SwapRows(i, j); err != nil {
		return systemErrorf(opSwapRows, err)
	}
	s.b[i], s.b[j] = s.b[j], s.b[i]

	return nil
}

// ScaleRow multiplies equation i by k.
// Errors: ErrIndexOutOfRange, matrix.ErrNaNInf for a non-finite k.
func (s *System) ScaleRow(i int, k float64) error {
	if err := s.a.ScaleRow(i, k); err != nil {
		return systemErrorf(opScaleRow, err)
	}
	s.b[i] *= k

	return nil
}

// AddScaledRow adds k times equation source to equation target.
// Errors: ErrIndexOutOfRange, matrix.ErrNaNInf for a non-finite k.
func (s *System) AddScaledRow(target, source int, k float64) error {
	if err := s.a.AddScaledRow(target, source, k); err != nil {
		return systemErrorf(opAddScaledRow, err)
	}
	s.b[target] += k * s.b[source]

	return nil
}

// mustRow returns a no-copy view of row i for solver loops whose indices are
// already bounded by Size(). An error here is an internal invariant breach.
func (s *System) mustRow(i int) []float64 {
	row, err := s.a.RowView(i)
	if err != nil {
		panic(fmt.Sprintf("linsys: row %d outside %d×%d system: %v", i, s.size, s.a.Cols(), err))
	}

	return row
}

// rowFinite reports whether equation i (coefficients and RHS) holds only finite values.
func (s *System) rowFinite(i int) bool {
	if math.IsNaN(s.b[i]) || math.IsInf(s.b[i], 0) {
		return false
	}
	for _, v := range s.mustRow(i) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
