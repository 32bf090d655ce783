// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults and tolerance helpers.
// This file defines:
//   - documented defaults (constants),
//   - the zero-tolerance predicate shared by pivot selection and the solvers,
//   - the NoPivot sentinel returned by SelectPivotRow.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - One source of truth for "numerically zero" across matrix and linsys.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance under which a value counts as zero.
	// 1e-9 sits well above float64 round-off for well-scaled data (≈1e-16 relative)
	// and well below any meaningful pivot of such data.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// NoPivot is returned by SelectPivotRow when every candidate is numerically zero.
const NoPivot = -1

// Panic messages for invalid tolerances (programmer error).
const panicEpsilonInvalid = "matrix: epsilon must be finite and >= 0"

// IsZero reports whether |v| <= eps.
// eps is expected non-negative; a negative eps makes every value non-zero.
// Complexity: O(1).
func IsZero(v, eps float64) bool {
	return math.Abs(v) <= eps
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// mustEpsilon panics on a nonsensical tolerance.
// Tolerances are programmer-supplied constants, so a bad one is a bug, not input.
func mustEpsilon(eps float64) {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
}
