// SPDX-License-Identifier: MIT

// Package series approximates sin(x) with partial sums of its Maclaurin series.
//
// The series x - x³/3! + x⁵/5! - ... is summed term by term; each term is
// derived from the previous one as t_{k+1} = -t_k·x²/((2k)(2k+1)), so no
// factorial or power is ever formed explicitly. Summation stops once the
// last added term is smaller than eps in magnitude.
package series

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxTerms bounds a single summation. |x| around 700 already needs
// roughly a thousand terms; past that the float64 partial sums are noise anyway.
const DefaultMaxTerms = 10000

var (
	// ErrInvalidTolerance is returned for an eps that is not finite and > 0.
	ErrInvalidTolerance = errors.New("series: tolerance must be finite and > 0")

	// ErrNonFinite is returned for a NaN or ±Inf argument.
	ErrNonFinite = errors.New("series: argument is NaN or Inf")

	// ErrTooManyTerms is returned when DefaultMaxTerms terms were not enough.
	ErrTooManyTerms = errors.New("series: term limit reached")
)

// Approximation is one evaluated partial sum.
type Approximation struct {
	X     float64 // argument
	Sum   float64 // partial sum S(x)
	Terms int     // number of summed terms, including the first (x itself)
	Delta float64 // S(x) - math.Sin(x)
}

// Sine sums the Maclaurin series of sin at x until the last added term has
// |t| < eps.
// Errors: ErrInvalidTolerance, ErrNonFinite, ErrTooManyTerms.
// Complexity: O(terms).
func Sine(x, eps float64) (Approximation, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return Approximation{}, fmt.Errorf("Sine(eps=%g): %w", eps, ErrInvalidTolerance)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Approximation{}, fmt.Errorf("Sine(%g): %w", x, ErrNonFinite)
	}

	term, sum := x, x
	x2 := x * x
	terms := 1
	for k := 1.0; math.Abs(term) >= eps; k += 2 {
		if terms >= DefaultMaxTerms {
			return Approximation{}, fmt.Errorf("Sine(%g): %d terms: %w", x, terms, ErrTooManyTerms)
		}
		term = -term * x2 / ((k + 1) * (k + 2))
		sum += term
		terms++
	}

	return Approximation{X: x, Sum: sum, Terms: terms, Delta: sum - math.Sin(x)}, nil
}

// SineTable evaluates Sine at x = v·i for every integer i in [-radius, radius].
// Errors: those of Sine; a negative radius yields an empty table.
// Complexity: O(Σ terms).
func SineTable(v float64, radius int, eps float64) ([]Approximation, error) {
	if radius < 0 {
		return nil, nil
	}
	out := make([]Approximation, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		a, err := Sine(v*float64(i), eps)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
