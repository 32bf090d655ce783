// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for the solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options travel with a System, so Clone and every solver see the same policy.
package linsys

import (
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance under which a pivot, a diagonal
	// entry or a recurrence denominator counts as zero.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultMaxIterations caps SolveByIteration. A contracting iteration on
	// well-scaled data converges in far fewer steps; hitting the cap means the
	// spectral radius of C is (close to) >= 1.
	DefaultMaxIterations = 10000

	// DefaultPartialPivoting keeps the classic behavior: pivot only when the
	// natural diagonal entry is numerically zero.
	DefaultPartialPivoting = false
)

// Panic messages (programmer errors).
const (
	panicEpsilonInvalid = "linsys: WithEpsilon requires a finite eps >= 0"
	panicMaxIterInvalid = "linsys: WithMaxIterations requires n > 0"
)

// Option mutates Options during construction.
type Option func(*Options)

// Options holds solver policy. Fields are unexported; use WithX constructors.
type Options struct {
	eps         float64 // >= 0; DefaultEpsilon
	maxIter     int     // > 0; DefaultMaxIterations
	alwaysPivot bool    // DefaultPartialPivoting
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:         DefaultEpsilon,
		maxIter:     DefaultMaxIterations,
		alwaysPivot: DefaultPartialPivoting,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the zero tolerance used for pivots, diagonals and denominators.
// eps = 0 admits subnormal pivots; elimination still reports ErrSingular for
// one whose reciprocal overflows.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the iteration cap of SolveByIteration.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithPartialPivoting makes elimination pick the largest-magnitude pivot in
// every column, not only when the diagonal entry is zero. This bounds the
// elimination multipliers by 1 and is the safer choice for poorly scaled data.
func WithPartialPivoting() Option {
	return func(o *Options) { o.alwaysPivot = true }
}
