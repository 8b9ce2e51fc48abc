// SPDX-License-Identifier: MIT

// Package markov: functional configuration for numeric tolerances.
//
// Defaults reproduce the reference behaviour: column sums are compared
// exactly and eigenvalues match 1 under numpy.isclose's default tolerances.
// Constructors panic on nonsensical values (programmer error), as the
// matrix package options do.
package markov

import "math"

const (
	// DefaultColumnTolerance is the allowed |Σ column - 1|. Zero means exact.
	DefaultColumnTolerance = 0.0

	// DefaultRelTolerance is the relative part of the eigenvalue-1 test.
	DefaultRelTolerance = 1e-5

	// DefaultAbsTolerance is the absolute part of the eigenvalue-1 test.
	DefaultAbsTolerance = 1e-8
)

// Panic messages (stable, grep-able).
const (
	panicColumnTolerance = "markov: WithColumnTolerance: eps must be finite, non-negative"
	panicEigenTolerance  = "markov: WithEigenTolerance: rtol and atol must be finite, non-negative"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	colTol float64
	rtol   float64
	atol   float64
}

// WithColumnTolerance lets column sums deviate from 1 by at most eps.
// Panics when eps is NaN, ±Inf or negative.
func WithColumnTolerance(eps float64) Option {
	if !validTolerance(eps) {
		panic(panicColumnTolerance)
	}

	return func(o *Options) { o.colTol = eps }
}

// WithEigenTolerance sets the isclose tolerances used to recognise
// eigenvalue 1: |λ-1| <= atol + rtol.
// Panics when either value is NaN, ±Inf or negative.
func WithEigenTolerance(rtol, atol float64) Option {
	if !validTolerance(rtol) || !validTolerance(atol) {
		panic(panicEigenTolerance)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// ColumnTolerance reports the resolved column-sum tolerance.
func (o Options) ColumnTolerance() float64 { return o.colTol }

// EigenTolerance reports the resolved (rtol, atol) pair.
func (o Options) EigenTolerance() (rtol, atol float64) { return o.rtol, o.atol }

func validTolerance(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func gatherOptions(user ...Option) Options {
	o := Options{
		colTol: DefaultColumnTolerance,
		rtol:   DefaultRelTolerance,
		atol:   DefaultAbsTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
