package indirect

import (
	"fmt"
	"io"
	"math"
)

// Defaults mirror the regularization and tolerance schedule the solver was
// tuned with.
const (
	// DefaultRho is the regularization weight ρ in ρI + AᵀA.
	DefaultRho = 1e-3

	// DefaultCGRate is the exponent of the tolerance schedule
	// tol ~ 1/iter^rate.
	DefaultCGRate = 2.0

	// TolFloor is the tightest CG tolerance ever requested; the schedule
	// clamps here from below.
	TolFloor = 1e-7
)

// Option configures a Solver via functional arguments to New. An invalid
// value (say, a negative ρ) is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a Solver.
type Options struct {
	// Rho is the regularization weight ρ > 0 added to the diagonal.
	Rho float64

	// CGRate is the tolerance-schedule exponent: per-call tolerance decays
	// like 1/(iter+1)^CGRate.
	CGRate float64

	// MaxIterations bounds CG per solve. 0 means the system dimension n.
	MaxIterations int

	// Workers splits the sparse products across this many goroutines.
	// 0 or 1 runs serially.
	Workers int

	// Verbose, when non-nil, receives one diagnostic line per solve.
	Verbose io.Writer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the tuned defaults: ρ = 1e-3,
// rate = 2.0, CG budget = dimension, serial products, silent.
func DefaultOptions() Options {
	return Options{
		Rho:           DefaultRho,
		CGRate:        DefaultCGRate,
		MaxIterations: 0,
		Workers:       0,
		Verbose:       nil,
		err:           nil,
	}
}

// WithRho sets the regularization weight ρ. Must be finite and > 0.
func WithRho(rho float64) Option {
	return func(o *Options) {
		if rho <= 0 || math.IsInf(rho, 1) || math.IsNaN(rho) {
			o.err = fmt.Errorf("%w: Rho must be positive and finite (%v)", ErrOptionViolation, rho)
			return
		}
		o.Rho = rho
	}
}

// WithCGRate sets the tolerance-schedule exponent. Must be finite and > 0.
func WithCGRate(rate float64) Option {
	return func(o *Options) {
		if rate <= 0 || math.IsInf(rate, 1) || math.IsNaN(rate) {
			o.err = fmt.Errorf("%w: CGRate must be positive and finite (%v)", ErrOptionViolation, rate)
			return
		}
		o.CGRate = rate
	}
}

// WithMaxIterations bounds the CG iterations of each solve.
//
//	k > 0: at most k iterations
//	k == 0: explicit default, the system dimension n
//	k < 0: invalid, surfaced by New as ErrOptionViolation
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithWorkers splits the two sparse products of each CG iteration across
// k goroutines. 0 and 1 both mean serial; k < 0 is an invalid option.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithVerbose directs one diagnostic line per solve (tolerance, iterations,
// final residual) to w. A nil writer keeps the solver silent.
func WithVerbose(w io.Writer) Option {
	return func(o *Options) {
		o.Verbose = w
	}
}
