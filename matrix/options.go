// SPDX-License-Identifier: MIT
// Package matrix: functional options for numeric comparison policy.
// The only tunable here is the absolute epsilon used by ApproxEq; the
// defaults come from the approx package so the whole module shares one
// notion of "close enough".

package matrix

import (
	"math"

	"github.com/JoeSharp/go-gaming/approx"
)

// panicEpsilonInvalid is the stable panic message for an invalid epsilon.
const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Options carries the numeric policy applied by comparisons.
type Options struct {
	eps float64 // absolute tolerance, >= 0; approx.DefaultEpsilon by default
}

// Option mutates Options; apply in order, last writer wins.
type Option func(*Options)

// WithEpsilon sets the absolute tolerance eps used by ApproxEq.
// Stage 1 (Validate): eps must be finite and ≥ 0, else panic with a stable
// message (programmer error — epsilon is fixed at the call site).
// Stage 2 (Finalize): return a setter that writes eps into Options.
// Larger eps relaxes equality; prefer small values for double-precision data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the baseline policy used when no Option is supplied.
func defaultOptions() Options {
	return Options{eps: approx.DefaultEpsilon}
}
