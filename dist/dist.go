// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "errors"

// A Distribution is a statistical model of a single variable.
//
// V is the observation type: float64 for the scalar and kernel-density
// distributions, the category type for Discrete, and []float64 for
// Multivariate.
//
// Distributions support two training paths. Fit re-estimates the
// parameters from an in-memory dataset in one call. Summarize/Commit is
// the incremental form: Summarize folds each batch into running
// sufficient statistics, and Commit turns the accumulated statistics
// into the same parameters Fit would have produced over the
// concatenated batches.
//
// Distributions are not safe for concurrent mutation. Callers that
// train from multiple goroutines must accumulate into separate
// instances, or serialize Fit/Summarize/Commit/Freeze/Thaw per
// instance.
type Distribution[V any] interface {
	// LogProb returns the log of the probability density or mass of
	// x under the current parameters. It returns math.Inf(-1) for x
	// outside the distribution's support, never NaN, and never
	// mutates the distribution.
	LogProb(x V) float64

	// Rand draws one observation from the current parameters.
	Rand() V

	// Fit replaces the parameters with the maximum-likelihood
	// estimate for xs, blended with the old parameters:
	//
	//	new = inertia*old + (1-inertia)*mle(xs, weights)
	//
	// A nil weights slice means uniform weights. Items with zero
	// weight are excluded from the fit entirely; if nothing remains,
	// Fit is a no-op. Fit panics if len(weights) != len(xs) or if
	// any weight is negative. Frozen distributions ignore Fit.
	Fit(xs []V, weights []float64, inertia float64) error

	// Summarize folds a batch of observations into the
	// distribution's running sufficient statistics without touching
	// the parameters. Repeated calls accumulate. The weights
	// contract is the same as Fit's. Frozen distributions ignore
	// Summarize.
	Summarize(xs []V, weights []float64)

	// Commit recomputes the parameters from the accumulated
	// summaries using the same inertia blend as Fit, then clears the
	// summaries. It is a no-op when frozen or when nothing has been
	// summarized, and on error it leaves both parameters and
	// summaries intact.
	Commit(inertia float64) error

	// Copy returns a new distribution with the same parameters,
	// sharing no mutable state with the original.
	Copy() Distribution[V]

	// Freeze makes Fit, Summarize, and Commit no-ops until Thaw.
	Freeze()
	Thaw()
	Frozen() bool
}

// ErrNotFittable is returned by Fit and Commit on distributions that do
// not implement parameter estimation (Mixture, Lambda, and a thawed
// ExtremeValue).
var ErrNotFittable = errors.New("dist: distribution does not support fitting")

// frozen implements the Freeze/Thaw/Frozen part of Distribution and is
// embedded by every concrete variant.
type frozen bool

func (f *frozen) Freeze()      { *f = true }
func (f *frozen) Thaw()        { *f = false }
func (f *frozen) Frozen() bool { return bool(*f) }

var (
	_ Distribution[float64]   = (*Uniform)(nil)
	_ Distribution[float64]   = (*Normal)(nil)
	_ Distribution[float64]   = (*LogNormal)(nil)
	_ Distribution[float64]   = (*Exponential)(nil)
	_ Distribution[float64]   = (*ExtremeValue)(nil)
	_ Distribution[float64]   = (*Bernoulli)(nil)
	_ Distribution[float64]   = (*Poisson)(nil)
	_ Distribution[float64]   = (*KernelDensity)(nil)
	_ Distribution[string]    = (*Discrete[string])(nil)
	_ Distribution[float64]   = (*Lambda[float64])(nil)
	_ Distribution[float64]   = (*Mixture[float64])(nil)
	_ Distribution[[]float64] = (*Multivariate)(nil)
)
