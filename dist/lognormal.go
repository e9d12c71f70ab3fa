// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormal is a distribution whose logarithm is Normal(Mu, Sigma).
// Observations must be positive; the density of x is the Gaussian
// density of log x with a -log x Jacobian term.
type LogNormal struct {
	Mu, Sigma float64

	// MinSigma is the smallest standard deviation a fit may
	// produce. The zero value means the 0.01 default.
	MinSigma float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	summaries []momentBatch
}

// NewLogNormal returns a log-normal distribution whose logarithm has
// mean mu and standard deviation sigma >= 0.
func NewLogNormal(mu, sigma float64) (*LogNormal, error) {
	if sigma < 0 || math.IsNaN(mu) || math.IsNaN(sigma) {
		return nil, fmt.Errorf("dist: invalid log-normal parameters (mu=%v, sigma=%v)", mu, sigma)
	}
	return &LogNormal{Mu: mu, Sigma: sigma, MinSigma: defaultMinSigma}, nil
}

func (l *LogNormal) String() string {
	return fmt.Sprintf("LogNormal(%v, %v)", l.Mu, l.Sigma)
}

func (l *LogNormal) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	lx := math.Log(x)
	if l.Sigma == 0 {
		if math.Abs(lx-l.Mu) < 1e-9 {
			return 0
		}
		return math.Inf(-1)
	}
	z := (lx - l.Mu) / l.Sigma
	return logInvSqrt2Pi - math.Log(l.Sigma) - z*z/2 - lx
}

func (l *LogNormal) Rand() float64 {
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma, Src: l.Src}.Rand()
}

// Fit estimates Mu and Sigma as the Normal fit of log(xs). Items must
// be positive.
func (l *LogNormal) Fit(xs, weights []float64, inertia float64) error {
	if l.Frozen() {
		return nil
	}
	b := newMomentBatch(logsOf(xs), weights)
	if b.weight == 0 {
		return nil
	}
	l.apply(b, inertia)
	return nil
}

func (l *LogNormal) Summarize(xs, weights []float64) {
	if l.Frozen() {
		return
	}
	b := newMomentBatch(logsOf(xs), weights)
	if b.weight == 0 {
		return
	}
	l.summaries = append(l.summaries, b)
}

func (l *LogNormal) Commit(inertia float64) error {
	if l.Frozen() || len(l.summaries) == 0 {
		return nil
	}
	l.apply(mergeMoments(l.summaries), inertia)
	l.summaries = nil
	return nil
}

func (l *LogNormal) Copy() Distribution[float64] {
	c := *l
	c.summaries = append([]momentBatch(nil), l.summaries...)
	return &c
}

func (l *LogNormal) apply(b momentBatch, inertia float64) {
	sigma := math.Sqrt(b.variance)
	if min := l.minSigma(); sigma < min {
		sigma = min
	}
	l.Mu = blend(l.Mu, b.mean, inertia)
	l.Sigma = blend(l.Sigma, sigma, inertia)
}

func (l *LogNormal) minSigma() float64 {
	if l.MinSigma == 0 {
		return defaultMinSigma
	}
	return l.MinSigma
}

func logsOf(xs []float64) []float64 {
	ls := make([]float64, len(xs))
	for i, x := range xs {
		ls[i] = math.Log(x)
	}
	return ls
}
