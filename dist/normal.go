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

// log(1/sqrt(2π))
const logInvSqrt2Pi = -0.91893853320467274178032973640561763986139747363778341281715

// defaultMinSigma floors the standard deviation produced by fitting so
// that degenerate data (all items identical) still yields a
// well-defined density.
const defaultMinSigma = 0.01

// Normal is a normal (Gaussian) distribution with mean Mu and standard
// deviation Sigma.
type Normal struct {
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

// NewNormal returns a normal distribution with mean mu and standard
// deviation sigma >= 0. A zero sigma is a point mass at mu.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma < 0 || math.IsNaN(mu) || math.IsNaN(sigma) {
		return nil, fmt.Errorf("dist: invalid normal parameters (mu=%v, sigma=%v)", mu, sigma)
	}
	return &Normal{Mu: mu, Sigma: sigma, MinSigma: defaultMinSigma}, nil
}

func (n *Normal) String() string {
	return fmt.Sprintf("Normal(%v, %v)", n.Mu, n.Sigma)
}

func (n *Normal) LogProb(x float64) float64 {
	if n.Sigma == 0 {
		// Point mass at Mu, up to floating-point noise in x.
		if math.Abs(x-n.Mu) < 1e-9 {
			return 0
		}
		return math.Inf(-1)
	}
	z := (x - n.Mu) / n.Sigma
	return logInvSqrt2Pi - math.Log(n.Sigma) - z*z/2
}

func (n *Normal) Rand() float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: n.Src}.Rand()
}

func (n *Normal) Fit(xs, weights []float64, inertia float64) error {
	if n.Frozen() {
		return nil
	}
	b := newMomentBatch(xs, weights)
	if b.weight == 0 {
		return nil
	}
	n.apply(b, inertia)
	return nil
}

func (n *Normal) Summarize(xs, weights []float64) {
	if n.Frozen() {
		return
	}
	b := newMomentBatch(xs, weights)
	if b.weight == 0 {
		return
	}
	n.summaries = append(n.summaries, b)
}

func (n *Normal) Commit(inertia float64) error {
	if n.Frozen() || len(n.summaries) == 0 {
		return nil
	}
	n.apply(mergeMoments(n.summaries), inertia)
	n.summaries = nil
	return nil
}

func (n *Normal) Copy() Distribution[float64] {
	c := *n
	c.summaries = append([]momentBatch(nil), n.summaries...)
	return &c
}

func (n *Normal) apply(b momentBatch, inertia float64) {
	sigma := math.Sqrt(b.variance)
	if min := n.minSigma(); sigma < min {
		sigma = min
	}
	n.Mu = blend(n.Mu, b.mean, inertia)
	n.Sigma = blend(n.Sigma, sigma, inertia)
}

func (n *Normal) minSigma() float64 {
	if n.MinSigma == 0 {
		return defaultMinSigma
	}
	return n.MinSigma
}
