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

// ExtremeValue is a generalized extreme-value distribution with
// location Mu, scale Sigma > 0, and shape Shape. Shape == 0 is the
// Gumbel limit.
//
// No estimator is implemented: ExtremeValue is constructed frozen, and
// Fit and Commit on a thawed instance return ErrNotFittable.
type ExtremeValue struct {
	Mu, Sigma, Shape float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
}

// NewExtremeValue returns a frozen generalized extreme-value
// distribution.
func NewExtremeValue(mu, sigma, shape float64) (*ExtremeValue, error) {
	if !(sigma > 0) || math.IsNaN(mu) || math.IsNaN(shape) {
		return nil, fmt.Errorf("dist: invalid extreme-value parameters (mu=%v, sigma=%v, shape=%v)", mu, sigma, shape)
	}
	ev := &ExtremeValue{Mu: mu, Sigma: sigma, Shape: shape}
	ev.Freeze()
	return ev, nil
}

func (ev *ExtremeValue) String() string {
	return fmt.Sprintf("ExtremeValue(%v, %v, %v)", ev.Mu, ev.Sigma, ev.Shape)
}

func (ev *ExtremeValue) LogProb(x float64) float64 {
	z := (x - ev.Mu) / ev.Sigma
	if ev.Shape == 0 {
		return -math.Log(ev.Sigma) - z - math.Exp(-z)
	}
	t := 1 + ev.Shape*z
	if t <= 0 {
		return math.Inf(-1)
	}
	return -math.Log(ev.Sigma) - (1+1/ev.Shape)*math.Log(t) - math.Pow(t, -1/ev.Shape)
}

func (ev *ExtremeValue) Rand() float64 {
	if ev.Shape == 0 {
		return distuv.GumbelRight{Mu: ev.Mu, Beta: ev.Sigma, Src: ev.Src}.Rand()
	}
	// Inverse CDF: F(x) = exp(-(1+ξz)^(-1/ξ)).
	u := uniform01(ev.Src)
	return ev.Mu + ev.Sigma*(math.Pow(-math.Log(u), -ev.Shape)-1)/ev.Shape
}

func (ev *ExtremeValue) Fit(xs, weights []float64, inertia float64) error {
	if ev.Frozen() {
		return nil
	}
	return ErrNotFittable
}

func (ev *ExtremeValue) Summarize(xs, weights []float64) {}

func (ev *ExtremeValue) Commit(inertia float64) error {
	if ev.Frozen() {
		return nil
	}
	return ErrNotFittable
}

func (ev *ExtremeValue) Copy() Distribution[float64] {
	c := *ev
	return &c
}
