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

// Exponential is an exponential distribution with rate parameter Rate.
type Exponential struct {
	Rate float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	sumW, sumWX float64
}

// NewExponential returns an exponential distribution with the given
// rate > 0.
func NewExponential(rate float64) (*Exponential, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("dist: invalid exponential rate %v", rate)
	}
	return &Exponential{Rate: rate}, nil
}

func (e *Exponential) String() string {
	return fmt.Sprintf("Exponential(%v)", e.Rate)
}

func (e *Exponential) LogProb(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(e.Rate) - e.Rate*x
}

func (e *Exponential) Rand() float64 {
	return distuv.Exponential{Rate: e.Rate, Src: e.Src}.Rand()
}

// Fit estimates Rate as the reciprocal of the weighted mean.
func (e *Exponential) Fit(xs, weights []float64, inertia float64) error {
	if e.Frozen() {
		return nil
	}
	b := newMomentBatch(xs, weights)
	if b.weight == 0 {
		return nil
	}
	e.apply(b.mean, inertia)
	return nil
}

func (e *Exponential) Summarize(xs, weights []float64) {
	if e.Frozen() {
		return
	}
	b := newMomentBatch(xs, weights)
	e.sumW += b.weight
	e.sumWX += b.weight * b.mean
}

func (e *Exponential) Commit(inertia float64) error {
	if e.Frozen() || e.sumW == 0 {
		return nil
	}
	e.apply(e.sumWX/e.sumW, inertia)
	e.sumW, e.sumWX = 0, 0
	return nil
}

func (e *Exponential) Copy() Distribution[float64] {
	c := *e
	return &c
}

func (e *Exponential) apply(mean, inertia float64) {
	e.Rate = blend(e.Rate, 1/mean, inertia)
}
