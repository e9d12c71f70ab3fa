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

// Bernoulli is a distribution over {0, 1} with success probability P.
type Bernoulli struct {
	P float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	sumW, sumWX float64
}

// NewBernoulli returns a Bernoulli distribution with success
// probability 0 <= p <= 1.
func NewBernoulli(p float64) (*Bernoulli, error) {
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("dist: invalid Bernoulli probability %v", p)
	}
	return &Bernoulli{P: p}, nil
}

func (b *Bernoulli) String() string {
	return fmt.Sprintf("Bernoulli(%v)", b.P)
}

func (b *Bernoulli) LogProb(x float64) float64 {
	switch x {
	case 1:
		return math.Log(b.P)
	case 0:
		return math.Log(1 - b.P)
	}
	return math.Inf(-1)
}

func (b *Bernoulli) Rand() float64 {
	return distuv.Bernoulli{P: b.P, Src: b.Src}.Rand()
}

// Fit estimates P as the weighted mean of the 0/1 observations.
func (b *Bernoulli) Fit(xs, weights []float64, inertia float64) error {
	if b.Frozen() {
		return nil
	}
	m := newMomentBatch(xs, weights)
	if m.weight == 0 {
		return nil
	}
	b.P = blend(b.P, m.mean, inertia)
	return nil
}

func (b *Bernoulli) Summarize(xs, weights []float64) {
	if b.Frozen() {
		return
	}
	m := newMomentBatch(xs, weights)
	b.sumW += m.weight
	b.sumWX += m.weight * m.mean
}

func (b *Bernoulli) Commit(inertia float64) error {
	if b.Frozen() || b.sumW == 0 {
		return nil
	}
	b.P = blend(b.P, b.sumWX/b.sumW, inertia)
	b.sumW, b.sumWX = 0, 0
	return nil
}

func (b *Bernoulli) Copy() Distribution[float64] {
	c := *b
	return &c
}
