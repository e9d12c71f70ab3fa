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

// Poisson is a Poisson distribution over non-negative integer counts
// with mean Lambda.
type Poisson struct {
	Lambda float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	sumW, sumWX float64
}

// NewPoisson returns a Poisson distribution with mean lambda > 0.
func NewPoisson(lambda float64) (*Poisson, error) {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("dist: invalid Poisson mean %v", lambda)
	}
	return &Poisson{Lambda: lambda}, nil
}

func (p *Poisson) String() string {
	return fmt.Sprintf("Poisson(%v)", p.Lambda)
}

func (p *Poisson) LogProb(x float64) float64 {
	if x < 0 || x != math.Floor(x) {
		return math.Inf(-1)
	}
	// log PMF in the log domain: k·log λ − λ − log k!.
	lg, _ := math.Lgamma(x + 1)
	return x*math.Log(p.Lambda) - p.Lambda - lg
}

func (p *Poisson) Rand() float64 {
	return distuv.Poisson{Lambda: p.Lambda, Src: p.Src}.Rand()
}

// Fit estimates Lambda as the weighted mean of the counts.
func (p *Poisson) Fit(xs, weights []float64, inertia float64) error {
	if p.Frozen() {
		return nil
	}
	m := newMomentBatch(xs, weights)
	if m.weight == 0 {
		return nil
	}
	p.Lambda = blend(p.Lambda, m.mean, inertia)
	return nil
}

func (p *Poisson) Summarize(xs, weights []float64) {
	if p.Frozen() {
		return
	}
	m := newMomentBatch(xs, weights)
	p.sumW += m.weight
	p.sumWX += m.weight * m.mean
}

func (p *Poisson) Commit(inertia float64) error {
	if p.Frozen() || p.sumW == 0 {
		return nil
	}
	p.Lambda = blend(p.Lambda, p.sumWX/p.sumW, inertia)
	p.sumW, p.sumWX = 0, 0
	return nil
}

func (p *Poisson) Copy() Distribution[float64] {
	c := *p
	return &c
}
