// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Mixture is a weighted OR-combination of distributions over the same
// variable. Children are held by reference and may be shared with the
// caller or with other composites; Copy deep-copies them.
//
// Mixture cannot be fitted: there is no closed-form estimator, and an
// EM fit is deliberately not supplied, so Fit and Commit return
// ErrNotFittable. Children can still be trained individually.
type Mixture[V any] struct {
	// Src is the source of randomness for choosing a child in
	// Rand. nil means the global source.
	Src rand.Source

	frozen
	children []Distribution[V]
	weights  []float64 // normalized to sum 1
}

// NewMixture combines children with the given weights, which must be
// non-negative with a positive sum and are normalized to sum 1. A nil
// weights slice means equal weighting.
func NewMixture[V any](children []Distribution[V], weights []float64) (*Mixture[V], error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("dist: mixture needs at least one component")
	}
	ws := make([]float64, len(children))
	if weights == nil {
		for i := range ws {
			ws[i] = 1 / float64(len(children))
		}
	} else {
		if len(weights) != len(children) {
			return nil, fmt.Errorf("dist: %d components but %d weights", len(children), len(weights))
		}
		for _, w := range weights {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("dist: invalid mixture weight %v", w)
			}
		}
		sum := floats.Sum(weights)
		if sum <= 0 {
			return nil, fmt.Errorf("dist: mixture weights are not normalizable")
		}
		copy(ws, weights)
		floats.Scale(1/sum, ws)
	}
	return &Mixture[V]{
		children: append([]Distribution[V](nil), children...),
		weights:  ws,
	}, nil
}

func (m *Mixture[V]) String() string {
	return fmt.Sprintf("Mixture(%d components)", len(m.children))
}

// Children returns the component distributions. The slice is shared
// with the mixture.
func (m *Mixture[V]) Children() []Distribution[V] {
	return m.children
}

// Weights returns a copy of the normalized component weights.
func (m *Mixture[V]) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

// LogProb returns log Σᵢ wᵢ·exp(childᵢ.LogProb(x)), evaluated by
// log-sum-exp.
func (m *Mixture[V]) LogProb(x V) float64 {
	terms := make([]float64, len(m.children))
	for i, c := range m.children {
		terms[i] = math.Log(m.weights[i]) + c.LogProb(x)
	}
	return logSumExp(terms)
}

// Rand picks a child by weight with one uniform draw, then delegates.
func (m *Mixture[V]) Rand() V {
	u := uniform01(m.Src)
	var acc float64
	for i, w := range m.weights {
		acc += w
		if u < acc {
			return m.children[i].Rand()
		}
	}
	return m.children[len(m.children)-1].Rand()
}

func (m *Mixture[V]) Fit(xs []V, weights []float64, inertia float64) error {
	if m.Frozen() {
		return nil
	}
	return ErrNotFittable
}

func (m *Mixture[V]) Summarize(xs []V, weights []float64) {}

func (m *Mixture[V]) Commit(inertia float64) error {
	if m.Frozen() {
		return nil
	}
	return ErrNotFittable
}

func (m *Mixture[V]) Copy() Distribution[V] {
	cs := make([]Distribution[V], len(m.children))
	for i, c := range m.children {
		cs[i] = c.Copy()
	}
	c := *m
	c.children = cs
	c.weights = append([]float64(nil), m.weights...)
	return &c
}
