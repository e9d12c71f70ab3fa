// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// Multivariate is an AND-combination of independent distributions, one
// per component of a fixed-length observation tuple. Children are held
// by reference; Copy deep-copies them.
//
// Unlike Mixture's weights, the per-dimension weights are relative
// scaling factors on each component's log-probability and are NOT
// normalized. They default to 1.
type Multivariate struct {
	frozen
	children []Distribution[float64]
	weights  []float64
}

// NewMultivariate combines one child distribution per tuple component.
// A nil weights slice means weight 1 for every dimension.
func NewMultivariate(children []Distribution[float64], weights []float64) (*Multivariate, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("dist: multivariate needs at least one component")
	}
	ws := make([]float64, len(children))
	if weights == nil {
		for i := range ws {
			ws[i] = 1
		}
	} else {
		if len(weights) != len(children) {
			return nil, fmt.Errorf("dist: %d components but %d weights", len(children), len(weights))
		}
		for _, w := range weights {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("dist: invalid dimension weight %v", w)
			}
		}
		copy(ws, weights)
	}
	return &Multivariate{
		children: append([]Distribution[float64](nil), children...),
		weights:  ws,
	}, nil
}

func (m *Multivariate) String() string {
	return fmt.Sprintf("Multivariate(%d dimensions)", len(m.children))
}

// Children returns the component distributions. The slice is shared
// with the multivariate.
func (m *Multivariate) Children() []Distribution[float64] {
	return m.children
}

// Weights returns a copy of the per-dimension weights.
func (m *Multivariate) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

// LogProb returns the weighted sum of each child's log-probability on
// its tuple component. It panics if len(x) differs from the component
// count. Zero-weight dimensions contribute nothing, even when the
// component is outside the child's support.
func (m *Multivariate) LogProb(x []float64) float64 {
	if len(x) != len(m.children) {
		panic("dist: observation length != component count")
	}
	var sum float64
	for i, c := range m.children {
		if m.weights[i] == 0 {
			continue
		}
		sum += m.weights[i] * c.LogProb(x[i])
	}
	return sum
}

// Rand returns a tuple of independent child draws.
func (m *Multivariate) Rand() []float64 {
	x := make([]float64, len(m.children))
	for i, c := range m.children {
		x[i] = c.Rand()
	}
	return x
}

// Fit slices the tuples into per-dimension columns and fits each child
// on its column independently, with the shared row weights. The fit is
// all-or-nothing: if any component cannot be fitted, no component is
// updated.
func (m *Multivariate) Fit(xs [][]float64, weights []float64, inertia float64) error {
	if m.Frozen() {
		return nil
	}
	checkWeights(len(xs), weights)
	cols := m.columns(xs)
	// Preflight on copies so an unfittable component surfaces before
	// any real child has been mutated.
	for i, c := range m.children {
		if err := c.Copy().Fit(cols[i], weights, inertia); err != nil {
			return fmt.Errorf("dist: component %d: %w", i, err)
		}
	}
	for i, c := range m.children {
		if err := c.Fit(cols[i], weights, inertia); err != nil {
			return fmt.Errorf("dist: component %d: %w", i, err)
		}
	}
	return nil
}

func (m *Multivariate) Summarize(xs [][]float64, weights []float64) {
	if m.Frozen() {
		return
	}
	checkWeights(len(xs), weights)
	cols := m.columns(xs)
	for i, c := range m.children {
		c.Summarize(cols[i], weights)
	}
}

// Commit commits each child's accumulated summaries. Like Fit it is
// all-or-nothing: if any component cannot commit, every component
// keeps both its parameters and its summaries.
func (m *Multivariate) Commit(inertia float64) error {
	if m.Frozen() {
		return nil
	}
	// Copies carry the accumulated summaries, so committing them
	// probes for errors without clearing any real child's state.
	for i, c := range m.children {
		if err := c.Copy().Commit(inertia); err != nil {
			return fmt.Errorf("dist: component %d: %w", i, err)
		}
	}
	for i, c := range m.children {
		if err := c.Commit(inertia); err != nil {
			return fmt.Errorf("dist: component %d: %w", i, err)
		}
	}
	return nil
}

func (m *Multivariate) Copy() Distribution[[]float64] {
	cs := make([]Distribution[float64], len(m.children))
	for i, c := range m.children {
		cs[i] = c.Copy()
	}
	c := *m
	c.children = cs
	c.weights = append([]float64(nil), m.weights...)
	return &c
}

// columns transposes row tuples into one column per dimension. It
// panics if any tuple's length differs from the component count.
func (m *Multivariate) columns(xs [][]float64) [][]float64 {
	cols := make([][]float64, len(m.children))
	for i := range cols {
		cols[i] = make([]float64, len(xs))
	}
	for j, x := range xs {
		if len(x) != len(m.children) {
			panic("dist: observation length != component count")
		}
		for i, v := range x {
			cols[i][j] = v
		}
	}
	return cols
}
