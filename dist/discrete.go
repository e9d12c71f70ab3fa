// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/rand"
)

// Discrete is a categorical distribution over keys of an ordered type
// K. Keys are ordered so that sampling consumes the uniform draw
// against a stable category sequence: a seeded Src reproduces the same
// draws.
type Discrete[K cmp.Ordered] struct {
	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	probs  map[K]float64
	keys   []K // sorted, parallel view of probs for deterministic scans
	counts map[K]float64
	total  float64
}

// NewDiscrete returns a categorical distribution with the given
// category probabilities, which must be non-negative and sum to 1
// within 1e-8.
func NewDiscrete[K cmp.Ordered](probs map[K]float64) (*Discrete[K], error) {
	if len(probs) == 0 {
		return nil, fmt.Errorf("dist: discrete distribution needs at least one category")
	}
	var sum float64
	for k, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return nil, fmt.Errorf("dist: invalid probability %v for category %v", p, k)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-8 {
		return nil, fmt.Errorf("dist: discrete probabilities sum to %v, not 1", sum)
	}
	d := &Discrete[K]{probs: make(map[K]float64, len(probs))}
	for k, p := range probs {
		d.probs[k] = p
	}
	d.keys = sortedKeys(d.probs)
	return d, nil
}

func (d *Discrete[K]) String() string {
	return fmt.Sprintf("Discrete(%d categories)", len(d.probs))
}

// Prob returns the probability of category x (0 for unseen
// categories).
func (d *Discrete[K]) Prob(x K) float64 {
	return d.probs[x]
}

func (d *Discrete[K]) LogProb(x K) float64 {
	p, ok := d.probs[x]
	if !ok || p == 0 {
		return math.Inf(-1)
	}
	return math.Log(p)
}

func (d *Discrete[K]) Rand() K {
	u := uniform01(d.Src)
	var acc float64
	for _, k := range d.keys {
		acc += d.probs[k]
		if u < acc {
			return k
		}
	}
	// Rounding left acc fractionally below 1.
	return d.keys[len(d.keys)-1]
}

func (d *Discrete[K]) Fit(xs []K, weights []float64, inertia float64) error {
	if d.Frozen() {
		return nil
	}
	counts, total := countWeighted(xs, weights)
	if total == 0 {
		return nil
	}
	d.apply(counts, total, inertia)
	return nil
}

func (d *Discrete[K]) Summarize(xs []K, weights []float64) {
	if d.Frozen() {
		return
	}
	counts, total := countWeighted(xs, weights)
	if d.counts == nil {
		d.counts = counts
		d.total = total
		return
	}
	for k, c := range counts {
		d.counts[k] += c
	}
	d.total += total
}

func (d *Discrete[K]) Commit(inertia float64) error {
	if d.Frozen() || d.total == 0 {
		return nil
	}
	d.apply(d.counts, d.total, inertia)
	d.counts, d.total = nil, 0
	return nil
}

func (d *Discrete[K]) Copy() Distribution[K] {
	c := *d
	c.probs = make(map[K]float64, len(d.probs))
	for k, p := range d.probs {
		c.probs[k] = p
	}
	c.keys = append([]K(nil), d.keys...)
	if d.counts != nil {
		c.counts = make(map[K]float64, len(d.counts))
		for k, w := range d.counts {
			c.counts[k] = w
		}
	}
	return &c
}

// apply blends the normalized frequency counts into the probability
// map entrywise. Categories present in either the prior map or the
// counts participate; a category missing from one side blends against
// zero.
func (d *Discrete[K]) apply(counts map[K]float64, total, inertia float64) {
	probs := make(map[K]float64, len(counts))
	for k, c := range counts {
		probs[k] = blend(d.probs[k], c/total, inertia)
	}
	for k, p := range d.probs {
		if _, ok := counts[k]; !ok {
			probs[k] = blend(p, 0, inertia)
		}
	}
	d.probs = probs
	d.keys = sortedKeys(probs)
}

func sortedKeys[K cmp.Ordered](m map[K]float64) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// countWeighted reduces a batch to per-category weight sums, excluding
// zero-weight items.
func countWeighted[K comparable](xs []K, weights []float64) (map[K]float64, float64) {
	checkWeights(len(xs), weights)
	counts := make(map[K]float64)
	var total float64
	for i, x := range xs {
		w := weightAt(weights, i)
		if w == 0 {
			continue
		}
		counts[x] += w
		total += w
	}
	return counts, total
}
