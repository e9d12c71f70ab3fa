// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "fmt"

// Lambda wraps a caller-supplied log-probability function as a
// Distribution. It cannot be fitted: Fit and Commit return
// ErrNotFittable and Summarize accumulates nothing.
type Lambda[V any] struct {
	// LogProbFunc computes the log-probability of an observation.
	LogProbFunc func(V) float64

	// RandFunc generates samples. Rand panics when it is nil.
	RandFunc func() V

	frozen
}

// NewLambda wraps logProb as an unfittable distribution.
func NewLambda[V any](logProb func(V) float64) (*Lambda[V], error) {
	if logProb == nil {
		return nil, fmt.Errorf("dist: lambda distribution needs a log-probability function")
	}
	return &Lambda[V]{LogProbFunc: logProb}, nil
}

func (l *Lambda[V]) String() string {
	return "Lambda"
}

func (l *Lambda[V]) LogProb(x V) float64 {
	return l.LogProbFunc(x)
}

func (l *Lambda[V]) Rand() V {
	if l.RandFunc == nil {
		panic("dist: lambda distribution has no sampler")
	}
	return l.RandFunc()
}

func (l *Lambda[V]) Fit(xs []V, weights []float64, inertia float64) error {
	if l.Frozen() {
		return nil
	}
	return ErrNotFittable
}

func (l *Lambda[V]) Summarize(xs []V, weights []float64) {}

func (l *Lambda[V]) Commit(inertia float64) error {
	if l.Frozen() {
		return nil
	}
	return ErrNotFittable
}

func (l *Lambda[V]) Copy() Distribution[V] {
	c := *l
	return &c
}
