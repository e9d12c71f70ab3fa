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

// Uniform is a continuous uniform distribution over [Min, Max].
type Uniform struct {
	Min, Max float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	sumLo, sumHi float64
	summarized   bool
}

// NewUniform returns a uniform distribution over [min, max]. The
// bounds must be finite and min < max. Fitting degenerate data may
// still legally collapse the bounds to a single point, which LogProb
// treats as a point mass.
func NewUniform(min, max float64) (*Uniform, error) {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("dist: invalid uniform bounds [%v, %v]", min, max)
	}
	return &Uniform{Min: min, Max: max}, nil
}

func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform(%v, %v)", u.Min, u.Max)
}

func (u *Uniform) LogProb(x float64) float64 {
	if u.Min == u.Max {
		// Point mass.
		if x == u.Min {
			return 0
		}
		return math.Inf(-1)
	}
	if x < u.Min || x > u.Max {
		return math.Inf(-1)
	}
	return -math.Log(u.Max - u.Min)
}

func (u *Uniform) Rand() float64 {
	return distuv.Uniform{Min: u.Min, Max: u.Max, Src: u.Src}.Rand()
}

func (u *Uniform) Fit(xs, weights []float64, inertia float64) error {
	if u.Frozen() {
		return nil
	}
	lo, hi, ok := boundsOf(xs, weights)
	if !ok {
		return nil
	}
	u.apply(lo, hi, inertia)
	return nil
}

func (u *Uniform) Summarize(xs, weights []float64) {
	if u.Frozen() {
		return
	}
	lo, hi, ok := boundsOf(xs, weights)
	if !ok {
		return
	}
	if !u.summarized {
		u.sumLo, u.sumHi = lo, hi
		u.summarized = true
		return
	}
	u.sumLo = math.Min(u.sumLo, lo)
	u.sumHi = math.Max(u.sumHi, hi)
}

func (u *Uniform) Commit(inertia float64) error {
	if u.Frozen() || !u.summarized {
		return nil
	}
	u.apply(u.sumLo, u.sumHi, inertia)
	u.sumLo, u.sumHi, u.summarized = 0, 0, false
	return nil
}

func (u *Uniform) Copy() Distribution[float64] {
	c := *u
	return &c
}

func (u *Uniform) apply(lo, hi, inertia float64) {
	u.Min = blend(u.Min, lo, inertia)
	u.Max = blend(u.Max, hi, inertia)
}

// boundsOf is the uniform distribution's sufficient statistic: the min
// and max of the weight-positive items. ok is false when nothing
// remains after zero-weight exclusion.
func boundsOf(xs, weights []float64) (lo, hi float64, ok bool) {
	checkWeights(len(xs), weights)
	for i, x := range xs {
		if weightAt(weights, i) == 0 {
			continue
		}
		if !ok {
			lo, hi, ok = x, x, true
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return
}
