// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Kernel selects the kernel shape of a KernelDensity.
type Kernel int

const (
	// GaussianKernel weights each stored point by a normalized
	// Gaussian density with standard deviation equal to the
	// bandwidth.
	GaussianKernel Kernel = iota

	// UniformKernel contributes 1 for each stored point within one
	// bandwidth of the query and 0 otherwise.
	UniformKernel

	// TriangleKernel contributes max(0, bandwidth-|x-point|) for
	// each stored point.
	TriangleKernel
)

func (k Kernel) String() string {
	switch k {
	case GaussianKernel:
		return "Gaussian"
	case UniformKernel:
		return "Uniform"
	case TriangleKernel:
		return "Triangle"
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}

// KernelDensity is a nonparametric distribution: a weighted cloud of
// observed points smoothed by a fixed-shape kernel with one bandwidth.
type KernelDensity struct {
	// Kernel is the kernel shape. The zero value is
	// GaussianKernel.
	Kernel Kernel

	// Bandwidth is the kernel width.
	Bandwidth float64

	// Src is the source of randomness for Rand. nil means the
	// global source.
	Src rand.Source

	frozen
	points  []float64
	weights []float64 // normalized to sum 1, parallel to points
	pendPts []float64
	pendWts []float64
}

// NewKernelDensity returns a kernel density estimate over the given
// points. A nil weights slice means uniform weights; weights are
// normalized to sum 1. A zero bandwidth is estimated from the points
// by Silverman's rule of thumb.
func NewKernelDensity(kernel Kernel, points, weights []float64, bandwidth float64) (*KernelDensity, error) {
	if kernel < GaussianKernel || kernel > TriangleKernel {
		return nil, fmt.Errorf("dist: unknown kernel %v", kernel)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("dist: kernel density needs at least one point")
	}
	if weights != nil {
		if len(weights) != len(points) {
			return nil, fmt.Errorf("dist: %d points but %d weights", len(points), len(weights))
		}
		for _, w := range weights {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("dist: invalid point weight %v", w)
			}
		}
	}
	if bandwidth < 0 || math.IsNaN(bandwidth) {
		return nil, fmt.Errorf("dist: invalid bandwidth %v", bandwidth)
	}

	pts, ws := filterWeighted(points, weights)
	if len(pts) == 0 {
		return nil, fmt.Errorf("dist: kernel density needs at least one weight-positive point")
	}
	if bandwidth == 0 {
		bandwidth = silverman(pts, ws)
	}
	kd := &KernelDensity{Kernel: kernel, Bandwidth: bandwidth}
	kd.setPoints(pts, ws, 0)
	return kd, nil
}

// silverman is Silverman's rule-of-thumb bandwidth,
// 1.06·σ̂·n^(-1/5), with a fallback of 1 when the point cloud is
// degenerate (fewer than two distinct points).
func silverman(points, weights []float64) float64 {
	h := 1.06 * stat.StdDev(points, weights) * math.Pow(floats.Sum(weights), -1.0/5)
	if !(h > 0) || math.IsInf(h, 0) {
		return 1
	}
	return h
}

func (kd *KernelDensity) String() string {
	return fmt.Sprintf("%vKernelDensity(%d points, bandwidth %v)", kd.Kernel, len(kd.points), kd.Bandwidth)
}

// Points returns a copy of the stored point cloud.
func (kd *KernelDensity) Points() []float64 {
	return append([]float64(nil), kd.points...)
}

// Weights returns a copy of the stored point weights, which sum to 1.
func (kd *KernelDensity) Weights() []float64 {
	return append([]float64(nil), kd.weights...)
}

// LogProb returns the log of the weighted sum, over the stored points,
// of the kernel evaluated at |x - point|.
func (kd *KernelDensity) LogProb(x float64) float64 {
	switch kd.Kernel {
	case GaussianKernel:
		// log Σ wᵢ·φ((x-pᵢ)/h)/h, evaluated by log-sum-exp.
		terms := make([]float64, len(kd.points))
		for i, p := range kd.points {
			z := (x - p) / kd.Bandwidth
			terms[i] = math.Log(kd.weights[i]) + logInvSqrt2Pi - math.Log(kd.Bandwidth) - z*z/2
		}
		return logSumExp(terms)
	case UniformKernel:
		var sum float64
		for i, p := range kd.points {
			if math.Abs(x-p) <= kd.Bandwidth {
				sum += kd.weights[i]
			}
		}
		return math.Log(sum)
	case TriangleKernel:
		var sum float64
		for i, p := range kd.points {
			if d := kd.Bandwidth - math.Abs(x-p); d > 0 {
				sum += kd.weights[i] * d
			}
		}
		return math.Log(sum)
	}
	panic("dist: unknown kernel")
}

// Rand picks a stored point by weight, then draws from that point's
// kernel shape.
func (kd *KernelDensity) Rand() float64 {
	u := uniform01(kd.Src)
	i := len(kd.points) - 1
	var acc float64
	for j, w := range kd.weights {
		acc += w
		if u < acc {
			i = j
			break
		}
	}
	p := kd.points[i]
	switch kd.Kernel {
	case GaussianKernel:
		return distuv.Normal{Mu: p, Sigma: kd.Bandwidth, Src: kd.Src}.Rand()
	case UniformKernel:
		return distuv.Uniform{Min: p - kd.Bandwidth, Max: p + kd.Bandwidth, Src: kd.Src}.Rand()
	case TriangleKernel:
		return distuv.NewTriangle(p-kd.Bandwidth, p+kd.Bandwidth, p, kd.Src).Rand()
	}
	panic("dist: unknown kernel")
}

// Fit replaces the point cloud with the weight-positive items when
// inertia is 0. With inertia > 0, the old points are kept with their
// weights scaled by inertia and the new points appended with weights
// scaled by 1-inertia, so the cloud grows without bound under repeated
// inertial refits. Callers doing streaming updates with nonzero
// inertia own that memory cost.
func (kd *KernelDensity) Fit(xs, weights []float64, inertia float64) error {
	if kd.Frozen() {
		return nil
	}
	pts, ws := filterWeighted(xs, weights)
	if len(pts) == 0 {
		return nil
	}
	kd.setPoints(pts, ws, inertia)
	return nil
}

func (kd *KernelDensity) Summarize(xs, weights []float64) {
	if kd.Frozen() {
		return
	}
	pts, ws := filterWeighted(xs, weights)
	kd.pendPts = append(kd.pendPts, pts...)
	kd.pendWts = append(kd.pendWts, ws...)
}

func (kd *KernelDensity) Commit(inertia float64) error {
	if kd.Frozen() || len(kd.pendPts) == 0 {
		return nil
	}
	kd.setPoints(kd.pendPts, kd.pendWts, inertia)
	kd.pendPts, kd.pendWts = nil, nil
	return nil
}

func (kd *KernelDensity) Copy() Distribution[float64] {
	c := *kd
	c.points = append([]float64(nil), kd.points...)
	c.weights = append([]float64(nil), kd.weights...)
	c.pendPts = append([]float64(nil), kd.pendPts...)
	c.pendWts = append([]float64(nil), kd.pendWts...)
	return &c
}

// setPoints installs a new point cloud. pts and ws must be fresh
// slices owned by the receiver; ws need not be normalized yet.
func (kd *KernelDensity) setPoints(pts, ws []float64, inertia float64) {
	floats.Scale(1/floats.Sum(ws), ws)
	if inertia == 0 || len(kd.points) == 0 {
		kd.points, kd.weights = pts, ws
		return
	}
	floats.Scale(inertia, kd.weights)
	floats.Scale(1-inertia, ws)
	kd.points = append(kd.points, pts...)
	kd.weights = append(kd.weights, ws...)
}
