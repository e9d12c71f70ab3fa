// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func TestGaussianKernelDensityLogProb(t *testing.T) {
	kd, err := NewKernelDensity(GaussianKernel, []float64{0, 1}, nil, 1)
	require.NoError(t, err)

	phi := func(z float64) float64 {
		return math.Exp(-z*z/2) / math.Sqrt(2*math.Pi)
	}
	want := math.Log(0.5*phi(0.5) + 0.5*phi(-0.5))
	require.True(t, aeq(want, kd.LogProb(0.5)))
}

func TestUniformKernelDensityLogProb(t *testing.T) {
	kd, err := NewKernelDensity(UniformKernel, []float64{0, 5}, nil, 1)
	require.NoError(t, err)

	// Only the point at 0 is within one bandwidth of 0.5.
	require.True(t, aeq(math.Log(0.5), kd.LogProb(0.5)))
	// Both points out of range.
	require.True(t, math.IsInf(kd.LogProb(3), -1))
}

func TestTriangleKernelDensityLogProb(t *testing.T) {
	kd, err := NewKernelDensity(TriangleKernel, []float64{0}, nil, 2)
	require.NoError(t, err)

	// Single point of weight 1 contributes bandwidth-|x-p| = 1.
	require.True(t, aeq(0, kd.LogProb(1)))
	require.True(t, aeq(math.Log(2), kd.LogProb(0)))
	require.True(t, math.IsInf(kd.LogProb(3), -1))
}

func TestKernelDensityFitReplaces(t *testing.T) {
	kd, err := NewKernelDensity(GaussianKernel, []float64{0, 1, 2}, nil, 1)
	require.NoError(t, err)

	require.NoError(t, kd.Fit([]float64{5, 6}, nil, 0))
	require.Len(t, kd.Points(), 2)
	require.True(t, aeq(1, floats.Sum(kd.Weights())))
}

func TestKernelDensityInertialFitGrows(t *testing.T) {
	kd, err := NewKernelDensity(GaussianKernel, []float64{0, 1, 2}, nil, 1)
	require.NoError(t, err)

	// Inertial refits concatenate rather than replace.
	require.NoError(t, kd.Fit([]float64{5, 6}, nil, 0.5))
	require.Len(t, kd.Points(), 5)
	ws := kd.Weights()
	require.True(t, aeq(1, floats.Sum(ws)))
	// Old cloud keeps half the mass.
	require.True(t, aeq(0.5, floats.Sum(ws[:3])))
}

func TestKernelDensityBandwidthDefault(t *testing.T) {
	kd, err := NewKernelDensity(GaussianKernel, []float64{1, 2, 3, 4, 5}, nil, 0)
	require.NoError(t, err)
	require.Greater(t, kd.Bandwidth, 0.0)

	// Degenerate cloud falls back rather than producing a zero or
	// NaN bandwidth.
	kd, err = NewKernelDensity(GaussianKernel, []float64{4}, nil, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, kd.Bandwidth)
}

func TestKernelDensityWeightedPoints(t *testing.T) {
	kd, err := NewKernelDensity(UniformKernel, []float64{0, 5}, []float64{3, 1}, 1)
	require.NoError(t, err)

	require.True(t, aeq(math.Log(0.75), kd.LogProb(0)))
	require.True(t, aeq(math.Log(0.25), kd.LogProb(5)))
}

func TestKernelDensityRand(t *testing.T) {
	kd, err := NewKernelDensity(UniformKernel, []float64{0, 10}, nil, 1)
	require.NoError(t, err)
	kd.Src = rand.NewSource(3)

	for i := 0; i < 1000; i++ {
		x := kd.Rand()
		// Every draw lies within one bandwidth of a stored point.
		require.True(t, math.Abs(x) <= 1 || math.Abs(x-10) <= 1, "draw %v", x)
	}
}

func TestKernelDensityValidation(t *testing.T) {
	_, err := NewKernelDensity(GaussianKernel, nil, nil, 1)
	require.Error(t, err)
	_, err = NewKernelDensity(GaussianKernel, []float64{1}, []float64{1, 2}, 1)
	require.Error(t, err)
	_, err = NewKernelDensity(GaussianKernel, []float64{1}, []float64{-1}, 1)
	require.Error(t, err)
	_, err = NewKernelDensity(Kernel(42), []float64{1}, nil, 1)
	require.Error(t, err)
}
