// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNormalLogProb(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)

	require.True(t, aeq(-0.91893853, n.LogProb(0)))
	require.True(t, aeq(-0.91893853-0.5, n.LogProb(1)))
	require.True(t, aeq(-0.91893853-0.5, n.LogProb(-1)))

	n2, err := NewNormal(5, 2)
	require.NoError(t, err)
	require.True(t, aeq(-0.91893853-math.Log(2), n2.LogProb(5)))
}

func TestNormalPointMass(t *testing.T) {
	n, err := NewNormal(3, 0)
	require.NoError(t, err)

	require.Equal(t, 0.0, n.LogProb(3))
	require.True(t, math.IsInf(n.LogProb(3.1), -1))
}

func TestNormalFit(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)

	// Weighted mean 2.25, E[x²] 5.75, variance 0.6875.
	require.NoError(t, n.Fit([]float64{1, 2, 3}, []float64{1, 1, 2}, 0))
	require.True(t, aeq(2.25, n.Mu))
	require.True(t, aeq(math.Sqrt(0.6875), n.Sigma))
}

func TestNormalSigmaFloor(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)

	require.NoError(t, n.Fit([]float64{4, 4, 4, 4}, nil, 0))
	require.Equal(t, 4.0, n.Mu)
	require.Equal(t, defaultMinSigma, n.Sigma)
}

func TestNormalFitInertia(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)

	require.NoError(t, n.Fit([]float64{4, 4, 4}, nil, 0.5))
	require.True(t, aeq(2, n.Mu))
	require.True(t, aeq(0.5*1+0.5*defaultMinSigma, n.Sigma))
}

func TestNormalParallelMerge(t *testing.T) {
	// Batches with very different means exercise the
	// parallel-variance recombination.
	n, err := NewNormal(0, 1)
	require.NoError(t, err)
	n.Summarize([]float64{-10, -9, -11}, nil)
	n.Summarize([]float64{9, 10, 11}, []float64{1, 1, 1})
	require.NoError(t, n.Commit(0))

	direct, err := NewNormal(0, 1)
	require.NoError(t, err)
	require.NoError(t, direct.Fit([]float64{-10, -9, -11, 9, 10, 11}, nil, 0))

	require.InDelta(t, direct.Mu, n.Mu, 1e-9)
	require.InEpsilon(t, direct.Sigma, n.Sigma, 1e-9)
}

func TestNormalRand(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)
	n.Src = rand.NewSource(42)

	var sum float64
	const draws = 10000
	for i := 0; i < draws; i++ {
		sum += n.Rand()
	}
	// Mean of 10k standard normal draws has standard error 0.01.
	require.InDelta(t, 0, sum/draws, 0.05)
}
