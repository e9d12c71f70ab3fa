// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogNormalLogProb(t *testing.T) {
	l, err := NewLogNormal(0, 1)
	require.NoError(t, err)

	// At x=1: log x = 0, Jacobian term vanishes.
	require.True(t, aeq(-0.91893853, l.LogProb(1)))

	// The density of x is the Gaussian density of log x minus log x.
	n, err := NewNormal(0, 1)
	require.NoError(t, err)
	for _, x := range []float64{0.5, 1, 2, 7.3} {
		require.True(t, aeq(n.LogProb(math.Log(x))-math.Log(x), l.LogProb(x)))
	}

	require.True(t, math.IsInf(l.LogProb(0), -1))
	require.True(t, math.IsInf(l.LogProb(-2), -1))
}

func TestLogNormalFit(t *testing.T) {
	l, err := NewLogNormal(0, 1)
	require.NoError(t, err)

	// Fitting exp(data) is the Normal fit of data.
	data := []float64{1, 2, 3}
	exp := make([]float64, len(data))
	for i, x := range data {
		exp[i] = math.Exp(x)
	}
	require.NoError(t, l.Fit(exp, nil, 0))

	n, err := NewNormal(0, 1)
	require.NoError(t, err)
	require.NoError(t, n.Fit(data, nil, 0))

	require.InEpsilon(t, n.Mu, l.Mu, 1e-9)
	require.InEpsilon(t, n.Sigma, l.Sigma, 1e-9)
}
