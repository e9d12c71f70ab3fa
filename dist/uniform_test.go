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

func TestUniformLogProb(t *testing.T) {
	u, err := NewUniform(0, 10)
	require.NoError(t, err)

	require.True(t, aeq(math.Log(0.1), u.LogProb(5)))
	require.True(t, aeq(math.Log(0.1), u.LogProb(0)))
	require.True(t, aeq(math.Log(0.1), u.LogProb(10)))
	require.True(t, math.IsInf(u.LogProb(11), -1))
	require.True(t, math.IsInf(u.LogProb(-0.001), -1))
}

func TestUniformValidation(t *testing.T) {
	_, err := NewUniform(1, 1)
	require.Error(t, err)
	_, err = NewUniform(2, 1)
	require.Error(t, err)
	_, err = NewUniform(0, math.Inf(1))
	require.Error(t, err)
}

func TestUniformFit(t *testing.T) {
	u, err := NewUniform(0, 1)
	require.NoError(t, err)

	require.NoError(t, u.Fit([]float64{3, 9, 5, 2.5, 7}, nil, 0))
	require.Equal(t, 2.5, u.Min)
	require.Equal(t, 9.0, u.Max)

	// Degenerate data legally collapses the bounds to a point mass.
	require.NoError(t, u.Fit([]float64{4, 4, 4}, nil, 0))
	require.Equal(t, 4.0, u.Min)
	require.Equal(t, 4.0, u.Max)
	require.Equal(t, 0.0, u.LogProb(4))
	require.True(t, math.IsInf(u.LogProb(4.1), -1))
}

func TestUniformFitInertia(t *testing.T) {
	u, err := NewUniform(0, 10)
	require.NoError(t, err)

	require.NoError(t, u.Fit([]float64{2, 4}, nil, 0.5))
	require.True(t, aeq(1, u.Min))
	require.True(t, aeq(7, u.Max))
}

func TestUniformRand(t *testing.T) {
	u, err := NewUniform(3, 7)
	require.NoError(t, err)
	u.Src = rand.NewSource(1)

	for i := 0; i < 1000; i++ {
		x := u.Rand()
		require.GreaterOrEqual(t, x, 3.0)
		require.Less(t, x, 7.0)
	}
}
