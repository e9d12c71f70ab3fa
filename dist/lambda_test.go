// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLambda(t *testing.T) {
	l, err := NewLambda(func(x float64) float64 {
		if x < 0 {
			return math.Inf(-1)
		}
		return -x
	})
	require.NoError(t, err)

	require.Equal(t, -2.0, l.LogProb(2))
	require.True(t, math.IsInf(l.LogProb(-1), -1))

	require.ErrorIs(t, l.Fit([]float64{1}, nil, 0), ErrNotFittable)
	require.ErrorIs(t, l.Commit(0), ErrNotFittable)
	require.Panics(t, func() { l.Rand() })

	l.RandFunc = func() float64 { return 7 }
	require.Equal(t, 7.0, l.Rand())

	_, err = NewLambda[float64](nil)
	require.Error(t, err)
}
