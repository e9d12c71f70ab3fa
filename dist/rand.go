// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// uniform01 draws from [0, 1) using src, or the global source when src
// is nil. This is the same convention distuv follows, so a distribution
// with a nil Src behaves uniformly across its own draws and the draws
// it delegates to distuv.
func uniform01(src rand.Source) float64 {
	if src == nil {
		return rand.Float64()
	}
	return rand.New(src).Float64()
}
