// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// checkWeights validates the items/weights contract shared by Fit and
// Summarize: weights may be nil (uniform), but when present must be
// parallel to the items and non-negative.
func checkWeights(n int, weights []float64) {
	if weights == nil {
		return
	}
	if len(weights) != n {
		panic("dist: len(xs) != len(weights)")
	}
	for _, w := range weights {
		switch {
		case math.IsNaN(w):
			panic("dist: NaN weight")
		case w < 0:
			panic("dist: negative weight")
		}
	}
}

// weightAt returns the weight of item i, treating nil as all ones.
func weightAt(weights []float64, i int) float64 {
	if weights == nil {
		return 1
	}
	return weights[i]
}

// filterWeighted drops zero-weight items, returning fresh parallel
// point and weight slices.
func filterWeighted(xs, weights []float64) ([]float64, []float64) {
	checkWeights(len(xs), weights)
	out := make([]float64, 0, len(xs))
	ws := make([]float64, 0, len(xs))
	for i, x := range xs {
		w := weightAt(weights, i)
		if w == 0 {
			continue
		}
		out = append(out, x)
		ws = append(ws, w)
	}
	return out, ws
}

// momentBatch is the sufficient statistic of one summarized batch for
// the moment-fitted distributions: the batch's weighted mean, its
// population variance, and its total weight. A weight of 0 marks an
// empty batch.
type momentBatch struct {
	mean, variance, weight float64
}

// newMomentBatch reduces one batch of observations to its weighted
// first and second moments. The variance is the population variance
// E[x²]−E[x]² (stat.Variance is the unbiased estimator, which is the
// wrong quantity for maximum-likelihood fits), clamped at zero against
// floating-point cancellation.
func newMomentBatch(xs, weights []float64) momentBatch {
	checkWeights(len(xs), weights)
	if len(xs) == 0 {
		return momentBatch{}
	}
	sumW := float64(len(xs))
	if weights != nil {
		sumW = floats.Sum(weights)
	}
	if sumW == 0 {
		return momentBatch{}
	}
	mean := stat.Mean(xs, weights)
	sq := make([]float64, len(xs))
	for i, x := range xs {
		sq[i] = x * x
	}
	variance := stat.Mean(sq, weights) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return momentBatch{mean: mean, variance: variance, weight: sumW}
}

// mergeMoments combines per-batch moments using the parallel-variance
// identity: the combined mean is the weight-weighted average of batch
// means, and the combined second moment is the weighted average of
// each batch's variance+mean². Cancellation can push the combined
// variance slightly negative, so it is clamped at zero before any
// square root.
func mergeMoments(batches []momentBatch) momentBatch {
	var sumW, sumWM, sumWS float64
	for _, b := range batches {
		sumW += b.weight
		sumWM += b.weight * b.mean
		sumWS += b.weight * (b.variance + b.mean*b.mean)
	}
	if sumW == 0 {
		return momentBatch{}
	}
	mean := sumWM / sumW
	variance := sumWS/sumW - mean*mean
	if variance < 0 {
		variance = 0
	}
	return momentBatch{mean: mean, variance: variance, weight: sumW}
}

// blend applies the inertia rule to one parameter: 0 replaces the old
// value outright, 1 keeps it unchanged.
func blend(old, fitted, inertia float64) float64 {
	return inertia*old + (1-inertia)*fitted
}

// logSumExp is floats.LogSumExp guarded for the empty and all-(-Inf)
// cases, which arise when a query falls outside the support of every
// term.
func logSumExp(terms []float64) float64 {
	if len(terms) == 0 || math.IsInf(floats.Max(terms), -1) {
		return math.Inf(-1)
	}
	return floats.LogSumExp(terms)
}
