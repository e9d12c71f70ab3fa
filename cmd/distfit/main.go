// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distfit reads newline-separated numbers from stdin, fits the chosen
// distribution to them, and reports the fitted parameters and the
// total log-likelihood of the input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/aclements/go-distfit/dist"
)

var distFlag = flag.String("dist", "normal", "distribution to fit: normal, lognormal, exponential, uniform, or kde")

func main() {
	flag.Parse()

	xs := readInput(os.Stdin)
	if len(xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}

	d, err := fit(*distFlag, xs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var ll float64
	for _, x := range xs {
		ll += d.LogProb(x)
	}

	fmt.Printf("N %d  min %.6g  max %.6g\n", len(xs), floatsMin(xs), floatsMax(xs))
	fmt.Printf("%v  log-likelihood %.6g\n", d, ll)
}

func fit(name string, xs []float64) (dist.Distribution[float64], error) {
	switch name {
	case "normal":
		d, err := dist.NewNormal(0, 1)
		if err != nil {
			return nil, err
		}
		return d, d.Fit(xs, nil, 0)
	case "lognormal":
		d, err := dist.NewLogNormal(0, 1)
		if err != nil {
			return nil, err
		}
		return d, d.Fit(xs, nil, 0)
	case "exponential":
		d, err := dist.NewExponential(1)
		if err != nil {
			return nil, err
		}
		return d, d.Fit(xs, nil, 0)
	case "uniform":
		d, err := dist.NewUniform(0, 1)
		if err != nil {
			return nil, err
		}
		return d, d.Fit(xs, nil, 0)
	case "kde":
		return dist.NewKernelDensity(dist.GaussianKernel, xs, nil, 0)
	}
	return nil, fmt.Errorf("unknown distribution %q", name)
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return xs
}

func floatsMin(xs []float64) float64 {
	min := math.Inf(1)
	for _, x := range xs {
		min = math.Min(min, x)
	}
	return min
}

func floatsMax(xs []float64) float64 {
	max := math.Inf(-1)
	for _, x := range xs {
		max = math.Max(max, x)
	}
	return max
}
