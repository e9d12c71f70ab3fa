// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist implements fittable probability distributions: parametric and
// nonparametric models of a single variable that can score
// observations, generate samples, and re-estimate their parameters
// from weighted data.
package dist // import "github.com/aclements/go-distfit/dist"
