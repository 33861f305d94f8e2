// Copyright 2025 go-localfilters Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package neighborhood describes structuring elements for local filters.
//
// There are three variants, all immutable:
//
//	CenteredBox   symmetric box, Bounds().Min == -Bounds().Max
//	CartesianBox  arbitrary box of offsets [min, max]
//	Kernel[C]     dense coefficients indexed by offset from an anchor
//
// Boolean kernels are masks. Numeric kernels are weights for convolution and
// weighted local means, and additive offsets (a structuring function) for
// grayscale erosion and dilation.
//
// # Usage Example
//
//	b := neighborhood.Radius(2, 1)            // 3x3 box
//	c, _ := neighborhood.Cartesian(nd.Index{-1, 0}, nd.Index{1, 2})
//	k := neighborhood.NewKernel(weights)      // anchored at the center
//	n, err := neighborhood.Normalize(2, 3)    // 7x7 box from a radius
//
// # Correlation Convention
//
// A filter evaluated at output index i visits input index j with the
// coefficient of offset i - j. The visited range is therefore
// [i - Bounds().Max, i - Bounds().Min], clipped to the array axes.
package neighborhood
