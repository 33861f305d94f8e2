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

// Package localfilter implements sliding-window filters over N-dimensional
// arrays: erosion, dilation, local mean, convolution and the morphological
// compounds built from them.
//
// Every filter is an instance of Reduce, a single traversal parameterized by
// three functions:
//
//	seed(a)         initial accumulator for an output index
//	update(v, a, k) fold one visited input value (k locates the coefficient)
//	store(dst, at, v) write the result, possibly failing
//
// Boxes, where no visited index carries a coefficient, are folded a row of
// the region at a time by ReduceRows; WithRowFolds(false) selects the
// per-element fold instead. Both produce identical outputs.
//
// # Operators
//
//	Erode, Dilate, LocalExtrema   local min / max (grayscale with numeric kernels)
//	LocalMean                     plain, masked or weighted mean
//	Convolve                      weighted sum with a numeric kernel
//	Opening, Closing              erosion then dilation, and the reverse
//	TopHat, BottomHat             A - opening(A), closing(A) - A
//
// Each operator has an Into form writing to a caller-provided destination.
// The compounds also take a workspace array.
//
// # Neighborhoods
//
// The B argument accepts anything neighborhood.Normalize does: nil for the
// 3x...x3 box, an int radius, neighborhood.Sizes, an nd.Box of offsets, a
// coefficient array or a ready-made Neighborhood.
//
// Example usage:
//
//	A, _ := nd.FromSlice([]float64{5, 1, 1, 5, 5, 1, 5}, 7)
//	lo, err := localfilter.Erode(A, 1)
//	hi, err := localfilter.Dilate(A, 1, localfilter.WithResolver(region.Fixed{}))
//
// # Borders
//
// The neighborhood is clipped to the array: border outputs reduce over fewer
// inputs. No padding value is ever read.
package localfilter
