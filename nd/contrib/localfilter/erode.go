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

package localfilter

import (
	"fmt"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
)

// Erode returns the local minimum of A over the neighborhood B.
//
// B is any specification accepted by neighborhood.Normalize; nil is the
// 3x...x3 box. With a boolean kernel only the cells where the mask is true
// take part. With a numeric kernel (floating-point A only) the result is the
// grayscale erosion min(A[j] - B[i-j]).
func Erode[T nd.Number](A *nd.Array[T], B any, opts ...Option) (*nd.Array[T], error) {
	dst := nd.Like[T](A)
	if err := ErodeInto(dst, A, B, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ErodeInto stores the erosion of A by B in dst. dst may be A.
func ErodeInto[T nd.Number](dst, A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: erode: %w", err)
	}
	c.debug("erode", A.Axes(), b)
	if err := erode(dst, A, b, c); err != nil {
		return fmt.Errorf("localfilter: erode: %w", err)
	}
	return nil
}

// Dilate returns the local maximum of A over the neighborhood B. With a
// numeric kernel the result is the grayscale dilation max(A[j] + B[i-j]).
func Dilate[T nd.Number](A *nd.Array[T], B any, opts ...Option) (*nd.Array[T], error) {
	dst := nd.Like[T](A)
	if err := DilateInto(dst, A, B, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// DilateInto stores the dilation of A by B in dst. dst may be A.
func DilateInto[T nd.Number](dst, A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: dilate: %w", err)
	}
	c.debug("dilate", A.Axes(), b)
	if err := dilate(dst, A, b, c); err != nil {
		return fmt.Errorf("localfilter: dilate: %w", err)
	}
	return nil
}

func erode[T nd.Number](dst, src *nd.Array[T], b neighborhood.Neighborhood, c config) error {
	top := nd.MaxValue[T]()
	seed := func(T) T { return top }
	if c.useRows(b) {
		return ReduceRows(dst, src, b, c.resolver, seed, minRow[T], assign[T])
	}
	update, err := minUpdate[T](b)
	if err != nil {
		return err
	}
	return Reduce(dst, src, b, c.resolver, seed, update, assign[T])
}

func dilate[T nd.Number](dst, src *nd.Array[T], b neighborhood.Neighborhood, c config) error {
	bottom := nd.MinValue[T]()
	seed := func(T) T { return bottom }
	if c.useRows(b) {
		return ReduceRows(dst, src, b, c.resolver, seed, maxRow[T], assign[T])
	}
	update, err := maxUpdate[T](b)
	if err != nil {
		return err
	}
	return Reduce(dst, src, b, c.resolver, seed, update, assign[T])
}

// errIntegerStructuringFunction is returned for a numeric kernel applied to
// an integer array.
func errIntegerStructuringFunction[T nd.Number]() error {
	var zero T
	return fmt.Errorf("%w: numeric kernel on %T array, use a boolean kernel or a floating-point array",
		nd.ErrUnsupportedKernel, zero)
}

func minUpdate[T nd.Number](b neighborhood.Neighborhood) (UpdateFunc[T, T], error) {
	switch b.Kind() {
	case neighborhood.KindMask:
		mask, _ := neighborhood.MaskOf(b)
		return func(v, a T, k int) T {
			if mask[k] {
				return min(v, a)
			}
			return v
		}, nil
	case neighborhood.KindWeights:
		if !nd.IsFloat[T]() {
			return nil, errIntegerStructuringFunction[T]()
		}
		w, _ := neighborhood.WeightsOf[T](b)
		return func(v, a T, k int) T { return min(v, a-w[k]) }, nil
	default:
		return func(v, a T, _ int) T { return min(v, a) }, nil
	}
}

func maxUpdate[T nd.Number](b neighborhood.Neighborhood) (UpdateFunc[T, T], error) {
	switch b.Kind() {
	case neighborhood.KindMask:
		mask, _ := neighborhood.MaskOf(b)
		return func(v, a T, k int) T {
			if mask[k] {
				return max(v, a)
			}
			return v
		}, nil
	case neighborhood.KindWeights:
		if !nd.IsFloat[T]() {
			return nil, errIntegerStructuringFunction[T]()
		}
		w, _ := neighborhood.WeightsOf[T](b)
		return func(v, a T, k int) T { return max(v, a+w[k]) }, nil
	default:
		return func(v, a T, _ int) T { return max(v, a) }, nil
	}
}

// extrema is the running (min, max) pair of LocalExtrema.
type extrema[T nd.Number] struct {
	lo, hi T
}

// LocalExtrema returns the erosion and the dilation of A by B computed in a
// single pass.
func LocalExtrema[T nd.Number](A *nd.Array[T], B any, opts ...Option) (amin, amax *nd.Array[T], err error) {
	amin, amax = nd.Like[T](A), nd.Like[T](A)
	if err := LocalExtremaInto(amin, amax, A, B, opts...); err != nil {
		return nil, nil, err
	}
	return amin, amax, nil
}

// LocalExtremaInto stores the erosion of A by B in amin and the dilation in
// amax. Either may be A, but amin and amax must not share storage.
func LocalExtremaInto[T nd.Number](amin, amax, A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: localextrema: %w", err)
	}
	c.debug("localextrema", A.Axes(), b)
	if err := localExtrema(amin, amax, A, b, c); err != nil {
		return fmt.Errorf("localfilter: localextrema: %w", err)
	}
	return nil
}

func localExtrema[T nd.Number](amin, amax, src *nd.Array[T], b neighborhood.Neighborhood, c config) error {
	if err := nd.CheckAxes("maximum axes", src, amax); err != nil {
		return err
	}
	if nd.Overlap(amin, amax) {
		return fmt.Errorf("%w: minimum and maximum share storage", nd.ErrAliasing)
	}
	if nd.Overlap(amax, src) {
		if !nd.Same(amax, src) {
			return fmt.Errorf("%w: maximum partially overlaps source", nd.ErrAliasing)
		}
		src = src.Clone()
	}
	seed := extrema[T]{lo: nd.MaxValue[T](), hi: nd.MinValue[T]()}
	hi := amax.Data()
	store := func(lo []T, at int, v extrema[T]) error {
		lo[at], hi[at] = v.lo, v.hi
		return nil
	}
	if c.useRows(b) {
		return ReduceRows(amin, src, b, c.resolver, func(T) extrema[T] { return seed }, extremaRow[T], store)
	}
	lower, err := minUpdate[T](b)
	if err != nil {
		return err
	}
	upper, err := maxUpdate[T](b)
	if err != nil {
		return err
	}
	return Reduce(amin, src, b, c.resolver,
		func(T) extrema[T] { return seed },
		func(v extrema[T], a T, k int) extrema[T] {
			return extrema[T]{lo: lower(v.lo, a, k), hi: upper(v.hi, a, k)}
		},
		store)
}
