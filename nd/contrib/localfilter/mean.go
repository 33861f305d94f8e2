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

// LocalMean returns the mean of A over the neighborhood B, accumulated and
// stored in R. With a boolean kernel only the cells where the mask is true
// are averaged; with a numeric kernel the result is the weighted mean
// sum(w*A[j]) / sum(w).
//
// A region with no participating cell, or whose weights sum to zero, fails
// with nd.ErrDivisionByZero wrapped in an *nd.IndexError.
func LocalMean[R nd.Floats, T nd.Number](A *nd.Array[T], B any, opts ...Option) (*nd.Array[R], error) {
	dst := nd.Like[R](A)
	if err := LocalMeanInto(dst, A, B, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// LocalMeanInto stores the local mean of A over B in dst.
func LocalMeanInto[R nd.Floats, T nd.Number](dst *nd.Array[R], A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: localmean: %w", err)
	}
	c.debug("localmean", A.Axes(), b)
	if err := localMean(dst, A, b, c); err != nil {
		return fmt.Errorf("localfilter: localmean: %w", err)
	}
	return nil
}

// sum is the running numerator and denominator of a mean.
type sum[R nd.Floats] struct {
	num, den R
}

func localMean[R nd.Floats, T nd.Number](dst *nd.Array[R], src *nd.Array[T], b neighborhood.Neighborhood, c config) error {
	seed := func(T) sum[R] { return sum[R]{} }
	store := func(out []R, at int, v sum[R]) error {
		if v.den == 0 {
			return nd.ErrDivisionByZero
		}
		out[at] = v.num / v.den
		return nil
	}
	if c.useRows(b) {
		return ReduceRows(dst, src, b, c.resolver, seed, sumRow[R, T], store)
	}
	var update UpdateFunc[T, sum[R]]
	switch b.Kind() {
	case neighborhood.KindMask:
		mask, _ := neighborhood.MaskOf(b)
		update = func(v sum[R], a T, k int) sum[R] {
			if mask[k] {
				v.num += R(a)
				v.den++
			}
			return v
		}
	case neighborhood.KindWeights:
		w, _ := neighborhood.WeightsOf[R](b)
		update = func(v sum[R], a T, k int) sum[R] {
			v.num += R(w[k] * R(a))
			v.den += w[k]
			return v
		}
	default:
		update = func(v sum[R], a T, _ int) sum[R] {
			v.num += R(a)
			v.den++
			return v
		}
	}
	return Reduce(dst, src, b, c.resolver, seed, update, store)
}
