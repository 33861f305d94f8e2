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
	"reflect"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

// Convolve returns the discrete convolution of A by the numeric kernel B,
// clipped at the borders:
//
//	dst[i] = sum over j in region(i) of B[i-j] * A[j]
//
// Products and sums are computed in R, which must widen both the element
// type of A and the coefficient type of B (see nd.Widens): Convolve[float64]
// of an int array by a float32 kernel is accepted, Convolve[int] of the same
// pair fails with nd.ErrUnrepresentable. Boxes and boolean kernels fail with
// nd.ErrUnsupportedKernel.
func Convolve[R, T nd.Number](A *nd.Array[T], B any, opts ...Option) (*nd.Array[R], error) {
	dst := nd.Like[R](A)
	if err := ConvolveInto(dst, A, B, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveInto stores the convolution of A by B in dst.
func ConvolveInto[R, T nd.Number](dst *nd.Array[R], A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: convolve: %w", err)
	}
	c.debug("convolve", A.Axes(), b)
	if err := convolve(dst, A, b, c.resolver); err != nil {
		return fmt.Errorf("localfilter: convolve: %w", err)
	}
	return nil
}

func convolve[R, T nd.Number](dst *nd.Array[R], src *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	w, ok := neighborhood.WeightsOf[R](b)
	if !ok {
		return fmt.Errorf("%w: convolution needs a numeric kernel, got %s", nd.ErrUnsupportedKernel, b.Kind())
	}
	if err := checkSumType[R, T](b); err != nil {
		return err
	}
	return Reduce(dst, src, b, r,
		func(T) R { return 0 },
		func(v R, a T, k int) R { return v + R(w[k]*R(a)) },
		func(out []R, at int, v R) error {
			out[at] = v
			return nil
		})
}

// checkSumType fails unless R widens T and the coefficient type of b.
func checkSumType[R, T nd.Number](b neighborhood.Neighborhood) error {
	rt := reflect.TypeFor[R]()
	if !nd.Widens[R, T]() {
		return fmt.Errorf("%w: sum type %v cannot hold %v values", nd.ErrUnrepresentable, rt, reflect.TypeFor[T]())
	}
	if ct := neighborhood.CoefficientType(b); !nd.WidensType(rt, ct) {
		return fmt.Errorf("%w: sum type %v cannot hold %v coefficients", nd.ErrUnrepresentable, rt, ct)
	}
	return nil
}
