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

// Package reference holds straightforward implementations of the local
// filters, written index by index with nd.Box.Each and nd.Array.At. They are
// slow and exist to cross-check the localfilter package.
//
// Every function takes an already normalized neighborhood and the region
// strategy explicitly. Sources are copied first, so a destination may be its
// own source.
package reference

import (
	"reflect"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

// each calls fn with every index i of axes, in row-major order, and the
// region of i.
func each(axes nd.Box, b neighborhood.Neighborhood, r region.Resolver, fn func(i nd.Index, reg nd.Box)) {
	nbhd := b.Bounds()
	reg := nd.MakeBox(axes.Rank())
	axes.Each(func(i nd.Index) bool {
		r.Resolve(reg, axes, nbhd, i)
		fn(i, reg)
		return true
	})
}

func check[T, U any](dst *nd.Array[T], src *nd.Array[U], b neighborhood.Neighborhood) error {
	if err := nd.CheckAxes("destination axes", src, dst); err != nil {
		return err
	}
	if b.Rank() != src.Rank() {
		return nd.NewShapeMismatch("neighborhood rank", src.Rank(), b.Rank())
	}
	return nil
}

// weights returns the coefficients of a numeric kernel as an array indexed
// by offset, converted to R. ok is false for boxes and masks.
func weights[R nd.Number](b neighborhood.Neighborhood) (w *nd.Array[R], ok bool) {
	data, ok := neighborhood.WeightsOf[R](b)
	if !ok {
		return nil, false
	}
	w, err := nd.Wrap(data, b.Bounds())
	if err != nil {
		panic(err)
	}
	return w, true
}

// Erode stores in dst the minimum of A over b, or min(A[j] - b[i-j]) for a
// numeric kernel.
func Erode[T nd.Number](dst, A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	if err := check(dst, A, b); err != nil {
		return err
	}
	w, weighted := weights[T](b)
	if weighted && !nd.IsFloat[T]() {
		return nd.ErrUnsupportedKernel
	}
	src := A.Clone()
	each(src.Axes(), b, r, func(i nd.Index, reg nd.Box) {
		v := nd.MaxValue[T]()
		reg.Each(func(j nd.Index) bool {
			o := i.Sub(j)
			switch {
			case weighted:
				v = min(v, src.At(j)-w.At(o))
			case neighborhood.Contains(b, o):
				v = min(v, src.At(j))
			}
			return true
		})
		dst.Set(i, v)
	})
	return nil
}

// Dilate stores in dst the maximum of A over b, or max(A[j] + b[i-j]) for a
// numeric kernel.
func Dilate[T nd.Number](dst, A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	if err := check(dst, A, b); err != nil {
		return err
	}
	w, weighted := weights[T](b)
	if weighted && !nd.IsFloat[T]() {
		return nd.ErrUnsupportedKernel
	}
	src := A.Clone()
	each(src.Axes(), b, r, func(i nd.Index, reg nd.Box) {
		v := nd.MinValue[T]()
		reg.Each(func(j nd.Index) bool {
			o := i.Sub(j)
			switch {
			case weighted:
				v = max(v, src.At(j)+w.At(o))
			case neighborhood.Contains(b, o):
				v = max(v, src.At(j))
			}
			return true
		})
		dst.Set(i, v)
	})
	return nil
}

// LocalExtrema stores the erosion of A in amin and its dilation in amax.
func LocalExtrema[T nd.Number](amin, amax, A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	src := A.Clone()
	if err := Erode(amin, src, b, r); err != nil {
		return err
	}
	return Dilate(amax, src, b, r)
}

// LocalMean stores in dst the mean of A over b: plain for boxes, restricted
// to set cells for masks and weighted for numeric kernels. A count pass
// precedes the sum pass so that an empty region fails before any sum.
func LocalMean[R nd.Floats, T nd.Number](dst *nd.Array[R], A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	if err := check(dst, A, b); err != nil {
		return err
	}
	w, weighted := weights[R](b)
	src := A.Clone()
	var err error
	each(src.Axes(), b, r, func(i nd.Index, reg nd.Box) {
		if err != nil {
			return
		}
		var den R
		reg.Each(func(j nd.Index) bool {
			o := i.Sub(j)
			switch {
			case weighted:
				den += w.At(o)
			case neighborhood.Contains(b, o):
				den++
			}
			return true
		})
		if den == 0 {
			err = &nd.IndexError{At: i.Clone(), Err: nd.ErrDivisionByZero}
			return
		}
		var num R
		reg.Each(func(j nd.Index) bool {
			o := i.Sub(j)
			switch {
			case weighted:
				num += R(w.At(o) * R(src.At(j)))
			case neighborhood.Contains(b, o):
				num += R(src.At(j))
			}
			return true
		})
		dst.Set(i, num/den)
	})
	return err
}

// Convolve stores in dst the sum of b[i-j] * A[j] over the region of every
// index i, computed in R. R must widen T and the coefficient type of b.
func Convolve[R, T nd.Number](dst *nd.Array[R], A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	if err := check(dst, A, b); err != nil {
		return err
	}
	w, ok := weights[R](b)
	if !ok {
		return nd.ErrUnsupportedKernel
	}
	if !nd.Widens[R, T]() || !nd.WidensType(reflect.TypeFor[R](), neighborhood.CoefficientType(b)) {
		return nd.ErrUnrepresentable
	}
	src := A.Clone()
	each(src.Axes(), b, r, func(i nd.Index, reg nd.Box) {
		var v R
		reg.Each(func(j nd.Index) bool {
			v += R(w.At(i.Sub(j)) * R(src.At(j)))
			return true
		})
		dst.Set(i, v)
	})
	return nil
}

// Opening stores the dilation of the erosion of A in dst.
func Opening[T nd.Number](dst, A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	wrk := nd.Like[T](A)
	if err := Erode(wrk, A, b, r); err != nil {
		return err
	}
	return Dilate(dst, wrk, b, r)
}

// Closing stores the erosion of the dilation of A in dst.
func Closing[T nd.Number](dst, A *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver) error {
	wrk := nd.Like[T](A)
	if err := Dilate(wrk, A, b, r); err != nil {
		return err
	}
	return Erode(dst, wrk, b, r)
}

// TopHat stores A - Opening(Closing(A, s), b) in dst, skipping the closing
// when s is nil. A smoothed top-hat of an unsigned array is rejected.
func TopHat[T nd.Number](dst, A *nd.Array[T], b, s neighborhood.Neighborhood, r region.Resolver) error {
	if s != nil && !nd.IsSigned[T]() {
		return nd.ErrUnrepresentable
	}
	src := A.Clone()
	smooth := src
	if s != nil {
		smooth = nd.Like[T](A)
		if err := Closing(smooth, src, s, r); err != nil {
			return err
		}
	}
	if err := Opening(dst, smooth, b, r); err != nil {
		return err
	}
	src.Axes().Each(func(i nd.Index) bool {
		dst.Set(i, src.At(i)-dst.At(i))
		return true
	})
	return nil
}

// BottomHat stores Closing(Opening(A, s), b) - A in dst, skipping the
// opening when s is nil. A smoothed bottom-hat of an unsigned array is
// rejected.
func BottomHat[T nd.Number](dst, A *nd.Array[T], b, s neighborhood.Neighborhood, r region.Resolver) error {
	if s != nil && !nd.IsSigned[T]() {
		return nd.ErrUnrepresentable
	}
	src := A.Clone()
	smooth := src
	if s != nil {
		smooth = nd.Like[T](A)
		if err := Opening(smooth, src, s, r); err != nil {
			return err
		}
	}
	if err := Closing(dst, smooth, b, r); err != nil {
		return err
	}
	src.Axes().Each(func(i nd.Index) bool {
		dst.Set(i, dst.At(i)-src.At(i))
		return true
	})
	return nil
}
