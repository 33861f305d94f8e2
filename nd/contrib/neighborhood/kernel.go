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

package neighborhood

import (
	"reflect"
	"slices"

	"github.com/ajroetker/go-localfilters/nd"
)

// Coefficient lists the element types a Kernel may hold. Boolean kernels are
// presence masks; numeric kernels are weights (convolution, weighted mean)
// or additive offsets (grayscale erosion and dilation).
type Coefficient interface {
	bool | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Kernel is an arbitrarily shaped structuring element with one coefficient
// per offset. Coefficients are stored densely in row-major order over
// Bounds(), so the coefficient of offset o lives at Coefs().Offset(o).
//
// A filter applied at output index i visits input j with coefficient
// Coefficient(i - j) (correlation convention).
type Kernel[C Coefficient] struct {
	coefs *nd.Array[C]
}

// NewKernel returns a kernel with the coefficients of a, anchored at the
// geometric center of a: a.Axes().Min + size/2 along every axis. The
// coefficients are copied.
func NewKernel[C Coefficient](a *nd.Array[C]) *Kernel[C] {
	axes := a.Axes()
	anchor := axes.Min.Clone()
	for d := range anchor {
		anchor[d] += axes.Size(d) / 2
	}
	return newKernel(a, anchor)
}

// NewKernelAt returns a kernel with the coefficients of a whose zero offset
// is the index anchor of a. The coefficients are copied.
func NewKernelAt[C Coefficient](a *nd.Array[C], anchor nd.Index) (*Kernel[C], error) {
	if len(anchor) != a.Rank() {
		return nil, nd.NewShapeMismatch("kernel anchor rank", a.Rank(), len(anchor))
	}
	return newKernel(a, anchor), nil
}

// OffsetKernel returns a kernel whose offsets are the axes of a, that is
// the coefficient of offset o is a.At(o). The coefficients are copied.
func OffsetKernel[C Coefficient](a *nd.Array[C]) *Kernel[C] {
	return newKernel(a, make(nd.Index, a.Rank()))
}

func newKernel[C Coefficient](a *nd.Array[C], anchor nd.Index) *Kernel[C] {
	axes := a.Axes()
	bounds := nd.Box{Min: axes.Min.Sub(anchor), Max: axes.Max.Sub(anchor)}
	coefs := nd.NewIn[C](bounds)
	copy(coefs.Data(), a.Data())
	return &Kernel[C]{coefs: coefs}
}

func (k *Kernel[C]) Rank() int { return k.coefs.Rank() }

func (k *Kernel[C]) Bounds() nd.Box { return k.coefs.Axes() }

// Kind returns KindMask for boolean kernels and KindWeights otherwise.
func (k *Kernel[C]) Kind() Kind {
	var zero C
	if _, ok := any(zero).(bool); ok {
		return KindMask
	}
	return KindWeights
}

func (*Kernel[C]) sealed() {}

// null reports a nil or zero Kernel, which has no coefficients.
func (k *Kernel[C]) null() bool { return k == nil || k.coefs == nil }

func (*Kernel[C]) coefficientType() reflect.Type { return reflect.TypeFor[C]() }

// Anchor returns the position of the zero offset counted from the first
// cell of the coefficient array (0-based).
func (k *Kernel[C]) Anchor() nd.Index {
	return k.coefs.Axes().Min.Neg()
}

// Coefficient returns the coefficient of offset o. It panics if o is outside
// Bounds().
func (k *Kernel[C]) Coefficient(o nd.Index) C {
	return k.coefs.At(o)
}

// Coefs returns the coefficients as an array indexed by offset.
// The array must not be modified.
func (k *Kernel[C]) Coefs() *nd.Array[C] {
	return k.coefs
}

// Reflect returns the point reflection of k: the coefficient of offset o in
// the result is the coefficient of -o in k.
func (k *Kernel[C]) Reflect() *Kernel[C] {
	b := k.coefs.Axes()
	r := nd.NewIn[C](nd.Box{Min: b.Max.Neg(), Max: b.Min.Neg()})
	copy(r.Data(), k.coefs.Data())
	slices.Reverse(r.Data())
	return &Kernel[C]{coefs: r}
}

// Ball returns the boolean kernel of all offsets within Euclidean distance
// r of the origin.
func Ball(rank, r int) *Kernel[bool] {
	return shape(rank, r, func(o nd.Index) bool {
		s := 0
		for _, v := range o {
			s += v * v
		}
		return s <= r*r
	})
}

// Diamond returns the boolean kernel of all offsets within Manhattan
// distance r of the origin.
func Diamond(rank, r int) *Kernel[bool] {
	return shape(rank, r, func(o nd.Index) bool {
		s := 0
		for _, v := range o {
			s += max(v, -v)
		}
		return s <= r
	})
}

func shape(rank, r int, in func(nd.Index) bool) *Kernel[bool] {
	box := Radius(rank, r).Bounds()
	coefs := nd.NewIn[bool](box)
	data := coefs.Data()
	n := 0
	box.Each(func(o nd.Index) bool {
		data[n] = in(o)
		n++
		return true
	})
	return &Kernel[bool]{coefs: coefs}
}

// MaskOf returns the coefficients of a boolean kernel in storage order. The
// slice must not be modified. ok is false for any other neighborhood.
func MaskOf(n Neighborhood) (mask []bool, ok bool) {
	k, ok := n.(*Kernel[bool])
	if !ok {
		return nil, false
	}
	return k.coefs.Data(), true
}

// WeightsOf returns the coefficients of a numeric kernel converted to R, in
// storage order. ok is false for boxes and boolean kernels.
func WeightsOf[R nd.Number](n Neighborhood) (weights []R, ok bool) {
	switch k := n.(type) {
	case *Kernel[int]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[int8]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[int16]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[int32]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[int64]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[uint]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[uint8]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[uint16]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[uint32]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[uint64]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[float32]:
		return convert[R](k.coefs.Data()), true
	case *Kernel[float64]:
		return convert[R](k.coefs.Data()), true
	default:
		return nil, false
	}
}

// CoefficientType returns the element type of the coefficients of a kernel,
// or nil for boxes.
func CoefficientType(n Neighborhood) reflect.Type {
	if k, ok := n.(interface{ coefficientType() reflect.Type }); ok {
		return k.coefficientType()
	}
	return nil
}

func convert[R, C nd.Number](xs []C) []R {
	out := make([]R, len(xs))
	for i, x := range xs {
		out[i] = R(x)
	}
	return out
}
