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

package nd

import (
	"fmt"
	"unsafe"
)

// Array is a dense N-dimensional array stored in row-major order (last axis
// contiguous). Its axes are an arbitrary Box, so the first index along an
// axis need not be 0.
//
// Example usage:
//
//	a := nd.New[float64](3, 4)          // axes [0:2, 0:3]
//	b := nd.NewIn[int16](nd.NewBox(nd.Index{-1, -1}, nd.Index{1, 1}))
//	b.Set(nd.Index{0, 0}, 7)
type Array[T any] struct {
	data    []T
	axes    Box
	strides []int
}

// rowMajorStrides computes row-major strides (in elements) for sizes.
func rowMajorStrides(sizes []int) []int {
	strides := make([]int, len(sizes))
	s := 1
	for d := len(sizes) - 1; d >= 0; d-- {
		strides[d] = s
		s *= sizes[d]
	}
	return strides
}

// RowMajorStrides returns the row-major strides, in elements, of a dense
// array whose axes have the given sizes.
func RowMajorStrides(sizes []int) []int {
	return rowMajorStrides(sizes)
}

// New creates a zeroed array with axes [0, dims-1].
func New[T any](dims ...int) *Array[T] {
	return NewIn[T](Shape(dims...))
}

// NewIn creates a zeroed array with the given axes.
func NewIn[T any](axes Box) *Array[T] {
	axes = axes.Clone()
	return &Array[T]{
		data:    make([]T, axes.Len()),
		axes:    axes,
		strides: rowMajorStrides(axes.Sizes()),
	}
}

// FromSlice wraps data, without copying it, as an array with axes
// [0, dims-1]. len(data) must equal the product of dims.
func FromSlice[T any](data []T, dims ...int) (*Array[T], error) {
	return Wrap(data, Shape(dims...))
}

// Wrap wraps data, without copying it, as an array with the given axes.
func Wrap[T any](data []T, axes Box) (*Array[T], error) {
	if n := axes.Len(); n != len(data) {
		return nil, NewShapeMismatch(fmt.Sprintf("%d elements for axes %v", n, axes), n, len(data))
	}
	axes = axes.Clone()
	return &Array[T]{
		data:    data,
		axes:    axes,
		strides: rowMajorStrides(axes.Sizes()),
	}, nil
}

// Like creates a zeroed array of element type U with the axes of a.
func Like[U, T any](a *Array[T]) *Array[U] {
	return NewIn[U](a.axes)
}

// Axes returns a copy of the index range of a.
func (a *Array[T]) Axes() Box {
	return a.axes.Clone()
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return a.axes.Rank()
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Shape returns the number of indices along every axis.
func (a *Array[T]) Shape() []int {
	return a.axes.Sizes()
}

// Strides returns the row-major strides in elements.
func (a *Array[T]) Strides() []int {
	s := make([]int, len(a.strides))
	copy(s, a.strides)
	return s
}

// Data returns the backing slice in row-major order.
func (a *Array[T]) Data() []T {
	return a.data
}

// Offset returns the position of index i in Data. i must lie inside the
// axes of a.
func (a *Array[T]) Offset(i Index) int {
	off := 0
	for d, s := range a.strides {
		off += (i[d] - a.axes.Min[d]) * s
	}
	return off
}

// At returns the element at index i. It panics if i is out of range.
func (a *Array[T]) At(i Index) T {
	if !a.axes.Contains(i) {
		panic(fmt.Sprintf("nd: index %v out of range %v", []int(i), a.axes))
	}
	return a.data[a.Offset(i)]
}

// Set stores v at index i. It panics if i is out of range.
func (a *Array[T]) Set(i Index, v T) {
	if !a.axes.Contains(i) {
		panic(fmt.Sprintf("nd: index %v out of range %v", []int(i), a.axes))
	}
	a.data[a.Offset(i)] = v
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	c := NewIn[T](a.axes)
	copy(c.data, a.data)
	return c
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// SameAxes reports whether a and b have identical axes.
func SameAxes[T, U any](a *Array[T], b *Array[U]) bool {
	return a.axes.Rank() == b.axes.Rank() &&
		a.axes.Min.Equal(b.axes.Min) && a.axes.Max.Equal(b.axes.Max)
}

// span returns the address range [lo, hi) of the backing storage.
func span[T any](data []T) (lo, hi uintptr) {
	if len(data) == 0 {
		return 0, 0
	}
	var zero T
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	return lo, lo + uintptr(len(data))*unsafe.Sizeof(zero)
}

// Same reports whether a and b are backed by exactly the same storage, as
// when an operator is called with the same array as source and destination.
func Same[T, U any](a *Array[T], b *Array[U]) bool {
	alo, ahi := span(a.data)
	blo, bhi := span(b.data)
	return alo != 0 && alo == blo && ahi == bhi
}

// Overlap reports whether the storage of a and b intersects.
func Overlap[T, U any](a *Array[T], b *Array[U]) bool {
	alo, ahi := span(a.data)
	blo, bhi := span(b.data)
	return alo < bhi && blo < ahi
}

// Map applies fn to every element of a and returns the results in a new
// array with the same axes.
func Map[U, T any](a *Array[T], fn func(T) U) *Array[U] {
	out := Like[U](a)
	for i, v := range a.data {
		out.data[i] = fn(v)
	}
	return out
}
