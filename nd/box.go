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
	"iter"
	"strings"
)

// Box is a rectangular range of Cartesian indices, inclusive on both corners.
// It describes array axes, neighborhood offsets and the region of input
// indices visited for one output coordinate.
//
// An axis with Max < Min is empty, and so is the whole box.
type Box struct {
	Min Index
	Max Index
}

// NewBox returns the box [min, max]. The corners are copied.
func NewBox(min, max Index) Box {
	return Box{Min: min.Clone(), Max: max.Clone()}
}

// MakeBox returns a zeroed box of the given rank, suitable as scratch space
// for region resolvers.
func MakeBox(rank int) Box {
	return Box{Min: make(Index, rank), Max: make(Index, rank)}
}

// Shape returns the box [0, dims-1] of an array with the given dimensions.
func Shape(dims ...int) Box {
	b := MakeBox(len(dims))
	for d, n := range dims {
		b.Max[d] = n - 1
	}
	return b
}

// Rank returns the number of axes.
func (b Box) Rank() int {
	return len(b.Min)
}

// Size returns the number of indices along axis d.
func (b Box) Size(d int) int {
	return max(b.Max[d]-b.Min[d]+1, 0)
}

// Sizes returns the number of indices along every axis.
func (b Box) Sizes() []int {
	s := make([]int, len(b.Min))
	for d := range s {
		s[d] = b.Size(d)
	}
	return s
}

// Len returns the number of indices in the box. A rank-0 box holds a single
// (empty) index.
func (b Box) Len() int {
	n := 1
	for d := range b.Min {
		n *= b.Size(d)
	}
	return n
}

// Empty reports whether some axis holds no index.
func (b Box) Empty() bool {
	for d := range b.Min {
		if b.Max[d] < b.Min[d] {
			return true
		}
	}
	return false
}

// Contains reports whether i lies inside the box.
func (b Box) Contains(i Index) bool {
	return len(i) == len(b.Min) && b.Min.LessEq(i) && i.LessEq(b.Max)
}

// Intersect returns the intersection of two boxes of the same rank.
func (b Box) Intersect(other Box) Box {
	return Box{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
}

// Equal reports whether both boxes cover exactly the same indices.
// Two empty boxes of the same rank are equal.
func (b Box) Equal(other Box) bool {
	if b.Rank() != other.Rank() {
		return false
	}
	if b.Empty() || other.Empty() {
		return b.Empty() && other.Empty()
	}
	return b.Min.Equal(other.Min) && b.Max.Equal(other.Max)
}

// Clone returns a deep copy of the box.
func (b Box) Clone() Box {
	return Box{Min: b.Min.Clone(), Max: b.Max.Clone()}
}

// Each calls fn for every index of the box in row-major order (last axis
// fastest) until fn returns false. The Index passed to fn is reused between
// calls; clone it to retain it.
func (b Box) Each(fn func(i Index) bool) {
	if b.Empty() {
		return
	}
	i := b.Min.Clone()
	for {
		if !fn(i) {
			return
		}
		if !b.advance(i) {
			return
		}
	}
}

// All returns an iterator over the indices of the box in row-major order.
// The yielded Index is reused between iterations.
func (b Box) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		b.Each(yield)
	}
}

// advance moves i to the next index in row-major order and reports whether
// it is still inside the box.
func (b Box) advance(i Index) bool {
	for d := len(i) - 1; d >= 0; d-- {
		i[d]++
		if i[d] <= b.Max[d] {
			return true
		}
		i[d] = b.Min[d]
	}
	return false
}

// Next moves i to the next index of the box in row-major order and reports
// whether it is still inside the box. When it returns false i has wrapped
// back to b.Min.
func (b Box) Next(i Index) bool {
	return b.advance(i)
}

// String formats the box as per-axis ranges, e.g. "[0:9, -1:1]".
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for d := range b.Min {
		if d > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d:%d", b.Min[d], b.Max[d])
	}
	sb.WriteByte(']')
	return sb.String()
}
