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
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

// NoCoefficient is the coefficient position passed to update functions for
// neighborhoods without coefficients.
const NoCoefficient = -1

// SeedFunc returns the initial accumulator for an output index given the
// source value at that index.
type SeedFunc[T, V any] func(a T) V

// UpdateFunc folds the source value a of one visited index into v. k is the
// storage position of the kernel coefficient relating the output index i to
// the visited index j, i.e. of offset i - j, or NoCoefficient for boxes.
type UpdateFunc[T, V any] func(v V, a T, k int) V

// StoreFunc writes the folded accumulator of the output index at storage
// position at of dst. A non-nil error aborts the reduction.
type StoreFunc[D, V any] func(dst []D, at int, v V) error

// RowFunc folds row, a run of source values consecutive along the last
// axis, into v. Every value of the row takes part with no coefficient.
type RowFunc[T, V any] func(v V, row []T) V

// Reduce is the traversal shared by every local filter. For each index i of
// src, in row-major order, it computes
//
//	v := seed(src[i])
//	for j in region(i): v = update(v, src[j], k(i - j))
//	store(dst, i, v)
//
// where region(i) is the neighborhood b translated to i and clipped to the
// axes of src by r (region.Default() if nil).
//
// dst must have the axes of src. If dst and src are the same array the
// source is snapshotted first, so every output reads unmodified input;
// arrays that merely overlap are rejected with nd.ErrAliasing. An error
// returned by store is wrapped in an *nd.IndexError naming the output index.
func Reduce[D, T, V any](dst *nd.Array[D], src *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver,
	seed SeedFunc[T, V], update UpdateFunc[T, V], store StoreFunc[D, V]) error {
	out := dst.Data()
	return traverse(dst, src, b, r, func(t *traversal[T], at int) error {
		v := seed(t.in[at])
		if t.weighted {
			t.rows(func(off, k, n int) {
				for range n {
					v = update(v, t.in[off], k)
					off++
					k--
				}
			})
		} else {
			t.rows(func(off, _, n int) {
				for _, a := range t.in[off : off+n] {
					v = update(v, a, NoCoefficient)
				}
			})
		}
		return store(out, at, v)
	})
}

// ReduceRows is Reduce for boxes, where no visited index carries a
// coefficient: each row of a region is handed to fold at once. Kernels fail
// with nd.ErrUnsupportedKernel.
func ReduceRows[D, T, V any](dst *nd.Array[D], src *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver,
	seed SeedFunc[T, V], fold RowFunc[T, V], store StoreFunc[D, V]) error {
	if b.Kind().HasCoefficients() {
		return fmt.Errorf("%w: row folds need a box, got %s", nd.ErrUnsupportedKernel, b.Kind())
	}
	out := dst.Data()
	return traverse(dst, src, b, r, func(t *traversal[T], at int) error {
		v := seed(t.in[at])
		t.rows(func(off, _, n int) {
			v = fold(v, t.in[off:off+n])
		})
		return store(out, at, v)
	})
}

// traversal is the state of one pass over the output indices.
type traversal[T any] struct {
	axes, nbhd, reg   nd.Box
	strides, kstrides []int
	in                []T
	weighted          bool
	i, j              nd.Index
}

// traverse checks dst, src and b, then calls visit with the storage position
// of every index of src in row-major order, after resolving its region into
// t.reg.
func traverse[D, T any](dst *nd.Array[D], src *nd.Array[T], b neighborhood.Neighborhood, r region.Resolver,
	visit func(t *traversal[T], at int) error) error {
	if err := nd.CheckAxes("destination axes", src, dst); err != nil {
		return err
	}
	axes := src.Axes()
	rank := axes.Rank()
	if b.Rank() != rank {
		return nd.NewShapeMismatch("neighborhood rank", rank, b.Rank())
	}
	if r == nil {
		r = region.Default()
	}
	if nd.Overlap(dst, src) {
		if !nd.Same(dst, src) {
			return fmt.Errorf("%w: destination partially overlaps source", nd.ErrAliasing)
		}
		src = src.Clone()
	}
	if axes.Len() == 0 {
		return nil
	}

	nbhd := b.Bounds()
	t := &traversal[T]{
		axes:     axes,
		nbhd:     nbhd,
		reg:      nd.MakeBox(rank),
		strides:  src.Strides(),
		kstrides: nd.RowMajorStrides(nbhd.Sizes()),
		in:       src.Data(),
		weighted: b.Kind().HasCoefficients(),
		i:        axes.Min.Clone(),
		j:        make(nd.Index, rank),
	}
	resolve := func() { r.Resolve(t.reg, axes, nbhd, t.i) }
	if c, ok := b.(neighborhood.CenteredBox); ok {
		half := c.Half()
		resolve = func() { r.ResolveCentered(t.reg, axes, half, t.i) }
	}

	for at := range t.in {
		resolve()
		if err := visit(t, at); err != nil {
			return &nd.IndexError{At: t.i.Clone(), Err: err}
		}
		axes.Next(t.i)
	}
	return nil
}

// rows calls fn for every row of the current region along the last axis,
// in row-major order, with the source offset and coefficient position of
// its first index and its length. Coefficient positions decrease by one
// along a row; they are NoCoefficient for boxes.
func (t *traversal[T]) rows(fn func(off, k, n int)) {
	if t.reg.Empty() {
		return
	}
	rank := len(t.i)
	if rank == 0 {
		k := NoCoefficient
		if t.weighted {
			k = 0
		}
		fn(0, k, 1)
		return
	}
	last := rank - 1
	j := t.j
	copy(j, t.reg.Min)
	for {
		off, k := 0, NoCoefficient
		for d := range rank {
			off += (j[d] - t.axes.Min[d]) * t.strides[d]
		}
		if t.weighted {
			k = 0
			for d := range rank {
				k += (t.i[d] - j[d] - t.nbhd.Min[d]) * t.kstrides[d]
			}
		}
		fn(off, k, t.reg.Max[last]-t.reg.Min[last]+1)

		d := last - 1
		for ; d >= 0; d-- {
			j[d]++
			if j[d] <= t.reg.Max[d] {
				break
			}
			j[d] = t.reg.Min[d]
		}
		if d < 0 {
			return
		}
	}
}
