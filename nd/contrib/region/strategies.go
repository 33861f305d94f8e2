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

package region

import (
	"github.com/samber/lo"

	"github.com/ajroetker/go-localfilters/nd"
)

// Compose resolves a region by composing whole indices: one elementwise
// max and one elementwise min over nd.Index values. It allocates the
// intermediate indices.
type Compose struct{}

func (Compose) Name() string { return "compose" }

func (Compose) Resolve(dst, bounds, nbhd nd.Box, i nd.Index) {
	copy(dst.Min, bounds.Min.Max(i.Sub(nbhd.Max)))
	copy(dst.Max, bounds.Max.Min(i.Sub(nbhd.Min)))
}

func (Compose) ResolveCentered(dst, bounds nd.Box, off, i nd.Index) {
	copy(dst.Min, bounds.Min.Max(i.Sub(off)))
	copy(dst.Max, bounds.Max.Min(i.Add(off)))
}

// Tuple resolves a region axis by axis for a rank known only at run time.
// It does not allocate.
type Tuple struct{}

func (Tuple) Name() string { return "tuple" }

func (Tuple) Resolve(dst, bounds, nbhd nd.Box, i nd.Index) {
	for d := range i {
		dst.Min[d] = max(bounds.Min[d], i[d]-nbhd.Max[d])
		dst.Max[d] = min(bounds.Max[d], i[d]-nbhd.Min[d])
	}
}

func (Tuple) ResolveCentered(dst, bounds nd.Box, off, i nd.Index) {
	for d := range i {
		dst.Min[d] = max(bounds.Min[d], i[d]-off[d])
		dst.Max[d] = min(bounds.Max[d], i[d]+off[d])
	}
}

// Mapped resolves a region by mapping a per-axis range constructor over the
// axis numbers. It allocates the mapped corners.
type Mapped struct{}

func (Mapped) Name() string { return "mapped" }

func (Mapped) Resolve(dst, bounds, nbhd nd.Box, i nd.Index) {
	axes := lo.Range(len(i))
	first := lo.Map(axes, func(d int, _ int) int { return max(bounds.Min[d], i[d]-nbhd.Max[d]) })
	last := lo.Map(axes, func(d int, _ int) int { return min(bounds.Max[d], i[d]-nbhd.Min[d]) })
	copy(dst.Min, first)
	copy(dst.Max, last)
}

func (Mapped) ResolveCentered(dst, bounds nd.Box, off, i nd.Index) {
	axes := lo.Range(len(i))
	first := lo.Map(axes, func(d int, _ int) int { return max(bounds.Min[d], i[d]-off[d]) })
	last := lo.Map(axes, func(d int, _ int) int { return min(bounds.Max[d], i[d]+off[d]) })
	copy(dst.Min, first)
	copy(dst.Max, last)
}

// Fixed resolves a region axis by axis with the rank fixed at compile time.
// Ranks 1 to 4 use specializations generated by cmd/regiongen over
// fixed-size arrays; higher ranks fall back to Tuple.
type Fixed struct{}

func (Fixed) Name() string { return "fixed" }

//go:generate go run ../../../cmd/regiongen -ranks 4 -output fixed_gen.go
