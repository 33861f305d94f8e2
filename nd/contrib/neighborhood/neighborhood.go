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
	"fmt"

	"github.com/ajroetker/go-localfilters/nd"
)

// Kind identifies the variant of a Neighborhood.
type Kind int

const (
	// KindCenteredBox is a symmetric box without coefficients.
	KindCenteredBox Kind = iota

	// KindCartesianBox is an arbitrary box without coefficients.
	KindCartesianBox

	// KindMask is a kernel with boolean coefficients.
	KindMask

	// KindWeights is a kernel with numeric coefficients.
	KindWeights
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCenteredBox:
		return "centered-box"
	case KindCartesianBox:
		return "cartesian-box"
	case KindMask:
		return "mask"
	case KindWeights:
		return "weights"
	default:
		return "unknown"
	}
}

// HasCoefficients reports whether neighborhoods of this kind carry one
// coefficient per cell.
func (k Kind) HasCoefficients() bool {
	return k == KindMask || k == KindWeights
}

// Neighborhood is a structuring element. The set of implementations is
// closed: CenteredBox, CartesianBox and *Kernel.
type Neighborhood interface {
	// Rank returns the number of axes.
	Rank() int

	// Bounds returns the inclusive range of offsets covered.
	Bounds() nd.Box

	// Kind returns the variant.
	Kind() Kind

	sealed()
}

// CenteredBox is a symmetric box of half-width Half()[d] along axis d.
// Its bounds satisfy Min == -Max.
type CenteredBox struct {
	half nd.Index
}

// Centered returns the centered box with the given half-widths.
// It panics if a half-width is negative.
func Centered(half ...int) CenteredBox {
	for d, h := range half {
		if h < 0 {
			panic(fmt.Sprintf("neighborhood: negative half-width %d along axis %d", h, d))
		}
	}
	return CenteredBox{half: nd.Index(half).Clone()}
}

// Radius returns the centered box of half-width r on every one of rank axes,
// i.e. a (2r+1)x...x(2r+1) box.
func Radius(rank, r int) CenteredBox {
	return Centered(nd.Fill(rank, r)...)
}

// Half returns a copy of the half-widths.
func (b CenteredBox) Half() nd.Index { return b.half.Clone() }

func (b CenteredBox) Rank() int { return len(b.half) }

func (b CenteredBox) Bounds() nd.Box {
	return nd.Box{Min: b.half.Neg(), Max: b.half.Clone()}
}

func (CenteredBox) Kind() Kind { return KindCenteredBox }

func (CenteredBox) sealed() {}

// CartesianBox is a possibly asymmetric box of offsets [min, max].
type CartesianBox struct {
	bounds nd.Box
}

// Cartesian returns the box of offsets [min, max]. It fails with
// nd.ErrShapeMismatch if the corners differ in rank and with
// nd.ErrInvalidNeighborhood if min > max on some axis.
func Cartesian(min, max nd.Index) (CartesianBox, error) {
	if len(min) != len(max) {
		return CartesianBox{}, nd.NewShapeMismatch("box corner rank", len(min), len(max))
	}
	if !min.LessEq(max) {
		return CartesianBox{}, fmt.Errorf("%w: first offset %v exceeds last offset %v",
			nd.ErrInvalidNeighborhood, []int(min), []int(max))
	}
	return CartesianBox{bounds: nd.NewBox(min, max)}, nil
}

func (b CartesianBox) Rank() int { return b.bounds.Rank() }

func (b CartesianBox) Bounds() nd.Box { return b.bounds.Clone() }

func (CartesianBox) Kind() Kind { return KindCartesianBox }

func (CartesianBox) sealed() {}

// Contains reports whether offset belongs to n: it lies within the bounds
// and, for a boolean kernel, its cell is set. Erosion is anti-extensive and
// dilation extensive when n contains the zero offset.
func Contains(n Neighborhood, offset nd.Index) bool {
	if !n.Bounds().Contains(offset) {
		return false
	}
	if m, ok := n.(*Kernel[bool]); ok {
		return m.Coefficient(offset)
	}
	return true
}
