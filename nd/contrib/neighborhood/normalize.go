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

	"github.com/samber/lo"

	"github.com/ajroetker/go-localfilters/nd"
)

// DefaultRadius is the radius used when no neighborhood is given: a
// 3x3x...x3 centered box.
const DefaultRadius = 1

// Sizes is a per-axis size specification. Odd sizes are centered exactly;
// an even size s covers offsets -(s/2) to s/2-1.
type Sizes []int

// Normalize converts a loosely typed specification into a Neighborhood of
// the given rank:
//
//	nil                      default CenteredBox of radius DefaultRadius
//	int                      CenteredBox of that radius on every axis
//	Sizes                    per-axis sizes (CenteredBox when all odd)
//	nd.Box, [2]nd.Index      CartesianBox of explicit offsets
//	*nd.Array[C]             Kernel[C] anchored at the array center
//	Neighborhood             returned as is
//
// A specification whose rank differs from rank fails with
// nd.ErrShapeMismatch; an invalid one with nd.ErrInvalidNeighborhood.
func Normalize(rank int, spec any) (Neighborhood, error) {
	var (
		n   Neighborhood
		err error
	)
	switch s := spec.(type) {
	case nil:
		return Radius(rank, DefaultRadius), nil
	case int:
		if s < 0 {
			return nil, fmt.Errorf("%w: negative radius %d", nd.ErrInvalidNeighborhood, s)
		}
		return Radius(rank, s), nil
	case Sizes:
		n, err = fromSizes(s)
	case []int:
		n, err = fromSizes(s)
	case nd.Box:
		n, err = Cartesian(s.Min, s.Max)
	case [2]nd.Index:
		n, err = Cartesian(s[0], s[1])
	case Neighborhood:
		if k, ok := s.(interface{ null() bool }); ok && k.null() {
			return nil, fmt.Errorf("%w: nil kernel", nd.ErrInvalidNeighborhood)
		}
		n = s
	case *nd.Array[bool]:
		n, err = kernelOf(s)
	case *nd.Array[int]:
		n, err = kernelOf(s)
	case *nd.Array[int8]:
		n, err = kernelOf(s)
	case *nd.Array[int16]:
		n, err = kernelOf(s)
	case *nd.Array[int32]:
		n, err = kernelOf(s)
	case *nd.Array[int64]:
		n, err = kernelOf(s)
	case *nd.Array[uint]:
		n, err = kernelOf(s)
	case *nd.Array[uint8]:
		n, err = kernelOf(s)
	case *nd.Array[uint16]:
		n, err = kernelOf(s)
	case *nd.Array[uint32]:
		n, err = kernelOf(s)
	case *nd.Array[uint64]:
		n, err = kernelOf(s)
	case *nd.Array[float32]:
		n, err = kernelOf(s)
	case *nd.Array[float64]:
		n, err = kernelOf(s)
	default:
		return nil, fmt.Errorf("%w: unsupported specification of type %T", nd.ErrInvalidNeighborhood, spec)
	}
	if err != nil {
		return nil, err
	}
	if n.Rank() != rank {
		return nil, nd.NewShapeMismatch("neighborhood rank", rank, n.Rank())
	}
	return n, nil
}

func kernelOf[C Coefficient](a *nd.Array[C]) (Neighborhood, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil %T", nd.ErrInvalidNeighborhood, a)
	}
	return NewKernel(a), nil
}

func fromSizes(sizes []int) (Neighborhood, error) {
	if bad, found := lo.Find(sizes, func(s int) bool { return s < 1 }); found {
		return nil, fmt.Errorf("%w: size %d", nd.ErrInvalidNeighborhood, bad)
	}
	if lo.EveryBy(sizes, func(s int) bool { return s%2 == 1 }) {
		return Centered(lo.Map(sizes, func(s int, _ int) int { return s / 2 })...), nil
	}
	first := lo.Map(sizes, func(s int, _ int) int { return -(s / 2) })
	last := lo.Map(sizes, func(s int, _ int) int { return (s - 1) / 2 })
	return Cartesian(first, last)
}
