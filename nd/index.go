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

// Index is a Cartesian index: one integer per axis.
// It addresses array elements and expresses neighborhood offsets.
//
// The binary operations assume both operands have the same rank; the result
// always has the rank of the receiver.
type Index []int

// Fill returns an Index of the given rank with every component set to v.
func Fill(rank, v int) Index {
	i := make(Index, rank)
	for d := range i {
		i[d] = v
	}
	return i
}

// Rank returns the number of axes.
func (i Index) Rank() int {
	return len(i)
}

// Clone returns a copy of i.
func (i Index) Clone() Index {
	if i == nil {
		return nil
	}
	c := make(Index, len(i))
	copy(c, i)
	return c
}

// Add returns i + j.
func (i Index) Add(j Index) Index {
	r := make(Index, len(i))
	for d := range i {
		r[d] = i[d] + j[d]
	}
	return r
}

// Sub returns i - j.
func (i Index) Sub(j Index) Index {
	r := make(Index, len(i))
	for d := range i {
		r[d] = i[d] - j[d]
	}
	return r
}

// Neg returns -i.
func (i Index) Neg() Index {
	r := make(Index, len(i))
	for d := range i {
		r[d] = -i[d]
	}
	return r
}

// Max returns the elementwise maximum of i and j.
func (i Index) Max(j Index) Index {
	r := make(Index, len(i))
	for d := range i {
		r[d] = max(i[d], j[d])
	}
	return r
}

// Min returns the elementwise minimum of i and j.
func (i Index) Min(j Index) Index {
	r := make(Index, len(i))
	for d := range i {
		r[d] = min(i[d], j[d])
	}
	return r
}

// LessEq reports whether i <= j on every axis. This is a partial order:
// two indices may be incomparable.
func (i Index) LessEq(j Index) bool {
	if len(i) != len(j) {
		return false
	}
	for d := range i {
		if i[d] > j[d] {
			return false
		}
	}
	return true
}

// Equal reports whether i and j have the same rank and components.
func (i Index) Equal(j Index) bool {
	if len(i) != len(j) {
		return false
	}
	for d := range i {
		if i[d] != j[d] {
			return false
		}
	}
	return true
}
