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
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
)

// Row reductions used by ReduceRows for box neighborhoods. Rows shorter than
// rowLanes are folded one value at a time; longer rows keep rowLanes
// independent accumulators and combine them before the tail.
//
// min and max are exact whatever the grouping (NaN and signed zeros
// included), so the results equal the per-element fold. Sums are kept in
// visiting order.

// EnvNoRowFolds names the environment variable that, set to a true value,
// makes box neighborhoods use the per-element fold by default.
const EnvNoRowFolds = "LOCALFILTERS_NO_ROW_FOLDS"

const rowLanes = 4

// rowFoldsDefault is read once at init, like the default resolver.
var rowFoldsDefault = func() bool {
	val := strings.TrimSpace(os.Getenv(EnvNoRowFolds))
	if val == "" {
		return true
	}
	off, err := strconv.ParseBool(val)
	if err != nil {
		nd.Logger().Warn("localfilter: invalid boolean, row folds stay enabled", "env", EnvNoRowFolds, "value", val)
		return true
	}
	return !off
}()

func minRow[T nd.Number](v T, row []T) T {
	if len(row) < rowLanes {
		for _, a := range row {
			v = min(v, a)
		}
		return v
	}
	m0, m1, m2, m3 := row[0], row[1], row[2], row[3]
	i := rowLanes
	for ; i+rowLanes <= len(row); i += rowLanes {
		m0 = min(m0, row[i])
		m1 = min(m1, row[i+1])
		m2 = min(m2, row[i+2])
		m3 = min(m3, row[i+3])
	}
	v = min(v, m0, m1, m2, m3)
	for ; i < len(row); i++ {
		v = min(v, row[i])
	}
	return v
}

func maxRow[T nd.Number](v T, row []T) T {
	if len(row) < rowLanes {
		for _, a := range row {
			v = max(v, a)
		}
		return v
	}
	m0, m1, m2, m3 := row[0], row[1], row[2], row[3]
	i := rowLanes
	for ; i+rowLanes <= len(row); i += rowLanes {
		m0 = max(m0, row[i])
		m1 = max(m1, row[i+1])
		m2 = max(m2, row[i+2])
		m3 = max(m3, row[i+3])
	}
	v = max(v, m0, m1, m2, m3)
	for ; i < len(row); i++ {
		v = max(v, row[i])
	}
	return v
}

func extremaRow[T nd.Number](v extrema[T], row []T) extrema[T] {
	return extrema[T]{lo: minRow(v.lo, row), hi: maxRow(v.hi, row)}
}

func sumRow[R nd.Floats, T nd.Number](v sum[R], row []T) sum[R] {
	for _, a := range row {
		v.num += R(a)
	}
	v.den += R(len(row))
	return v
}

// assign is the StoreFunc of filters whose accumulator is the result.
func assign[T any](out []T, at int, v T) error {
	out[at] = v
	return nil
}

// useRows reports whether a call with configuration c folds b by rows.
func (c config) useRows(b neighborhood.Neighborhood) bool {
	return c.rowFolds && !b.Kind().HasCoefficients()
}
