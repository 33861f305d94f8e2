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
	"math"
	"reflect"
)

// This file provides the numeric traits of the element types: sentinel
// extrema and classification. Traits are resolved once per call by the
// filters, never inside the per-element loops.

func kindOf[T Number]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	k := kindOf[T]()
	return k == reflect.Float32 || k == reflect.Float64
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Number]() bool {
	switch kindOf[T]() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false
	default:
		return true
	}
}

// MaxValue returns the largest value of T: +Inf for floating-point types and
// the maximum representable integer otherwise. Erosion uses it as its seed.
func MaxValue[T Number]() T {
	switch kindOf[T]() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(1)
		return T(inf)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MaxInt64)
		if kindOf[T]() == reflect.Int {
			v = int64(math.MaxInt)
		}
		return T(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	default:
		v := uint64(math.MaxUint)
		if kindOf[T]() == reflect.Uint64 {
			v = math.MaxUint64
		}
		return T(v)
	}
}

// MinValue returns the smallest value of T: -Inf for floating-point types,
// the minimum representable integer for signed types and 0 for unsigned ones.
// Dilation uses it as its seed.
func MinValue[T Number]() T {
	switch kindOf[T]() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(-1)
		return T(inf)
	case reflect.Int8:
		v := int64(math.MinInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return T(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MinInt64)
		if kindOf[T]() == reflect.Int {
			v = int64(math.MinInt)
		}
		return T(v)
	default:
		return 0
	}
}

// Widens reports whether every value of T converts to R without losing its
// kind or range: R is floating-point whenever T is, a floating-point R is at
// least as wide as a floating-point T, and an integer R holds the sign and
// magnitude of an integer T. Any floating-point R widens an integer T.
func Widens[R, T Number]() bool {
	return WidensType(reflect.TypeFor[R](), reflect.TypeFor[T]())
}

// WidensType is Widens for element types known only at run time.
func WidensType(r, t reflect.Type) bool {
	rFloat, tFloat := isFloatKind(r.Kind()), isFloatKind(t.Kind())
	switch {
	case tFloat:
		return rFloat && r.Size() >= t.Size()
	case rFloat:
		return true
	}
	rSigned, tSigned := isSignedKind(r.Kind()), isSignedKind(t.Kind())
	switch {
	case tSigned && !rSigned:
		return false
	case !tSigned && rSigned:
		return r.Size() > t.Size()
	default:
		return r.Size() >= t.Size()
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return isFloatKind(k)
	}
}
