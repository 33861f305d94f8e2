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
	"errors"
	"fmt"
)

// Sentinel errors shared by nd and its contrib packages. Match them with
// errors.Is; the typed errors below unwrap to them.
var (
	// ErrShapeMismatch is returned when destination or workspace axes differ
	// from the source axes, or a neighborhood rank differs from the array rank.
	ErrShapeMismatch = errors.New("nd: shape mismatch")

	// ErrDivisionByZero is returned when a mean has no participating cell
	// (empty region, empty mask or zero total weight) for some coordinate.
	ErrDivisionByZero = errors.New("nd: division by zero")

	// ErrUnsupportedKernel is returned for a kernel that the requested
	// operator cannot use: a numeric kernel for erosion or dilation of a
	// non floating-point array, or a kernel without weights for convolution.
	ErrUnsupportedKernel = errors.New("nd: unsupported kernel")

	// ErrAliasing is returned when arrays that must be distinct share storage.
	ErrAliasing = errors.New("nd: aliased arrays")

	// ErrUnrepresentable is returned when results could fall outside the
	// destination element type: a convolution sum type narrower than the
	// source or kernel element type, or a smoothed top-hat or bottom-hat of
	// an unsigned array, whose differences may be negative.
	ErrUnrepresentable = errors.New("nd: result not representable")

	// ErrInvalidNeighborhood is returned for a neighborhood specification
	// that cannot be normalized (negative radius, empty size, unknown type).
	ErrInvalidNeighborhood = errors.New("nd: invalid neighborhood")
)

// ShapeMismatchError describes a failed shape precondition.
//
// It unwraps to ErrShapeMismatch.
type ShapeMismatchError struct {
	What     string
	Expected any
	Actual   any
}

// NewShapeMismatch returns a *ShapeMismatchError.
func NewShapeMismatch(what string, expected, actual any) *ShapeMismatchError {
	return &ShapeMismatchError{What: what, Expected: expected, Actual: actual}
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("nd: shape mismatch: %s: expected %v, got %v", e.What, e.Expected, e.Actual)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// IndexError reports a failure at a specific output coordinate.
type IndexError struct {
	At  Index
	Err error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("nd: at %v: %v", []int(e.At), e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// CheckAxes returns a *ShapeMismatchError naming what unless a and b have
// identical axes.
func CheckAxes[T, U any](what string, a *Array[T], b *Array[U]) error {
	if SameAxes(a, b) {
		return nil
	}
	return NewShapeMismatch(what, a.axes, b.axes)
}
