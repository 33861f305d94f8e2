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
)

// Opening returns the dilation of the erosion of A by B. Opening removes
// bright structures smaller than B.
func Opening[T nd.Number](A *nd.Array[T], B any, opts ...Option) (*nd.Array[T], error) {
	dst, wrk := nd.Like[T](A), nd.Like[T](A)
	if err := OpeningInto(dst, wrk, A, B, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// OpeningInto stores the opening of A by B in dst, using wrk for the
// intermediate erosion. dst may be A; wrk must share storage with neither.
func OpeningInto[T nd.Number](dst, wrk, A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: opening: %w", err)
	}
	c.debug("opening", A.Axes(), b)
	if err := opening(dst, wrk, A, b, c); err != nil {
		return fmt.Errorf("localfilter: opening: %w", err)
	}
	return nil
}

// Closing returns the erosion of the dilation of A by B. Closing removes
// dark structures smaller than B.
func Closing[T nd.Number](A *nd.Array[T], B any, opts ...Option) (*nd.Array[T], error) {
	dst, wrk := nd.Like[T](A), nd.Like[T](A)
	if err := ClosingInto(dst, wrk, A, B, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ClosingInto stores the closing of A by B in dst, using wrk for the
// intermediate dilation. dst may be A; wrk must share storage with neither.
func ClosingInto[T nd.Number](dst, wrk, A *nd.Array[T], B any, opts ...Option) error {
	c := newConfig(opts)
	b, err := neighborhood.Normalize(A.Rank(), B)
	if err != nil {
		return fmt.Errorf("localfilter: closing: %w", err)
	}
	c.debug("closing", A.Axes(), b)
	if err := closing(dst, wrk, A, b, c); err != nil {
		return fmt.Errorf("localfilter: closing: %w", err)
	}
	return nil
}

// TopHat returns A minus its opening by r, which keeps the bright details
// smaller than r. With WithSmoothing(s) the input of the opening is first
// closed by s; the result may then be negative, so smoothing an unsigned
// array fails with nd.ErrUnrepresentable.
func TopHat[T nd.Number](A *nd.Array[T], r any, opts ...Option) (*nd.Array[T], error) {
	dst, wrk := nd.Like[T](A), nd.Like[T](A)
	if err := TopHatInto(dst, wrk, A, r, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// TopHatInto stores the top-hat of A in dst. dst may be A; wrk must share
// storage with neither.
func TopHatInto[T nd.Number](dst, wrk, A *nd.Array[T], r any, opts ...Option) error {
	if err := hat(dst, wrk, A, r, false, newConfig(opts)); err != nil {
		return fmt.Errorf("localfilter: tophat: %w", err)
	}
	return nil
}

// BottomHat returns the closing of A by r minus A, which keeps the dark
// details smaller than r. With WithSmoothing(s) the input of the closing is
// first opened by s, and unsigned arrays fail with nd.ErrUnrepresentable as
// for TopHat.
func BottomHat[T nd.Number](A *nd.Array[T], r any, opts ...Option) (*nd.Array[T], error) {
	dst, wrk := nd.Like[T](A), nd.Like[T](A)
	if err := BottomHatInto(dst, wrk, A, r, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// BottomHatInto stores the bottom-hat of A in dst. dst may be A; wrk must
// share storage with neither.
func BottomHatInto[T nd.Number](dst, wrk, A *nd.Array[T], r any, opts ...Option) error {
	if err := hat(dst, wrk, A, r, true, newConfig(opts)); err != nil {
		return fmt.Errorf("localfilter: bottomhat: %w", err)
	}
	return nil
}

func checkWorkspace[T any](dst, wrk, src *nd.Array[T]) error {
	if err := nd.CheckAxes("destination axes", src, dst); err != nil {
		return err
	}
	if err := nd.CheckAxes("workspace axes", src, wrk); err != nil {
		return err
	}
	if nd.Overlap(wrk, src) || nd.Overlap(wrk, dst) {
		return fmt.Errorf("%w: workspace shares storage with source or destination", nd.ErrAliasing)
	}
	return nil
}

func opening[T nd.Number](dst, wrk, src *nd.Array[T], b neighborhood.Neighborhood, c config) error {
	if err := checkWorkspace(dst, wrk, src); err != nil {
		return err
	}
	c.logger.Debug("localfilter pass", "op", "opening", "pass", "erode")
	if err := erode(wrk, src, b, c); err != nil {
		return err
	}
	c.logger.Debug("localfilter pass", "op", "opening", "pass", "dilate")
	return dilate(dst, wrk, b, c)
}

func closing[T nd.Number](dst, wrk, src *nd.Array[T], b neighborhood.Neighborhood, c config) error {
	if err := checkWorkspace(dst, wrk, src); err != nil {
		return err
	}
	c.logger.Debug("localfilter pass", "op", "closing", "pass", "dilate")
	if err := dilate(wrk, src, b, c); err != nil {
		return err
	}
	c.logger.Debug("localfilter pass", "op", "closing", "pass", "erode")
	return erode(dst, wrk, b, c)
}

// hat computes A - opening(A) (top-hat) or closing(A) - A (bottom-hat). dst
// holds the optional smoothed input and then the opening or closing, so a
// dst that is A works on a snapshot of A.
func hat[T nd.Number](dst, wrk, A *nd.Array[T], r any, bottom bool, c config) error {
	b, err := neighborhood.Normalize(A.Rank(), r)
	if err != nil {
		return err
	}
	var s neighborhood.Neighborhood
	if c.smoothing {
		if !nd.IsSigned[T]() {
			var zero T
			return fmt.Errorf("%w: smoothed differences may be negative, %T is unsigned", nd.ErrUnrepresentable, zero)
		}
		if s, err = neighborhood.Normalize(A.Rank(), c.smooth); err != nil {
			return err
		}
	}
	if err := checkWorkspace(dst, wrk, A); err != nil {
		return err
	}
	if nd.Overlap(dst, A) {
		if !nd.Same(dst, A) {
			return fmt.Errorf("%w: destination partially overlaps source", nd.ErrAliasing)
		}
		A = A.Clone()
	}
	op := "tophat"
	if bottom {
		op = "bottomhat"
	}
	c.debug(op, A.Axes(), b)

	src := A
	if s != nil {
		if bottom {
			err = opening(dst, wrk, A, s, c)
		} else {
			err = closing(dst, wrk, A, s, c)
		}
		if err != nil {
			return err
		}
		src = dst
	}
	if bottom {
		err = closing(dst, wrk, src, b, c)
	} else {
		err = opening(dst, wrk, src, b, c)
	}
	if err != nil {
		return err
	}

	out, in := dst.Data(), A.Data()
	if bottom {
		for i := range out {
			out[i] -= in[i]
		}
	} else {
		for i := range out {
			out[i] = in[i] - out[i]
		}
	}
	return nil
}
