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
	"log/slog"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

// Option configures a single filter call.
type Option func(*config)

type config struct {
	resolver  region.Resolver
	logger    *slog.Logger
	smooth    any
	smoothing bool
	rowFolds  bool
}

// WithResolver selects the region strategy. The default is region.Default().
func WithResolver(r region.Resolver) Option {
	return func(c *config) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithLogger sets the logger for the call. The default is nd.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSmoothing makes TopHat and BottomHat pre-smooth their input with the
// neighborhood s (any neighborhood.Normalize specification). TopHat smooths
// with a closing, BottomHat with an opening.
func WithSmoothing(s any) Option {
	return func(c *config) {
		c.smooth, c.smoothing = s, true
	}
}

// WithRowFolds selects how box neighborhoods are folded: a row of the
// region at a time (the default) or one element at a time like kernels.
// Both give identical results. The default can be turned off with the
// EnvNoRowFolds environment variable.
func WithRowFolds(enabled bool) Option {
	return func(c *config) {
		c.rowFolds = enabled
	}
}

func newConfig(opts []Option) config {
	c := config{
		resolver: region.Default(),
		logger:   nd.Logger(),
		rowFolds: rowFoldsDefault,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) debug(op string, axes nd.Box, b neighborhood.Neighborhood) {
	c.logger.Debug("localfilter", "op", op, "resolver", c.resolver.Name(),
		"kind", b.Kind().String(), "rows", c.useRows(b), "axes", axes.String(), "bounds", b.Bounds().String())
}
