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
	"os"
	"strings"
	"sync/atomic"

	"github.com/ajroetker/go-localfilters/nd"
)

// Resolver computes the region of input indices visited for one output
// index. All implementations return identical regions.
//
// dst must have the rank of i; its corners are overwritten. No resolver
// retains its arguments.
type Resolver interface {
	// Name returns a short identifier, e.g. "tuple".
	Name() string

	// Resolve stores in dst the region
	//
	//	[max(bounds.Min, i - nbhd.Max), min(bounds.Max, i - nbhd.Min)]
	//
	// for a neighborhood of offsets nbhd.
	Resolve(dst, bounds, nbhd nd.Box, i nd.Index)

	// ResolveCentered stores in dst the region
	//
	//	[max(bounds.Min, i - off), min(bounds.Max, i + off)]
	//
	// for a symmetric neighborhood of half-widths off.
	ResolveCentered(dst, bounds nd.Box, off, i nd.Index)
}

// EnvResolver names the environment variable selecting the default resolver.
const EnvResolver = "LOCALFILTERS_RESOLVER"

var all = []Resolver{Compose{}, Tuple{}, Fixed{}, Mapped{}}

// All returns every resolver, in a fixed order.
func All() []Resolver {
	out := make([]Resolver, len(all))
	copy(out, all)
	return out
}

// ByName returns the resolver with the given name (case-insensitive).
func ByName(name string) (Resolver, bool) {
	for _, r := range all {
		if strings.EqualFold(r.Name(), name) {
			return r, true
		}
	}
	return nil, false
}

// Names returns the names of all resolvers.
func Names() []string {
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.Name()
	}
	return names
}

type holder struct{ r Resolver }

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{r: fromEnv()})
}

// fromEnv returns the resolver named by EnvResolver, or Tuple when the
// variable is unset or names no resolver.
func fromEnv() Resolver {
	val := strings.TrimSpace(os.Getenv(EnvResolver))
	if val == "" {
		return Tuple{}
	}
	if r, ok := ByName(val); ok {
		return r
	}
	nd.Logger().Warn("region: unknown resolver, using default",
		"env", EnvResolver, "value", val, "default", Tuple{}.Name(), "known", Names())
	return Tuple{}
}

// Default returns the resolver used when a caller does not choose one.
func Default() Resolver {
	return current.Load().r
}

// SetDefault replaces the default resolver and returns the previous one.
// A nil r restores the environment-selected resolver.
func SetDefault(r Resolver) Resolver {
	if r == nil {
		r = fromEnv()
	}
	return current.Swap(&holder{r: r}).r
}
