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

// Command regiongen generates the rank-specialized methods of region.Fixed.
//
// Usage:
//
//	regiongen -ranks 4 -output fixed_gen.go
//
// Or via go:generate from nd/contrib/region:
//
//	//go:generate go run ../../../cmd/regiongen -ranks 4 -output fixed_gen.go
//
// For every rank from 1 to -ranks the generator emits a resolver that converts
// its index slices to fixed-size arrays and unrolls the per-axis clipping, so
// the compiler sees constant bounds. Ranks above -ranks dispatch to
// region.Tuple.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	maxRank    = flag.Int("ranks", 4, "Highest rank to specialize (>= 1)")
	outputFile = flag.String("output", "fixed_gen.go", "Output file")
	packageOut = flag.String("pkg", "region", "Output package name")
)

func main() {
	flag.Parse()

	if *maxRank < 1 {
		fmt.Fprintf(os.Stderr, "Error: -ranks must be >= 1, got %d\n\n", *maxRank)
		flag.Usage()
		os.Exit(1)
	}

	src, err := Generate(*packageOut, *maxRank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (ranks 1-%d)\n", *outputFile, *maxRank)
}
