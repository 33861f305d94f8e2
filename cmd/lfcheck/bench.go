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

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/localfilter"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

// Timing is the mean duration of one operator call.
type Timing struct {
	Op       string
	Resolver string
	Fold     string
	PerCall  time.Duration
}

// bench times every operator on every resolver and box fold with a fixed
// input.
func bench(A *nd.Array[float64], B neighborhood.Neighborhood, ops []operator, resolvers []region.Resolver, folds []bool, iterations int) ([]Timing, error) {
	var timings []Timing
	for _, op := range ops {
		for _, r := range resolvers {
			for _, rows := range folds {
				opts := []localfilter.Option{localfilter.WithResolver(r), localfilter.WithRowFolds(rows)}
				start := time.Now()
				for range iterations {
					if _, err := op.fast(A, B, opts...); err != nil {
						return nil, fmt.Errorf("%s with %s: %w", op.name, r.Name(), err)
					}
				}
				timings = append(timings, Timing{
					Op:       op.name,
					Resolver: r.Name(),
					Fold:     foldName(rows),
					PerCall:  time.Since(start) / time.Duration(iterations),
				})
			}
		}
	}
	return timings, nil
}

func writeTimings(w io.Writer, timings []Timing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tRESOLVER\tFOLD\tPER CALL")
	for _, t := range timings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", t.Op, t.Resolver, t.Fold, t.PerCall)
	}
	return tw.Flush()
}

func newBenchCmd() *cobra.Command {
	var (
		size       []int
		radius     int
		iterations int
		opNames    []string
		resolver   string
		fold       string
		weighted   bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the filters for every region strategy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(size) == 0 || iterations < 1 || radius < 0 {
				return fmt.Errorf("need a non-empty --size, --iterations >= 1 and --radius >= 0")
			}
			ops, err := selectOperators(opNames)
			if err != nil {
				return err
			}
			resolvers, err := selectResolvers(resolver)
			if err != nil {
				return err
			}
			folds, err := selectFolds(fold)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewPCG(1, 2))
			A := nd.New[float64](size...)
			for n := range A.Data() {
				A.Data()[n] = rng.Float64()
			}
			var B neighborhood.Neighborhood = neighborhood.Radius(len(size), radius)
			if weighted {
				k := nd.NewIn[float64](B.Bounds())
				k.Fill(1)
				B = neighborhood.OffsetKernel(k)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host: %s\n", nd.Host())
			fmt.Fprintf(out, "axes: %v  neighborhood: %s %v  iterations: %d\n\n",
				A.Axes(), B.Kind(), B.Bounds(), iterations)
			nd.Logger().Info("bench", "ops", len(ops), "resolvers", len(resolvers))

			timings, err := bench(A, B, ops, resolvers, folds, iterations)
			if err != nil {
				return err
			}
			return writeTimings(out, timings)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&size, "size", []int{256, 256}, "array shape")
	f.IntVar(&radius, "radius", 1, "neighborhood radius")
	f.IntVar(&iterations, "iterations", 10, "calls per operator and resolver")
	addSelectionFlags(f, &opNames, []string{"erode", "dilate", "localmean"}, &resolver, &fold)
	f.BoolVar(&weighted, "weighted", false, "use a uniform numeric kernel instead of a box")
	return cmd
}
