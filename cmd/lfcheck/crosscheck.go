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
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/localfilter"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
	"github.com/ajroetker/go-localfilters/nd/contrib/reference"
	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

type (
	fastFunc func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error)
	slowFunc func(dst, A *nd.Array[float64], B neighborhood.Neighborhood, r region.Resolver) error
)

// operator pairs a filter with its reference implementation.
type operator struct {
	name string
	fast fastFunc
	slow slowFunc
}

var operators = []operator{
	{"erode",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.Erode(A, B, opts...)
		},
		reference.Erode[float64]},
	{"dilate",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.Dilate(A, B, opts...)
		},
		reference.Dilate[float64]},
	{"opening",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.Opening(A, B, opts...)
		},
		reference.Opening[float64]},
	{"closing",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.Closing(A, B, opts...)
		},
		reference.Closing[float64]},
	{"tophat",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.TopHat(A, B, opts...)
		},
		func(dst, A *nd.Array[float64], B neighborhood.Neighborhood, r region.Resolver) error {
			return reference.TopHat(dst, A, B, nil, r)
		}},
	{"bottomhat",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.BottomHat(A, B, opts...)
		},
		func(dst, A *nd.Array[float64], B neighborhood.Neighborhood, r region.Resolver) error {
			return reference.BottomHat(dst, A, B, nil, r)
		}},
	{"localmean",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.LocalMean[float64](A, B, opts...)
		},
		reference.LocalMean[float64, float64]},
	{"convolve",
		func(A *nd.Array[float64], B neighborhood.Neighborhood, opts ...localfilter.Option) (*nd.Array[float64], error) {
			return localfilter.Convolve[float64](A, B, opts...)
		},
		reference.Convolve[float64, float64]},
}

func operatorNames() []string {
	return lo.Map(operators, func(op operator, _ int) string { return op.name })
}

// selectOperators returns the operators named in names, all of them if
// names is empty.
func selectOperators(names []string) ([]operator, error) {
	if len(names) == 0 {
		return operators, nil
	}
	var ops []operator
	for _, name := range names {
		op, ok := lo.Find(operators, func(op operator) bool { return op.name == name })
		if !ok {
			return nil, fmt.Errorf("unknown operator %q, want one of %v", name, operatorNames())
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Mismatch is one disagreement between a filter and its reference.
type Mismatch struct {
	Trial    string
	Op       string
	Resolver string
	Fold     string
	Diff     string
}

// compare runs op on A and B with r through both implementations, folding
// boxes by rows or not. Both must fail with the same sentinel error or
// produce identical outputs.
func compare(op operator, A *nd.Array[float64], B neighborhood.Neighborhood, r region.Resolver, rows bool) (string, bool) {
	got, fastErr := op.fast(A, B, localfilter.WithResolver(r), localfilter.WithRowFolds(rows))
	want := nd.Like[float64](A)
	slowErr := op.slow(want, A, B, r)
	switch {
	case fastErr != nil || slowErr != nil:
		for _, sentinel := range []error{nd.ErrUnsupportedKernel, nd.ErrDivisionByZero, nd.ErrShapeMismatch, nd.ErrUnrepresentable} {
			if errors.Is(fastErr, sentinel) && errors.Is(slowErr, sentinel) {
				return "", true
			}
		}
		return fmt.Sprintf("errors differ: got %v, want %v", fastErr, slowErr), false
	default:
		diff := cmp.Diff(want.Data(), got.Data(), cmpopts.EquateNaNs())
		return diff, diff == ""
	}
}

// crosscheck runs every operator on every resolver and fold for each trial
// and returns the mismatches found.
func crosscheck(rng *rand.Rand, trials []Trial, ops []operator, resolvers []region.Resolver, folds []bool) ([]Mismatch, int, error) {
	var (
		mismatches []Mismatch
		runs       int
	)
	for _, t := range trials {
		for range t.Repeat {
			A := t.input(rng)
			B, err := t.element(rng)
			if err != nil {
				return nil, runs, fmt.Errorf("trial %v: %w", t, err)
			}
			for _, op := range ops {
				for _, r := range resolvers {
					for _, rows := range folds {
						runs++
						if diff, ok := compare(op, A, B, r, rows); !ok {
							mismatches = append(mismatches, Mismatch{
								Trial: t.String(), Op: op.name, Resolver: r.Name(), Fold: foldName(rows), Diff: diff,
							})
							nd.Logger().Warn("mismatch", "trial", t.String(), "op", op.name,
								"resolver", r.Name(), "fold", foldName(rows))
						}
					}
				}
			}
		}
	}
	return mismatches, runs, nil
}

func newCrosscheckCmd() *cobra.Command {
	var (
		n          int
		seed       uint64
		trialsFile string
		opNames    []string
		resolver   string
		fold       string
	)
	cmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Compare filters against the reference implementations on random inputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			var trials []Trial
			if trialsFile != "" {
				set, err := loadTrials(trialsFile)
				if err != nil {
					return err
				}
				trials = set.Trials
				if !cmd.Flags().Changed("seed") {
					seed = set.Seed
				}
			}
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			if trials == nil {
				trials = randomTrials(rng, n)
			}

			mismatches, runs, err := crosscheck(rng, trials, ops, resolvers, folds)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), mismatches, runs)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&n, "trials-count", "n", 50, "number of random trials when no --trials file is given")
	f.Uint64Var(&seed, "seed", 1, "random seed")
	f.StringVar(&trialsFile, "trials", "", "YAML file listing trials")
	addSelectionFlags(f, &opNames, nil, &resolver, &fold)
	return cmd
}

// addSelectionFlags registers --ops, --resolver and --fold on f.
func addSelectionFlags(f *pflag.FlagSet, ops *[]string, defaultOps []string, resolver, fold *string) {
	usage := "operators to run, from " + strings.Join(operatorNames(), ",")
	if defaultOps == nil {
		usage += " (default all)"
	}
	f.StringSliceVar(ops, "ops", defaultOps, usage)
	f.StringVar(resolver, "resolver", "", "region strategy, from "+strings.Join(region.Names(), ",")+" (default all)")
	f.StringVar(fold, "fold", "", "box fold, rows or elements (default both)")
}

func report(w io.Writer, mismatches []Mismatch, runs int) error {
	for _, m := range mismatches {
		fmt.Fprintf(w, "MISMATCH %s %s %s [%s]\n%s\n", m.Op, m.Resolver, m.Fold, m.Trial, m.Diff)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d runs differ from the reference", len(mismatches), runs)
	}
	fmt.Fprintf(w, "ok: %d runs match the reference\n", runs)
	return nil
}

// selectResolvers returns the named resolver, or all of them for "".
func selectResolvers(name string) ([]region.Resolver, error) {
	if name == "" {
		return region.All(), nil
	}
	r, ok := region.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown resolver %q, want one of %v", name, region.Names())
	}
	return []region.Resolver{r}, nil
}

func foldName(rows bool) string {
	if rows {
		return "rows"
	}
	return "elements"
}

// selectFolds returns the box folds named by name, both for "".
func selectFolds(name string) ([]bool, error) {
	switch name {
	case "":
		return []bool{true, false}, nil
	case foldName(true):
		return []bool{true}, nil
	case foldName(false):
		return []bool{false}, nil
	default:
		return nil, fmt.Errorf("unknown fold %q, want rows or elements", name)
	}
}
