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
	"math/rand/v2"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-localfilters/nd"
	"github.com/ajroetker/go-localfilters/nd/contrib/neighborhood"
)

// Neighborhood kinds accepted in trial files.
const (
	kindCentered  = "centered"
	kindCartesian = "cartesian"
	kindMask      = "mask"
	kindWeights   = "weights"
)

var kinds = []string{kindCentered, kindCartesian, kindMask, kindWeights}

// TrialSet is the content of a --trials file:
//
//	seed: 42
//	trials:
//	  - shape: [32, 32]
//	    origin: [-5, 0]
//	    neighborhood: mask
//	    radius: 2
//	    repeat: 10
type TrialSet struct {
	Seed   uint64  `yaml:"seed"`
	Trials []Trial `yaml:"trials"`
}

// Trial describes one family of random inputs.
type Trial struct {
	Shape        []int  `yaml:"shape"`
	Origin       []int  `yaml:"origin,omitempty"`
	Neighborhood string `yaml:"neighborhood"`
	Radius       int    `yaml:"radius"`
	Repeat       int    `yaml:"repeat,omitempty"`
}

func (t Trial) validate() error {
	if len(t.Shape) == 0 {
		return fmt.Errorf("empty shape")
	}
	for _, s := range t.Shape {
		if s < 1 {
			return fmt.Errorf("shape %v: sizes must be positive", t.Shape)
		}
	}
	if t.Origin != nil && len(t.Origin) != len(t.Shape) {
		return fmt.Errorf("origin %v does not match shape %v", t.Origin, t.Shape)
	}
	if !slices.Contains(kinds, t.Neighborhood) {
		return fmt.Errorf("unknown neighborhood %q, want one of %v", t.Neighborhood, kinds)
	}
	if t.Radius < 0 {
		return fmt.Errorf("negative radius %d", t.Radius)
	}
	return nil
}

// axes returns the index range of the trial arrays.
func (t Trial) axes() nd.Box {
	b := nd.Shape(t.Shape...)
	if t.Origin != nil {
		origin := nd.Index(t.Origin)
		b = nd.Box{Min: b.Min.Add(origin), Max: b.Max.Add(origin)}
	}
	return b
}

func (t Trial) String() string {
	return fmt.Sprintf("%s r=%d axes=%v", t.Neighborhood, t.Radius, t.axes())
}

// loadTrials reads a YAML trial file.
func loadTrials(path string) (*TrialSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set TrialSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(set.Trials) == 0 {
		return nil, fmt.Errorf("%s: no trials", path)
	}
	for n := range set.Trials {
		if err := set.Trials[n].validate(); err != nil {
			return nil, fmt.Errorf("%s: trial %d: %w", path, n, err)
		}
		set.Trials[n].Repeat = max(set.Trials[n].Repeat, 1)
	}
	return &set, nil
}

// randomTrials draws n small trials of rank 1 to 3.
func randomTrials(rng *rand.Rand, n int) []Trial {
	trials := make([]Trial, n)
	for k := range trials {
		rank := 1 + rng.IntN(3)
		t := Trial{
			Shape:        make([]int, rank),
			Origin:       make([]int, rank),
			Neighborhood: kinds[rng.IntN(len(kinds))],
			Radius:       rng.IntN(3),
			Repeat:       1,
		}
		for d := range rank {
			t.Shape[d] = 1 + rng.IntN(12)
			t.Origin[d] = rng.IntN(9) - 4
		}
		trials[k] = t
	}
	return trials
}

// input returns a random array for the trial.
func (t Trial) input(rng *rand.Rand) *nd.Array[float64] {
	a := nd.NewIn[float64](t.axes())
	for n := range a.Data() {
		a.Data()[n] = float64(rng.IntN(201)-100) / 4
	}
	return a
}

// element returns a random structuring element of the trial kind.
// Cartesian boxes may exclude the origin and so produce empty regions.
func (t Trial) element(rng *rand.Rand) (neighborhood.Neighborhood, error) {
	rank := len(t.Shape)
	box := nd.MakeBox(rank)
	for d := range rank {
		box.Min[d] = -t.Radius + rng.IntN(t.Radius+1)
		box.Max[d] = box.Min[d] + rng.IntN(t.Radius+1)
	}
	switch t.Neighborhood {
	case kindCentered:
		return neighborhood.Radius(rank, t.Radius), nil
	case kindCartesian:
		b, err := neighborhood.Cartesian(box.Min, box.Max)
		if err != nil {
			return nil, err
		}
		return b, nil
	case kindMask:
		coefs := nd.NewIn[bool](box)
		for n := range coefs.Data() {
			coefs.Data()[n] = rng.IntN(3) > 0
		}
		return neighborhood.OffsetKernel(coefs), nil
	default:
		coefs := nd.NewIn[float64](box)
		for n := range coefs.Data() {
			coefs.Data()[n] = float64(rng.IntN(9) - 2)
		}
		return neighborhood.OffsetKernel(coefs), nil
	}
}
