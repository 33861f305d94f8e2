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
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// rankData is the template input for one specialization.
type rankData struct {
	N    int
	Axes []int
}

var fixedTemplate = template.Must(template.New("fixed").Parse(`// Code generated by regiongen. DO NOT EDIT.

package {{.Package}}

import "github.com/ajroetker/go-localfilters/nd"

func (Fixed) Resolve(dst, bounds, nbhd nd.Box, i nd.Index) {
	switch len(i) {
{{- range .Ranks}}
	case {{.N}}:
		resolve{{.N}}(dst, bounds, nbhd, i)
{{- end}}
	default:
		Tuple{}.Resolve(dst, bounds, nbhd, i)
	}
}

func (Fixed) ResolveCentered(dst, bounds nd.Box, off, i nd.Index) {
	switch len(i) {
{{- range .Ranks}}
	case {{.N}}:
		resolveCentered{{.N}}(dst, bounds, off, i)
{{- end}}
	default:
		Tuple{}.ResolveCentered(dst, bounds, off, i)
	}
}
{{range .Ranks}}
func resolve{{.N}}(dst, bounds, nbhd nd.Box, i nd.Index) {
	p := [{{.N}}]int(i)
	imin, imax := [{{.N}}]int(bounds.Min), [{{.N}}]int(bounds.Max)
	kmin, kmax := [{{.N}}]int(nbhd.Min), [{{.N}}]int(nbhd.Max)
	lo, hi := (*[{{.N}}]int)(dst.Min), (*[{{.N}}]int)(dst.Max)
{{- range .Axes}}
	lo[{{.}}] = max(imin[{{.}}], p[{{.}}]-kmax[{{.}}])
	hi[{{.}}] = min(imax[{{.}}], p[{{.}}]-kmin[{{.}}])
{{- end}}
}

func resolveCentered{{.N}}(dst, bounds nd.Box, off, i nd.Index) {
	p, h := [{{.N}}]int(i), [{{.N}}]int(off)
	imin, imax := [{{.N}}]int(bounds.Min), [{{.N}}]int(bounds.Max)
	lo, hi := (*[{{.N}}]int)(dst.Min), (*[{{.N}}]int)(dst.Max)
{{- range .Axes}}
	lo[{{.}}] = max(imin[{{.}}], p[{{.}}]-h[{{.}}])
	hi[{{.}}] = min(imax[{{.}}], p[{{.}}]+h[{{.}}])
{{- end}}
}
{{end}}`))

// Generate returns the formatted source of the Fixed specializations for
// ranks 1 to maxRank.
func Generate(pkg string, maxRank int) ([]byte, error) {
	if maxRank < 1 {
		return nil, fmt.Errorf("maxRank must be >= 1, got %d", maxRank)
	}
	ranks := make([]rankData, maxRank)
	for n := range ranks {
		ranks[n].N = n + 1
		for d := range n + 1 {
			ranks[n].Axes = append(ranks[n].Axes, d)
		}
	}

	var buf bytes.Buffer
	err := fixedTemplate.Execute(&buf, struct {
		Package string
		Ranks   []rankData
	}{pkg, ranks})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process("fixed_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}
	return formatted, nil
}
