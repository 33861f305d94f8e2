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
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine running the filters. Benchmarks and
// cross-check reports print it next to their timings.
type HostInfo struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

// Host returns the HostInfo of the current process.
func Host() HostInfo {
	h := HostInfo{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}
	add := func(ok bool, name string) {
		if ok {
			h.Features = append(h.Features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return h
}

// String formats the host as "linux/amd64 8 cpus [avx avx2 fma]".
func (h HostInfo) String() string {
	var sb strings.Builder
	sb.WriteString(h.GOOS)
	sb.WriteByte('/')
	sb.WriteString(h.GOARCH)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(h.NumCPU))
	sb.WriteString(" cpus [")
	sb.WriteString(strings.Join(h.Features, " "))
	sb.WriteByte(']')
	return sb.String()
}
