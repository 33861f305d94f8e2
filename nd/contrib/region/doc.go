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

// Package region resolves, for one output index, the input indices a local
// filter visits: the neighborhood translated to the output index and clipped
// to the array axes.
//
// Four interchangeable strategies compute exactly the same regions:
//
//	Compose  whole-index max/min over nd.Index values
//	Tuple    per-axis loop over a run-time rank
//	Fixed    per-axis, unrolled for ranks 1-4 (generated by cmd/regiongen)
//	Mapped   per-axis ranges built with lo.Map over the axis numbers
//
// They are kept side by side so filters can be benchmarked per strategy and
// cross-checked against each other.
//
// # Selecting a Strategy
//
// Filters use Default() unless told otherwise. The default is Tuple, or the
// strategy named by the LOCALFILTERS_RESOLVER environment variable:
//
//	LOCALFILTERS_RESOLVER=fixed go test ./...
//
// # Empty Regions
//
// A region is empty when some axis has Max < Min, for example near the
// border with a neighborhood that does not contain the origin. Filters visit
// no element for an empty region.
package region
