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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-localfilters/nd/contrib/region"
)

func newResolversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolvers",
		Short: "List the region strategies and the default one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := region.Default().Name()
			for _, name := range region.Names() {
				mark := " "
				if name == def {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n(* default, set with %s)\n", region.EnvResolver)
			return nil
		},
	}
}
