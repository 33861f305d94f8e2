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

// Command lfcheck cross-checks the local filters against the reference
// implementations and times them for every region strategy.
//
// Usage:
//
//	lfcheck resolvers
//	lfcheck crosscheck -n 200 --seed 7
//	lfcheck crosscheck --trials trials.yaml
//	lfcheck bench --size 512,512 --radius 3 --ops erode,convolve
//	lfcheck --log-level debug --json crosscheck -n 5
//
// crosscheck exits with a non-zero status when any output differs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-localfilters/nd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		level   string
		logJSON bool
	)
	root := &cobra.Command{
		Use:          "lfcheck",
		Short:        "Cross-check and benchmark local filters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", level, err)
			}
			opts := &slog.HandlerOptions{Level: lvl}
			var h slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
			if logJSON {
				h = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
			}
			nd.SetLogger(slog.New(h))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&logJSON, "json", false, "log as JSON instead of text")

	root.AddCommand(newResolversCmd(), newCrosscheckCmd(), newBenchCmd())
	return root
}
