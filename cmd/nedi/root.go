// Copyright 2025 go-highway Authors
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
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nedi/hwy"
)

// cli holds the state shared by all subcommands.
type cli struct {
	verbose bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:           "nedi",
		Short:         "Edge-directed 2x image upscaling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.setupLogging(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log per-file timings and solver statistics")
	root.AddCommand(newScaleCmd(c), newInfoCmd())
	return root
}

func (c *cli) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	c.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level and default parallelism",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch:     %s\n", hwy.CurrentName())
			fmt.Fprintf(out, "vector width: %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(out, "workers:      %d\n", runtime.GOMAXPROCS(0))
			return nil
		},
	}
}
