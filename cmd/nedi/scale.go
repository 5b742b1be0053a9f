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
	"context"
	"errors"
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-nedi/canvas"
	"github.com/ajroetker/go-nedi/hwy/contrib/image"
	"github.com/ajroetker/go-nedi/hwy/contrib/workerpool"
	"github.com/ajroetker/go-nedi/nedi"
)

// workersEnv supplies --workers when the flag is not given.
const workersEnv = "NEDI_WORKERS"

// Scaling methods.
const (
	methodNEDI    = "nedi"
	methodBicubic = "bicubic"
)

type scaleConfig struct {
	kernel     int
	wrapX      image.WrapMode
	wrapY      image.WrapMode
	perChannel bool
	passes     int
	trim       bool
	pot        bool
	method     string
	outDir     string
	jobs       int
	workers    int
}

// wrapFlag adapts image.WrapMode to pflag.
type wrapFlag struct {
	mode *image.WrapMode
}

var _ pflag.Value = wrapFlag{}

func (f wrapFlag) String() string {
	if f.mode == nil {
		return image.WrapClamp.String()
	}
	return f.mode.String()
}

func (f wrapFlag) Set(s string) error {
	m, err := image.ParseWrapMode(s)
	if err != nil {
		return err
	}
	*f.mode = m
	return nil
}

func (wrapFlag) Type() string { return "mode" }

func newScaleCmd(c *cli) *cobra.Command {
	cfg := &scaleConfig{}
	cmd := &cobra.Command{
		Use:   "scale [flags] <file or directory>...",
		Short: "Upscale images and write them as PNG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				if err := cfg.workersFromEnv(); err != nil {
					return err
				}
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return c.runScale(cmd.Context(), cfg, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.kernel, "kernel", "k", nedi.DefaultKernel, "training window side (2..64)")
	f.Var(wrapFlag{&cfg.wrapX}, "wrap-x", "horizontal border handling: clamp, wrap or mirror")
	f.Var(wrapFlag{&cfg.wrapY}, "wrap-y", "vertical border handling: clamp, wrap or mirror")
	f.BoolVar(&cfg.perChannel, "per-channel", false, "fit weights for every channel separately")
	f.IntVarP(&cfg.passes, "passes", "n", 1, "number of 2x passes")
	f.BoolVar(&cfg.trim, "trim", false, "trim stretched trailing rows and columns first")
	f.BoolVar(&cfg.pot, "pot", false, "scale the result down to power-of-two sides")
	f.StringVarP(&cfg.method, "method", "m", methodNEDI, "scaling method: nedi or bicubic")
	f.StringVarP(&cfg.outDir, "out-dir", "o", ".", "output directory")
	f.IntVarP(&cfg.jobs, "jobs", "j", 2, "images processed concurrently")
	f.IntVarP(&cfg.workers, "workers", "w", 0, "upscale worker goroutines, shared by all jobs (0 = GOMAXPROCS; env "+workersEnv+")")
	return cmd
}

func (cfg *scaleConfig) workersFromEnv() error {
	v, ok := os.LookupEnv(workersEnv)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", workersEnv, v, err)
	}
	cfg.workers = n
	return nil
}

func (cfg *scaleConfig) validate() error {
	switch cfg.method {
	case methodNEDI, methodBicubic:
	default:
		return fmt.Errorf("unknown method %q (use %s or %s)", cfg.method, methodNEDI, methodBicubic)
	}
	if cfg.passes < 1 {
		return fmt.Errorf("%w: %d", nedi.ErrInvalidPasses, cfg.passes)
	}
	if cfg.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", cfg.jobs)
	}
	return nil
}

func (cfg *scaleConfig) options(pool *workerpool.Pool, stats *nedi.Stats) *nedi.Options {
	opts := &nedi.Options{
		Kernel: cfg.kernel,
		WrapX:  cfg.wrapX,
		WrapY:  cfg.wrapY,
		Pool:   pool,
		Stats:  stats,
	}
	if cfg.perChannel {
		opts.Channels = nedi.PerChannel
	}
	return opts
}

func (c *cli) runScale(ctx context.Context, cfg *scaleConfig, args []string) error {
	files, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no input images found")
	}
	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return err
	}

	pool := workerpool.New(cfg.workers)
	defer pool.Close()
	c.log.Debug("starting", "files", len(files), "jobs", cfg.jobs, "workers", pool.NumWorkers(),
		"method", cfg.method, "passes", cfg.passes)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.scaleFile(cfg, pool, file)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	c.log.Info("done", "files", len(files), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func (c *cli) scaleFile(cfg *scaleConfig, pool *workerpool.Pool, path string) error {
	start := time.Now()
	img, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	src := toNRGBA(img)
	if cfg.trim {
		src = canvas.TrimStretched(src)
	}

	var (
		out   stdimage.Image
		stats nedi.Stats
	)
	switch cfg.method {
	case methodBicubic:
		out = canvas.Bicubic(src, 1<<cfg.passes)
	default:
		out, err = nedi.UpscaleImageN(src, cfg.passes, cfg.options(pool, &stats))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if cfg.pot {
		out = canvas.FitPowerOfTwo(out)
	}

	dst := filepath.Join(cfg.outDir, outputName(path))
	if err := encodePNG(dst, out); err != nil {
		return err
	}

	b := out.Bounds()
	c.log.Debug("scaled", "src", path, "format", format,
		"in", fmt.Sprintf("%dx%d", src.Bounds().Dx(), src.Bounds().Dy()),
		"out", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"exact", stats.Exact, "regularized", stats.Regularized, "uniform", stats.Uniform,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
