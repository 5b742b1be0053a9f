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

package nedi

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-nedi/hwy/contrib/image"
	"github.com/ajroetker/go-nedi/hwy/contrib/workerpool"
)

// Errors returned for invalid arguments. No work is done when one of them is
// returned.
var (
	ErrInvalidDimensions   = errors.New("nedi: invalid dimensions")
	ErrBufferSize          = errors.New("nedi: pixel buffer size mismatch")
	ErrInvalidKernel       = errors.New("nedi: invalid kernel size")
	ErrInvalidWrapMode     = errors.New("nedi: invalid wrap mode")
	ErrInvalidChannelMode  = errors.New("nedi: invalid channel mode")
	ErrInvalidSolverConfig = errors.New("nedi: invalid solver config")
	ErrInvalidPasses       = errors.New("nedi: invalid number of passes")
)

// Kernel limits.
const (
	// DefaultKernel is used when Options.Kernel is zero.
	DefaultKernel = 3
	// MaxKernel bounds the training window to MaxKernel x MaxKernel pairs.
	MaxKernel = 64
)

// ChannelMode selects how weights are shared between the color channels.
type ChannelMode int

const (
	// SharedWeights fits one weight vector per pixel on a luma/alpha proxy
	// and applies it to all four channels.
	SharedWeights ChannelMode = iota
	// PerChannel fits every channel independently, at four times the cost.
	PerChannel
)

func (m ChannelMode) String() string {
	switch m {
	case SharedWeights:
		return "shared"
	case PerChannel:
		return "per-channel"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// Options specifies upscaling parameters. The zero value selects the
// defaults.
type Options struct {
	// Kernel is the side of the square training window (>= 2, default 3).
	// Kernels smaller than 3 are enlarged to 3 so the fit stays
	// over-determined.
	Kernel int
	// WrapX and WrapY select the border handling of each axis.
	WrapX, WrapY image.WrapMode
	// Channels selects shared or per-channel weights.
	Channels ChannelMode
	// Solver holds the solver thresholds; the zero value means
	// DefaultSolverConfig().
	Solver SolverConfig
	// Workers is the number of goroutines used when Pool is nil.
	// Values <= 0 use GOMAXPROCS.
	Workers int
	// Pool, if set, runs the work instead of a pool created per call.
	// The caller keeps ownership and closes it.
	Pool *workerpool.Pool
	// Stats, if set, receives the solver statistics of the call.
	Stats *Stats
}

// resolveOptions returns a copy of the first non-nil options with defaults
// filled in.
func resolveOptions(opts []*Options) Options {
	var o Options
	for _, p := range opts {
		if p != nil {
			o = *p
			break
		}
	}
	if o.Kernel == 0 {
		o.Kernel = DefaultKernel
	}
	if o.Solver == (SolverConfig{}) {
		o.Solver = DefaultSolverConfig()
	}
	return o
}

func (o *Options) validate() error {
	if o.Kernel < 2 || o.Kernel > MaxKernel {
		return fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidKernel, o.Kernel, MaxKernel)
	}
	if !o.WrapX.Valid() {
		return fmt.Errorf("%w: x axis %v", ErrInvalidWrapMode, o.WrapX)
	}
	if !o.WrapY.Valid() {
		return fmt.Errorf("%w: y axis %v", ErrInvalidWrapMode, o.WrapY)
	}
	if o.Channels != SharedWeights && o.Channels != PerChannel {
		return fmt.Errorf("%w: %v", ErrInvalidChannelMode, o.Channels)
	}
	return o.Solver.validate()
}

// checkBuffer validates the dimensions of a packed RGBA buffer.
func checkBuffer(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	// The lattice holds 16 bytes of output per source pixel.
	if uint64(width)*uint64(height) > math.MaxInt/(4*channels) {
		return fmt.Errorf("%w: %dx%d is too large", ErrInvalidDimensions, width, height)
	}
	if want := width * height * channels; len(pix) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d RGBA",
			ErrBufferSize, len(pix), want, width, height)
	}
	return nil
}

// Upscale doubles the width and height of a packed, row-major RGBA image
// (4 bytes per pixel, no padding). It returns a new buffer of
// 2*width x 2*height pixels; pix is not modified.
//
// Source pixels are kept unchanged at even coordinates of the output.
// Precondition failures are reported before any work starts.
func Upscale(pix []byte, width, height int, opts ...*Options) ([]byte, int, int, error) {
	o := resolveOptions(opts)
	if err := checkBuffer(pix, width, height); err != nil {
		return nil, 0, 0, err
	}
	if err := o.validate(); err != nil {
		return nil, 0, 0, err
	}

	pool := o.Pool
	if pool == nil {
		pool = workerpool.New(o.Workers)
		defer pool.Close()
	}

	lat := newLattice(pix, width, height, o.WrapX, o.WrapY)
	s := newScheduler(lat, pool, &o)
	s.run()

	if o.Stats != nil {
		*o.Stats = s.stats
	}
	return lat.bytes(), lat.w, lat.h, nil
}
