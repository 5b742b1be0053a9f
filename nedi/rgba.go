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
	"fmt"
	stdimage "image"

	"golang.org/x/image/draw"

	"github.com/ajroetker/go-nedi/hwy/contrib/workerpool"
)

// rgbaBytes returns the pixels of img as packed, non-premultiplied RGBA.
// Tightly packed *image.NRGBA images are returned without copying; other
// types are converted with draw.Draw.
func rgbaBytes(img stdimage.Image) ([]byte, int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, w, h
	}
	n, isNRGBA := img.(*stdimage.NRGBA)
	if isNRGBA && n.Stride == 4*w {
		off := n.PixOffset(b.Min.X, b.Min.Y)
		return n.Pix[off : off+4*w*h], w, h
	}
	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	if isNRGBA {
		off := n.PixOffset(b.Min.X, b.Min.Y)
		// Row copies keep the samples of translucent pixels exact.
		for y := range h {
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], n.Pix[off+y*n.Stride:])
		}
		return dst.Pix, w, h
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix, w, h
}

// UpscaleImage converts img to non-premultiplied RGBA and doubles its size.
// The result has its origin at (0, 0).
func UpscaleImage(img stdimage.Image, opts ...*Options) (*stdimage.NRGBA, error) {
	pix, w, h := rgbaBytes(img)
	out, w2, h2, err := Upscale(pix, w, h, opts...)
	if err != nil {
		return nil, err
	}
	return &stdimage.NRGBA{
		Pix:    out,
		Stride: 4 * w2,
		Rect:   stdimage.Rect(0, 0, w2, h2),
	}, nil
}

// UpscaleImageN applies UpscaleImage passes times, scaling each dimension by
// 2^passes. A single worker pool serves all passes. Stats, if requested,
// accumulate over the passes.
func UpscaleImageN(img stdimage.Image, passes int, opts ...*Options) (*stdimage.NRGBA, error) {
	if passes < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPasses, passes)
	}

	o := resolveOptions(opts)
	if o.Pool == nil {
		o.Pool = workerpool.New(o.Workers)
		defer o.Pool.Close()
	}
	total := o.Stats
	if total != nil {
		*total = Stats{}
	}
	var pass Stats
	o.Stats = &pass

	var out *stdimage.NRGBA
	for i := range passes {
		var err error
		out, err = UpscaleImage(img, &o)
		if err != nil {
			return nil, fmt.Errorf("pass %d: %w", i+1, err)
		}
		if total != nil {
			total.Exact += pass.Exact
			total.Regularized += pass.Regularized
			total.Uniform += pass.Uniform
		}
		img = out
	}
	return out, nil
}
