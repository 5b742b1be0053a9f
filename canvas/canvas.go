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

// Package canvas holds the image preparation steps around an upscale:
// trimming edges stretched by texture padding, fitting the result to a
// power-of-two canvas, and a plain bicubic baseline to compare against.
package canvas

import (
	"bytes"
	"image"
	"math/bits"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// TrimStretched removes trailing rows and columns that merely repeat their
// predecessor, as left behind when a texture was padded to a larger size by
// stretching its last row and column. At least two rows and two columns are
// kept. The result shares pixels with img and keeps its origin.
func TrimStretched(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return img
	}

	row := func(y int) []byte {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		return img.Pix[off : off+4*w]
	}
	lastY := h - 1
	for lastY > 1 && bytes.Equal(row(lastY), row(lastY-1)) {
		lastY--
	}

	sameColumn := func(x int) bool {
		for y := 0; y <= lastY; y++ {
			r := row(y)
			if !bytes.Equal(r[4*x:4*x+4], r[4*x-4:4*x]) {
				return false
			}
		}
		return true
	}
	lastX := w - 1
	for lastX > 1 && sameColumn(lastX) {
		lastX--
	}

	return img.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+lastX+1, b.Min.Y+lastY+1)).(*image.NRGBA)
}

// FloorPowerOfTwo returns the largest power of two <= n, or 0 for n <= 0.
func FloorPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

// FitPowerOfTwo scales img down so each side is the largest power of two
// not exceeding it, using Catmull-Rom filtering. An image that already has
// power-of-two sides is copied unchanged.
func FitPowerOfTwo(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := FloorPowerOfTwo(b.Dx()), FloorPowerOfTwo(b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Bicubic scales img by factor on both axes with a bicubic filter. It is the
// reference NEDI output is compared with.
func Bicubic(img image.Image, factor uint) image.Image {
	b := img.Bounds()
	return resize.Resize(uint(b.Dx())*factor, uint(b.Dy())*factor, img, resize.Bicubic)
}
