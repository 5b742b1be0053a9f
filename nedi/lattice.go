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
	"math"

	"github.com/ajroetker/go-nedi/hwy/contrib/image"
)

// channels is the number of interleaved samples per pixel (R, G, B, A).
const channels = 4

// lattice is the doubled working grid of one upscale. Source pixel (x, y)
// lives at (2x, 2y); every other cell starts unresolved and is written
// exactly once by the scheduler.
//
// The grid splits into four parity classes (even/odd column times even/odd
// row), each a srcW x srcH sub-grid. Lookups outside the grid are resolved
// inside the parity class of the requested cell.
type lattice struct {
	srcW, srcH   int
	w, h         int
	wrapX, wrapY image.WrapMode
	planes       [channels]*image.Image[float32]
	resolved     []bool
}

// newLattice expands a packed RGBA buffer into a 2W x 2H lattice. The
// caller guarantees len(pix) == srcW*srcH*4.
func newLattice(pix []byte, srcW, srcH int, wrapX, wrapY image.WrapMode) *lattice {
	l := &lattice{
		srcW:     srcW,
		srcH:     srcH,
		w:        2 * srcW,
		h:        2 * srcH,
		wrapX:    wrapX,
		wrapY:    wrapY,
		resolved: make([]bool, 4*srcW*srcH),
	}
	for c := range l.planes {
		l.planes[c] = image.NewImage[float32](l.w, l.h)
	}

	for y := 0; y < srcH; y++ {
		rows := [channels][]float32{}
		for c := range rows {
			rows[c] = l.planes[c].Row(2 * y)
		}
		src := pix[y*srcW*channels : (y+1)*srcW*channels]
		for x := 0; x < srcW; x++ {
			for c := range rows {
				rows[c][2*x] = float32(src[x*channels+c])
			}
			l.resolved[(2*y)*l.w+2*x] = true
		}
	}
	return l
}

// resolveAxis maps a lattice coordinate into [0, 2*extent) without changing
// its parity. Mirror reflects about the first and last source pixel (lattice
// 0 and 2*(extent-1)); clamp and wrap resolve the coordinate as an index of
// its parity class.
func resolveAxis(coord, extent int, mode image.WrapMode) int {
	p := coord & 1
	if mode == image.WrapMirror {
		if extent == 1 {
			return p
		}
		return image.Mirror(coord, 2*extent-1)
	}
	return 2*image.Resolve(coord>>1, extent, mode) + p
}

// resolve maps (x, y) into the lattice.
func (l *lattice) resolve(x, y int) (int, int) {
	if x < 0 || x >= l.w {
		x = resolveAxis(x, l.srcW, l.wrapX)
	}
	if y < 0 || y >= l.h {
		y = resolveAxis(y, l.srcH, l.wrapY)
	}
	return x, y
}

// sample returns the four channel values at (x, y), resolving out-of-range
// coordinates first. Reading a cell that has not been resolved yet means a
// phase ran out of order and panics.
func (l *lattice) sample(x, y int) [channels]float32 {
	x, y = l.resolve(x, y)
	if !l.resolved[y*l.w+x] {
		panic(fmt.Sprintf("nedi: read of unresolved lattice cell (%d, %d)", x, y))
	}
	return [channels]float32{
		l.planes[0].At(x, y),
		l.planes[1].At(x, y),
		l.planes[2].At(x, y),
		l.planes[3].At(x, y),
	}
}

// isResolved reports whether the in-range cell (x, y) holds a value.
func (l *lattice) isResolved(x, y int) bool {
	return l.resolved[y*l.w+x]
}

// write stores the predicted value of the in-range cell (x, y).
// Each cell may be written once.
func (l *lattice) write(x, y int, v [channels]float32) {
	i := y*l.w + x
	if l.resolved[i] {
		panic(fmt.Sprintf("nedi: lattice cell (%d, %d) written twice", x, y))
	}
	for c := range l.planes {
		l.planes[c].Set(x, y, v[c])
	}
	l.resolved[i] = true
}

// complete reports whether every cell has been resolved.
func (l *lattice) complete() bool {
	for _, r := range l.resolved {
		if !r {
			return false
		}
	}
	return true
}

// bytes reads the finished lattice out as packed RGBA.
func (l *lattice) bytes() []byte {
	if !l.complete() {
		panic("nedi: readout of an unfinished lattice")
	}
	out := make([]byte, l.w*l.h*channels)
	for y := 0; y < l.h; y++ {
		dst := out[y*l.w*channels : (y+1)*l.w*channels]
		for c := range l.planes {
			row := l.planes[c].RowSlice(y)
			for x, v := range row {
				dst[x*channels+c] = toByte(v)
			}
		}
	}
	return out
}

// toByte rounds a lattice sample to the nearest 8-bit value.
func toByte(v float32) byte {
	f := float64(v)
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return byte(math.Round(f))
}
