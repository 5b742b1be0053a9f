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

// minKernel is the smallest training window that over-determines the four
// regression weights (3x3 = 9 equations).
const minKernel = 3

// effectiveKernel enlarges kernels that would leave the regression
// under-determined.
func effectiveKernel(k int) int {
	return max(k, minKernel)
}

// lumaWeights turn a pixel into the scalar the shared weights are fitted on.
// The proxy mixes Rec. 709 luma with alpha so edges in either drive the fit.
var lumaWeights = [channels]float64{
	0.2126 * 0.75,
	0.7152 * 0.75,
	0.0722 * 0.75,
	0.25,
}

// lumaChannel selects the luma proxy instead of a single channel.
const lumaChannel = -1

// value reduces a pixel to the regression scalar for channel c, scaled to
// [0, 1].
func value(px [channels]float32, c int) float64 {
	if c == lumaChannel {
		var s float64
		for i, w := range lumaWeights {
			s += w * float64(px[i])
		}
		return s / 255
	}
	return float64(px[c]) / 255
}

// window is the training data of one target: n rows of four neighborhood
// values (row-major) and the n values of the centers themselves.
type window struct {
	a []float64
	y []float64
}

func newWindow(n int) *window {
	return &window{
		a: make([]float64, n*4),
		y: make([]float64, n),
	}
}

// sampler gathers prediction neighborhoods and training windows for one
// phase. The center table is built once per upscale.
type sampler struct {
	lat     *lattice
	ph      *phase
	centers []offset
}

func newSampler(lat *lattice, ph *phase, kernel int) *sampler {
	return &sampler{
		lat:     lat,
		ph:      ph,
		centers: ph.centers(effectiveKernel(kernel)),
	}
}

// size returns the number of training pairs per window.
func (s *sampler) size() int {
	return len(s.centers)
}

// neighborhood returns the prediction neighborhood of target (tx, ty).
func (s *sampler) neighborhood(tx, ty int) [4][channels]float32 {
	var out [4][channels]float32
	for i, o := range s.ph.prediction {
		out[i] = s.lat.sample(tx+o.dx, ty+o.dy)
	}
	return out
}

// gather fills w with the training window of target (tx, ty) for channel c
// (or lumaChannel).
func (s *sampler) gather(tx, ty, c int, w *window) {
	for r, ctr := range s.centers {
		cx, cy := tx+ctr.dx, ty+ctr.dy
		row := w.a[r*4 : r*4+4]
		for i, o := range s.ph.prediction {
			row[i] = value(s.lat.sample(cx+2*o.dx, cy+2*o.dy), c)
		}
		w.y[r] = value(s.lat.sample(cx, cy), c)
	}
}
