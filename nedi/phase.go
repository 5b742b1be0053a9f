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

// offset is a displacement in lattice cells.
type offset struct {
	dx, dy int
}

// phaseKind tags the two resolution phases of the lattice.
type phaseKind int

const (
	// diagonalPhase resolves (odd, odd) cells from source pixels only.
	diagonalPhase phaseKind = iota
	// axisPhase resolves (odd, even) and (even, odd) cells from source pixels
	// and diagonal results.
	axisPhase
)

func (k phaseKind) String() string {
	switch k {
	case diagonalPhase:
		return "diagonal"
	case axisPhase:
		return "axis"
	default:
		return "unknown"
	}
}

// phase describes which cells a phase resolves and the geometry of its
// neighborhoods. The neighbors of a training center are the prediction
// pattern scaled by two, so a center is related to its neighbors the same way
// the target is related to its own.
type phase struct {
	kind phaseKind
	// targets lists the parity class origins resolved by this phase; each
	// origin (px, py) stands for the cells (2i+px, 2j+py).
	targets []offset
	// prediction is the neighborhood of a target, in the order the weights
	// apply to.
	prediction [4]offset
	// centers returns the training-center offsets, relative to the target,
	// for a k x k window.
	centers func(k int) []offset
}

var phases = [...]phase{
	diagonalPhase: {
		kind:    diagonalPhase,
		targets: []offset{{1, 1}},
		prediction: [4]offset{
			{-1, -1}, {1, -1},
			{-1, 1}, {1, 1},
		},
		centers: diagonalCenters,
	},
	axisPhase: {
		kind:    axisPhase,
		targets: []offset{{1, 0}, {0, 1}},
		prediction: [4]offset{
			{-1, 0}, {0, -1},
			{0, 1}, {1, 0},
		},
		centers: axisCenters,
	},
}

// diagonalCenters returns the k x k source pixels nearest a diagonal target.
// The offsets are odd on both axes, so every center is a source pixel.
func diagonalCenters(k int) []offset {
	base := 1 - 2*(k/2)
	out := make([]offset, 0, k*k)
	for j := range k {
		for i := range k {
			out = append(out, offset{base + 2*i, base + 2*j})
		}
	}
	return out
}

// axisCenters returns a k x k window on the grid rotated by 45 degrees around
// an axis target. dx+dy is odd, so a center is either a source pixel or a
// diagonal result, never another axis cell.
func axisCenters(k int) []offset {
	base := 1 - 2*(k/2)
	out := make([]offset, 0, k*k)
	for j := range k {
		for i := range k {
			out = append(out, offset{base + i + j, j - i})
		}
	}
	return out
}
