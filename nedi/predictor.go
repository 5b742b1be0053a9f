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
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxSample is the largest 8-bit sample value.
const maxSample = 255

// predict applies weights to one channel of a prediction neighborhood and
// clamps the result to the sample range.
func predict(w *[4]float64, nb *[4][channels]float32, c int) float32 {
	var v [4]float64
	for i := range v {
		v[i] = float64(nb[i][c])
	}
	return clampSample(floats.Dot(w[:], v[:]))
}

// predictAll applies one weight vector to every channel.
func predictAll(w *[4]float64, nb *[4][channels]float32) [channels]float32 {
	var out [channels]float32
	for c := range out {
		out[c] = predict(w, nb, c)
	}
	return out
}

func clampSample(v float64) float32 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= maxSample:
		return maxSample
	}
	return float32(v)
}
