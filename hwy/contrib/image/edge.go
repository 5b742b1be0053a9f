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

package image

import (
	"fmt"
	"strings"
)

// WrapMode selects how an out-of-range coordinate is mapped back into
// [0, size) along one axis.
type WrapMode int

const (
	// WrapClamp saturates to the nearest valid index, repeating edge pixels.
	WrapClamp WrapMode = iota
	// WrapRepeat takes the index modulo the axis extent, tiling the image.
	WrapRepeat
	// WrapMirror reflects the index off the boundary without repeating the
	// edge pixel: -1 maps to 1 and size maps to size-2.
	WrapMirror
)

// String returns the lower-case name of the mode.
func (m WrapMode) String() string {
	switch m {
	case WrapClamp:
		return "clamp"
	case WrapRepeat:
		return "wrap"
	case WrapMirror:
		return "mirror"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m WrapMode) Valid() bool {
	return m >= WrapClamp && m <= WrapMirror
}

// ParseWrapMode parses the names returned by WrapMode.String.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return WrapClamp, nil
	case "wrap", "repeat":
		return WrapRepeat, nil
	case "mirror", "reflect":
		return WrapMirror, nil
	default:
		return 0, fmt.Errorf("image: unknown wrap mode %q (use clamp/wrap/mirror)", s)
	}
}

// Resolve maps index into [0, size-1] according to mode.
// Unknown modes behave like WrapClamp. A non-positive size yields 0.
func Resolve(index, size int, mode WrapMode) int {
	switch mode {
	case WrapRepeat:
		return Wrap(index, size)
	case WrapMirror:
		return Mirror(index, size)
	default:
		return Clamp(index, size)
	}
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if size <= 0 || index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}

// Mirror returns the index reflected into [0, size) without repeating the
// edge sample, so the sequence around 0 reads ... 2 1 0 1 2 ... and the
// pattern repeats with period 2*(size-1).
func Mirror(index, size int) int {
	if size <= 1 {
		return 0
	}
	period := 2 * (size - 1)
	index = Wrap(index, period)
	if index >= size {
		index = period - index
	}
	return index
}
