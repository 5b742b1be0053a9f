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

// Package image provides SIMD-aligned 2D planes and the edge handling used
// when a neighborhood reaches past the border of a plane.
//
// The core type is Image[T], a single-channel plane whose rows are padded to
// the SIMD vector width. Multi-channel data is kept as one plane per channel.
//
// # Usage Example
//
//	// A working plane for one channel of a 2x upscale
//	img := image.NewImage[float32](2*w, 2*h)
//	img.Set(0, 0, 255)
//
// # Edge Handling
//
// Out-of-range coordinates are mapped back into a plane with a WrapMode,
// chosen independently per axis:
//
//	Clamp(index, size)  - repeat edge pixels
//	Wrap(index, size)   - tile/wrap around
//	Mirror(index, size) - reflect at boundaries, edge pixel not repeated
//	Resolve(index, size, mode)
package image
