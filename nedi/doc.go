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

// Package nedi doubles the resolution of RGBA images with edge-directed
// interpolation (NEDI).
//
// Instead of a fixed kernel, every new pixel gets its own interpolation
// weights, fitted by least squares on the surrounding pixels. Edges therefore
// stay sharp where bilinear or bicubic scaling would blur them.
//
// An upscale works on a lattice twice the size of the source, with source
// pixels on the even/even cells, and resolves it in two phases:
//
//   - diagonal: cells with odd row and column, predicted from their four
//     diagonal source neighbors;
//   - axis: the remaining cells, predicted from their four axis neighbors,
//     two source pixels and two diagonal results.
//
// All cells of a phase are independent and are computed in parallel; the
// axis phase starts only after the diagonal phase has finished.
//
// Basic usage:
//
//	out, w2, h2, err := nedi.Upscale(pix, w, h, &nedi.Options{Kernel: 4})
//
// or, with the standard image types:
//
//	big, err := nedi.UpscaleImage(img)
package nedi
