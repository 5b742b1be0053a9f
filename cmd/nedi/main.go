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

// Command nedi upscales images with edge-directed interpolation.
//
// Usage:
//
//	nedi scale [flags] <file or directory>...
//	nedi scale --passes 3 --trim --pot --out-dir big textures/
//	nedi info
//
// Every input is decoded (PNG, JPEG, GIF, BMP, TIFF or WebP), doubled in size
// once per pass and written as PNG to the output directory. Directories are
// scanned one level deep for files with a known extension.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nedi: %v\n", err)
		os.Exit(1)
	}
}
