//go:build arm64

package hwy

import (
	"os"

	"golang.org/x/sys/cpu"
)

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if !cpu.ARM64.HasASIMD {
		setScalarMode()
		return
	}
	currentLevel = DispatchNEON
	currentWidth = 16 // NEON is 128-bit (16 bytes)

	// SVE reports its level, but rows stay padded to the 128-bit minimum
	// vector length since the actual length is only known at runtime.
	if cpu.ARM64.HasSVE && os.Getenv("HWY_NO_SVE") == "" {
		currentLevel = DispatchSVE
	}
}
