//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the scalar fallback; planes are still padded
	// to 16 bytes so row layouts match the SIMD targets.
	setScalarMode()
}
