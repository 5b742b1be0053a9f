// Package hwy detects the SIMD capabilities of the running CPU and exposes
// the lane constraints shared by the go-nedi packages.
//
// The detected vector width decides how plane rows are padded, so that every
// row of a working image starts on a vector boundary:
//
//	import "github.com/ajroetker/go-nedi/hwy"
//
//	lanes := hwy.MaxLanes[float32]() // 8 on AVX2, 4 on NEON
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
