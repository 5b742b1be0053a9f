package nedi

import (
	"math/rand/v2"
	"testing"
)

// randomRGBA returns a reproducible w x h RGBA buffer with samples in
// [lo, hi].
func randomRGBA(w, h int, lo, hi byte, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, 0x6e656469))
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = lo + byte(r.IntN(int(hi-lo)+1))
	}
	return pix
}

// solidRGBA returns a w x h buffer where every sample equals v.
func solidRGBA(w, h int, v byte) []byte {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = v
	}
	return pix
}

// pixelAt returns the RGBA sample of (x, y) in a packed buffer of width w.
func pixelAt(pix []byte, w, x, y int) [4]byte {
	i := (y*w + x) * 4
	return [4]byte{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}

// assertSourcePreserved checks that every source pixel sits unchanged at its
// even coordinate of the output.
func assertSourcePreserved(t *testing.T, src []byte, w, h int, out []byte) {
	t.Helper()
	for y := range h {
		for x := range w {
			want := pixelAt(src, w, x, y)
			got := pixelAt(out, 2*w, 2*x, 2*y)
			if got != want {
				t.Fatalf("source pixel (%d,%d): got %v at (%d,%d), want %v", x, y, got, 2*x, 2*y, want)
			}
		}
	}
}
