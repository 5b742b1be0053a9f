package image

import (
	"testing"

	"github.com/ajroetker/go-nedi/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[float32](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	// Stride should be >= width and aligned to vector width
	lanes := hwy.MaxLanes[float32]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), lanes)
	}
	if img.BytesPerRow() != img.Stride()*4 {
		t.Errorf("BytesPerRow: got %d, want %d", img.BytesPerRow(), img.Stride()*4)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[float32](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[float32](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	if got := img.At(3, 3); got != 0 {
		t.Errorf("At on empty image: got %v, want 0", got)
	}
}

func TestImage_Row(t *testing.T) {
	img := NewImage[float32](10, 5)

	row0 := img.Row(0)
	for i := range 10 {
		row0[i] = float32(i)
	}
	for i := range 10 {
		if got := img.At(i, 0); got != float32(i) {
			t.Errorf("At(%d,0): got %v, want %v", i, got, float32(i))
		}
	}

	// Different row should be independent
	row1 := img.Row(1)
	row1[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}

	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
	if got := len(img.RowSlice(2)); got != 10 {
		t.Errorf("RowSlice length: got %d, want 10", got)
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewImage[float32](10, 10)

	img.Set(5, 7, 42.0)
	if got := img.At(5, 7); got != 42.0 {
		t.Errorf("At(5,7): got %v, want 42.0", got)
	}

	// Out of bounds should return zero
	if got := img.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0): got %v, want 0", got)
	}
	if got := img.At(10, 0); got != 0 {
		t.Errorf("At(10,0): got %v, want 0", got)
	}

	// Set out of bounds should be no-op
	img.Set(-1, 0, 999)
	img.Set(10, 0, 999)
}

func TestImage_Clone(t *testing.T) {
	img := NewImage[float32](10, 10)
	img.Set(5, 5, 42.0)

	clone := img.Clone()
	if !SameSize(img, clone) {
		t.Error("Clone dimensions differ")
	}
	if clone.At(5, 5) != 42.0 {
		t.Errorf("Clone value: got %v, want 42.0", clone.At(5, 5))
	}

	// Modifying clone should not affect original
	clone.Set(5, 5, 0)
	if img.At(5, 5) != 42.0 {
		t.Error("Modifying clone affected original")
	}
}

func TestImage_Fill(t *testing.T) {
	img := NewImage[float32](10, 10)
	img.Fill(3.14)

	for y := range 10 {
		for x := range 10 {
			if got := img.At(x, y); got != 3.14 {
				t.Errorf("Fill at (%d,%d): got %v, want 3.14", x, y, got)
			}
		}
	}
}

func TestImage_Int32(t *testing.T) {
	img := NewImage[int32](50, 50)
	img.Set(10, 10, 42)

	if got := img.At(10, 10); got != 42 {
		t.Errorf("Int32 image: got %v, want 42", got)
	}
}
