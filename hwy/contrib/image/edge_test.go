package image

import "testing"

func TestMirror(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 10, 0},
		{5, 10, 5},
		{9, 10, 9},
		{10, 10, 8},  // Reflect past the last sample
		{11, 10, 7},  // Reflect further
		{-1, 10, 1},  // Edge sample is not repeated
		{-2, 10, 2},  // Reflect more negative
		{18, 10, 0},  // One full period
		{-9, 10, 9},  // Reflect to the opposite edge
		{-10, 10, 8}, // Fold twice
		{-1, 4, 1},
		{4, 4, 2},
		{7, 1, 0}, // Single-sample axis
		{-3, 2, 1},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := Mirror(tt.index, tt.size)
		if got != tt.want {
			t.Errorf("Mirror(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 10, 0},
		{5, 10, 5},
		{9, 10, 9},
		{10, 10, 9},  // Clamp high
		{100, 10, 9}, // Clamp very high
		{-1, 10, 0},  // Clamp low
		{-100, 10, 0},
		{-1, 4, 0},
		{3, 0, 0},
	}

	for _, tt := range tests {
		got := Clamp(tt.index, tt.size)
		if got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 10, 0},
		{5, 10, 5},
		{9, 10, 9},
		{10, 10, 0}, // Wrap at boundary
		{11, 10, 1},
		{25, 10, 5},
		{-1, 10, 9}, // Wrap negative
		{-10, 10, 0},
		{-11, 10, 9},
		{-1, 4, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		got := Wrap(tt.index, tt.size)
		if got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}

func TestWrapIdentityInRange(t *testing.T) {
	for size := 1; size <= 17; size++ {
		for i := range size {
			if got := Wrap(i, size); got != i {
				t.Errorf("Wrap(%d, %d) = %d, want identity", i, size, got)
			}
			if got := Resolve(i, size, WrapRepeat); got != i {
				t.Errorf("Resolve(%d, %d, wrap) = %d, want identity", i, size, got)
			}
		}
	}
}

func TestResolveAlwaysInRange(t *testing.T) {
	modes := []WrapMode{WrapClamp, WrapRepeat, WrapMirror}
	for _, mode := range modes {
		for size := 1; size <= 9; size++ {
			for i := -50; i <= 50; i++ {
				got := Resolve(i, size, mode)
				if got < 0 || got >= size {
					t.Fatalf("Resolve(%d, %d, %v) = %d, out of [0, %d)", i, size, mode, got, size)
				}
			}
		}
	}
}

func TestResolveUnknownModeClamps(t *testing.T) {
	if got := Resolve(-5, 4, WrapMode(42)); got != 0 {
		t.Errorf("Resolve with unknown mode = %d, want 0", got)
	}
	if got := Resolve(9, 4, WrapMode(-1)); got != 3 {
		t.Errorf("Resolve with unknown mode = %d, want 3", got)
	}
}

func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapClamp, "clamp"},
		{WrapRepeat, "wrap"},
		{WrapMirror, "mirror"},
		{WrapMode(7), "WrapMode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.mode.Valid() != (tt.want != "WrapMode(7)") {
			t.Errorf("%v.Valid() = %v", tt.mode, tt.mode.Valid())
		}
	}
}

func TestParseWrapMode(t *testing.T) {
	tests := []struct {
		in      string
		want    WrapMode
		wantErr bool
	}{
		{"clamp", WrapClamp, false},
		{"Wrap", WrapRepeat, false},
		{"repeat", WrapRepeat, false},
		{" mirror ", WrapMirror, false},
		{"reflect", WrapMirror, false},
		{"tile", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWrapMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWrapMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseWrapMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
