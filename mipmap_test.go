package ktx2

import "testing"

func TestCalculateMipMapCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		w, h, d int
		want    int
	}{
		{name: "1x1", w: 1, h: 1, d: 1, want: 1},
		{name: "4x4", w: 4, h: 4, d: 1, want: 3},
		{name: "8x2", w: 8, h: 2, d: 1, want: 4},
		{name: "1024x1", w: 1024, h: 1, d: 1, want: 11},
		{name: "3d-2x2x16", w: 2, h: 2, d: 16, want: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := calculateMipMapCount(tc.w, tc.h, tc.d)
			if err != nil || got != tc.want {
				t.Fatalf("calculateMipMapCount = %d, %v, want %d", got, err, tc.want)
			}
		})
	}

	if _, err := calculateMipMapCount(-1, 1, 1); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestMipDimension(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ base, level, want uint32 }{
		{16, 0, 16}, {16, 2, 4}, {16, 4, 1}, {16, 9, 1}, {0, 0, 1}, {5, 1, 2}, {1 << 31, 40, 1},
	} {
		if got := mipDimension(tc.base, tc.level); got != tc.want {
			t.Fatalf("mipDimension(%d, %d) = %d, want %d", tc.base, tc.level, got, tc.want)
		}
	}
}
