package ktx2

import (
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, testTexture())
	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	got := h.Bytes()
	if string(got[:]) != string(data[:HeaderLength]) {
		t.Fatalf("Bytes() does not reproduce the header:\n got %x\nwant %x", got, data[:HeaderLength])
	}
}

func TestHeaderRoundTripPreservesUnknownFields(t *testing.T) {
	t.Parallel()

	var b [HeaderLength]byte
	copy(b[:], Magic[:])
	for off := 12; off < 48; off += 4 {
		putU32(b[:], off, uint32(0x01010101*off))
	}
	putU32(b[:], 12, 0xdeadbeef) // unnamed format
	putU32(b[:], 44, 77)         // unnamed scheme
	putU64(b[:], 64, 0x1122334455667788)
	putU64(b[:], 72, 0x8877665544332211)

	h, err := ParseHeader(b[:])
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Format.Known() || h.SupercompressionScheme.Known() {
		t.Fatalf("expected unknown format and scheme, got %s / %s", h.Format, h.SupercompressionScheme)
	}
	if got := h.Bytes(); got != b {
		t.Fatalf("round trip mismatch:\n got %x\nwant %x", got, b)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	t.Parallel()

	valid := mustMarshal(t, testTexture())[:HeaderLength]

	tests := []struct {
		name  string
		input func() []byte
		want  error
	}{
		{name: "empty", input: func() []byte { return nil }, want: ErrUnexpectedEnd},
		{name: "47-bytes", input: func() []byte { return append([]byte(nil), valid[:47]...) }, want: ErrUnexpectedEnd},
		{name: "79-bytes", input: func() []byte { return append([]byte(nil), valid[:79]...) }, want: ErrUnexpectedEnd},
		{name: "bad-magic", input: func() []byte {
			b := append([]byte(nil), valid...)
			b[0] ^= 1
			return b
		}, want: ErrBadMagic},
		{name: "bad-magic-tail", input: func() []byte {
			b := append([]byte(nil), valid...)
			b[11] = 0
			return b
		}, want: ErrBadMagic},
		{name: "zero-width", input: func() []byte {
			b := append([]byte(nil), valid...)
			putU32(b, 20, 0)
			return b
		}, want: ErrZeroWidth},
		{name: "zero-face-count", input: func() []byte {
			b := append([]byte(nil), valid...)
			putU32(b, 36, 0)
			return b
		}, want: ErrZeroFaceCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseHeader(tc.input())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected error %v, got %v", tc.want, err)
			}
		})
	}
}

func TestHeaderHelpers(t *testing.T) {
	t.Parallel()

	h := Header{PixelWidth: 1, FaceCount: 6}
	if h.NumLevels() != 1 || h.NumLayers() != 1 {
		t.Fatalf("NumLevels/NumLayers = %d/%d, want 1/1", h.NumLevels(), h.NumLayers())
	}
	if !h.IsCubemap() {
		t.Fatalf("expected cubemap")
	}

	h.LevelCount, h.LayerCount = 9, 4
	if h.NumLevels() != 9 || h.NumLayers() != 4 {
		t.Fatalf("NumLevels/NumLayers = %d/%d, want 9/4", h.NumLevels(), h.NumLayers())
	}
}
