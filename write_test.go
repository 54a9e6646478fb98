package ktx2

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// superTexture compresses every level of testTexture with compress.
func superTexture(t *testing.T, scheme SupercompressionScheme, compress func([]byte) []byte) (*Texture, [][]byte) {
	t.Helper()

	plain := testTexture()
	tex := *plain
	tex.SupercompressionScheme = scheme
	tex.Levels = make([][]byte, len(plain.Levels))
	tex.UncompressedLengths = make([]uint64, len(plain.Levels))
	for i, level := range plain.Levels {
		tex.Levels[i] = compress(level)
		tex.UncompressedLengths[i] = uint64(len(level))
	}

	return &tex, plain.Levels
}

func zstdCompress(t *testing.T) func([]byte) []byte {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	t.Cleanup(func() { _ = enc.Close() })

	return func(b []byte) []byte { return enc.EncodeAll(b, nil) }
}

func zlibCompress(t *testing.T) func([]byte) []byte {
	return func(b []byte) []byte {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(b); err != nil {
			t.Fatalf("zlib write: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("zlib close: %v", err)
		}
		return buf.Bytes()
	}
}

func TestSupercompressedLevelsRoundTrip(t *testing.T) {
	t.Parallel()

	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	t.Cleanup(dec.Close)

	tests := []struct {
		name       string
		scheme     SupercompressionScheme
		compress   func(*testing.T) func([]byte) []byte
		decompress func([]byte) ([]byte, error)
	}{
		{
			name:     "zstd",
			scheme:   SupercompressionZstandard,
			compress: zstdCompress,
			decompress: func(b []byte) ([]byte, error) {
				return dec.DecodeAll(b, nil)
			},
		},
		{
			name:     "zlib",
			scheme:   SupercompressionZLIB,
			compress: zlibCompress,
			decompress: func(b []byte) ([]byte, error) {
				zr, err := zlib.NewReader(bytes.NewReader(b))
				if err != nil {
					return nil, err
				}
				defer func() { _ = zr.Close() }()
				return io.ReadAll(zr)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tex, plain := superTexture(t, tc.scheme, tc.compress(t))
			r, err := NewReader(mustMarshal(t, tex))
			if err != nil {
				t.Fatalf("NewReader: %v", err)
			}
			if r.Header().SupercompressionScheme != tc.scheme {
				t.Fatalf("scheme = %s", r.Header().SupercompressionScheme)
			}

			it := r.Levels()
			for l, ok := it.Next(); ok; l, ok = it.Next() {
				if !bytes.Equal(l.Data, tex.Levels[l.Index]) {
					t.Fatalf("level %d stored bytes changed", l.Index)
				}
				if l.UncompressedByteLength != uint64(len(plain[l.Index])) {
					t.Fatalf("level %d uncompressed length = %d", l.Index, l.UncompressedByteLength)
				}
				got, err := tc.decompress(l.Data)
				if err != nil {
					t.Fatalf("level %d decompress: %v", l.Index, err)
				}
				if !bytes.Equal(got, plain[l.Index]) {
					t.Fatalf("level %d payload mismatch", l.Index)
				}
			}

			last := r.LastLevel()
			want := last.ByteOffset - r.FirstLevelOffset() + last.UncompressedByteLength
			if r.DataSpan() != want {
				t.Fatalf("DataSpan = %d, want %d", r.DataSpan(), want)
			}

			if _, err := r.DecodeLevelImage(0, nil); !errors.Is(err, ErrUnsupportedFeature) {
				t.Fatalf("DecodeLevelImage: expected ErrUnsupportedFeature, got %v", err)
			}
		})
	}
}

func TestMarshalGlobalData(t *testing.T) {
	t.Parallel()

	tex := testTexture()
	tex.SupercompressionScheme = SupercompressionBasisLZ
	tex.Format = FormatUndefined
	tex.DFD = DFDHeader{DescriptorBlockSize: DFDHeaderLength}.appendBytes(nil)
	tex.SupercompressionGlobalData = []byte{1, 2, 3, 4, 5}

	r, err := NewReader(mustMarshal(t, tex))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	idx := r.Header().Index
	if idx.SGDByteOffset%8 != 0 {
		t.Fatalf("global data offset %d not 8-aligned", idx.SGDByteOffset)
	}
	if !bytes.Equal(r.SupercompressionGlobalData(), tex.SupercompressionGlobalData) {
		t.Fatalf("global data = %v", r.SupercompressionGlobalData())
	}
	if _, ok := r.BasicDataFormatDescriptor(); ok {
		t.Fatalf("unexpected basic descriptor")
	}
	if n := len(r.DataFormatDescriptors().All()); n != 1 {
		t.Fatalf("got %d descriptor blocks", n)
	}
}

func TestMarshalAlignment(t *testing.T) {
	t.Parallel()

	// 3-byte texels align levels to 12 bytes
	tex := &Texture{
		Format:      FormatR8G8B8Unorm,
		PixelWidth:  3,
		PixelHeight: 3,
		Levels:      [][]byte{make([]byte, 27), make([]byte, 3)},
		KeyValues:   []KeyValue{{Key: "k", Value: []byte("odd")}},
	}

	r, err := NewReader(mustMarshal(t, tex))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	for i, l := range r.LevelIndices() {
		if l.ByteOffset%12 != 0 {
			t.Fatalf("level %d offset %d not 12-aligned", i, l.ByteOffset)
		}
	}
	if off := r.Header().Index.KVDByteOffset; off%4 != 0 {
		t.Fatalf("kvd offset %d not 4-aligned", off)
	}
	if r.Header().FaceCount != 1 || r.Header().TypeSize != 1 {
		t.Fatalf("defaults not applied: %+v", r.Header())
	}
}

func TestMarshalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch func(*Texture)
		want  error
	}{
		{name: "no-levels", patch: func(tex *Texture) { tex.Levels = nil }, want: ErrEmptyLevels},
		{name: "zero-width", patch: func(tex *Texture) { tex.PixelWidth = 0 }, want: ErrZeroWidth},
		{name: "short-level", patch: func(tex *Texture) { tex.Levels[1] = tex.Levels[1][:8] }, want: ErrLevelSizeMismatch},
		{name: "lengths-count", patch: func(tex *Texture) { tex.UncompressedLengths = []uint64{1} }, want: ErrLevelSizeMismatch},
		{name: "unknown-format-no-dfd", patch: func(tex *Texture) { tex.Format = 999 }, want: ErrInvalidFormat},
		{name: "bad-key", patch: func(tex *Texture) { tex.KeyValues = append(tex.KeyValues, KeyValue{Key: ""}) }, want: ErrInvalidKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tex := testTexture()
			tc.patch(tex)
			if _, err := Marshal(tex); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEncodeMatchesMarshal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Encode(&buf, testTexture()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), mustMarshal(t, testTexture())) {
		t.Fatalf("Encode output differs from Marshal")
	}
}
