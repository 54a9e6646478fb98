package ktx2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

// testTexture builds a 4x4 RGBA8 texture with a full mip chain and one key/value entry.
func testTexture() *Texture {
	levels := make([][]byte, 3)
	for i, n := range []int{64, 16, 4} {
		levels[i] = make([]byte, n)
		for j := range levels[i] {
			levels[i][j] = byte(i*50 + j)
		}
	}

	return &Texture{
		Format:      FormatR8G8B8A8Unorm,
		PixelWidth:  4,
		PixelHeight: 4,
		FaceCount:   1,
		Levels:      levels,
		KeyValues:   []KeyValue{{Key: KeyWriter, Value: []byte("test\x00")}},
	}
}

func mustMarshal(t testing.TB, tex *Texture) []byte {
	t.Helper()

	data, err := Marshal(tex)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	return data
}

func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putU64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

// levelRecord returns the byte offset of level i's index record.
func levelRecord(i int) int { return HeaderLength + i*LevelIndexEntryLength }

func TestNewReaderRoundTrip(t *testing.T) {
	t.Parallel()

	tex := testTexture()
	r, err := NewReader(mustMarshal(t, tex))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	h := r.Header()
	if h.Format != FormatR8G8B8A8Unorm || h.PixelWidth != 4 || h.PixelHeight != 4 {
		t.Fatalf("unexpected header: %s", h)
	}
	if h.TypeSize != 1 || h.LevelCount != 3 || h.FaceCount != 1 {
		t.Fatalf("unexpected header counts: %+v", h)
	}

	it := r.Levels()
	if it.Len() != 3 {
		t.Fatalf("Levels().Len() = %d, want 3", it.Len())
	}
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		if !bytes.Equal(l.Data, tex.Levels[l.Index]) {
			t.Fatalf("level %d payload mismatch", l.Index)
		}
		if l.UncompressedByteLength != uint64(len(tex.Levels[l.Index])) {
			t.Fatalf("level %d uncompressed length = %d", l.Index, l.UncompressedByteLength)
		}
		if l.ByteOffset%4 != 0 {
			t.Fatalf("level %d offset %d not aligned", l.Index, l.ByteOffset)
		}
	}

	v, ok := r.KeyValue(KeyWriter)
	if !ok || string(v) != "test\x00" {
		t.Fatalf("KeyValue(%q) = %q, %v", KeyWriter, v, ok)
	}
	if r.SupercompressionGlobalData() != nil {
		t.Fatalf("unexpected global data")
	}

	basic, ok := r.BasicDataFormatDescriptor()
	if !ok {
		t.Fatalf("no basic descriptor")
	}
	want, _ := FormatR8G8B8A8Unorm.BasicDataFormatDescriptor()
	if got := basic.Descriptor(); !reflect.DeepEqual(got, want) {
		t.Fatalf("descriptor = %+v, want %+v", got, want)
	}
}

func TestLevelsUnsortedOffsets(t *testing.T) {
	t.Parallel()

	r, err := NewReader(mustMarshal(t, testTexture()))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	// levels are stored smallest first, so index order is offset-descending
	idx := r.LevelIndices()
	if !(idx[0].ByteOffset > idx[1].ByteOffset && idx[1].ByteOffset > idx[2].ByteOffset) {
		t.Fatalf("expected descending offsets, got %+v", idx)
	}

	if got := r.FirstLevelOffset(); got != idx[2].ByteOffset {
		t.Fatalf("FirstLevelOffset = %d, want %d", got, idx[2].ByteOffset)
	}
	if got := r.LastLevel(); got != idx[0] {
		t.Fatalf("LastLevel = %+v, want %+v", got, idx[0])
	}

	wantSpan := idx[0].ByteOffset + idx[0].UncompressedByteLength - idx[2].ByteOffset
	if got := r.DataSpan(); got != wantSpan {
		t.Fatalf("DataSpan = %d, want %d", got, wantSpan)
	}
	if got := uint64(len(r.Data())); got != wantSpan {
		t.Fatalf("len(Data) = %d, want %d", got, wantSpan)
	}

	regions := r.Regions()
	wantDims := []uint32{4, 2, 1}
	for i, reg := range regions {
		if reg.Width != wantDims[i] || reg.Height != wantDims[i] || reg.Depth != 1 {
			t.Fatalf("region %d dims = %dx%dx%d", i, reg.Width, reg.Height, reg.Depth)
		}
		if reg.Offset != idx[i].ByteOffset-idx[2].ByteOffset {
			t.Fatalf("region %d offset = %d", i, reg.Offset)
		}
		if reg.LayerCount != 1 {
			t.Fatalf("region %d layer count = %d", i, reg.LayerCount)
		}
	}
}

func TestZeroLevelCountHasOneLevel(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, testTexture())
	putU32(data, 40, 0)

	r, err := NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Header().NumLevels() != 1 {
		t.Fatalf("NumLevels = %d, want 1", r.Header().NumLevels())
	}

	n := 0
	it := r.Levels()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	if n != 1 {
		t.Fatalf("Levels yielded %d levels, want 1", n)
	}
}

func TestNewReaderBoundsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch func(b []byte) []byte
		want  error
	}{
		{name: "short-header", patch: func(b []byte) []byte { return b[:47] }, want: ErrUnexpectedEnd},
		{name: "bad-magic", patch: func(b []byte) []byte { b[0] ^= 0xff; return b }, want: ErrBadMagic},
		{name: "zero-width", patch: func(b []byte) []byte { putU32(b, 20, 0); return b }, want: ErrZeroWidth},
		{name: "zero-faces", patch: func(b []byte) []byte { putU32(b, 36, 0); return b }, want: ErrZeroFaceCount},
		{name: "truncated-payload", patch: func(b []byte) []byte { return b[:len(b)-1] }, want: ErrUnexpectedEnd},
		{name: "level-index-past-end", patch: func(b []byte) []byte { putU32(b, 40, 1<<20); return b }, want: ErrUnexpectedEnd},
		{name: "level-length-past-end", patch: func(b []byte) []byte { putU64(b, levelRecord(1)+8, 1<<40); return b }, want: ErrUnexpectedEnd},
		{name: "level-offset-overflow", patch: func(b []byte) []byte {
			putU64(b, levelRecord(0), ^uint64(0)-8)
			putU64(b, levelRecord(0)+8, 64)
			return b
		}, want: ErrUnexpectedEnd},
		{name: "dfd-past-end", patch: func(b []byte) []byte { putU32(b, 48, uint32(len(b))); return b }, want: ErrUnexpectedEnd},
		{name: "kvd-past-end", patch: func(b []byte) []byte { putU32(b, 60, uint32(len(b))); return b }, want: ErrUnexpectedEnd},
		{name: "sgd-overflow", patch: func(b []byte) []byte {
			putU64(b, 64, ^uint64(0))
			putU64(b, 72, 2)
			return b
		}, want: ErrUnexpectedEnd},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data := tc.patch(mustMarshal(t, testTexture()))
			r, err := NewReader(data)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected error %v, got %v", tc.want, err)
			}
			if r != nil {
				t.Fatalf("expected nil reader on error")
			}
		})
	}
}

func TestEmptySectionIgnoresOffset(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, testTexture())
	putU64(data, 64, ^uint64(0))
	putU64(data, 72, 0)

	r, err := NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.SupercompressionGlobalData() != nil {
		t.Fatalf("expected no global data")
	}
}

func TestUnknownFormatPreserved(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, testTexture())
	putU32(data, 12, 0x7fff0001)

	r, err := NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if f := r.Header().Format; f != Format(0x7fff0001) || f.Known() {
		t.Fatalf("Format = %v, known %v", f, f.Known())
	}
}

func TestAccessorsIdempotent(t *testing.T) {
	t.Parallel()

	r, err := NewReader(mustMarshal(t, testTexture()))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	collect := func() ([]Level, []DataFormatDescriptor, []KeyValue) {
		var levels []Level
		it := r.Levels()
		for l, ok := it.Next(); ok; l, ok = it.Next() {
			levels = append(levels, l)
		}
		return levels, r.DataFormatDescriptors().All(), r.KeyValueData().All()
	}

	l1, d1, k1 := collect()
	l2, d2, k2 := collect()
	if h1, h2 := r.Header(), r.Header(); h1 != h2 {
		t.Fatalf("header differs between calls")
	}
	if !reflect.DeepEqual(l1, l2) || !reflect.DeepEqual(d1, d2) || !reflect.DeepEqual(k1, k2) {
		t.Fatalf("accessors differ between calls")
	}
	if len(l1) != 3 || len(d1) != 1 || len(k1) != 1 {
		t.Fatalf("got %d levels, %d descriptors, %d entries", len(l1), len(d1), len(k1))
	}
}

func TestLevelAccess(t *testing.T) {
	t.Parallel()

	tex := testTexture()
	r, err := NewReader(mustMarshal(t, tex))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	l, ok := r.Level(1)
	if !ok || !bytes.Equal(l.Data, tex.Levels[1]) {
		t.Fatalf("Level(1) mismatch")
	}
	if _, ok := r.Level(3); ok {
		t.Fatalf("Level(3) should not exist")
	}
	if _, ok := r.Level(-1); ok {
		t.Fatalf("Level(-1) should not exist")
	}
}
