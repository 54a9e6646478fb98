package ktx2

import (
	"bytes"
	"fmt"
)

const (
	// HeaderLength is the size of the fixed KTX2 header including the index block.
	HeaderLength = 80
	// LevelIndexEntryLength is the size of one level index record.
	LevelIndexEntryLength = 24
)

// Magic is the KTX 2.0 file identifier.
var Magic = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// Index locates the optional sections of the file.
type Index struct {
	DFDByteOffset uint32
	DFDByteLength uint32
	KVDByteOffset uint32
	KVDByteLength uint32
	SGDByteOffset uint64
	SGDByteLength uint64
}

// Header is the fixed-size KTX2 header.
type Header struct {
	// Format is kept as stored, even when it has no named constant.
	Format                 Format
	TypeSize               uint32
	PixelWidth             uint32
	PixelHeight            uint32
	PixelDepth             uint32
	LayerCount             uint32
	FaceCount              uint32
	LevelCount             uint32
	SupercompressionScheme SupercompressionScheme
	Index                  Index
}

// ParseHeader decodes and validates the first HeaderLength bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderLength {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrUnexpectedEnd, HeaderLength, len(b))
	}
	if !bytes.Equal(b[:len(Magic)], Magic[:]) {
		return Header{}, ErrBadMagic
	}

	u32 := func(off int) uint32 { return byteOrder.Uint32(b[off:]) }
	u64 := func(off int) uint64 { return byteOrder.Uint64(b[off:]) }

	h := Header{
		Format:                 Format(u32(12)),
		TypeSize:               u32(16),
		PixelWidth:             u32(20),
		PixelHeight:            u32(24),
		PixelDepth:             u32(28),
		LayerCount:             u32(32),
		FaceCount:              u32(36),
		LevelCount:             u32(40),
		SupercompressionScheme: SupercompressionScheme(u32(44)),
		Index: Index{
			DFDByteOffset: u32(48),
			DFDByteLength: u32(52),
			KVDByteOffset: u32(56),
			KVDByteLength: u32(60),
			SGDByteOffset: u64(64),
			SGDByteLength: u64(72),
		},
	}

	if h.PixelWidth == 0 {
		return Header{}, ErrZeroWidth
	}
	if h.FaceCount == 0 {
		return Header{}, ErrZeroFaceCount
	}

	return h, nil
}

// Bytes encodes h into its on-disk form.
func (h Header) Bytes() [HeaderLength]byte {
	var out [HeaderLength]byte
	copy(out[:], h.AppendBytes(make([]byte, 0, HeaderLength)))
	return out
}

// AppendBytes appends the encoded header to dst.
func (h Header) AppendBytes(dst []byte) []byte {
	dst = append(dst, Magic[:]...)
	for _, v := range []uint32{
		uint32(h.Format),
		h.TypeSize,
		h.PixelWidth,
		h.PixelHeight,
		h.PixelDepth,
		h.LayerCount,
		h.FaceCount,
		h.LevelCount,
		uint32(h.SupercompressionScheme),
		h.Index.DFDByteOffset,
		h.Index.DFDByteLength,
		h.Index.KVDByteOffset,
		h.Index.KVDByteLength,
	} {
		dst = byteOrder.AppendUint32(dst, v)
	}
	dst = byteOrder.AppendUint64(dst, h.Index.SGDByteOffset)
	return byteOrder.AppendUint64(dst, h.Index.SGDByteLength)
}

// NumLevels returns the number of level index records: a stored level count of
// zero still has one level.
func (h Header) NumLevels() uint32 {
	return max(h.LevelCount, 1)
}

// NumLayers returns the array layer count, treating zero as one.
func (h Header) NumLayers() uint32 {
	return max(h.LayerCount, 1)
}

// IsCubemap reports whether the texture has six faces.
func (h Header) IsCubemap() bool {
	return h.FaceCount == 6
}

func (h Header) String() string {
	return fmt.Sprintf("%s %dx%dx%d, %d layers, %d faces, %d levels, supercompression %s",
		h.Format, h.PixelWidth, h.PixelHeight, h.PixelDepth,
		h.LayerCount, h.FaceCount, h.LevelCount, h.SupercompressionScheme)
}
