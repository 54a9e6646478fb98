package ktx2

import (
	"fmt"
	"image"
	"io"
	"os"
	"slices"

	"github.com/woozymasta/bcn"
)

// DefaultWriter is the KTXwriter value recorded by WriteImage.
const DefaultWriter = "github.com/woozymasta/ktx2"

// Texture is the input of Encode.
type Texture struct {
	Format Format
	// TypeSize defaults to the format table value, or 1 for unknown formats.
	TypeSize    uint32
	PixelWidth  uint32
	PixelHeight uint32
	PixelDepth  uint32
	LayerCount  uint32
	// FaceCount defaults to 1.
	FaceCount              uint32
	SupercompressionScheme SupercompressionScheme

	// Levels holds the stored level payloads, largest first.
	Levels [][]byte
	// UncompressedLengths defaults to the payload lengths.
	UncompressedLengths []uint64

	KeyValues                  []KeyValue
	SupercompressionGlobalData []byte
	// DFD holds raw descriptor blocks. When nil the canonical Basic DFD of Format is used.
	DFD []byte
}

// WriteOptions configures WriteImage.
type WriteOptions struct {
	// Format must be BC1-BC5 or 8-bit RGBA/BGRA.
	Format Format
	// MaxMipMaps limits the mip chain; 0 means full chain.
	MaxMipMaps int
	// EncodeOptions are passed to the BCn encoder.
	EncodeOptions *bcn.EncodeOptions
	// Writer is stored under KTXwriter; empty means DefaultWriter.
	Writer    string
	KeyValues []KeyValue
}

// Marshal lays out t as a KTX2 file.
//
// Sections follow the header and level index in the order DFD, key/value
// data, supercompression global data. Levels are stored smallest first,
// each aligned to lcm(texel block size, 4), or unaligned when supercompressed.
func Marshal(t *Texture) ([]byte, error) {
	if len(t.Levels) == 0 {
		return nil, ErrEmptyLevels
	}
	if t.PixelWidth == 0 {
		return nil, ErrZeroWidth
	}
	if t.UncompressedLengths != nil && len(t.UncompressedLengths) != len(t.Levels) {
		return nil, fmt.Errorf("%w: %d uncompressed lengths for %d levels", ErrLevelSizeMismatch, len(t.UncompressedLengths), len(t.Levels))
	}

	canonical, known := t.Format.BasicDataFormatDescriptor()
	dfdBlocks := t.DFD
	if dfdBlocks == nil {
		if !known {
			return nil, fmt.Errorf("%w: no descriptor for %s", ErrInvalidFormat, t.Format)
		}
		dfdBlocks = canonical.Bytes()
	}

	faces := max(t.FaceCount, 1)
	if t.SupercompressionScheme == SupercompressionNone && known {
		if err := checkLevelSizes(t, faces); err != nil {
			return nil, err
		}
	}

	levelCount, err := u32FromInt(len(t.Levels))
	if err != nil {
		return nil, err
	}

	typeSize := t.TypeSize
	if typeSize == 0 {
		typeSize = 1
		if ts, ok := t.Format.TypeSize(); ok {
			typeSize = ts
		}
	}

	kvd, err := encodeKeyValueData(t.KeyValues)
	if err != nil {
		return nil, err
	}

	header := Header{
		Format:                 t.Format,
		TypeSize:               typeSize,
		PixelWidth:             t.PixelWidth,
		PixelHeight:            t.PixelHeight,
		PixelDepth:             t.PixelDepth,
		LayerCount:             t.LayerCount,
		FaceCount:              faces,
		LevelCount:             levelCount,
		SupercompressionScheme: t.SupercompressionScheme,
	}

	pos := uint64(HeaderLength + len(t.Levels)*LevelIndexEntryLength)

	dfdLen, err := u32FromInt(4 + len(dfdBlocks))
	if err != nil {
		return nil, err
	}
	if header.Index.DFDByteOffset, err = u32FromU64(pos); err != nil {
		return nil, err
	}
	header.Index.DFDByteLength = dfdLen
	pos += uint64(dfdLen)

	if len(kvd) > 0 {
		pos = alignUp(pos, 4)
		if header.Index.KVDByteOffset, err = u32FromU64(pos); err != nil {
			return nil, err
		}
		header.Index.KVDByteLength = uint32(len(kvd))
		pos += uint64(len(kvd))
	}

	if len(t.SupercompressionGlobalData) > 0 {
		pos = alignUp(pos, 8)
		header.Index.SGDByteOffset = pos
		header.Index.SGDByteLength = uint64(len(t.SupercompressionGlobalData))
		pos += header.Index.SGDByteLength
	}

	align := uint64(1)
	if t.SupercompressionScheme == SupercompressionNone {
		align = 4
		if known {
			align = lcm(uint64(canonical.TexelBlockBytes()), 4)
		}
	}

	index := make([]LevelIndex, len(t.Levels))
	for i := len(t.Levels) - 1; i >= 0; i-- {
		pos = alignUp(pos, align)
		uncompressed := uint64(len(t.Levels[i]))
		if t.UncompressedLengths != nil {
			uncompressed = t.UncompressedLengths[i]
		}
		index[i] = LevelIndex{ByteOffset: pos, ByteLength: uint64(len(t.Levels[i])), UncompressedByteLength: uncompressed}
		pos += uint64(len(t.Levels[i]))
	}

	size, err := intFromU64(pos)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, size)
	out = header.AppendBytes(out)
	for _, l := range index {
		out = l.appendBytes(out)
	}
	out = byteOrder.AppendUint32(out, dfdLen)
	out = append(out, dfdBlocks...)
	if len(kvd) > 0 {
		out = padTo(out, uint64(header.Index.KVDByteOffset))
		out = append(out, kvd...)
	}
	if len(t.SupercompressionGlobalData) > 0 {
		out = padTo(out, header.Index.SGDByteOffset)
		out = append(out, t.SupercompressionGlobalData...)
	}
	for i := len(t.Levels) - 1; i >= 0; i-- {
		out = padTo(out, index[i].ByteOffset)
		out = append(out, t.Levels[i]...)
	}

	return out, nil
}

// checkLevelSizes compares each payload with the size its format implies.
func checkLevelSizes(t *Texture, faces uint32) error {
	images := uint64(max(t.LayerCount, 1)) * uint64(faces)
	for i, data := range t.Levels {
		level := uint32(i)
		one, ok := t.Format.ImageByteLength(
			mipDimension(t.PixelWidth, level),
			mipDimension(t.PixelHeight, level),
			mipDimension(t.PixelDepth, level),
		)
		if !ok {
			return fmt.Errorf("%w: level %d size overflows", ErrSizeOverflow, i)
		}
		want, err := mulU64(one, images)
		if err != nil {
			return err
		}
		if uint64(len(data)) != want {
			return fmt.Errorf("%w: level %d: expected %d, got %d", ErrLevelSizeMismatch, i, want, len(data))
		}
	}

	return nil
}

// Encode writes t to w as a KTX2 file.
func Encode(w io.Writer, t *Texture) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// WriteFile writes t to path.
func WriteFile(path string, t *Texture) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return f.Close()
}

// WriteImage generates a mip chain from img, block-encodes it and writes a KTX2 file.
func WriteImage(img image.Image, path string, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{Format: FormatB8G8R8A8Unorm}
	}

	format := bcnFormat(opts.Format)
	if format == bcn.FormatUnknown {
		return fmt.Errorf("%w: %s cannot be encoded", ErrInvalidFormat, opts.Format)
	}

	bounds := img.Bounds()
	width, err := u32FromInt(bounds.Dx())
	if err != nil {
		return err
	}
	height, err := u32FromInt(bounds.Dy())
	if err != nil {
		return err
	}

	mipMapCount, err := calculateMipMapCount(bounds.Dx(), bounds.Dy(), 1)
	if err != nil {
		return err
	}
	if opts.MaxMipMaps > 0 && opts.MaxMipMaps < mipMapCount {
		mipMapCount = opts.MaxMipMaps
	}

	mips := bcn.GenerateMipmaps(img, false)
	if len(mips) > mipMapCount {
		mips = mips[:mipMapCount]
	}

	levels := make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, format, opts.EncodeOptions)
		if err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrEncodeLevel, i, err)
		}
		levels[i] = data
	}

	writer := opts.Writer
	if writer == "" {
		writer = DefaultWriter
	}
	kvs := slices.Clone(opts.KeyValues)
	if !slices.ContainsFunc(kvs, func(kv KeyValue) bool { return kv.Key == KeyWriter }) {
		kvs = append(kvs, KeyValue{Key: KeyWriter, Value: append([]byte(writer), 0)})
	}

	return WriteFile(path, &Texture{
		Format:      opts.Format,
		PixelWidth:  width,
		PixelHeight: height,
		FaceCount:   1,
		Levels:      levels,
		KeyValues:   kvs,
	})
}

// padTo zero-fills out up to length n.
func padTo(out []byte, n uint64) []byte {
	for uint64(len(out)) < n {
		out = append(out, 0)
	}

	return out
}

func lcm(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return max(a, b)
	}
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}

	return a / x * b
}
