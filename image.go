package ktx2

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

func init() {
	image.RegisterFormat("ktx2", string(Magic[:]), Decode, DecodeConfig)
}

// DecodeOptions configures DecodeLevelImage.
type DecodeOptions struct {
	// DecodeOptions are passed to the BCn decoder (e.g. Workers).
	DecodeOptions *bcn.DecodeOptions
}

// bcnFormat maps the formats the BCn codec handles.
func bcnFormat(f Format) bcn.Format {
	switch f {
	case FormatBC1RGBUnormBlock, FormatBC1RGBSRGBBlock, FormatBC1RGBAUnormBlock, FormatBC1RGBASRGBBlock:
		return bcn.FormatDXT1
	case FormatBC2UnormBlock, FormatBC2SRGBBlock:
		return bcn.FormatDXT3
	case FormatBC3UnormBlock, FormatBC3SRGBBlock:
		return bcn.FormatDXT5
	case FormatBC4UnormBlock:
		return bcn.FormatBC4
	case FormatBC5UnormBlock:
		return bcn.FormatBC5
	case FormatR8G8B8A8Unorm, FormatR8G8B8A8SRGB:
		return bcn.FormatRGBA8
	case FormatB8G8R8A8Unorm, FormatB8G8R8A8SRGB:
		return bcn.FormatBGRA8
	default:
		return bcn.FormatUnknown
	}
}

// CanDecodeImage reports whether DecodeLevelImage supports f.
func CanDecodeImage(f Format) bool {
	return bcnFormat(f) != bcn.FormatUnknown
}

// DecodeLevelImage decodes the first image (layer 0, face 0, slice 0) of a mip level.
// Nil opts uses default decoding.
func (r *Reader) DecodeLevelImage(level int, opts *DecodeOptions) (image.Image, error) {
	h := r.header
	if h.SupercompressionScheme != SupercompressionNone {
		return nil, UnsupportedFeature("supercompression scheme " + h.SupercompressionScheme.String())
	}

	format := bcnFormat(h.Format)
	if format == bcn.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, h.Format)
	}

	l, ok := r.Level(level)
	if !ok {
		return nil, fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, level, len(r.levels))
	}

	lv := uint32(level)
	width := mipDimension(h.PixelWidth, lv)
	height := mipDimension(h.PixelHeight, lv)
	size, _ := h.Format.ImageByteLength(width, height, 1)
	if uint64(len(l.Data)) < size {
		return nil, fmt.Errorf("%w: level %d: expected %d, got %d", ErrLevelSizeMismatch, level, size, len(l.Data))
	}

	decOpts := (*bcn.DecodeOptions)(nil)
	if opts != nil {
		decOpts = opts.DecodeOptions
	}
	img, err := bcn.DecodeImageWithOptions(l.Data[:size], int(width), int(height), format, decOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: level %d: %v", ErrDecodeImage, level, err)
	}

	return img, nil
}

// DecodeConfig reads the header of a KTX2 stream without touching level data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var head [HeaderLength]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return image.Config{}, fmt.Errorf("%w: %w: %v", ErrReadHeader, ErrUnexpectedEnd, err)
	}
	h, err := ParseHeader(head[:])
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(h.PixelWidth),
		Height:     int(max(h.PixelHeight, 1)),
		ColorModel: color.NRGBAModel,
	}, nil
}

// Decode reads a whole KTX2 stream and decodes the first image of the base level.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}
	kr, err := NewReader(data)
	if err != nil {
		return nil, err
	}

	return kr.DecodeLevelImage(0, nil)
}

// ReadConfig reads KTX2 file configuration without decoding image data.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeConfig(f)
}

// ReadImage reads a KTX2 file and decodes the base level with the given options.
func ReadImage(path string, opts *DecodeOptions) (image.Image, error) {
	r, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return r.DecodeLevelImage(0, opts)
}
