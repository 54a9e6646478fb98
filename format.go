package ktx2

import (
	"fmt"
	"slices"
	"strings"
)

// Format is a pixel format identifier (VkFormat numbering). Zero means no format,
// as used by supercompressed Basis Universal textures. Values without a named
// constant are preserved and reported as unknown.
type Format uint32

// FormatUndefined is the zero format.
const FormatUndefined Format = 0

type formatInfo struct {
	name     string
	typeSize uint32
	dfd      FormatDescriptor
}

func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	if f == FormatUndefined {
		return "UNDEFINED"
	}

	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Known reports whether f is a named format.
func (f Format) Known() bool {
	_, ok := formatTable[f]
	return ok
}

// TypeSize returns the header typeSize for f: the component size of unpacked
// formats, the packed unit size of packed formats and 1 for block-compressed formats.
func (f Format) TypeSize() (uint32, bool) {
	info, ok := formatTable[f]
	if !ok {
		return 0, false
	}

	return info.typeSize, true
}

// BasicDataFormatDescriptor returns the canonical Basic DFD of f.
// The returned descriptor owns its samples.
func (f Format) BasicDataFormatDescriptor() (FormatDescriptor, bool) {
	info, ok := formatTable[f]
	if !ok {
		return FormatDescriptor{}, false
	}

	d := info.dfd
	d.Samples = append([]SampleInformation(nil), info.dfd.Samples...)
	return d, true
}

// IsCompressed reports whether f is a block-compressed format.
func (f Format) IsCompressed() bool {
	info, ok := formatTable[f]
	return ok && info.dfd.ColorModel >= ColorModelBC1A
}

// IsSRGB reports whether f uses the sRGB transfer function.
func (f Format) IsSRGB() bool {
	info, ok := formatTable[f]
	return ok && info.dfd.TransferFunction == TransferSRGB
}

// IsDepthStencil reports whether f carries depth or stencil samples.
func (f Format) IsDepthStencil() bool {
	info, ok := formatTable[f]
	if !ok || info.dfd.ColorModel != ColorModelRGBSDA {
		return false
	}
	for _, s := range info.dfd.Samples {
		if s.ChannelType == chD || s.ChannelType == chS {
			return true
		}
	}

	return false
}

// ParseFormat looks up a format by name, with or without the VK_FORMAT_ prefix.
func ParseFormat(name string) (Format, bool) {
	name = strings.TrimPrefix(strings.ToUpper(name), "VK_FORMAT_")
	f, ok := formatByName[name]
	return f, ok
}

var formatByName = func() map[string]Format {
	m := make(map[string]Format, len(formatTable))
	for f, info := range formatTable {
		m[strings.ToUpper(info.name)] = f
	}

	return m
}()

// Formats returns every named format in ascending order.
func Formats() []Format {
	out := make([]Format, 0, len(formatTable))
	for f := range formatTable {
		out = append(out, f)
	}
	slices.Sort(out)

	return out
}

// numericFormat is the numeric suffix of a format name.
type numericFormat uint8

const (
	numUNORM numericFormat = iota
	numSNORM
	numUINT
	numSINT
	numSFLOAT
	numUFLOAT
	numSRGB
)

const (
	chR = ChannelRGBSDARed
	chG = ChannelRGBSDAGreen
	chB = ChannelRGBSDABlue
	chS = ChannelRGBSDAStencil
	chD = ChannelRGBSDADepth
	chA = ChannelRGBSDAAlpha

	floatMinusOneBits = 0xBF800000
)

type channelField struct {
	num     numericFormat
	channel uint8
	offset  uint16
	bits    uint16
}

func field(channel uint8, offset, bits uint16) channelField {
	return channelField{channel: channel, offset: offset, bits: bits}
}

func typedField(n numericFormat, channel uint8, offset, bits uint16) channelField {
	return channelField{num: n, channel: channel, offset: offset, bits: bits}
}

func rgbsdaHeader(n numericFormat, texelBytes int) BasicDFDHeader {
	h := BasicDFDHeader{
		ColorModel:           ColorModelRGBSDA,
		ColorPrimaries:       ColorPrimariesBT709,
		TransferFunction:     TransferLinear,
		TexelBlockDimensions: [4]uint32{1, 1, 1, 1},
	}
	if n == numSRGB {
		h.TransferFunction = TransferSRGB
	}
	h.BytesPlanes[0] = uint8(texelBytes)

	return h
}

// uncompressedSample applies the bound conventions of uncompressed samples.
func uncompressedSample(n numericFormat, fd channelField) SampleInformation {
	s := SampleInformation{BitOffset: fd.offset, BitLength: fd.bits, ChannelType: fd.channel}
	switch n {
	case numUNORM, numSRGB:
		if fd.bits >= 32 {
			s.Upper = ^uint32(0)
		} else {
			s.Upper = uint32(1)<<fd.bits - 1
		}
	case numSNORM:
		high := int64(1)<<(fd.bits-1) - 1
		s.Qualifiers = QualifierSigned
		s.Upper = uint32(high)
		s.Lower = uint32(-high)
	case numUINT:
		s.Upper = 1
	case numSINT:
		s.Qualifiers = QualifierSigned
		s.Upper = 1
		s.Lower = ^uint32(0)
	case numSFLOAT:
		s.Qualifiers = QualifierFloat | QualifierSigned
		s.Upper = floatOneBits
		s.Lower = floatMinusOneBits
	case numUFLOAT:
		s.Qualifiers = QualifierFloat
		s.Upper = floatOneBits
	}
	if n == numSRGB && fd.channel == chA {
		s.Qualifiers |= QualifierLinear
	}

	return s
}

// unpacked describes byte-aligned channels laid out in name order.
func unpacked(n numericFormat, bits uint16, channels ...uint8) FormatDescriptor {
	d := FormatDescriptor{BasicDFDHeader: rgbsdaHeader(n, len(channels)*int(bits)/8)}
	for i, ch := range channels {
		d.Samples = append(d.Samples, uncompressedSample(n, field(ch, uint16(i)*bits, bits)))
	}

	return d
}

// packed describes channels packed into one word of texelBytes bytes.
func packed(n numericFormat, texelBytes int, fields ...channelField) FormatDescriptor {
	d := FormatDescriptor{BasicDFDHeader: rgbsdaHeader(n, texelBytes)}
	for _, fd := range fields {
		d.Samples = append(d.Samples, uncompressedSample(n, fd))
	}

	return d
}

// depthStencil describes depth and stencil samples with per-sample numeric types.
func depthStencil(texelBytes int, fields ...channelField) FormatDescriptor {
	d := FormatDescriptor{BasicDFDHeader: rgbsdaHeader(numUNORM, texelBytes)}
	for _, fd := range fields {
		d.Samples = append(d.Samples, uncompressedSample(fd.num, fd))
	}

	return d
}

// sharedExponent describes E5B9G9R9: a 9-bit mantissa per channel sharing
// the 5-bit exponent in the top bits.
func sharedExponent() FormatDescriptor {
	d := FormatDescriptor{BasicDFDHeader: rgbsdaHeader(numUFLOAT, 4)}
	for i, ch := range []uint8{chR, chG, chB} {
		d.Samples = append(d.Samples,
			SampleInformation{BitOffset: uint16(i) * 9, BitLength: 9, ChannelType: ch, Upper: 8448},
			SampleInformation{BitOffset: 27, BitLength: 5, ChannelType: ch, Qualifiers: QualifierExponent, Lower: 15, Upper: 31},
		)
	}

	return d
}

// compressed describes a block-compressed format of blockW x blockH texels.
func compressed(model ColorModel, n numericFormat, blockW, blockH uint32, blockBytes int, fields ...channelField) FormatDescriptor {
	h := rgbsdaHeader(n, blockBytes)
	h.ColorModel = model
	h.TexelBlockDimensions = [4]uint32{blockW, blockH, 1, 1}

	d := FormatDescriptor{BasicDFDHeader: h}
	for _, fd := range fields {
		s := SampleInformation{BitOffset: fd.offset, BitLength: fd.bits, ChannelType: fd.channel}
		switch n {
		case numUNORM, numSRGB:
			s.Upper = ^uint32(0)
		case numSNORM:
			s.Qualifiers = QualifierSigned
			s.Lower = 0x80000000
			s.Upper = 0x7FFFFFFF
		case numSFLOAT:
			s.Qualifiers = QualifierFloat | QualifierSigned
			s.Lower = floatMinusOneBits
			s.Upper = floatOneBits
		case numUFLOAT:
			s.Qualifiers = QualifierFloat
			s.Upper = floatOneBits
		}
		if n == numSRGB && fd.channel == chA {
			s.Qualifiers |= QualifierLinear
		}
		d.Samples = append(d.Samples, s)
	}

	return d
}

// ImageByteLength returns the size of one width x height x depth image of f,
// rounding each dimension up to whole texel blocks. Zero dimensions count as one.
func (f Format) ImageByteLength(width, height, depth uint32) (uint64, bool) {
	info, ok := formatTable[f]
	if !ok {
		return 0, false
	}

	dims := info.dfd.TexelBlockDimensions
	total := uint64(info.dfd.BytesPlanes[0])
	for i, extent := range [3]uint32{width, height, depth} {
		blocks := (uint64(max(extent, 1)) + uint64(dims[i]) - 1) / uint64(dims[i])
		var err error
		if total, err = mulU64(total, blocks); err != nil {
			return 0, false
		}
	}

	return total, true
}
