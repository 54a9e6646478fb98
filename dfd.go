package ktx2

import (
	"fmt"
	"math"
)

const (
	// DFDHeaderLength is the size of a descriptor block header.
	DFDHeaderLength = 8
	// BasicDFDLength is the size of a Basic descriptor block without samples.
	BasicDFDLength = 24
	// SampleInformationLength is the size of one Basic DFD sample record.
	SampleInformationLength = 16

	// VendorKhronos is the vendor id of Khronos-defined descriptor blocks.
	VendorKhronos = 0
	// DescriptorTypeBasic is the descriptor type of the Basic DFD.
	DescriptorTypeBasic = 0
	// DFDVersion13 is the Basic DFD version number written by this package.
	DFDVersion13 = 2

	// float bit pattern of 1.0
	floatOneBits = 0x3F800000
)

// DFDHeader is the 8-byte header shared by every descriptor block.
type DFDHeader struct {
	VendorID            uint32 // 17 bits
	DescriptorType      uint32 // 15 bits
	VersionNumber       uint16
	DescriptorBlockSize uint16 // includes the header
}

// IsBasic reports whether the block is a Khronos Basic descriptor.
func (h DFDHeader) IsBasic() bool {
	return h.VendorID == VendorKhronos && h.DescriptorType == DescriptorTypeBasic
}

func parseDFDHeader(b []byte) (DFDHeader, error) {
	w0, err := readU32LE(b, 0)
	if err != nil {
		return DFDHeader{}, err
	}
	w1, err := readU32LE(b, 4)
	if err != nil {
		return DFDHeader{}, err
	}

	return DFDHeader{
		VendorID:            extractBits(w0, 0, 17),
		DescriptorType:      extractBits(w0, 17, 15),
		VersionNumber:       uint16(extractBits(w1, 0, 16)),
		DescriptorBlockSize: uint16(extractBits(w1, 16, 16)),
	}, nil
}

func (h DFDHeader) appendBytes(dst []byte) []byte {
	w0 := insertBits(0, 0, 17, h.VendorID)
	w0 = insertBits(w0, 17, 15, h.DescriptorType)
	w1 := insertBits(0, 0, 16, uint32(h.VersionNumber))
	w1 = insertBits(w1, 16, 16, uint32(h.DescriptorBlockSize))
	dst = byteOrder.AppendUint32(dst, w0)
	return byteOrder.AppendUint32(dst, w1)
}

// DataFormatDescriptor is one descriptor block. Data is the body after the header.
type DataFormatDescriptor struct {
	Header DFDHeader
	Data   []byte
}

// Basic decodes the block body as a Basic DFD.
func (d DataFormatDescriptor) Basic() (BasicDFD, error) {
	if !d.Header.IsBasic() {
		return BasicDFD{}, fmt.Errorf("%w: vendor %d type %d is not basic", ErrInvalidDFD, d.Header.VendorID, d.Header.DescriptorType)
	}

	return ParseBasicDFD(d.Data)
}

// DFDIterator walks the descriptor blocks of a DFD region.
// It stops at the first block whose size is below the header size or past the region end.
type DFDIterator struct {
	data []byte
}

// Next returns the next descriptor block.
func (it *DFDIterator) Next() (DataFormatDescriptor, bool) {
	if len(it.data) < DFDHeaderLength {
		it.data = nil
		return DataFormatDescriptor{}, false
	}

	hdr, err := parseDFDHeader(it.data)
	if err != nil {
		it.data = nil
		return DataFormatDescriptor{}, false
	}

	size := int(hdr.DescriptorBlockSize)
	if size < DFDHeaderLength || size > len(it.data) {
		it.data = nil
		return DataFormatDescriptor{}, false
	}

	d := DataFormatDescriptor{Header: hdr, Data: it.data[DFDHeaderLength:size]}
	it.data = it.data[size:]
	return d, true
}

// All collects the remaining descriptor blocks.
func (it *DFDIterator) All() []DataFormatDescriptor {
	var out []DataFormatDescriptor
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		out = append(out, d)
	}

	return out
}

// BasicDFDHeader holds the fixed fields of a Basic DFD.
type BasicDFDHeader struct {
	ColorModel       ColorModel
	ColorPrimaries   ColorPrimaries
	TransferFunction TransferFunction
	Flags            DataFormatFlags
	// TexelBlockDimensions are decoded sizes (stored value + 1).
	TexelBlockDimensions [4]uint32
	BytesPlanes          [8]uint8
}

// BasicDFD is a decoded Basic descriptor whose samples are read lazily.
type BasicDFD struct {
	BasicDFDHeader
	samples []byte
}

// ParseBasicDFD decodes the body of a Basic descriptor block (without the 8-byte header).
func ParseBasicDFD(body []byte) (BasicDFD, error) {
	const fixed = BasicDFDLength - DFDHeaderLength
	if len(body) < fixed {
		return BasicDFD{}, fmt.Errorf("%w: basic body of %d bytes", ErrUnexpectedEnd, len(body))
	}

	w0, _ := readU32LE(body, 0)
	w1, _ := readU32LE(body, 4)

	var h BasicDFDHeader
	h.ColorModel = ColorModel(extractBits(w0, 0, 8))
	h.ColorPrimaries = ColorPrimaries(extractBits(w0, 8, 8))
	h.TransferFunction = TransferFunction(extractBits(w0, 16, 8))
	h.Flags = DataFormatFlags(extractBits(w0, 24, 8))
	for i := range h.TexelBlockDimensions {
		h.TexelBlockDimensions[i] = extractBits(w1, uint32(i)*8, 8) + 1
	}
	copy(h.BytesPlanes[:], body[8:16])

	samples := body[fixed:]
	samples = samples[:len(samples)-len(samples)%SampleInformationLength]
	return BasicDFD{BasicDFDHeader: h, samples: samples}, nil
}

// SampleCount returns the number of sample records.
func (b BasicDFD) SampleCount() int {
	return len(b.samples) / SampleInformationLength
}

// Samples returns a fresh iterator over the sample records.
func (b BasicDFD) Samples() *SampleIterator {
	return &SampleIterator{data: b.samples}
}

// Descriptor collects the block into an owned FormatDescriptor.
func (b BasicDFD) Descriptor() FormatDescriptor {
	d := FormatDescriptor{BasicDFDHeader: b.BasicDFDHeader}
	it := b.Samples()
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		d.Samples = append(d.Samples, s)
	}

	return d
}

// SampleInformation describes one channel bit field of a texel block.
type SampleInformation struct {
	BitOffset uint16
	// BitLength is the decoded length (stored value + 1).
	BitLength       uint16
	ChannelType     uint8
	Qualifiers      ChannelQualifiers
	SamplePositions [4]uint8
	// Lower and Upper are raw bit patterns, see LowerFloat and LowerInt.
	Lower uint32
	Upper uint32
}

func parseSampleInformation(b []byte) SampleInformation {
	w0 := byteOrder.Uint32(b[0:])
	s := SampleInformation{
		BitOffset:   uint16(extractBits(w0, 0, 16)),
		BitLength:   uint16(extractBits(w0, 16, 8)) + 1,
		ChannelType: uint8(extractBits(w0, 24, 4)),
		Qualifiers:  ChannelQualifiers(extractBits(w0, 28, 4)),
		Lower:       byteOrder.Uint32(b[8:]),
		Upper:       byteOrder.Uint32(b[12:]),
	}
	copy(s.SamplePositions[:], b[4:8])

	return s
}

func (s SampleInformation) appendBytes(dst []byte) []byte {
	length := uint32(s.BitLength)
	if length > 0 {
		length--
	}
	w0 := insertBits(0, 0, 16, uint32(s.BitOffset))
	w0 = insertBits(w0, 16, 8, length)
	w0 = insertBits(w0, 24, 4, uint32(s.ChannelType))
	w0 = insertBits(w0, 28, 4, uint32(s.Qualifiers))
	dst = byteOrder.AppendUint32(dst, w0)
	dst = append(dst, s.SamplePositions[:]...)
	dst = byteOrder.AppendUint32(dst, s.Lower)
	return byteOrder.AppendUint32(dst, s.Upper)
}

// LowerFloat interprets Lower as an IEEE-754 float.
func (s SampleInformation) LowerFloat() float32 { return math.Float32frombits(s.Lower) }

// UpperFloat interprets Upper as an IEEE-754 float.
func (s SampleInformation) UpperFloat() float32 { return math.Float32frombits(s.Upper) }

// LowerInt interprets Lower as an integer, two's complement when SIGNED.
func (s SampleInformation) LowerInt() int64 { return s.asInt(s.Lower) }

// UpperInt interprets Upper as an integer, two's complement when SIGNED.
func (s SampleInformation) UpperInt() int64 { return s.asInt(s.Upper) }

func (s SampleInformation) asInt(v uint32) int64 {
	if s.Qualifiers.Signed() {
		return int64(int32(v))
	}

	return int64(v)
}

// IsNorm reports a float sample whose upper bound is 1.0, i.e. a normalized range.
func (s SampleInformation) IsNorm() bool {
	return s.Qualifiers.Float() && s.Upper == floatOneBits
}

// SampleIterator yields sample records one at a time.
type SampleIterator struct {
	data []byte
}

// Next returns the next sample record.
func (it *SampleIterator) Next() (SampleInformation, bool) {
	if len(it.data) < SampleInformationLength {
		return SampleInformation{}, false
	}

	s := parseSampleInformation(it.data[:SampleInformationLength])
	it.data = it.data[SampleInformationLength:]
	return s, true
}

// FormatDescriptor is an owned Basic DFD, as produced by the format table.
type FormatDescriptor struct {
	BasicDFDHeader
	Samples []SampleInformation
}

// BlockSize returns the descriptor block size including its header.
func (d FormatDescriptor) BlockSize() int {
	return BasicDFDLength + len(d.Samples)*SampleInformationLength
}

// Bytes encodes d as a complete Basic descriptor block.
func (d FormatDescriptor) Bytes() []byte {
	return d.appendBytes(make([]byte, 0, d.BlockSize()))
}

func (d FormatDescriptor) appendBytes(dst []byte) []byte {
	hdr := DFDHeader{
		VendorID:            VendorKhronos,
		DescriptorType:      DescriptorTypeBasic,
		VersionNumber:       DFDVersion13,
		DescriptorBlockSize: uint16(d.BlockSize()),
	}
	dst = hdr.appendBytes(dst)

	w0 := uint32(d.ColorModel) | uint32(d.ColorPrimaries)<<8 | uint32(d.TransferFunction)<<16 | uint32(d.Flags)<<24
	dst = byteOrder.AppendUint32(dst, w0)

	var w1 uint32
	for i, dim := range d.TexelBlockDimensions {
		if dim > 0 {
			dim--
		}
		w1 = insertBits(w1, uint32(i)*8, 8, dim)
	}
	dst = byteOrder.AppendUint32(dst, w1)
	dst = append(dst, d.BytesPlanes[:]...)

	for _, s := range d.Samples {
		dst = s.appendBytes(dst)
	}

	return dst
}

// TexelBlockBytes returns the byte size of one texel block in plane 0.
func (d FormatDescriptor) TexelBlockBytes() int {
	return int(d.BytesPlanes[0])
}
