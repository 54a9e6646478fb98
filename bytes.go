package ktx2

import "encoding/binary"

// byteOrder is the byte order of every multi-byte KTX2 field.
var byteOrder = binary.LittleEndian

// checkedRange validates [offset, offset+length) against a buffer of size bytes
// and returns it as int bounds.
func checkedRange(offset, length uint64, size int) (int, int, error) {
	end, err := addU64(offset, length)
	if err != nil {
		return 0, 0, ErrUnexpectedEnd
	}
	if end > uint64(size) {
		return 0, 0, ErrUnexpectedEnd
	}

	// size is an int, so both bounds fit.
	return int(offset), int(end), nil
}

// readU16LE reads a little-endian uint16 at offset.
func readU16LE(buf []byte, offset int) (uint16, error) {
	if offset < 0 || len(buf)-offset < 2 {
		return 0, ErrUnexpectedEnd
	}

	return byteOrder.Uint16(buf[offset:]), nil
}

// readU32LE reads a little-endian uint32 at offset.
func readU32LE(buf []byte, offset int) (uint32, error) {
	if offset < 0 || len(buf)-offset < 4 {
		return 0, ErrUnexpectedEnd
	}

	return byteOrder.Uint32(buf[offset:]), nil
}

// readU64LE reads a little-endian uint64 at offset.
func readU64LE(buf []byte, offset int) (uint64, error) {
	if offset < 0 || len(buf)-offset < 8 {
		return 0, ErrUnexpectedEnd
	}

	return byteOrder.Uint64(buf[offset:]), nil
}

// extractBits returns width bits of value starting at bit shift.
// The caller guarantees shift+width <= 32.
func extractBits(value, shift, width uint32) uint32 {
	return (value >> shift) & bitMask(width)
}

// insertBits stores the low width bits of field into value at bit shift.
func insertBits(value, shift, width, field uint32) uint32 {
	mask := bitMask(width) << shift
	return (value &^ mask) | ((field << shift) & mask)
}

func bitMask(width uint32) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}

	return (uint32(1) << width) - 1
}
