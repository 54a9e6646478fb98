package ktx2

import "fmt"

// LevelIndex is one record of the level index.
type LevelIndex struct {
	ByteOffset uint64
	// ByteLength is the stored, possibly supercompressed, size.
	ByteLength             uint64
	UncompressedByteLength uint64
}

// Level is the payload of one mip level together with its index record.
type Level struct {
	Index int
	Data  []byte
	LevelIndex
}

// Region describes where a mip level lies relative to the start of the data region.
type Region struct {
	Level      uint32
	LayerCount uint32
	// Offset is relative to the lowest level offset.
	Offset uint64
	Width  uint32
	Height uint32
	Depth  uint32
}

// parseLevelIndex decodes NumLevels records after the header and checks that
// every level range lies inside buf.
func parseLevelIndex(buf []byte, h Header) ([]LevelIndex, error) {
	count := uint64(h.NumLevels())
	size, err := mulU64(count, LevelIndexEntryLength)
	if err != nil {
		return nil, fmt.Errorf("%w: level index of %d entries", ErrUnexpectedEnd, count)
	}
	start, end, err := checkedRange(HeaderLength, size, len(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: level index of %d entries", err, count)
	}

	levels := decodeLevelIndex(buf[start:end])
	for i, l := range levels {
		if _, _, err := checkedRange(l.ByteOffset, l.ByteLength, len(buf)); err != nil {
			return nil, fmt.Errorf("%w: level %d at %d+%d", err, i, l.ByteOffset, l.ByteLength)
		}
	}

	return levels, nil
}

// decodeLevelIndex decodes whole 24-byte records from b.
func decodeLevelIndex(b []byte) []LevelIndex {
	levels := make([]LevelIndex, 0, len(b)/LevelIndexEntryLength)
	for off := 0; off+LevelIndexEntryLength <= len(b); off += LevelIndexEntryLength {
		levels = append(levels, LevelIndex{
			ByteOffset:             byteOrder.Uint64(b[off:]),
			ByteLength:             byteOrder.Uint64(b[off+8:]),
			UncompressedByteLength: byteOrder.Uint64(b[off+16:]),
		})
	}

	return levels
}

func (l LevelIndex) appendBytes(dst []byte) []byte {
	dst = byteOrder.AppendUint64(dst, l.ByteOffset)
	dst = byteOrder.AppendUint64(dst, l.ByteLength)
	return byteOrder.AppendUint64(dst, l.UncompressedByteLength)
}

// firstLevelOffset returns the lowest level offset. Levels are not assumed sorted.
func firstLevelOffset(levels []LevelIndex) uint64 {
	first := levels[0].ByteOffset
	for _, l := range levels[1:] {
		first = min(first, l.ByteOffset)
	}

	return first
}

// lastLevel returns the level with the highest offset.
func lastLevel(levels []LevelIndex) LevelIndex {
	last := levels[0]
	for _, l := range levels[1:] {
		if l.ByteOffset > last.ByteOffset {
			last = l
		}
	}

	return last
}

// dataEnd returns the highest stored end offset over all levels.
func dataEnd(levels []LevelIndex) uint64 {
	var end uint64
	for _, l := range levels {
		// ranges were validated against the buffer, so this cannot wrap
		end = max(end, l.ByteOffset+l.ByteLength)
	}

	return end
}

// LevelIterator yields the levels of a Reader in index order.
type LevelIterator struct {
	buf    []byte
	levels []LevelIndex
	next   int
}

// Next returns the next level.
func (it *LevelIterator) Next() (Level, bool) {
	if it.next >= len(it.levels) {
		return Level{}, false
	}

	i := it.next
	it.next++
	l := it.levels[i]
	// bounds checked in NewReader
	return Level{Index: i, Data: it.buf[l.ByteOffset : l.ByteOffset+l.ByteLength], LevelIndex: l}, true
}

// Len returns the number of levels not yet returned.
func (it *LevelIterator) Len() int {
	return len(it.levels) - it.next
}
