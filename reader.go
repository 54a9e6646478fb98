package ktx2

import (
	"fmt"
	"slices"
)

// Reader is a validated view over a KTX2 file held in memory.
// Every byte range declared by the header is checked in NewReader,
// so accessors never fail. The buffer must not be modified while in use.
type Reader struct {
	buf    []byte
	header Header
	levels []LevelIndex
	dfd    []byte
	kvd    []byte
	sgd    []byte
}

// NewReader parses the header and level index of buf and validates the
// bounds of every level, the DFD, the key/value data and the
// supercompression global data. No pixel data is copied.
func NewReader(buf []byte) (*Reader, error) {
	header, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}

	levels, err := parseLevelIndex(buf, header)
	if err != nil {
		return nil, err
	}

	idx := header.Index
	dfd, err := section(buf, uint64(idx.DFDByteOffset), uint64(idx.DFDByteLength), "data format descriptor")
	if err != nil {
		return nil, err
	}
	kvd, err := section(buf, uint64(idx.KVDByteOffset), uint64(idx.KVDByteLength), "key/value data")
	if err != nil {
		return nil, err
	}
	sgd, err := section(buf, idx.SGDByteOffset, idx.SGDByteLength, "supercompression global data")
	if err != nil {
		return nil, err
	}

	return &Reader{
		buf:    buf,
		header: header,
		levels: levels,
		dfd:    dfd,
		kvd:    kvd,
		sgd:    sgd,
	}, nil
}

// section slices an optional region; a zero length yields nil whatever the offset.
func section(buf []byte, offset, length uint64, name string) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}

	start, end, err := checkedRange(offset, length, len(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %d+%d", err, name, offset, length)
	}

	return buf[start:end:end], nil
}

// Header returns the parsed header.
func (r *Reader) Header() Header {
	return r.header
}

// Bytes returns the whole input buffer.
func (r *Reader) Bytes() []byte {
	return r.buf
}

// Levels returns a fresh iterator over the mip levels in index order.
// It yields exactly Header().NumLevels() levels.
func (r *Reader) Levels() *LevelIterator {
	return &LevelIterator{buf: r.buf, levels: r.levels}
}

// Level returns mip level i.
func (r *Reader) Level(i int) (Level, bool) {
	if i < 0 || i >= len(r.levels) {
		return Level{}, false
	}

	l := r.levels[i]
	return Level{Index: i, Data: r.buf[l.ByteOffset : l.ByteOffset+l.ByteLength], LevelIndex: l}, true
}

// LevelIndices returns a copy of the level index.
func (r *Reader) LevelIndices() []LevelIndex {
	return slices.Clone(r.levels)
}

// FirstLevelOffset returns the lowest level offset, the start of the data region.
func (r *Reader) FirstLevelOffset() uint64 {
	return firstLevelOffset(r.levels)
}

// LastLevel returns the index record with the highest offset.
func (r *Reader) LastLevel() LevelIndex {
	return lastLevel(r.levels)
}

// DataSpan returns the size of the data region once every level is
// uncompressed: last level offset plus its uncompressed length, minus the
// first level offset. It saturates instead of wrapping.
func (r *Reader) DataSpan() uint64 {
	last := lastLevel(r.levels)
	span, err := addU64(last.ByteOffset-firstLevelOffset(r.levels), last.UncompressedByteLength)
	if err != nil {
		return ^uint64(0)
	}

	return span
}

// Data returns the stored data region, from the lowest level offset to the
// highest stored level end.
func (r *Reader) Data() []byte {
	return r.buf[firstLevelOffset(r.levels):dataEnd(r.levels)]
}

// Regions describes every level relative to the start of the data region.
func (r *Reader) Regions() []Region {
	base := firstLevelOffset(r.levels)
	h := r.header
	regions := make([]Region, len(r.levels))
	for i, l := range r.levels {
		level := uint32(i)
		regions[i] = Region{
			Level:      level,
			LayerCount: h.NumLayers() * h.FaceCount,
			Offset:     l.ByteOffset - base,
			Width:      mipDimension(h.PixelWidth, level),
			Height:     mipDimension(h.PixelHeight, level),
			Depth:      mipDimension(h.PixelDepth, level),
		}
	}

	return regions
}

// DataFormatDescriptors returns a fresh iterator over the descriptor blocks.
// The leading dfdTotalSize word of the section is skipped.
func (r *Reader) DataFormatDescriptors() *DFDIterator {
	if len(r.dfd) < 4 {
		return &DFDIterator{}
	}

	return &DFDIterator{data: r.dfd[4:]}
}

// BasicDataFormatDescriptor returns the first decodable Basic descriptor block.
func (r *Reader) BasicDataFormatDescriptor() (BasicDFD, bool) {
	it := r.DataFormatDescriptors()
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		if !d.Header.IsBasic() {
			continue
		}
		if basic, err := d.Basic(); err == nil {
			return basic, true
		}
	}

	return BasicDFD{}, false
}

// KeyValueData returns a fresh iterator over the key/value entries.
func (r *Reader) KeyValueData() *KeyValueIterator {
	return NewKeyValueIterator(r.kvd)
}

// KeyValue returns the value of the first entry with the given key.
func (r *Reader) KeyValue(key string) ([]byte, bool) {
	it := r.KeyValueData()
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return nil, false
}

// SupercompressionGlobalData returns the global data section, nil when absent.
func (r *Reader) SupercompressionGlobalData() []byte {
	return r.sgd
}
