package ktx2

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Well-known metadata keys.
const (
	KeyOrientation       = "KTXorientation"
	KeyWriter            = "KTXwriter"
	KeyWriterScParams    = "KTXwriterScParams"
	KeySwizzle           = "KTXswizzle"
	KeyGLFormat          = "KTXglFormat"
	KeyDXGIFormat        = "KTXdxgiFormat__"
	KeyMetalPixelFormat  = "KTXmetalPixelFormat"
	KeyCubemapIncomplete = "KTXcubemapIncomplete"
	KeyAnimData          = "KTXanimData"
	KeyAstcDecodeMode    = "KTXastcDecodeMode"
)

// KeyValue is one metadata entry. Value aliases the input buffer.
type KeyValue struct {
	Key   string
	Value []byte
}

// KeyValueIterator walks a key/value data section. Malformed entries are
// skipped; iteration ends when no length prefix fits in the remaining bytes.
type KeyValueIterator struct {
	data []byte
	pos  uint64
}

// NewKeyValueIterator returns an iterator over a raw key/value data section.
func NewKeyValueIterator(kvd []byte) *KeyValueIterator {
	return &KeyValueIterator{data: kvd}
}

// Next returns the next well-formed entry.
func (it *KeyValueIterator) Next() (KeyValue, bool) {
	size := uint64(len(it.data))
	for it.pos < size {
		length, err := readU32LE(it.data, int(it.pos))
		if err != nil {
			break
		}

		start := it.pos + 4
		end := start + uint64(length)
		it.pos = alignUp(end, 4)
		if end > size {
			continue
		}

		entry := it.data[start:end]
		nul := bytes.IndexByte(entry, 0)
		if nul < 0 {
			continue
		}
		key := entry[:nul]
		if !utf8.Valid(key) {
			continue
		}

		return KeyValue{Key: string(key), Value: entry[nul+1:]}, true
	}

	it.pos = size
	return KeyValue{}, false
}

// All collects the remaining entries.
func (it *KeyValueIterator) All() []KeyValue {
	var out []KeyValue
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		out = append(out, kv)
	}

	return out
}

// encodeKeyValueData frames entries sorted by key, each padded to 4 bytes.
func encodeKeyValueData(entries []KeyValue) ([]byte, error) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b KeyValue) int { return strings.Compare(a.Key, b.Key) })

	var out []byte
	for i, kv := range sorted {
		if kv.Key == "" || strings.IndexByte(kv.Key, 0) >= 0 || !utf8.ValidString(kv.Key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, kv.Key)
		}
		if i > 0 && sorted[i-1].Key == kv.Key {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidKey, kv.Key)
		}

		length, err := u32FromInt(len(kv.Key) + 1 + len(kv.Value))
		if err != nil {
			return nil, err
		}
		out = byteOrder.AppendUint32(out, length)
		out = append(out, kv.Key...)
		out = append(out, 0)
		out = append(out, kv.Value...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}

	return out, nil
}
