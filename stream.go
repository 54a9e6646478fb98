package ktx2

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// ReadFrom loads a KTX2 file from a seekable stream and returns a Reader over it.
//
// The header is read first, then the level index after seeking to its start; together they give the
// extent of every declared region. That extent is read into memory in one
// pass and handed to NewReader, so validation is identical to the in-memory
// path. ctx is checked between the read phases.
func ReadFrom(ctx context.Context, r io.ReadSeeker) (*Reader, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeek, err)
	}
	streamSize := uint64(end)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeek, err)
	}

	var head [HeaderLength]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrReadHeader, ErrUnexpectedEnd, err)
	}
	header, err := ParseHeader(head[:])
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	indexLen := uint64(header.NumLevels()) * LevelIndexEntryLength
	if HeaderLength+indexLen > streamSize {
		return nil, fmt.Errorf("%w: level index of %d entries", ErrUnexpectedEnd, header.NumLevels())
	}
	if _, err := r.Seek(HeaderLength, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeek, err)
	}
	indexBytes := make([]byte, indexLen)
	if _, err := io.ReadFull(r, indexBytes); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrReadLevelIndex, ErrUnexpectedEnd, err)
	}

	extent, err := fileExtent(header, decodeLevelIndex(indexBytes))
	if err != nil {
		return nil, err
	}
	if extent > streamSize {
		return nil, fmt.Errorf("%w: regions end at %d, stream has %d bytes", ErrUnexpectedEnd, extent, streamSize)
	}
	size, err := intFromU64(extent)
	if err != nil {
		return nil, fmt.Errorf("%w: file extent %d", ErrUnexpectedEnd, extent)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeek, err)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrReadData, ErrUnexpectedEnd, err)
	}

	return NewReader(buf)
}

// fileExtent returns the end of the furthest region the header and level index declare.
func fileExtent(h Header, levels []LevelIndex) (uint64, error) {
	extent := uint64(HeaderLength + len(levels)*LevelIndexEntryLength)

	grow := func(offset, length uint64) error {
		if length == 0 {
			return nil
		}
		end, err := addU64(offset, length)
		if err != nil {
			return fmt.Errorf("%w: region %d+%d", ErrUnexpectedEnd, offset, length)
		}
		extent = max(extent, end)
		return nil
	}

	idx := h.Index
	if err := grow(uint64(idx.DFDByteOffset), uint64(idx.DFDByteLength)); err != nil {
		return 0, err
	}
	if err := grow(uint64(idx.KVDByteOffset), uint64(idx.KVDByteLength)); err != nil {
		return 0, err
	}
	if err := grow(idx.SGDByteOffset, idx.SGDByteLength); err != nil {
		return 0, err
	}
	for _, l := range levels {
		if err := grow(l.ByteOffset, l.ByteLength); err != nil {
			return 0, err
		}
	}

	return extent, nil
}

// ReadFile memory-maps path and loads it through ReadFrom.
func ReadFile(path string) (*Reader, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = m.Close() }()

	return ReadFrom(context.Background(), io.NewSectionReader(m, 0, int64(m.Len())))
}
