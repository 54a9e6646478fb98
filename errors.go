package ktx2

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic indicates the file identifier does not match KTX 2.0.
	ErrBadMagic = errors.New("unexpected magic numbers")
	// ErrUnexpectedEnd indicates a field or region lies past the end of the buffer.
	ErrUnexpectedEnd = errors.New("unexpected end of buffer")
	// ErrZeroWidth indicates a zero pixel width.
	ErrZeroWidth = errors.New("zero pixel width")
	// ErrZeroFaceCount indicates a zero face count.
	ErrZeroFaceCount = errors.New("zero face count")
	// ErrUnsupportedFeature indicates a valid container uses a feature this package does not handle.
	ErrUnsupportedFeature = errors.New("unsupported feature")
	// ErrSizeOverflow indicates a size or offset exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidDFD indicates a malformed data format descriptor block.
	ErrInvalidDFD = errors.New("invalid data format descriptor")
	// ErrInvalidFormat indicates a format without canonical metadata where one is required.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmptyLevels indicates missing level payloads.
	ErrEmptyLevels = errors.New("empty levels")
	// ErrLevelOutOfRange indicates a level index past the level count.
	ErrLevelOutOfRange = errors.New("level out of range")
	// ErrLevelSizeMismatch indicates a level payload is shorter than its image.
	ErrLevelSizeMismatch = errors.New("level size mismatch")
	// ErrInvalidKey indicates an empty key or a key containing NUL.
	ErrInvalidKey = errors.New("invalid key")
	// ErrOpenFile indicates KTX2 file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrReadHeader indicates the header read failed.
	ErrReadHeader = errors.New("reading header failed")
	// ErrReadLevelIndex indicates the level index read failed.
	ErrReadLevelIndex = errors.New("reading level index failed")
	// ErrReadData indicates reading the file body failed.
	ErrReadData = errors.New("reading data failed")
	// ErrSeek indicates a seek on the input failed.
	ErrSeek = errors.New("seek failed")
	// ErrWrite indicates writing the container failed.
	ErrWrite = errors.New("write failed")
	// ErrEncodeLevel indicates block encoding of a mip level failed.
	ErrEncodeLevel = errors.New("encode level failed")
	// ErrDecodeImage indicates image decode failed.
	ErrDecodeImage = errors.New("decode image failed")
)

// UnsupportedFeature returns ErrUnsupportedFeature annotated with the feature name.
func UnsupportedFeature(name string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFeature, name)
}
