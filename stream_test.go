package ktx2

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadFromMatchesNewReader(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, testTexture())
	// trailing bytes past the declared regions are not loaded
	padded := append(append([]byte(nil), data...), 0xEE, 0xEE, 0xEE)

	got, err := ReadFrom(context.Background(), bytes.NewReader(padded))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	want, err := NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	if !bytes.Equal(got.Bytes(), data) {
		t.Fatalf("ReadFrom loaded %d bytes, want %d", len(got.Bytes()), len(data))
	}
	if got.Header() != want.Header() {
		t.Fatalf("header mismatch: %s vs %s", got.Header(), want.Header())
	}
	if !reflect.DeepEqual(got.LevelIndices(), want.LevelIndices()) {
		t.Fatalf("level index mismatch")
	}
}

func TestReadFromErrors(t *testing.T) {
	t.Parallel()

	data := mustMarshal(t, testTexture())

	bigIndex := append([]byte(nil), data...)
	putU32(bigIndex, 40, 1<<30)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: ErrReadHeader},
		{name: "short-header", data: data[:40], want: ErrUnexpectedEnd},
		{name: "bad-magic", data: append([]byte{0}, data[1:]...), want: ErrBadMagic},
		{name: "huge-level-count", data: bigIndex, want: ErrUnexpectedEnd},
		{name: "truncated-index", data: data[:HeaderLength+10], want: ErrUnexpectedEnd},
		{name: "truncated-payload", data: data[:len(data)-2], want: ErrUnexpectedEnd},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := ReadFrom(context.Background(), bytes.NewReader(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if r != nil {
				t.Fatalf("expected nil reader on error")
			}
		})
	}
}

func TestReadFromCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadFrom(ctx, bytes.NewReader(mustMarshal(t, testTexture())))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "texture.ktx2")
	tex := testTexture()
	if err := WriteFile(path, tex); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	if !bytes.Equal(r.Bytes(), onDisk) {
		t.Fatalf("ReadFile buffer differs from file contents")
	}

	l, ok := r.Level(2)
	if !ok || !bytes.Equal(l.Data, tex.Levels[2]) {
		t.Fatalf("Level(2) mismatch")
	}
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.ktx2"))
	if !errors.Is(err, ErrOpenFile) {
		t.Fatalf("expected ErrOpenFile, got %v", err)
	}
}
