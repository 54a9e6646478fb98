package ktx2

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/bcn"
)

func testImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}

	return img
}

func TestWriteImageDecodeLevel(t *testing.T) {
	t.Parallel()

	img := testImage(8)
	path := filepath.Join(t.TempDir(), "test.ktx2")
	if err := WriteImage(img, path, nil); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	r, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	h := r.Header()
	if h.Format != FormatB8G8R8A8Unorm || h.PixelWidth != 8 || h.PixelHeight != 8 {
		t.Fatalf("unexpected header: %s", h)
	}
	if h.LevelCount < 1 || h.LevelCount > 4 {
		t.Fatalf("LevelCount = %d", h.LevelCount)
	}

	writer, ok := r.KeyValue(KeyWriter)
	if !ok || string(writer) != DefaultWriter+"\x00" {
		t.Fatalf("KTXwriter = %q, %v", writer, ok)
	}

	got, err := r.DecodeLevelImage(0, nil)
	if err != nil {
		t.Fatalf("DecodeLevelImage: %v", err)
	}
	gotImg, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", got)
	}
	if gotImg.Bounds().Dx() != 8 || gotImg.Bounds().Dy() != 8 {
		t.Fatalf("unexpected size: %dx%d", gotImg.Bounds().Dx(), gotImg.Bounds().Dy())
	}
	if !bytes.Equal(gotImg.Pix, img.Pix) {
		t.Fatalf("pixel mismatch")
	}

	if _, err := r.DecodeLevelImage(int(h.LevelCount), nil); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected ErrLevelOutOfRange, got %v", err)
	}
}

func TestWriteImageBlockCompressed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test_bc3.ktx2")
	err := WriteImage(testImage(16), path, &WriteOptions{
		Format:     FormatBC3UnormBlock,
		MaxMipMaps: 1,
		EncodeOptions: &bcn.EncodeOptions{
			QualityLevel: bcn.QualityLevelFast,
		},
		Writer:    "ktx2 test",
		KeyValues: []KeyValue{{Key: KeyOrientation, Value: []byte("rd\x00")}},
	})
	if err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	r, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if n := r.Header().NumLevels(); n != 1 {
		t.Fatalf("NumLevels = %d, want 1", n)
	}
	if l, _ := r.Level(0); len(l.Data) != 256 {
		t.Fatalf("level 0 = %d bytes, want 256", len(l.Data))
	}
	if v, _ := r.KeyValue(KeyWriter); string(v) != "ktx2 test\x00" {
		t.Fatalf("KTXwriter = %q", v)
	}
	if _, ok := r.KeyValue(KeyOrientation); !ok {
		t.Fatalf("missing %s", KeyOrientation)
	}

	img, err := r.DecodeLevelImage(0, &DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeLevelImage: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected size: %v", img.Bounds())
	}
}

func TestWriteImageErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.ktx2")
	err := WriteImage(testImage(4), path, &WriteOptions{Format: FormatASTC4x4UnormBlock})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	err = WriteImage(testImage(4), filepath.Join(t.TempDir(), "missing", "x.ktx2"), nil)
	if !errors.Is(err, ErrCreateFile) {
		t.Fatalf("expected ErrCreateFile, got %v", err)
	}
}

func TestDecodeLevelImageUnsupportedFormat(t *testing.T) {
	t.Parallel()

	tex := testTexture()
	tex.Format = FormatR16G16Unorm
	tex.PixelHeight = 2
	tex.PixelWidth = 4
	tex.Levels = [][]byte{make([]byte, 32)}

	r, err := NewReader(mustMarshal(t, tex))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if CanDecodeImage(FormatR16G16Unorm) {
		t.Fatalf("R16G16_UNORM reported decodable")
	}
	if _, err := r.DecodeLevelImage(0, nil); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestCanDecodeImage(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatBC1RGBAUnormBlock, FormatBC2SRGBBlock, FormatBC5UnormBlock, FormatR8G8B8A8SRGB, FormatB8G8R8A8Unorm} {
		if !CanDecodeImage(f) {
			t.Fatalf("%s should be decodable", f)
		}
	}
	for _, f := range []Format{FormatBC7UnormBlock, FormatBC4SnormBlock, FormatETC2R8G8B8UnormBlock, Format(999)} {
		if CanDecodeImage(f) {
			t.Fatalf("%s should not be decodable", f)
		}
	}
}

func TestImagePackageRegistration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registered.ktx2")
	src := testImage(4)
	if err := WriteImage(src, path, &WriteOptions{Format: FormatR8G8B8A8Unorm, MaxMipMaps: 1}); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 4 {
		t.Fatalf("unexpected size: %dx%d", cfg.Width, cfg.Height)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if name != "ktx2" || img.Bounds().Dx() != 4 {
		t.Fatalf("decoded %q %v", name, img.Bounds())
	}

	fromFile, err := ReadImage(path, nil)
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}
	if fromFile.Bounds() != img.Bounds() {
		t.Fatalf("ReadImage bounds %v", fromFile.Bounds())
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader([]byte("not a texture"))); err == nil {
		t.Fatalf("expected error for foreign data")
	}
}
