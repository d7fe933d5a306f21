package texres

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// ddsFixture builds a DDS file with the given FourCC, dimensions and a
// payload of payloadLen bytes following the header.
func ddsFixture(fourCC uint32, width, height uint32, payloadLen int) []byte {
	b := make([]byte, HeaderSize+payloadLen)
	binary.LittleEndian.PutUint32(b[0:], Magic)
	binary.LittleEndian.PutUint32(b[offsetSize:], headerStructSize)
	binary.LittleEndian.PutUint32(b[8:], 0x1|0x2|0x4|0x1000)
	binary.LittleEndian.PutUint32(b[offsetHeight:], height)
	binary.LittleEndian.PutUint32(b[offsetWidth:], width)
	binary.LittleEndian.PutUint32(b[24:], 1)
	binary.LittleEndian.PutUint32(b[offsetMipMapCount:], 1)
	binary.LittleEndian.PutUint32(b[offsetPixelFormat:], 32)
	binary.LittleEndian.PutUint32(b[offsetPixelFormat+4:], 0x4)
	binary.LittleEndian.PutUint32(b[offsetFourCC:], fourCC)
	binary.LittleEndian.PutUint32(b[108:], 0x1000)
	for i := HeaderSize; i < len(b); i++ {
		b[i] = byte(i * 7)
	}

	return b
}

// gameData creates root/GameData and returns root with a trailing separator.
func gameData(t testing.TB) string {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, GameDataDir), 0o755); err != nil {
		t.Fatalf("mkdir GameData: %v", err)
	}

	return root + string(filepath.Separator)
}

// writeAsset writes data at root/GameData/name, creating parent directories.
func writeAsset(t testing.TB, root, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(root, GameDataDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

// testImage builds a deterministic NRGBA image.
func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 30), //nolint:gosec // bounded
				G: uint8(y * 30), //nolint:gosec // bounded
				B: 100,
				A: 255,
			})
		}
	}

	return img
}

// pngBytes encodes img as PNG.
func pngBytes(t testing.TB, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	return buf.Bytes()
}
