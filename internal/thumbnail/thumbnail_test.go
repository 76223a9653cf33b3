package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func TestResolve(t *testing.T) {
	path, err := Resolve("/games/es", "shuttle")
	require.NoError(t, err)
	assert.Equal(t, "/games/es/images/shuttle.png", path)

	_, err = Resolve("", "shuttle")
	assert.ErrorIs(t, err, ErrNoInstallPath)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "images", "shuttle.png")
	writePNG(t, present, 4, 4)

	assert.NoError(t, Check(present))
	assert.ErrorIs(t, Check(filepath.Join(dir, "images", "gone.png")), ErrImageNotFound)
	assert.ErrorIs(t, Check(""), ErrNoInstallPath)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"already fits", 10, 10, 20, 20, 10, 10},
		{"wide", 200, 100, 50, 50, 50, 25},
		{"tall", 100, 400, 100, 100, 25, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			bounds := Fit(img, tt.maxW, tt.maxH).Bounds()
			assert.Equal(t, tt.wantW, bounds.Dx())
			assert.Equal(t, tt.wantH, bounds.Dy())
		})
	}
}

func TestRender_Sixel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ship.png")
	writePNG(t, path, 32, 16)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, path, 16, 16, ProtocolSixel))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x1bP")), "sixel output starts with DCS")
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, "whatever.png", 10, 10, ProtocolNone), ErrNoProtocol)
	assert.ErrorIs(t, Render(&buf, filepath.Join(t.TempDir(), "gone.png"), 10, 10, ProtocolSixel), ErrImageNotFound)
}

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		name string
		want Protocol
	}{
		{"sixel", ProtocolSixel},
		{"KITTY", ProtocolKitty},
		{"iterm2", ProtocolITerm},
		{"off", ProtocolNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProtocol(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}

	_, err := ParseProtocol("ascii-art")
	assert.Error(t, err)
}
