package ren

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDecoder struct {
	samples  []byte
	w, h     int
	channels int
	err      error
}

func (d fakeDecoder) Decode(path string) ([]byte, int, int, int, error) {
	return d.samples, d.w, d.h, d.channels, d.err
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestDecodeSamplesRGB(t *testing.T) {
	buf := DecodeSamples("rgb", []byte{1, 2, 3, 4, 5, 6}, 2, 1, 3)
	assert.Equal(t, Pixel{1, 2, 3, 255}, buf.At(0, 0))
	assert.Equal(t, Pixel{4, 5, 6, 255}, buf.At(1, 0))
}

func TestRotateChannels(t *testing.T) {
	got := rotateChannels(argbWord{A: 1, R: 2, G: 3, B: 4})
	assert.Equal(t, Pixel{R: 1, G: 2, B: 3, A: 4}, got)
}

func TestDecodeSamplesRGBA(t *testing.T) {
	buf := DecodeSamples("rgba", []byte{10, 20, 30, 40, 50, 60, 70, 80}, 1, 2, 4)
	assert.Equal(t, Pixel{10, 20, 30, 40}, buf.At(0, 0))
	assert.Equal(t, Pixel{50, 60, 70, 80}, buf.At(0, 1))
}

func TestDecodeSamplesUnsupportedIsFatal(t *testing.T) {
	SetLogger(silentLogger())
	defer SetLogger(nil)

	assert.Panics(t, func() { DecodeSamples("gray.png", []byte{1, 2}, 1, 1, 2) })
	assert.Panics(t, func() { DecodeSamples("short.png", []byte{1, 2, 3}, 2, 1, 3) })
}

func TestOpenBufferErrors(t *testing.T) {
	_, err := OpenBuffer(fakeDecoder{err: errors.New("boom")}, "x.png")
	assert.Error(t, err)

	_, err = OpenBuffer(fakeDecoder{samples: []byte{1, 2}, w: 1, h: 1, channels: 2}, "x.png")
	assert.Error(t, err)

	buf, err := OpenBuffer(fakeDecoder{samples: []byte{7, 8, 9}, w: 1, h: 1, channels: 3}, "x.png")
	require.NoError(t, err)
	assert.Equal(t, Opaque(7, 8, 9), buf.At(0, 0))
}

func TestLoadBufferMissingFileIsFatal(t *testing.T) {
	SetLogger(silentLogger())
	defer SetLogger(nil)

	missing := filepath.Join(t.TempDir(), "missing.png")
	assert.Panics(t, func() { LoadBuffer(StdDecoder{}, missing) })
}

func TestStdDecoderAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 128})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	path := writePNG(t, img)

	samples, w, h, channels, err := StdDecoder{}.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, 4, channels)
	assert.Equal(t, []byte{255, 0, 0, 128, 0, 255, 0, 255}, samples)

	buf := LoadBuffer(StdDecoder{}, path)
	assert.Equal(t, Pixel{255, 0, 0, 128}, buf.At(0, 0))
	assert.Equal(t, Pixel{0, 255, 0, 255}, buf.At(1, 0))
}

func TestStdDecoderOpaque(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	img.SetRGBA(0, 1, color.RGBA{4, 5, 6, 255})
	path := writePNG(t, img)

	samples, _, _, channels, err := StdDecoder{}.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 3, channels)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, samples)
}
