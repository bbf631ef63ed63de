package ren

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// ImageDecoder turns an encoded image file into raw interleaved samples.
// channels is the number of bytes per pixel in samples.
type ImageDecoder interface {
	Decode(path string) (samples []byte, width int, height int, channels int, err error)
}

// argbWord is how a 4-channel sample is viewed before its channels are
// rotated into a Pixel.
type argbWord struct {
	A, R, G, B uint8
}

// DecodeSamples converts decoded samples into an owned buffer.
//
// 3-channel samples map to (R, G, B, 255). A 4-channel sample is read as an
// argbWord and rotated r<-a, g<-r, b<-g, a<-b, which turns interleaved RGBA
// bytes into the matching Pixel. Any other channel count is fatal; name
// identifies the resource in the report.
func DecodeSamples(name string, samples []byte, width int, height int, channels int) *Buffer {
	if channels != 3 && channels != 4 {
		fatalf(name, "image '%s' has unsupported pixel format (%d channels)", name, channels)
	}
	if width < 0 || height < 0 || len(samples) < width*height*channels {
		fatalf(name, "image '%s' has %d bytes of samples, %dx%dx%d needed",
			name, len(samples), width, height, channels)
	}

	buf := NewBuffer(width, height)
	switch channels {
	case 3:
		for i := range buf.pix {
			s := samples[i*3 : i*3+3]
			buf.pix[i] = Pixel{R: s[0], G: s[1], B: s[2], A: 0xFF}
		}
	case 4:
		for i := range buf.pix {
			s := samples[i*4 : i*4+4]
			buf.pix[i] = rotateChannels(argbWord{A: s[0], R: s[1], G: s[2], B: s[3]})
		}
	}
	return buf
}

func rotateChannels(src argbWord) Pixel {
	return Pixel{R: src.A, G: src.R, B: src.G, A: src.B}
}

// OpenBuffer decodes the file at path into a new buffer.
func OpenBuffer(dec ImageDecoder, path string) (*Buffer, error) {
	samples, w, h, channels, err := dec.Decode(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load '%s': %w", path, err)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("image '%s' has unsupported pixel format (%d channels)", path, channels)
	}
	return DecodeSamples(path, samples, w, h, channels), nil
}

// LoadBuffer is like OpenBuffer but treats any failure as fatal.
func LoadBuffer(dec ImageDecoder, path string) *Buffer {
	buf, err := OpenBuffer(dec, path)
	if err != nil {
		fatalf(path, "%v", err)
	}
	return buf
}

// StdDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP files in pure Go.
// Opaque images produce 3 channels, everything else 4 channels with
// straight alpha.
type StdDecoder struct{}

// Decode implements ImageDecoder.
func (StdDecoder) Decode(path string) ([]byte, int, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	samples, channels := imageSamples(img)
	b := img.Bounds()
	return samples, b.Dx(), b.Dy(), channels, nil
}

type opaquer interface {
	Opaque() bool
}

func imageSamples(img image.Image) ([]byte, int) {
	nrgba := toNRGBA(img)
	if o, ok := img.(opaquer); !ok || !o.Opaque() {
		return nrgba.Pix, 4
	}

	samples := make([]byte, 0, len(nrgba.Pix)/4*3)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		samples = append(samples, nrgba.Pix[i:i+3]...)
	}
	return samples, 3
}
