package ren

import (
	"image"
	"image/draw"
	"unsafe"
)

// Buffer is a rectangular, row-major array of pixels.
// The stride of a buffer is always its width.
type Buffer struct {
	Width  int
	Height int

	pix    []Pixel
	shared bool
}

// NewBuffer creates a zero-initialized buffer that owns its pixels.
func NewBuffer(width int, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		Width:  width,
		Height: height,
		pix:    make([]Pixel, width*height),
	}
}

// CopyBuffer creates an owned deep copy of src.
func CopyBuffer(src *Buffer) *Buffer {
	buf := NewBuffer(src.Width, src.Height)
	copy(buf.pix, src.pix)
	return buf
}

// WrapBuffer creates a buffer header over caller-owned pixel storage.
// The storage is neither copied nor released by the buffer.
func WrapBuffer(pix []Pixel, width int, height int) *Buffer {
	if width < 0 || height < 0 || len(pix) < width*height {
		fatalf("wrapped buffer", "storage holds %d pixels, %dx%d needed", len(pix), width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		pix:    pix[:width*height],
		shared: true,
	}
}

// BufferFromImage converts any image into an owned buffer holding straight
// (non-premultiplied) colors, the same as buffers loaded from files.
func BufferFromImage(img image.Image) *Buffer {
	nrgba := toNRGBA(img)
	buf := NewBuffer(nrgba.Rect.Dx(), nrgba.Rect.Dy())
	copy(buf.Bytes(), nrgba.Pix)
	return buf
}

// toNRGBA returns a tightly packed copy of img with its origin at (0, 0).
// NRGBA sources are copied row by row so straight alpha colors stay exact.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src, ok := img.(*image.NRGBA)
	if !ok {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	for y := 0; y < b.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	return dst
}

// Owned reports whether the buffer owns its pixel storage.
func (buf *Buffer) Owned() bool {
	return !buf.shared
}

// Release drops the pixel storage of an owned buffer. A shared buffer only
// forgets the storage it refers to; the storage itself stays valid.
func (buf *Buffer) Release() {
	if !buf.shared {
		for i := range buf.pix {
			buf.pix[i] = Pixel{}
		}
	}
	buf.pix = nil
	buf.Width = 0
	buf.Height = 0
}

// Bounds returns the rectangle covered by the buffer.
func (buf *Buffer) Bounds() Rect {
	return Rect{W: buf.Width, H: buf.Height}
}

// Pix returns the pixels of the buffer.
func (buf *Buffer) Pix() []Pixel {
	return buf.pix
}

// Bytes returns the pixels as RGBA8888 bytes without copying.
func (buf *Buffer) Bytes() []byte {
	return pixelBytes(buf.pix)
}

// At returns the pixel at (x, y), or a transparent pixel outside the buffer.
func (buf *Buffer) At(x, y int) Pixel {
	if x < 0 || x >= buf.Width || y < 0 || y >= buf.Height {
		return Transparent
	}
	return buf.pix[y*buf.Width+x]
}

// Set stores p at (x, y). Points outside the buffer are ignored.
func (buf *Buffer) Set(x, y int, p Pixel) {
	if x < 0 || x >= buf.Width || y < 0 || y >= buf.Height {
		return
	}
	buf.pix[y*buf.Width+x] = p
}

// Image returns a copy of the buffer as an *image.RGBA. Drawing with the
// blend modes leaves premultiplied colors behind, which is what RGBA holds.
func (buf *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	copy(img.Pix, buf.Bytes())
	return img
}

func (buf *Buffer) offset(x, y int) int {
	return y*buf.Width + x
}

func pixelBytes(pix []Pixel) []byte {
	if len(pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&pix[0])), len(pix)*4)
}
