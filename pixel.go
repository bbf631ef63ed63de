package ren

// Pixel is a single 8-bit per channel color sample.
// A []Pixel is laid out in memory as an RGBA8888 byte stream.
type Pixel struct {
	R, G, B, A uint8
}

var (
	// Black is opaque black, the default drawing color.
	Black = Pixel{A: 0xFF}
	// Transparent is the zero pixel.
	Transparent = Pixel{}
)

// Opaque returns a fully opaque pixel.
func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 0xFF}
}

// Word returns the pixel as one 32-bit word (R in the low byte).
func (p Pixel) Word() uint32 {
	return uint32(p.R) | uint32(p.G)<<8 | uint32(p.B)<<16 | uint32(p.A)<<24
}

// PixelFromWord is the inverse of Word.
func PixelFromWord(w uint32) Pixel {
	return Pixel{
		R: uint8(w),
		G: uint8(w >> 8),
		B: uint8(w >> 16),
		A: uint8(w >> 24),
	}
}

// RGBA implements color.Color. Buffer contents are treated as premultiplied.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	a = uint32(p.A)
	a |= a << 8
	return
}
