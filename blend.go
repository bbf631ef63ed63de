package ren

import "fmt"

// BlendMode selects how a source color is merged into a destination pixel.
// The set of modes is closed.
type BlendMode uint8

// Blend modes
const (
	// BlendReplace overwrites the destination with the source
	// premultiplied by its alpha.
	BlendReplace BlendMode = iota
	// BlendAlpha composites the source over the destination.
	BlendAlpha
	// BlendAdd adds the premultiplied source, alpha is kept.
	BlendAdd
	// BlendSubtract subtracts the premultiplied source, alpha is kept.
	BlendSubtract
	// BlendMultiply multiplies every channel including alpha.
	BlendMultiply
	// BlendLighten keeps the per-channel maximum.
	BlendLighten
	// BlendDarken keeps the per-channel minimum.
	BlendDarken
	// BlendScreen brightens the destination by the source.
	BlendScreen
)

var blendModeNames = [...]string{
	BlendReplace:  "replace",
	BlendAlpha:    "alpha",
	BlendAdd:      "add",
	BlendSubtract: "subtract",
	BlendMultiply: "multiply",
	BlendLighten:  "lighten",
	BlendDarken:   "darken",
	BlendScreen:   "screen",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// Blend merges src into dst. Unknown modes behave like BlendReplace.
func (m BlendMode) Blend(dst *Pixel, src Pixel) {
	switch m {
	case BlendAlpha:
		blendAlpha(dst, src)
	case BlendAdd:
		blendAdd(dst, src)
	case BlendSubtract:
		blendSubtract(dst, src)
	case BlendMultiply:
		blendMultiply(dst, src)
	case BlendLighten:
		blendLighten(dst, src)
	case BlendDarken:
		blendDarken(dst, src)
	case BlendScreen:
		blendScreen(dst, src)
	default:
		blendReplace(dst, src)
	}
}

func colorAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return uint8(s)
}

func colorSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// colorMul truncates with a shift by 8, so 255*255 gives 254.
func colorMul(a, b uint8) uint8 {
	return uint8((uint16(a) * uint16(b)) >> 8)
}

func blendReplace(dst *Pixel, src Pixel) {
	dst.R = colorMul(src.R, src.A)
	dst.G = colorMul(src.G, src.A)
	dst.B = colorMul(src.B, src.A)
	dst.A = src.A
}

func blendAlpha(dst *Pixel, src Pixel) {
	inv := 0xFF - src.A
	dst.R = colorAdd(colorMul(dst.R, inv), colorMul(src.R, src.A))
	dst.G = colorAdd(colorMul(dst.G, inv), colorMul(src.G, src.A))
	dst.B = colorAdd(colorMul(dst.B, inv), colorMul(src.B, src.A))
	dst.A = colorAdd(colorMul(dst.A, inv), src.A)
}

func blendAdd(dst *Pixel, src Pixel) {
	dst.R = colorAdd(dst.R, colorMul(src.R, src.A))
	dst.G = colorAdd(dst.G, colorMul(src.G, src.A))
	dst.B = colorAdd(dst.B, colorMul(src.B, src.A))
}

func blendSubtract(dst *Pixel, src Pixel) {
	dst.R = colorSub(dst.R, colorMul(src.R, src.A))
	dst.G = colorSub(dst.G, colorMul(src.G, src.A))
	dst.B = colorSub(dst.B, colorMul(src.B, src.A))
}

func blendMultiply(dst *Pixel, src Pixel) {
	dst.R = colorMul(src.R, dst.R)
	dst.G = colorMul(src.G, dst.G)
	dst.B = colorMul(src.B, dst.B)
	dst.A = colorMul(src.A, dst.A)
}

func blendLighten(dst *Pixel, src Pixel) {
	if src.R > dst.R {
		dst.R = src.R
	}
	if src.G > dst.G {
		dst.G = src.G
	}
	if src.B > dst.B {
		dst.B = src.B
	}
	if src.A > dst.A {
		dst.A = src.A
	}
}

func blendDarken(dst *Pixel, src Pixel) {
	if src.R < dst.R {
		dst.R = src.R
	}
	if src.G < dst.G {
		dst.G = src.G
	}
	if src.B < dst.B {
		dst.B = src.B
	}
	if src.A < dst.A {
		dst.A = src.A
	}
}

func blendScreen(dst *Pixel, src Pixel) {
	dst.R = colorAdd(colorMul(dst.R, 0xFF-src.R), colorMul(src.R, src.A))
	dst.G = colorAdd(colorMul(dst.G, 0xFF-src.G), colorMul(src.G, src.A))
	dst.B = colorAdd(colorMul(dst.B, 0xFF-src.B), colorMul(src.B, src.A))
	dst.A = colorAdd(colorMul(dst.A, 0xFF-src.A), src.A)
}
