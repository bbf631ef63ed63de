package ren

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// GlyphsPerRow is the number of glyph cells in one row of a font atlas.
// The glyph of character c sits in column c%16 and row c/16.
const GlyphsPerRow = 16

// Font is a fixed-size bitmap font backed by a glyph atlas.
type Font struct {
	GlyphWidth  int
	GlyphHeight int
	// Atlas is not owned by the font.
	Atlas *Buffer
}

// NewFont creates a font over an atlas of glyphWidth x glyphHeight cells.
func NewFont(atlas *Buffer, glyphWidth int, glyphHeight int) *Font {
	return &Font{
		GlyphWidth:  glyphWidth,
		GlyphHeight: glyphHeight,
		Atlas:       atlas,
	}
}

// Release forgets the atlas. The atlas buffer itself is left alone.
func (f *Font) Release() {
	f.Atlas = nil
}

// glyphRect returns the atlas cell of c. Characters without a cell in the
// atlas use '?', and an empty rectangle when that is missing too.
func (f *Font) glyphRect(c rune) Rect {
	if cell, ok := f.cell(c); ok {
		return cell
	}
	if cell, ok := f.cell('?'); ok {
		return cell
	}
	return Rect{}
}

func (f *Font) cell(c rune) (Rect, bool) {
	if c < 0 || f.GlyphWidth <= 0 || f.GlyphHeight <= 0 {
		return Rect{}, false
	}
	cell := Rect{
		X: int(c) % GlyphsPerRow * f.GlyphWidth,
		Y: int(c) / GlyphsPerRow * f.GlyphHeight,
		W: f.GlyphWidth,
		H: f.GlyphHeight,
	}
	atlas := f.Atlas.Bounds()
	return cell, cell.Intersect(atlas) == cell
}

// BasicFont returns a 7x13 font covering ASCII, rendered from the
// basicfont face. Glyphs are white on transparent.
func BasicFont() *Font {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	img := image.NewNRGBA(image.Rect(0, 0, GlyphsPerRow*gw, 128/GlyphsPerRow*gh))

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for c := 0x20; c < 0x7F; c++ {
		drawer.Dot = fixed.P(c%GlyphsPerRow*gw, c/GlyphsPerRow*gh+face.Ascent)
		drawer.DrawString(string(rune(c)))
	}

	return NewFont(BufferFromImage(img), gw, gh)
}
