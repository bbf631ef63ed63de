package ren

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridBuffer returns an opaque buffer whose pixels encode their own
// coordinates: R is x+1 and G is y+1.
func gridBuffer(w, h int) *Buffer {
	buf := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, Pixel{R: uint8(x + 1), G: uint8(y + 1), A: 0xFF})
		}
	}
	return buf
}

// newBlitRenderer draws with BlendLighten, which copies source pixels
// exactly onto a transparent target.
func newBlitRenderer(w, h int) (*Renderer, *Buffer) {
	r, target := newTestRenderer(w, h)
	r.Update(func(st *State) { st.Blend = BlendLighten })
	return r, target
}

func TestBlitIdentity(t *testing.T) {
	src := gridBuffer(4, 3)
	r, target := newBlitRenderer(4, 3)
	r.BlitBuffer(src, 0, 0)
	assert.Equal(t, src.Bytes(), target.Bytes())
}

func TestBlitUsesBlendMode(t *testing.T) {
	src := gridBuffer(2, 2)
	src.Set(1, 1, Pixel{R: 200, G: 100, B: 50, A: 128})
	r, target := newTestRenderer(2, 2)
	r.BlitBuffer(src, 0, 0)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			var want Pixel
			BlendReplace.Blend(&want, src.At(x, y))
			assert.Equal(t, want, target.At(x, y))
		}
	}
}

func TestBlitTranslated(t *testing.T) {
	src := gridBuffer(2, 2)
	r, target := newBlitRenderer(8, 8)
	r.Update(func(st *State) { st.Translate = Point{1, 1} })
	r.BlitBuffer(src, 2, 3)

	assert.Len(t, setPixels(target), 4)
	assert.Equal(t, src.At(0, 0), target.At(3, 4))
	assert.Equal(t, src.At(1, 1), target.At(4, 5))
}

func TestBlitClipped(t *testing.T) {
	src := gridBuffer(4, 4)
	r, target := newBlitRenderer(4, 4)
	r.BlitBuffer(src, -2, -1)

	assert.Len(t, setPixels(target), 6)
	assert.Equal(t, src.At(2, 1), target.At(0, 0))
	assert.Equal(t, src.At(3, 3), target.At(1, 2))
	assert.Equal(t, Transparent, target.At(2, 0))

	r, target = newBlitRenderer(8, 8)
	r.Update(func(st *State) { st.Clip = Rect{2, 2, 2, 2} })
	r.BlitBuffer(src, 0, 0)
	assert.ElementsMatch(t, []Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}}, setPixels(target))
	assert.Equal(t, src.At(2, 2), target.At(2, 2))
}

func TestBlitSourceRegion(t *testing.T) {
	src := gridBuffer(4, 4)
	r, target := newBlitRenderer(4, 4)
	r.Blit(src, 0, 0, Rect{2, 1, 2, 2}, Identity())

	assert.Len(t, setPixels(target), 4)
	assert.Equal(t, src.At(2, 1), target.At(0, 0))
	assert.Equal(t, src.At(3, 2), target.At(1, 1))
}

func TestBlitSourceOutsideBuffer(t *testing.T) {
	src := gridBuffer(2, 2)
	r, target := newBlitRenderer(4, 4)
	r.Blit(src, 0, 0, Rect{1, 1, 3, 3}, Identity())
	assert.Equal(t, []Point{{0, 0}}, setPixels(target))
	assert.Equal(t, src.At(1, 1), target.At(0, 0))
}

func TestBlitOrigin(t *testing.T) {
	src := gridBuffer(2, 2)
	r, target := newBlitRenderer(4, 4)
	r.Blit(src, 2, 2, src.Bounds(), Identity().Origin(1, 1))
	assert.Equal(t, src.At(0, 0), target.At(1, 1))
	assert.Equal(t, src.At(1, 1), target.At(2, 2))
}

func TestBlitRotate90(t *testing.T) {
	src := gridBuffer(4, 2)
	r, target := newBlitRenderer(20, 20)
	r.Blit(src, 10, 10, src.Bounds(), Identity().Rotate(math32.Pi/2))

	require.Len(t, setPixels(target), 8)
	for sy := 0; sy < 2; sy++ {
		for sx := 0; sx < 4; sx++ {
			assert.Equal(t, src.At(sx, sy), target.At(9-sy, 10+sx), "source %d,%d", sx, sy)
		}
	}
}

func TestBlitRotate45(t *testing.T) {
	src := gridBuffer(8, 8)
	r, target := newBlitRenderer(16, 16)
	r.Blit(src, 8, 8, src.Bounds(), Identity().Origin(4, 4).Rotate(math32.Pi/4))

	assert.NotEqual(t, Transparent, target.At(8, 8))
	assert.NotEqual(t, Transparent, target.At(8, 3))
	assert.Equal(t, Transparent, target.At(3, 3))
	assert.Equal(t, Transparent, target.At(12, 12))
}

func TestBlitScale(t *testing.T) {
	src := gridBuffer(2, 2)
	r, target := newBlitRenderer(8, 8)
	r.Blit(src, 0, 0, src.Bounds(), Identity().Scale(2, 2))

	require.Len(t, setPixels(target), 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.At(x/2, y/2), target.At(x, y))
		}
	}
}

func TestBlitDegenerate(t *testing.T) {
	src := gridBuffer(2, 2)
	r, target := newBlitRenderer(4, 4)
	r.Blit(src, 0, 0, src.Bounds(), Identity().Scale(0, 1))
	r.Blit(src, 0, 0, src.Bounds(), Identity().Scale(1, 0))
	r.Blit(src, 0, 0, Rect{0, 0, 0, 2}, Identity())
	assert.Empty(t, setPixels(target))
}

func TestBlitHugeScale(t *testing.T) {
	src := gridBuffer(2, 2)
	r, target := newBlitRenderer(8, 8)
	r.Blit(src, 0, 0, src.Bounds(), Identity().Scale(1e20, 1e20))

	require.Len(t, setPixels(target), 64)
	for _, p := range setPixels(target) {
		assert.Equal(t, src.At(0, 0), target.At(p.X, p.Y))
	}
}

// glyphAtlas returns a 32x16 atlas of 2x2 glyph cells.
func glyphAtlas() *Buffer {
	return gridBuffer(32, 16)
}

func TestText(t *testing.T) {
	atlas := glyphAtlas()
	r, target := newBlitRenderer(16, 4)
	r.Update(func(st *State) { st.Font = NewFont(atlas, 2, 2) })
	r.Text("AB", 0, 0, Identity())

	assert.Len(t, setPixels(target), 8)
	assert.Equal(t, atlas.At(2, 8), target.At(0, 0))
	assert.Equal(t, atlas.At(3, 9), target.At(1, 1))
	assert.Equal(t, Transparent, target.At(2, 0))
	assert.Equal(t, atlas.At(4, 8), target.At(3, 0))
	assert.Equal(t, atlas.At(5, 9), target.At(4, 1))
}

func TestTextScaled(t *testing.T) {
	atlas := glyphAtlas()
	r, target := newBlitRenderer(16, 4)
	r.Update(func(st *State) { st.Font = NewFont(atlas, 2, 2) })
	r.Text("AB", 0, 0, Identity().Scale(2, 2))

	assert.Len(t, setPixels(target), 32)
	assert.Equal(t, atlas.At(2, 8), target.At(1, 1))
	assert.Equal(t, Transparent, target.At(4, 0))
	assert.Equal(t, Transparent, target.At(5, 0))
	assert.Equal(t, atlas.At(4, 8), target.At(6, 0))
	assert.Equal(t, atlas.At(5, 9), target.At(9, 3))
}

func TestTextFallback(t *testing.T) {
	atlas := glyphAtlas()
	r, target := newBlitRenderer(4, 4)
	r.Update(func(st *State) { st.Font = NewFont(atlas, 2, 2) })
	r.Text("é", 0, 0, Identity())

	assert.Equal(t, atlas.At(30, 6), target.At(0, 0), "drawn as '?'")
	assert.Equal(t, atlas.At(31, 7), target.At(1, 1))
}

func TestTextWithoutFont(t *testing.T) {
	r, target := newBlitRenderer(4, 4)
	r.Text("A", 0, 0, Identity())
	r.Update(func(st *State) { st.Font = NewFont(nil, 2, 2) })
	r.Text("A", 0, 0, Identity())
	assert.Empty(t, setPixels(target))
}

func TestBasicFont(t *testing.T) {
	font := BasicFont()
	require.NotNil(t, font.Atlas)
	assert.Equal(t, 7, font.GlyphWidth)
	assert.Equal(t, 13, font.GlyphHeight)
	assert.Equal(t, 112, font.Atlas.Width)
	assert.Equal(t, 104, font.Atlas.Height)

	cell := font.glyphRect('A')
	assert.Equal(t, Rect{7, 52, 7, 13}, cell)
	inked := 0
	for y := cell.Y; y < cell.Y+cell.H; y++ {
		for x := cell.X; x < cell.X+cell.W; x++ {
			if font.Atlas.At(x, y).A != 0 {
				inked++
			}
		}
	}
	assert.NotZero(t, inked)

	blank := font.glyphRect(' ')
	for y := blank.Y; y < blank.Y+blank.H; y++ {
		for x := blank.X; x < blank.X+blank.W; x++ {
			assert.Equal(t, Transparent, font.Atlas.At(x, y))
		}
	}
}
