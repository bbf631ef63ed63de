package ren

import "github.com/chewxy/math32"

// Blit composites the src region of buf onto the target. The origin of tr
// is placed at (x, y); the region is rotated by tr.Angle and scaled about it.
//
// Every destination pixel in the bounding box of the transformed region is
// mapped back through the inverse transform at its centre. Only pixels that
// land inside the source region are blended, so the drawn shape is the
// rotated rectangle itself.
func (r *Renderer) Blit(buf *Buffer, x, y int, src Rect, tr Transform) {
	st := &r.state
	x += st.Translate.X
	y += st.Translate.Y
	if src.Empty() || tr.ScaleX == 0 || tr.ScaleY == 0 {
		return
	}

	sin, cos := -math32.Sin(tr.Angle), math32.Cos(tr.Angle)
	sinSx, sinSy := sin*tr.ScaleX, sin*tr.ScaleY
	cosSx, cosSy := cos*tr.ScaleX, cos*tr.ScaleY

	w, h := float32(src.W), float32(src.H)
	corners := [4][2]float32{
		{-tr.OriginX, -tr.OriginY},
		{w - tr.OriginX, -tr.OriginY},
		{-tr.OriginX, h - tr.OriginY},
		{w - tr.OriginX, h - tr.OriginY},
	}
	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, c := range corners {
		cx := cosSx*c[0] + sinSy*c[1]
		cy := cosSy*c[1] - sinSx*c[0]
		minX, maxX = math32.Min(minX, cx), math32.Max(maxX, cx)
		minY, maxY = math32.Min(minY, cy), math32.Max(maxY, cy)
	}

	// Clamp in float space first; huge extents do not fit in an int.
	clip := st.bounds()
	begX := int(math32.Floor(math32.Max(minX, float32(clip.X-x))))
	begY := int(math32.Floor(math32.Max(minY, float32(clip.Y-y))))
	endX := int(math32.Ceil(math32.Min(maxX, float32(clip.X+clip.W-x))))
	endY := int(math32.Ceil(math32.Min(maxY, float32(clip.Y+clip.H-y))))

	target := st.Target
	for ty := begY; ty < endY; ty++ {
		qy := float32(ty) + 0.5
		row := target.offset(x, ty+y)
		for tx := begX; tx < endX; tx++ {
			qx := float32(tx) + 0.5
			drx := (qx*cos-qy*sin)/tr.ScaleX + tr.OriginX
			dry := (qx*sin+qy*cos)/tr.ScaleY + tr.OriginY
			if drx < 0 || dry < 0 || drx >= w || dry >= h {
				continue
			}
			sx, sy := int(drx)+src.X, int(dry)+src.Y
			if sx < 0 || sy < 0 || sx >= buf.Width || sy >= buf.Height {
				continue
			}
			st.Blend.Blend(&target.pix[row+tx], buf.pix[buf.offset(sx, sy)])
		}
	}
}

// BlitBuffer draws the whole of buf at (x, y) without transformation.
func (r *Renderer) BlitBuffer(buf *Buffer, x, y int) {
	r.Blit(buf, x, y, buf.Bounds(), Identity())
}

// Text draws s with the current font. Each character advances by the glyph
// width plus one pixel. The string is transformed as one unit, so a rotated
// string stays on a straight, rotated baseline.
func (r *Renderer) Text(s string, x, y int, tr Transform) {
	font := r.state.Font
	if font == nil || font.Atlas == nil {
		return
	}
	advance := float32(font.GlyphWidth + 1)
	for i, c := range []rune(s) {
		glyph := tr
		glyph.OriginX -= float32(i) * advance
		r.Blit(font.Atlas, x, y, font.glyphRect(c), glyph)
	}
}
