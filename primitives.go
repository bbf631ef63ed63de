package ren

// Fill sets every pixel inside the clip rectangle to color. The blend mode
// is not used.
func (r *Renderer) Fill(color Pixel) {
	st := &r.state
	clip := st.bounds()
	target := st.Target
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		row := target.pix[target.offset(clip.X, y):target.offset(clip.X+clip.W, y)]
		for i := range row {
			row[i] = color
		}
	}
}

// Peek returns the target pixel at (x, y). The translation is not applied.
// Points outside the clip rectangle read as opaque black.
func (r *Renderer) Peek(x, y int) Pixel {
	st := &r.state
	if !st.bounds().Contains(x, y) {
		return Black
	}
	return st.Target.pix[st.Target.offset(x, y)]
}

// Plot blends the current color into the pixel at (x, y).
func (r *Renderer) Plot(x, y int) {
	st := &r.state
	x += st.Translate.X
	y += st.Translate.Y
	if st.bounds().Contains(x, y) {
		st.Blend.Blend(&st.Target.pix[st.Target.offset(x, y)], st.Color)
	}
}

// Rect blends the current color into a filled rectangle.
func (r *Renderer) Rect(x, y, w, h int) {
	st := &r.state
	x += st.Translate.X
	y += st.Translate.Y
	clip := st.bounds()

	x1 := min(x+w, clip.X+clip.W)
	y1 := min(y+h, clip.Y+clip.H)
	x = max(x, clip.X)
	y = max(y, clip.Y)

	target := st.Target
	for ; y < y1; y++ {
		for i := target.offset(x, y); i < target.offset(x1, y); i++ {
			st.Blend.Blend(&target.pix[i], st.Color)
		}
	}
}

// Box draws a one pixel wide rectangle outline.
func (r *Renderer) Box(x, y, w, h int) {
	r.Rect(x, y, 1, h)
	r.Rect(x+w-1, y, 1, h)
	r.Rect(x+1, y, w-2, 1)
	r.Rect(x+1, y+h-1, w-2, 1)
}

// Line draws a line from (x0, y0) to (x1, y1), both ends included.
func (r *Renderer) Line(x0, y0, x1, y1 int) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	deltaX := x1 - x0
	deltaY := abs(y1 - y0)
	err := deltaX >> 1
	yStep := -1
	if y0 < y1 {
		yStep = 1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			r.Plot(y, x)
		} else {
			r.Plot(x, y)
		}
		err -= deltaY
		if err < 0 {
			y += yStep
			err += deltaX
		}
	}
}

// outsideClip reports whether the square of radius r around (x, y) misses
// the clip rectangle entirely.
func (r *Renderer) outsideClip(x, y, radius int) bool {
	st := &r.state
	x += st.Translate.X
	y += st.Translate.Y
	clip := st.bounds()
	return x+radius < clip.X || x-radius >= clip.X+clip.W ||
		y+radius < clip.Y || y-radius >= clip.Y+clip.H
}

// Circ draws a filled circle. Every row is blended once, with the widest
// span the octants reach on it.
func (r *Renderer) Circ(x, y, radius int) {
	dx := abs(radius)
	if r.outsideClip(x, y, dx) {
		return
	}

	spans := newRowSpans(y-dx, 2*dx+1)
	dy := 0
	radiusErr := 1 - dx
	for dx >= dy {
		spans.widen(y+dy, dx)
		spans.widen(y-dy, dx)
		spans.widen(y+dx, dy)
		spans.widen(y-dx, dy)
		dy++
		if radiusErr < 0 {
			radiusErr += 2*dy + 1
		} else {
			dx--
			radiusErr += 2 * (dy - dx + 1)
		}
	}

	for i, halfWidth := range spans.halfWidths {
		if halfWidth >= 0 {
			r.Rect(x-halfWidth, spans.first+i, 2*halfWidth+1, 1)
		}
	}
}

// Ring draws a circle outline.
func (r *Renderer) Ring(x, y, radius int) {
	dx := abs(radius)
	if r.outsideClip(x, y, dx) {
		return
	}

	dy := 0
	radiusErr := 1 - dx
	for dx >= dy {
		r.Plot(x+dx, y+dy)
		r.Plot(x+dy, y+dx)
		r.Plot(x-dx, y+dy)
		r.Plot(x-dy, y+dx)
		r.Plot(x-dx, y-dy)
		r.Plot(x-dy, y-dx)
		r.Plot(x+dx, y-dy)
		r.Plot(x+dy, y-dx)
		dy++
		if radiusErr < 0 {
			radiusErr += 2*dy + 1
		} else {
			dx--
			radiusErr += 2 * (dy - dx + 1)
		}
	}
}

// rowSpans holds the half width of every row of a circle, -1 for rows
// not reached. It is sized to the circle, so there is no radius limit.
type rowSpans struct {
	first      int
	halfWidths []int
}

func newRowSpans(first, rows int) rowSpans {
	spans := rowSpans{first: first, halfWidths: make([]int, rows)}
	for i := range spans.halfWidths {
		spans.halfWidths[i] = -1
	}
	return spans
}

// widen makes row y at least halfWidth wide on each side.
func (s rowSpans) widen(y, halfWidth int) {
	i := y - s.first
	if i >= 0 && i < len(s.halfWidths) {
		s.halfWidths[i] = max(s.halfWidths[i], halfWidth)
	}
}
