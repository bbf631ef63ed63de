package ren

type shapeKind int

const (
	skPlot shapeKind = iota
	skRect
	skBox
	skLine
	skCirc
	skRing
)

type shapeOperation struct {
	kind shapeKind
	args [4]int
}

func (o *shapeOperation) Draw(r *Renderer) {
	a := o.args
	switch o.kind {
	case skPlot:
		r.Plot(a[0], a[1])
	case skRect:
		r.Rect(a[0], a[1], a[2], a[3])
	case skBox:
		r.Box(a[0], a[1], a[2], a[3])
	case skLine:
		r.Line(a[0], a[1], a[2], a[3])
	case skCirc:
		r.Circ(a[0], a[1], a[2])
	case skRing:
		r.Ring(a[0], a[1], a[2])
	}
}

// NewPlotOperation creates an operation to plot one pixel.
func NewPlotOperation(x, y int) DrawOperation {
	return &shapeOperation{skPlot, [4]int{x, y}}
}

// NewRectOperation creates an operation to draw a filled rectangle.
func NewRectOperation(x, y, w, h int) DrawOperation {
	return &shapeOperation{skRect, [4]int{x, y, w, h}}
}

// NewBoxOperation creates an operation to draw a rectangle outline.
func NewBoxOperation(x, y, w, h int) DrawOperation {
	return &shapeOperation{skBox, [4]int{x, y, w, h}}
}

// NewLineOperation creates an operation to draw a line.
func NewLineOperation(x0, y0, x1, y1 int) DrawOperation {
	return &shapeOperation{skLine, [4]int{x0, y0, x1, y1}}
}

// NewCircOperation creates an operation to draw a filled circle.
func NewCircOperation(x, y, radius int) DrawOperation {
	return &shapeOperation{skCirc, [4]int{x, y, radius}}
}

// NewRingOperation creates an operation to draw a circle outline.
func NewRingOperation(x, y, radius int) DrawOperation {
	return &shapeOperation{skRing, [4]int{x, y, radius}}
}
