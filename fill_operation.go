package ren

type fillOperation struct {
	color Pixel
}

func (o *fillOperation) Draw(r *Renderer) {
	r.Fill(o.color)
}

// NewFillOperation creates an operation to fill the clip rectangle.
func NewFillOperation(color Pixel) DrawOperation {
	return &fillOperation{color}
}
