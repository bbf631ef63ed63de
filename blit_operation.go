package ren

type blitOperation struct {
	buf       *Buffer
	top       Point
	src       Rect
	transform Transform
}

func (o *blitOperation) Draw(r *Renderer) {
	r.Blit(o.buf, o.top.X, o.top.Y, o.src, o.transform)
}

// NewBlitOperation creates an operation to blit the src region of buf.
func NewBlitOperation(buf *Buffer, top Point, src Rect, tr Transform) DrawOperation {
	return &blitOperation{
		buf:       buf,
		top:       top,
		src:       src,
		transform: tr,
	}
}

// NewDrawPackedBufferOperation creates an operation to draw a packed
// buffer. The buffer is unpacked once, here.
func NewDrawPackedBufferOperation(top Point, packed *PackedBuffer) (DrawOperation, error) {
	buf, err := packed.Unpack()
	if err != nil {
		return nil, err
	}
	return NewBlitOperation(buf, top, buf.Bounds(), Identity()), nil
}

type textOperation struct {
	text      string
	top       Point
	transform Transform
}

func (o *textOperation) Draw(r *Renderer) {
	r.Text(o.text, o.top.X, o.top.Y, o.transform)
}

// NewTextOperation creates an operation to draw text with the current font.
func NewTextOperation(text string, top Point, tr Transform) DrawOperation {
	return &textOperation{
		text:      text,
		top:       top,
		transform: tr,
	}
}
