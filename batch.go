package ren

// Batch collects sprites of one cell size so they can be drawn with a
// single call and a shared transform.
type Batch struct {
	cellWidth  int
	cellHeight int
	transform  Transform
	entries    []batchEntry
}

type batchEntry struct {
	posX, posY int
	bufX, bufY int
	buf        *Buffer
}

// NewBatch creates an empty batch of cellWidth x cellHeight sprites.
func NewBatch(cellWidth int, cellHeight int) *Batch {
	return &Batch{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		transform:  Identity(),
	}
}

// Push adds the cell at (bufX, bufY) of buf, to be drawn at (posX, posY)
// relative to the batch position.
func (b *Batch) Push(posX, posY, bufX, bufY int, buf *Buffer) {
	b.entries = append(b.entries, batchEntry{posX, posY, bufX, bufY, buf})
}

// Recalc sets the transform applied to the whole batch. The batch is
// rotated and scaled as one image about the transform origin.
func (b *Batch) Recalc(tr Transform) {
	b.transform = tr
}

// Reset removes all entries and keeps the transform.
func (b *Batch) Reset() {
	b.entries = b.entries[:0]
}

// Len returns the number of entries.
func (b *Batch) Len() int {
	return len(b.entries)
}

// Batch draws every entry of b with the batch origin at (x, y).
func (r *Renderer) Batch(b *Batch, x, y int) {
	for _, e := range b.entries {
		tr := b.transform
		tr.OriginX -= float32(e.posX)
		tr.OriginY -= float32(e.posY)
		r.Blit(e.buf, x, y, Rect{X: e.bufX, Y: e.bufY, W: b.cellWidth, H: b.cellHeight}, tr)
	}
}
