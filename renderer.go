package ren

import "fmt"

// Screen size of every renderer.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

// Renderer owns the double-buffered screen and the drawing state.
// Drawing calls are expected from a single goroutine at a time; only the
// state bracket and Flip are synchronized.
type Renderer struct {
	display Display

	lock  spinlock
	state State

	buffers [2][]Pixel
	current int
	screen  *Buffer
}

// NewRenderer creates a renderer presenting to display. A nil display
// renders headless.
func NewRenderer(display Display) *Renderer {
	r := &Renderer{display: display}
	for i := range r.buffers {
		r.buffers[i] = make([]Pixel, ScreenWidth*ScreenHeight)
	}
	r.screen = WrapBuffer(r.buffers[0], ScreenWidth, ScreenHeight)
	r.state = r.defaultState()
	return r
}

// Screen returns the buffer currently drawn into. Flip swaps its storage,
// so the same *Buffer always refers to the back buffer.
func (r *Renderer) Screen() *Buffer {
	return r.screen
}

// Flip makes the drawn buffer the front buffer and presents it.
// The display is updated, cleared, copied and presented in that order.
func (r *Renderer) Flip() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	back := r.screen.pix
	r.current = (r.current + 1) & 1
	r.screen.pix = r.buffers[r.current]

	if r.display == nil {
		return nil
	}
	if err := r.display.UpdateTexture(pixelBytes(back), ScreenWidth*4); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}
	if err := r.display.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := r.display.Copy(); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := r.display.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
