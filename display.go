package ren

import (
	"image"
	"sync"
)

// Display presents finished frames. Flip calls UpdateTexture with the
// frame as row-major RGBA8888 bytes, then Clear, Copy and Present.
type Display interface {
	UpdateTexture(pix []byte, pitch int) error
	Clear() error
	Copy() error
	Present() error
}

type nullDisplay struct {
}

// NullDisplay returns a display that discards every frame.
func NullDisplay() Display {
	return nullDisplay{}
}

func (nullDisplay) UpdateTexture(pix []byte, pitch int) error {
	return nil
}

func (nullDisplay) Clear() error {
	return nil
}

func (nullDisplay) Copy() error {
	return nil
}

func (nullDisplay) Present() error {
	return nil
}

// CaptureDisplay keeps the last presented frame in memory.
type CaptureDisplay struct {
	mutex     sync.Mutex
	texture   *image.RGBA
	frame     *image.RGBA
	calls     []string
	presented int
}

// NewCaptureDisplay creates a capture display for frames of the given size.
func NewCaptureDisplay(width int, height int) *CaptureDisplay {
	return &CaptureDisplay{
		texture: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// UpdateTexture implements Display.
func (d *CaptureDisplay) UpdateTexture(pix []byte, pitch int) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.calls = append(d.calls, "update")

	rowSize := d.texture.Rect.Dx() * 4
	for y := 0; y < d.texture.Rect.Dy() && y*pitch+rowSize <= len(pix); y++ {
		copy(d.texture.Pix[y*d.texture.Stride:], pix[y*pitch:y*pitch+rowSize])
	}
	return nil
}

// Clear implements Display.
func (d *CaptureDisplay) Clear() error {
	d.record("clear")
	return nil
}

// Copy implements Display.
func (d *CaptureDisplay) Copy() error {
	d.record("copy")
	return nil
}

// Present implements Display.
func (d *CaptureDisplay) Present() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.calls = append(d.calls, "present")

	frame := image.NewRGBA(d.texture.Rect)
	copy(frame.Pix, d.texture.Pix)
	d.frame = frame
	d.presented++
	return nil
}

// Frame returns the last presented frame, nil before the first one.
func (d *CaptureDisplay) Frame() *image.RGBA {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.frame
}

// Presented returns the number of presented frames.
func (d *CaptureDisplay) Presented() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.presented
}

// Calls returns the display calls made so far.
func (d *CaptureDisplay) Calls() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return append([]string(nil), d.calls...)
}

func (d *CaptureDisplay) record(call string) {
	d.mutex.Lock()
	d.calls = append(d.calls, call)
	d.mutex.Unlock()
}
