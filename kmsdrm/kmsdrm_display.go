// Package kmsdrm presents ren frames on a KMS/DRM card without a window
// system, using two dumb framebuffers.
package kmsdrm

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/rmcsoft/ren"
	"github.com/sirupsen/logrus"

	drm "github.com/rmcsoft/godrm"
	"github.com/rmcsoft/godrm/mode"
)

const (
	framebufferDepth = 24
	framebufferBpp   = 32
)

type framebuffer struct {
	handle uint32
	id     uint32
	buf    []byte
	pitch  int
}

// Display scales frames by the largest integer factor that fits the
// display mode and shows them centred, in XRGB8888.
type Display struct {
	card    *os.File
	modeset mode.Modeset

	width  int
	height int

	framebuffers       []*framebuffer
	backFrameBufferNum int

	frame      []byte
	framePitch int
	frameW     int
	frameH     int
}

var _ ren.Display = (*Display)(nil)

// NewDisplay opens card cardNum for frames of frameWidth x frameHeight.
func NewDisplay(cardNum int, frameWidth int, frameHeight int) (*Display, error) {
	card, err := drm.OpenCard(cardNum)
	if err != nil {
		return nil, err
	}

	if !drm.HasDumbBuffer(card) {
		card.Close()
		return nil, fmt.Errorf("drm device %v does not support dumb buffers", cardNum)
	}

	simpleMSet, err := mode.NewSimpleModeset(card)
	if err != nil {
		card.Close()
		return nil, err
	}

	if len(simpleMSet.Modesets) == 0 {
		card.Close()
		return nil, errors.New("Modesets is empty")
	}

	d := &Display{
		card:    card,
		modeset: simpleMSet.Modesets[0],
		frameW:  frameWidth,
		frameH:  frameHeight,
	}
	d.width = int(d.modeset.Width)
	d.height = int(d.modeset.Height)
	if d.width < frameWidth || d.height < frameHeight {
		card.Close()
		return nil, fmt.Errorf("mode %dx%d is smaller than the frame", d.width, d.height)
	}

	for i := 0; i < 2; i++ {
		fb, err := d.createFramebuffer()
		if err != nil {
			d.Close()
			return nil, err
		}
		d.framebuffers = append(d.framebuffers, fb)
	}

	ren.Logger().WithFields(logrus.Fields{
		"card":   cardNum,
		"width":  d.width,
		"height": d.height,
	}).Info("KMS/DRM display opened")
	return d, nil
}

// UpdateTexture remembers the frame to be copied. The frame stays valid
// until the next flip, which is after Present.
func (d *Display) UpdateTexture(pix []byte, pitch int) error {
	d.frame = pix
	d.framePitch = pitch
	return nil
}

// Clear clears the back framebuffer.
func (d *Display) Clear() error {
	fb := d.framebuffers[d.backFrameBufferNum]
	for i := range fb.buf {
		fb.buf[i] = 0
	}
	return nil
}

// Copy converts the frame into the back framebuffer.
func (d *Display) Copy() error {
	fb := d.framebuffers[d.backFrameBufferNum]
	scale := d.scale()
	offX := (d.width - d.frameW*scale) / 2
	offY := (d.height - d.frameH*scale) / 2

	for y := 0; y < d.frameH*scale; y++ {
		srcRow := y / scale * d.framePitch
		if srcRow+d.frameW*4 > len(d.frame) {
			return errors.New("frame is smaller than expected")
		}
		dstRow := (offY+y)*fb.pitch + offX*4
		for x := 0; x < d.frameW*scale; x++ {
			s := d.frame[srcRow+x/scale*4:]
			p := fb.buf[dstRow+x*4:]
			p[0], p[1], p[2], p[3] = s[2], s[1], s[0], 0xFF
		}
	}
	return nil
}

// Present scans out the back framebuffer and swaps framebuffers.
func (d *Display) Present() error {
	fb := d.framebuffers[d.backFrameBufferNum]
	err := mode.SetCrtc(d.card, d.modeset.Crtc, fb.id,
		0, 0, &d.modeset.Conn, 1, &d.modeset.Mode)
	d.backFrameBufferNum = (d.backFrameBufferNum + 1) % len(d.framebuffers)
	return err
}

// Close releases the framebuffers and the card.
func (d *Display) Close() {
	for _, fb := range d.framebuffers {
		d.destroyFramebuffer(fb)
	}
	d.framebuffers = nil
	if d.card != nil {
		d.card.Close()
		d.card = nil
	}
}

func (d *Display) scale() int {
	if d.frameW <= 0 || d.frameH <= 0 {
		return 1
	}
	scale := d.width / d.frameW
	if s := d.height / d.frameH; s < scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

func (d *Display) createFramebuffer() (*framebuffer, error) {
	fb := &framebuffer{}
	var err error

	defer func() {
		if err != nil {
			d.destroyFramebuffer(fb)
		}
	}()

	fbInfo, err := mode.CreateFB(d.card, uint16(d.width), uint16(d.height), uint32(framebufferBpp))
	if err != nil {
		return nil, err
	}

	fb.handle = fbInfo.Handle
	fb.pitch = int(fbInfo.Pitch)
	fb.id, err = mode.AddFB(d.card, uint16(d.width), uint16(d.height),
		uint8(framebufferDepth), uint8(framebufferBpp), fbInfo.Pitch, fb.handle)
	if err != nil {
		return nil, err
	}

	offset, err := mode.MapDumb(d.card, fb.handle)
	if err != nil {
		return nil, err
	}

	fb.buf, err = syscall.Mmap(int(d.card.Fd()), int64(offset), int(fbInfo.Size),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	return fb, nil
}

func (d *Display) destroyFramebuffer(fb *framebuffer) {
	if fb != nil && d.card != nil {
		if fb.id != 0 {
			mode.RmFB(d.card, fb.id)
			fb.id = 0
		}

		if fb.handle != 0 {
			mode.DestroyDumb(d.card, fb.handle)
			fb.handle = 0
		}

		if fb.buf != nil {
			syscall.Munmap(fb.buf)
			fb.buf = nil
		}
	}
}
