package ren

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDisplay struct {
	nullDisplay
}

func (failingDisplay) Copy() error {
	return errors.New("lost device")
}

func TestFlipCallOrder(t *testing.T) {
	display := NewCaptureDisplay(ScreenWidth, ScreenHeight)
	r := NewRenderer(display)
	require.NoError(t, r.Flip())
	assert.Equal(t, []string{"update", "clear", "copy", "present"}, display.Calls())
	assert.Equal(t, 1, display.Presented())
}

func TestFlipSwapsBuffers(t *testing.T) {
	display := NewCaptureDisplay(ScreenWidth, ScreenHeight)
	r := NewRenderer(display)
	screen := r.Screen()

	red := Opaque(0xFF, 0, 0)
	r.Fill(red)
	require.NoError(t, r.Flip())

	assert.Same(t, screen, r.Screen())
	assert.Equal(t, Transparent, r.Screen().At(0, 0), "the other buffer is drawn into next")
	assert.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, display.Frame().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, display.Frame().RGBAAt(ScreenWidth-1, ScreenHeight-1))

	r.Fill(Opaque(0, 0, 0xFF))
	require.NoError(t, r.Flip())
	assert.Equal(t, red, r.Screen().At(5, 5), "the first buffer comes back")
	assert.Equal(t, color.RGBA{0, 0, 0xFF, 0xFF}, display.Frame().RGBAAt(5, 5))
}

func TestFlipError(t *testing.T) {
	r := NewRenderer(failingDisplay{})
	err := r.Flip()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy")

	assert.True(t, r.lock.TryLock(), "Flip must release the lock on error")
	r.lock.Unlock()
}

func TestFlipHeadless(t *testing.T) {
	r := NewRenderer(nil)
	assert.NoError(t, r.Flip())
	assert.NoError(t, NewRenderer(NullDisplay()).Flip())
}
