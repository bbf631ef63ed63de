// Package sdlren presents ren frames in an SDL2 window and loads images
// with SDL_image.
package sdlren

import (
	"sync"

	"github.com/rmcsoft/ren"
	"github.com/veandco/go-sdl2/sdl"
)

var mutexSdlInit = sync.Mutex{}
var sdlInited = false

func initSdl() error {
	mutexSdlInit.Lock()
	defer mutexSdlInit.Unlock()

	if !sdlInited {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}
		sdlInited = true
	}
	return nil
}

// Display is a window showing a streaming texture of the frame size,
// stretched to the window.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
}

var _ ren.Display = (*Display)(nil)

// NewDisplay opens a window for width x height frames, enlarged scale times.
func NewDisplay(title string, width int, height int, scale int) (*Display, error) {
	if err := initSdl(); err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(int32(width*scale), int32(height*scale), 0)
	if err != nil {
		return nil, err
	}
	window.SetTitle(title)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	ren.Logger().WithField("size", [2]int{width * scale, height * scale}).Info("SDL display opened")
	return &Display{window, renderer, texture, width, height}, nil
}

// UpdateTexture copies an RGBA8888 frame into the texture.
func (d *Display) UpdateTexture(pix []byte, pitch int) error {
	texturePixels, textureBytePerLine, err := d.texture.Lock(nil)
	if err != nil {
		return err
	}

	rowSize := d.width * 4
	for rowNum := 0; rowNum < d.height; rowNum++ {
		frameOffset := rowNum * pitch
		if frameOffset+rowSize > len(pix) {
			break
		}
		textureOffset := rowNum * textureBytePerLine
		copy(texturePixels[textureOffset:textureOffset+rowSize], pix[frameOffset:frameOffset+rowSize])
	}
	d.texture.Unlock()
	return nil
}

// Clear clears the window.
func (d *Display) Clear() error {
	return d.renderer.Clear()
}

// Copy copies the texture to the whole window.
func (d *Display) Copy() error {
	return d.renderer.Copy(d.texture, nil, nil)
}

// Present shows the window contents.
func (d *Display) Present() error {
	d.renderer.Present()
	return nil
}

// PollQuit drains pending events and reports whether the window was asked
// to close.
func (d *Display) PollQuit() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			quit = true
		}
	}
	return quit
}

// Close destroys the texture, the renderer and the window.
func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
}
