package main

import (
	"math"

	"github.com/rmcsoft/ren"
)

func makeChecker(size int) *ren.Buffer {
	buf := ren.NewBuffer(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%2 == 0 {
				buf.Set(x, y, ren.Opaque(0xE0, 0x40, 0x40))
			} else {
				buf.Set(x, y, ren.Pixel{R: 0xF0, G: 0xF0, B: 0x40, A: 0xC0})
			}
		}
	}
	return buf
}

// makeFrameSeries builds one revolution of the demo scene.
func makeFrameSeries(conf config, sprite *ren.Buffer, font *ren.Font) ren.FrameSeries {
	cx, cy := ren.ScreenWidth/2, ren.ScreenHeight/2
	frames := make([]ren.Frame, 0, conf.Frames)
	for i := 0; i < conf.Frames; i++ {
		phase := float64(i) / float64(conf.Frames)
		angle := float32(2 * math.Pi * phase)
		scale := float32(1 + 0.5*math.Sin(2*math.Pi*phase))
		orbitX := cx + int(80*math.Cos(2*math.Pi*phase))
		orbitY := cy + int(60*math.Sin(2*math.Pi*phase))

		spriteTr := ren.Identity().
			Rotate(angle).
			Scale(scale, scale).
			Origin(float32(sprite.Width)/2, float32(sprite.Height)/2)

		ops := []ren.DrawOperation{
			ren.NewResetOperation(),
			ren.NewFillOperation(ren.Opaque(0x10, 0x18, 0x30)),
			ren.NewStateOperation(func(st *ren.State) {
				st.Color = ren.Pixel{R: 0x40, G: 0x80, B: 0xFF, A: 0x80}
				st.Blend = ren.BlendAdd
			}),
			ren.NewCircOperation(orbitX, orbitY, 24),
			ren.NewStateOperation(func(st *ren.State) {
				st.Color = ren.Opaque(0xFF, 0xFF, 0xFF)
				st.Blend = ren.BlendReplace
			}),
			ren.NewRingOperation(cx, cy, 100),
			ren.NewLineOperation(0, 0, ren.ScreenWidth-1, ren.ScreenHeight-1),
			ren.NewLineOperation(ren.ScreenWidth-1, 0, 0, ren.ScreenHeight-1),
			ren.NewBoxOperation(4, 4, ren.ScreenWidth-8, ren.ScreenHeight-8),
			ren.NewStateOperation(func(st *ren.State) {
				st.Blend = ren.BlendAlpha
				st.Font = font
			}),
			ren.NewBlitOperation(sprite, ren.Point{X: cx, Y: cy}, sprite.Bounds(), spriteTr),
			ren.NewTextOperation(conf.Text, ren.Point{X: 10, Y: 10}, ren.Identity()),
		}
		frames = append(frames, ren.Frame{DrawOperations: ops})
	}

	return ren.FrameSeries{
		Name:   "demo",
		Frames: frames,
	}
}
