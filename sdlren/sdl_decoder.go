package sdlren

import (
	"github.com/rmcsoft/ren"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	img.Init(img.INIT_JPG | img.INIT_PNG)
}

// Decoder loads images with SDL_image. Images with an alpha channel are
// returned as 4 RGBA channels, all others as 3 RGB channels.
type Decoder struct{}

var _ ren.ImageDecoder = Decoder{}

// Decode implements ren.ImageDecoder.
func (Decoder) Decode(path string) ([]byte, int, int, int, error) {
	image, err := img.Load(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer image.Free()

	var format uint32 = sdl.PIXELFORMAT_RGB24
	channels := 3
	if image.Format.Amask != 0 {
		format = sdl.PIXELFORMAT_ABGR8888
		channels = 4
	}

	convertedImage, err := image.ConvertFormat(format, 0)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer convertedImage.Free()

	width := int(convertedImage.W)
	height := int(convertedImage.H)
	bytePerLine := int(convertedImage.Pitch)
	pixels := convertedImage.Pixels()

	rowSize := width * channels
	samples := make([]byte, 0, rowSize*height)
	for rowNum := 0; rowNum < height; rowNum++ {
		rowOffset := rowNum * bytePerLine
		samples = append(samples, pixels[rowOffset:rowOffset+rowSize]...)
	}
	return samples, width, height, channels, nil
}
