package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/ren"
	"github.com/rmcsoft/ren/sdlren"
	"github.com/sirupsen/logrus"
)

type options struct {
	InputDir  string `short:"i" long:"input-dir"  description:"The input directory" required:"true"`
	OutputDir string `short:"o" long:"output-dir" description:"The output directory" required:"true"`
	Rotate    bool   `short:"r" long:"rotate"     description:"Rotate images by 90 degrees clockwise"`
	Decoder   string `short:"d" long:"decoder"    description:"Image decoder" choice:"std" choice:"sdl" default:"std"`
	Verbose   bool   `short:"v" long:"verbose"    description:"Log every processed image"`
}

func images(opts options) chan string {
	ch := make(chan string, 512)
	go func() {
		defer close(ch)

		walkFn := func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() {
				switch strings.ToLower(filepath.Ext(info.Name())) {
				case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
					ch <- path
				}
			}
			return err
		}

		err := filepath.Walk(opts.InputDir, walkFn)
		if err != nil {
			panic(err)
		}
	}()
	return ch
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)
	var err error

	if _, err = cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if opts.InputDir, err = filepath.Abs(opts.InputDir); err != nil {
		panic(err)
	}

	if opts.OutputDir, err = filepath.Abs(opts.OutputDir); err != nil {
		panic(err)
	}

	return opts
}

func makeDecoder(opts options) ren.ImageDecoder {
	if opts.Decoder == "sdl" {
		return sdlren.Decoder{}
	}
	return ren.StdDecoder{}
}

// rotateBuffer turns buf by 90 degrees clockwise with the blit engine.
func rotateBuffer(buf *ren.Buffer) *ren.Buffer {
	rotated := ren.NewBuffer(buf.Height, buf.Width)
	renderer := ren.NewRenderer(nil)
	renderer.Update(func(st *ren.State) {
		st.Target = rotated
		st.Clip = rotated.Bounds()
		// Lighten over zeroed pixels copies the source unchanged.
		st.Blend = ren.BlendLighten
	})
	renderer.Blit(buf, buf.Height, 0, buf.Bounds(), ren.Identity().Rotate(math.Pi/2))
	return rotated
}

func savePackedBuffer(opts *options, inputImageFile string, packed *ren.PackedBuffer) {
	relInputPath, err := filepath.Rel(opts.InputDir, inputImageFile)
	if err != nil {
		panic(err)
	}
	relImageDir := filepath.Dir(relInputPath)

	outputImageDir := filepath.Join(opts.OutputDir, relImageDir)
	err = os.MkdirAll(outputImageDir, 0755)
	if err != nil {
		panic(err)
	}

	inputImageExt := filepath.Ext(inputImageFile)
	relOutputPath := strings.TrimSuffix(relInputPath, inputImageExt) + ".rbuf"
	outputFile := filepath.Join(opts.OutputDir, relOutputPath)
	err = packed.Save(outputFile)
	if err != nil {
		panic(err)
	}
}

func main() {
	opts := parseCmd()

	logger := logrus.New()
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	ren.SetLogger(logger)

	decoder := makeDecoder(opts)

	var packedSize int64
	var unpackedSize int64
	for imageFile := range images(opts) {
		logger.WithField("image", imageFile).Debug("Processing")

		buf := ren.LoadBuffer(decoder, imageFile)
		unpackedSize += int64(len(buf.Bytes()))
		if opts.Rotate {
			buf = rotateBuffer(buf)
		}

		packed := ren.PackBuffer(buf)
		packedSize += int64(len(packed.Data))

		savePackedBuffer(&opts, imageFile, packed)
	}

	if packedSize == 0 {
		logger.Warn("No images found")
		return
	}

	fmt.Printf("---------------------------\n")
	fmt.Printf("unpackedSize=%vM\n", float32(unpackedSize)/float32(1024*1024))
	fmt.Printf("packedSize=%vM\n", float32(packedSize)/float32(1024*1024))
	fmt.Printf("unpackedSize/packedSize=%v\n", float32(unpackedSize)/float32(packedSize))
}
