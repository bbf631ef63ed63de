package main

import (
	"image/png"
	"os"
	"runtime"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/ren"
	"github.com/rmcsoft/ren/kmsdrm"
	"github.com/rmcsoft/ren/sdlren"
	"github.com/sirupsen/logrus"
)

type options struct {
	Config     string `short:"c" long:"config"     description:"TOML configuration file"`
	Headless   bool   `long:"headless"             description:"Render without a window"`
	DrmCard    int    `long:"drm-card"             description:"Present on this KMS/DRM card instead of a window" default:"-1"`
	Screenshot string `short:"s" long:"screenshot" description:"Save the last presented frame as PNG (headless only)"`
	Verbose    bool   `short:"v" long:"verbose"    description:"Verbose logging"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	return opts
}

func init() {
	// SDL wants its window events on the main thread.
	runtime.LockOSThread()
}

func main() {
	opts := parseCmd()

	logger := logrus.New()
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	ren.SetLogger(logger)

	conf, err := readConfig(opts.Config)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't read config file")
	}

	sprite := makeChecker(48)
	if conf.Sprite != "" {
		sprite = ren.LoadBuffer(ren.StdDecoder{}, conf.Sprite)
	}
	series := makeFrameSeries(conf, sprite, ren.BasicFont())

	switch {
	case opts.Headless:
		runHeadless(conf, series, opts.Screenshot, logger)
	case opts.DrmCard >= 0:
		runKMSDRM(conf, series, opts.DrmCard, logger)
	default:
		runSDL(conf, series, logger)
	}
}

func runHeadless(conf config, series ren.FrameSeries, screenshot string, logger *logrus.Logger) {
	display := ren.NewCaptureDisplay(ren.ScreenWidth, ren.ScreenHeight)
	play(ren.NewRenderer(display), conf, series, logger)

	if screenshot == "" {
		return
	}
	frame := display.Frame()
	if frame == nil {
		logger.Fatal("No frame was presented")
	}
	file, err := os.Create(screenshot)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't create screenshot")
	}
	defer file.Close()
	if err := png.Encode(file, frame); err != nil {
		logger.WithError(err).Fatal("Couldn't encode screenshot")
	}
	logger.WithField("file", screenshot).Info("Screenshot saved")
}

func runKMSDRM(conf config, series ren.FrameSeries, card int, logger *logrus.Logger) {
	display, err := kmsdrm.NewDisplay(card, ren.ScreenWidth, ren.ScreenHeight)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't open KMS/DRM display")
	}
	defer display.Close()
	play(ren.NewRenderer(display), conf, series, logger)
}

// play runs the series once through the player.
func play(renderer *ren.Renderer, conf config, series ren.FrameSeries, logger *logrus.Logger) {
	player, err := ren.NewPlayer(renderer, series)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't create player")
	}
	player.SetFrameRate(conf.FrameRate)
	if err := player.Start(); err != nil {
		logger.WithError(err).Fatal("Couldn't start player")
	}
	time.Sleep(time.Duration(conf.Frames) * time.Second / time.Duration(conf.FrameRate))
	player.Stop()
	if err := player.Err(); err != nil {
		logger.WithError(err).Fatal("Player failed")
	}
}

// runSDL draws on the main thread, which also handles window events,
// until the window is closed.
func runSDL(conf config, series ren.FrameSeries, logger *logrus.Logger) {
	display, err := sdlren.NewDisplay(conf.Title, ren.ScreenWidth, ren.ScreenHeight, conf.Scale)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't open SDL display")
	}
	defer display.Close()

	renderer := ren.NewRenderer(display)
	frameDuration := time.Second / time.Duration(conf.FrameRate)
	for frameNum := 0; !display.PollQuit(); frameNum = (frameNum + 1) % len(series.Frames) {
		started := time.Now()
		series.Frames[frameNum].Draw(renderer)
		if err := renderer.Flip(); err != nil {
			logger.WithError(err).Error("Flip failed")
			return
		}
		time.Sleep(frameDuration - time.Since(started))
	}
}
