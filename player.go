package ren

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultFrameRate = 25

// Player draws the frames of a series in a loop and flips the renderer
// after each one. While it runs, the player is the renderer's only producer.
type Player struct {
	renderer  *Renderer
	frameRate int

	mutex        sync.Mutex
	isRunning    bool
	done         chan struct{}
	series       FrameSeries
	nextFrameNum int
	err          error
}

// NewPlayer creates a player for series.
func NewPlayer(renderer *Renderer, series FrameSeries) (*Player, error) {
	if len(series.Frames) == 0 {
		return nil, fmt.Errorf("The frame series '%s' is empty", series.Name)
	}
	return &Player{
		renderer:  renderer,
		frameRate: defaultFrameRate,
		series:    series,
	}, nil
}

// SetFrameRate sets the number of frames per second. It takes effect on
// the next Start.
func (player *Player) SetFrameRate(frameRate int) {
	player.mutex.Lock()
	defer player.mutex.Unlock()
	if frameRate > 0 {
		player.frameRate = frameRate
	}
}

// Start starts drawing.
func (player *Player) Start() error {
	player.mutex.Lock()
	defer player.mutex.Unlock()

	if player.isRunning {
		return errors.New("Player is already running")
	}

	player.isRunning = true
	player.err = nil
	player.done = make(chan struct{})
	go player.doDraw(player.done, time.Second/time.Duration(player.frameRate))
	return nil
}

// Stop stops drawing and waits for the current frame to finish.
func (player *Player) Stop() {
	player.mutex.Lock()
	player.isRunning = false
	done := player.done
	player.mutex.Unlock()

	if done != nil {
		<-done
	}
}

// ChangeSeries switches to another series, starting with its first frame.
func (player *Player) ChangeSeries(series FrameSeries) error {
	if len(series.Frames) == 0 {
		return fmt.Errorf("The frame series '%s' is empty", series.Name)
	}

	player.mutex.Lock()
	defer player.mutex.Unlock()
	player.series = series
	player.nextFrameNum = 0
	return nil
}

// Err returns the error that stopped the player, if any.
func (player *Player) Err() error {
	player.mutex.Lock()
	defer player.mutex.Unlock()
	return player.err
}

func (player *Player) doDraw(done chan struct{}, showFrameDuration time.Duration) {
	defer close(done)

	droppedFrameCount := 0
	showNextFrameTime := time.Now()
	for {
		frame := player.getCurrentFrame()
		if frame == nil {
			break
		}

		showNextFrameTime = showNextFrameTime.Add(showFrameDuration)
		if time.Until(showNextFrameTime) <= 0 {
			droppedFrameCount++
			if droppedFrameCount%100 == 0 {
				Logger().WithFields(logrus.Fields{
					"series":  player.seriesName(),
					"dropped": droppedFrameCount,
				}).Warn("Player: frames dropped")
			}
			continue
		}

		frame.Draw(player.renderer)
		if err := player.renderer.Flip(); err != nil {
			Logger().WithError(err).Error("Player: flip failed")
			player.fail(err)
			break
		}
		time.Sleep(time.Until(showNextFrameTime))
	}
}

func (player *Player) getCurrentFrame() *Frame {
	player.mutex.Lock()
	defer player.mutex.Unlock()

	if !player.isRunning {
		return nil
	}

	frame := &player.series.Frames[player.nextFrameNum]
	player.nextFrameNum = (player.nextFrameNum + 1) % len(player.series.Frames)
	return frame
}

func (player *Player) seriesName() string {
	player.mutex.Lock()
	defer player.mutex.Unlock()
	return player.series.Name
}

func (player *Player) fail(err error) {
	player.mutex.Lock()
	player.err = err
	player.isRunning = false
	player.mutex.Unlock()
}
