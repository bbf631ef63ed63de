package main

import (
	"github.com/BurntSushi/toml"
)

type config struct {
	Title     string
	Scale     int
	FrameRate int
	Frames    int
	Sprite    string
	Text      string
}

func defaultConfig() config {
	return config{
		Title:     "ren demo",
		Scale:     2,
		FrameRate: 30,
		Frames:    120,
		Text:      "Hello, ren!",
	}
}

// readConfig reads fileName over the defaults. An empty name keeps the
// defaults.
func readConfig(fileName string) (config, error) {
	conf := defaultConfig()
	if fileName == "" {
		return conf, nil
	}
	if _, err := toml.DecodeFile(fileName, &conf); err != nil {
		return conf, err
	}
	if conf.Scale < 1 {
		conf.Scale = 1
	}
	if conf.FrameRate < 1 {
		conf.FrameRate = defaultConfig().FrameRate
	}
	if conf.Frames < 1 {
		conf.Frames = defaultConfig().Frames
	}
	return conf, nil
}
