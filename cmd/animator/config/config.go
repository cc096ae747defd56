// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the animator tool.
package config

// Config is the main config struct that contains all of the
// configuration options for the animator tool. It is read from
// animator.toml or animator.yaml, and command line flags override
// the values in the file.
type Config struct {

	// the width of rendered frames in pixels
	Width int `default:"640" toml:"width" yaml:"width"`

	// the height of rendered frames in pixels
	Height int `default:"480" toml:"height" yaml:"height"`

	// the color frames are cleared to before drawing
	Background string `default:"white" toml:"background" yaml:"background"`

	// the configuration options for the render command
	Render Render `toml:"render" yaml:"render"`

	// the configuration options for the check command
	Check Check `toml:"check" yaml:"check"`

	// the configuration options for the play command
	Play Play `toml:"play" yaml:"play"`

	// the configuration options for the watch command
	Watch Watch `toml:"watch" yaml:"watch"`
}

type Render struct {

	// the directory frames are written to
	OutDir string `default:"frames" toml:"out-dir" yaml:"out-dir"`

	// the number of frames per second of document time
	FPS float32 `default:"30" toml:"fps" yaml:"fps"`

	// the length of document time to render, in seconds
	Duration float32 `default:"1" toml:"duration" yaml:"duration"`

	// the number of frames encoded at the same time
	Jobs int `default:"4" toml:"jobs" yaml:"jobs"`
}

type Check struct {

	// the glob pattern that selects documents when checking a directory
	Include string `default:"**.xml" toml:"include" yaml:"include"`

	// the output format for problems (table or yaml)
	Format string `default:"table" toml:"format" yaml:"format"`
}

type Play struct {

	// the maximum number of frames drawn per second
	FPS float32 `default:"60" toml:"fps" yaml:"fps"`

	// the length of document time to play, in seconds
	Duration float32 `default:"10" toml:"duration" yaml:"duration"`

	// whether to pace frames against the wall clock
	Realtime bool `default:"true" toml:"realtime" yaml:"realtime"`
}

type Watch struct {

	// the image file the first frame is written to after each change
	Output string `default:"frame.png" toml:"output" yaml:"output"`

	// how long to wait for more changes before reloading, in seconds
	Debounce float32 `default:"0.2" toml:"debounce" yaml:"debounce"`
}
