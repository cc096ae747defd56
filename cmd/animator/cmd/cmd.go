// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands in the animator tool.
package cmd

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/animator/anim"
	"cogentcore.org/animator/base/iox/imagex"
	"cogentcore.org/animator/canvas/raster"
	"cogentcore.org/animator/cmd/animator/config"
	"cogentcore.org/animator/colors"
)

// open loads the document in the given file. Problems with the
// document are logged, and only other errors are returned, since
// a document with problems can still be drawn.
func open(file string) (*anim.Maker, error) {
	m := anim.NewMaker(nil)
	err := m.LoadFile(file)
	var diags anim.Diagnostics
	if errors.As(err, &diags) {
		slog.Warn("document has problems", "file", file, "count", len(diags))
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// newCanvas returns a canvas of the configured size and its
// background color.
func newCanvas(c *config.Config) (*raster.Canvas, color.Color, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, nil, fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	bg, err := colors.FromString(c.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid background color %q: %w", c.Background, err)
	}
	return raster.New(c.Width, c.Height), bg, nil
}

// frame clears the canvas and draws the document at the given time.
func frame(m *anim.Maker, cv *raster.Canvas, bg color.Color, now int32) bool {
	cv.Reset()
	cv.Clear(bg)
	return m.Draw(cv, now)
}

// Snapshot draws the document in the given file at time zero and
// saves the frame to the output image file.
func Snapshot(c *config.Config, file, output string) error {
	m, err := open(file)
	if err != nil {
		return err
	}
	cv, bg, err := newCanvas(c)
	if err != nil {
		return err
	}
	frame(m, cv, bg, 0)
	return imagex.Save(cv.Image, output)
}
