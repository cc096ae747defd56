// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"cogentcore.org/animator/base/iox/imagex"
	"cogentcore.org/animator/cmd/animator/config"
	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/sync/errgroup"
)

// Render draws the document in the given file at a fixed frame
// rate and writes each frame to a numbered PNG file in the output
// directory. It returns the names of the files written.
func Render(c *config.Config, file string) ([]string, error) {
	if c.Render.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %g", c.Render.FPS)
	}
	m, err := open(file)
	if err != nil {
		return nil, err
	}
	cv, bg, err := newCanvas(c)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.Render.OutDir, 0755); err != nil {
		return nil, err
	}

	n := frameCount(c.Render.FPS, c.Render.Duration)
	names := make([]string, n)
	var g errgroup.Group
	g.SetLimit(max(c.Render.Jobs, 1))
	for i := range n {
		frame(m, cv, bg, frameTime(i, c.Render.FPS))
		img := clone.AsRGBA(cv.Image)
		fn := filepath.Join(c.Render.OutDir, fmt.Sprintf("frame%04d.png", i))
		names[i] = fn
		g.Go(func() error {
			return imagex.Save(img, fn)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Info("rendered", "file", file, "frames", n, "dir", c.Render.OutDir)
	return names, nil
}

// frameCount returns the number of frames needed to cover the
// duration in seconds, including the frame at time zero.
func frameCount(fps, duration float32) int {
	return int(math.Floor(float64(fps)*float64(max(duration, 0)))) + 1
}

// frameTime returns the document time in milliseconds of frame i.
func frameTime(i int, fps float32) int32 {
	return int32(math.Round(float64(i) * 1000 / float64(fps)))
}
