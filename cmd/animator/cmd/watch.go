// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/animator/base/errors"
	"cogentcore.org/animator/cmd/animator/config"
	"github.com/fsnotify/fsnotify"
)

// Watch writes a snapshot of the document in the given file to the
// configured output image, and again each time the file changes,
// until the context is done. The directory of the file is watched
// rather than the file itself so that editors that save by renaming
// are seen.
func Watch(ctx context.Context, c *config.Config, file string) error {
	target, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	snap := func() {
		if errors.Log(Snapshot(c, file, c.Watch.Output)) == nil {
			slog.Info("updated", "file", file, "output", c.Watch.Output)
		}
	}
	snap()

	debounce := time.Duration(c.Watch.Debounce * float32(time.Second))
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer = time.After(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch", "err", err)
		case <-timer:
			timer = nil
			snap()
		}
	}
}
