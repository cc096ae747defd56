// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/animator/anim"
	"cogentcore.org/animator/base/logx"
	"cogentcore.org/animator/cmd/animator/config"
	"github.com/gobwas/glob"
)

// Check loads each of the given documents and writes their problems
// to w in the configured format. Directories are searched for
// documents matching the include pattern. It returns the number of
// documents that have problems.
func Check(c *config.Config, w io.Writer, paths ...string) (int, error) {
	if c.Check.Format != "table" && c.Check.Format != "yaml" {
		return 0, fmt.Errorf("unknown format %q (must be table or yaml)", c.Check.Format)
	}
	files, err := checkFiles(c.Check.Include, paths)
	if err != nil {
		return 0, err
	}
	bad := 0
	for _, file := range files {
		m := anim.NewMaker(nil)
		err := m.LoadFile(file)
		var diags anim.Diagnostics
		if err != nil && !errors.As(err, &diags) {
			return bad, err
		}
		if len(diags) == 0 {
			fmt.Fprintln(w, logx.CmdColor(file), logx.SuccessColor("ok"))
			continue
		}
		bad++
		fmt.Fprintln(w, logx.CmdColor(file), logx.ErrorColor(fmt.Sprintf("%d problems", len(diags))))
		if c.Check.Format == "yaml" {
			err = diags.WriteYAML(w)
		} else {
			err = diags.WriteTable(w)
		}
		if err != nil {
			return bad, err
		}
	}
	return bad, nil
}

// checkFiles expands the directories in paths into the documents
// under them whose slash-separated path relative to the directory
// matches the include pattern.
func checkFiles(include string, paths []string) ([]string, error) {
	g, err := glob.Compile(include, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern %q: %w", include, err)
	}
	var files []string
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(p, path)
			if err != nil {
				return err
			}
			if g.Match(filepath.ToSlash(rel)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
