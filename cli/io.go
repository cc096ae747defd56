// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/animator/base/iox/tomlx"
	"cogentcore.org/animator/base/iox/yamlx"
)

// Open reads the given config object from the given file, choosing
// the format from the file extension: .yaml and .yml files are read
// as YAML, and everything else as TOML.
func Open(cfg any, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return yamlx.Open(cfg, file)
	default:
		return tomlx.Open(cfg, file)
	}
}

// OpenDefault sets defaults on the config object and then reads the
// first of the given files that exists, if any. It returns the name
// of the file read, or "" if none existed.
func OpenDefault(cfg any, files ...string) (string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return "", err
	}
	for _, f := range files {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := Open(cfg, f); err != nil {
			return f, fmt.Errorf("cli.OpenDefault: %s: %w", f, err)
		}
		return f, nil
	}
	return "", nil
}
