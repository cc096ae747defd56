// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Width  int
	OutDir string
}

func TestRoundTripFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, Save(&settings{Width: 320, OutDir: "out"}, fn))
	s := &settings{}
	require.NoError(t, Open(s, fn))
	assert.Equal(t, 320, s.Width)
	assert.Equal(t, "out", s.OutDir)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&settings{Width: 1, OutDir: "a"}, a))
	var buf bytes.Buffer
	buf.WriteString("Width = 2\n")
	s := &settings{}
	require.NoError(t, ReadBytes(s, buf.Bytes()))
	assert.Equal(t, 2, s.Width)
	require.NoError(t, Save(&settings{Width: 3, OutDir: "b"}, b))
	require.NoError(t, OpenFiles(s, a, b))
	assert.Equal(t, 3, s.Width)
	assert.Error(t, OpenFiles(s, filepath.Join(dir, "missing.toml")))
}
