// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/animator/base/iox/imagex"
	"cogentcore.org/animator/cli"
	"cogentcore.org/animator/cmd/animator/config"
	"cogentcore.org/animator/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<screenplay>
<paint color="red"/>
<rect id="r" right="10" bottom="10"/>
</screenplay>`

const moving = `<screenplay>
<rect id="r" right="10" bottom="10"/>
<apply scope="r"><animate field="left" from="0" to="10" dur="1"/></apply>
<post sink="host" type="hello"/>
</screenplay>`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Width, c.Height = 20, 20
	return c
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestConfigDefaults(t *testing.T) {
	c := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, "white", c.Background)
	assert.Equal(t, float32(30), c.Render.FPS)
	assert.Equal(t, "**.xml", c.Check.Include)
	assert.True(t, c.Play.Realtime)
	assert.Equal(t, float32(0.2), c.Watch.Debounce)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "square.xml", square)
	c := testConfig(t)
	c.Render.OutDir = filepath.Join(dir, "out")
	c.Render.FPS = 10
	c.Render.Duration = 0.5

	names, err := Render(c, doc)
	require.NoError(t, err)
	require.Len(t, names, 6)
	assert.Equal(t, filepath.Join(c.Render.OutDir, "frame0005.png"), names[5])

	img, _, err := imagex.Open(names[0])
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, colors.AsNRGBA(img.At(5, 5)))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, colors.AsNRGBA(img.At(15, 15)))
}

func TestFrames(t *testing.T) {
	assert.Equal(t, 1, frameCount(30, 0))
	assert.Equal(t, 31, frameCount(30, 1))
	assert.Equal(t, int32(0), frameTime(0, 30))
	assert.Equal(t, int32(33), frameTime(1, 30))
	assert.Equal(t, int32(1000), frameTime(30, 30))
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "square.xml", square)
	c := testConfig(t)
	c.Background = "#0000ff"
	out := filepath.Join(dir, "snap.png")
	require.NoError(t, Snapshot(c, doc, out))
	img, _, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, colors.AsNRGBA(img.At(15, 15)))

	c.Background = "nothing"
	assert.Error(t, Snapshot(c, doc, out))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "good.xml", square)
	writeDoc(t, dir, "bad.xml", "<screenplay>\n<blob/>\n</screenplay>")
	writeDoc(t, dir, "sub/more.xml", square)
	writeDoc(t, dir, "notes.txt", "<blob/>")

	files, err := checkFiles("**.xml", []string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "good.xml"),
		filepath.Join(dir, "bad.xml"),
		filepath.Join(dir, "sub", "more.xml"),
	}, files)

	c := testConfig(t)
	var b bytes.Buffer
	bad, err := Check(c, &b, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, bad)
	assert.Contains(t, b.String(), "unknown-element")
	assert.Contains(t, b.String(), "ok")

	b.Reset()
	c.Check.Format = "yaml"
	bad, err = Check(c, &b, filepath.Join(dir, "bad.xml"))
	require.NoError(t, err)
	assert.Equal(t, 1, bad)
	assert.Contains(t, b.String(), "code: unknown-element")
	assert.Contains(t, b.String(), "line: 2")

	c.Check.Format = "json"
	_, err = Check(c, &b, dir)
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "moving.xml", moving)
	c := testConfig(t)
	c.Play.Realtime = false
	c.Play.FPS = 10
	c.Play.Duration = 5

	st, err := Play(context.Background(), c, doc)
	require.NoError(t, err)
	assert.Equal(t, 11, st.Frames)
	assert.Equal(t, int32(1000), st.End)
	assert.Equal(t, 1, st.Posts)
	assert.Positive(t, st.Changed)

	c.Play.Duration = 0.5
	st, err = Play(context.Background(), c, doc)
	require.NoError(t, err)
	assert.Equal(t, int32(500), st.End)
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "moving.xml", moving)
	var b bytes.Buffer
	require.NoError(t, Dump(&b, doc, 0.5))
	assert.Contains(t, b.String(), `<rect id="r"`)
	assert.Contains(t, b.String(), `left="5"`)
}

func TestRootConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "square.xml", square)
	cfg := writeDoc(t, dir, "animator.toml", "width = 32\nheight = 8\n\n[render]\nfps = 5.0\n")
	out := filepath.Join(dir, "frames")

	c := &config.Config{}
	root := Root(c)
	var b bytes.Buffer
	root.SetOut(&b)
	root.SetArgs([]string{"render", "--config", cfg, "--height", "16", "-o", out, "-d", "0.4", doc})
	require.NoError(t, root.Execute())

	assert.Equal(t, 32, c.Width)
	assert.Equal(t, 16, c.Height)
	assert.Equal(t, float32(5), c.Render.FPS)
	assert.Equal(t, out, c.Render.OutDir)
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Contains(t, b.String(), "wrote 3 frames")
}
