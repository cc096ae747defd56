// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestMovie(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "child.xml", `<screenplay>
<rect id="c" left="1" top="2" right="3" bottom="4"/>
<post sink="host" type="hello"/>
</screenplay>`)
	fn := writeFile(t, dir, "parent.xml", `<screenplay>
<rect id="r" right="10" bottom="10"/>
<movie id="mv" src="child.xml"/>
<event kind="user" type="hello">
  <apply scope="r" mode="immediate"><set field="left" to="9"/></apply>
</event>
</screenplay>`)

	m := NewMaker(nil)
	require.NoError(t, m.LoadFile(fn))
	assert.Equal(t, dir, m.Dir)
	mv := m.Lookup("mv").(*Movie)
	require.NotNil(t, mv.Maker())
	assert.NotNil(t, mv.Maker().Lookup("c"))

	rec := canvas.NewRecorder(100, 100)
	m.Draw(rec, 0)
	draws := rec.Draws()
	require.Len(t, draws, 2)
	assert.Equal(t, math32.B2(1, 2, 3, 4), draws[1].Bounds)

	m.Advance(10)
	assert.Equal(t, float32(9), left(t, m, "r"))
}

func TestMovieMissing(t *testing.T) {
	m, diags := loadDiags(t, `<screenplay><movie id="mv" src="nowhere/missing.xml"/></screenplay>`)
	assert.True(t, diags.Has(ResourceNotFound))
	assert.Nil(t, m.Lookup("mv").(*Movie).Maker())

	rec := canvas.NewRecorder(100, 100)
	m.Draw(rec, 0)
	assert.Empty(t, rec.Draws())
}

func TestBitmap(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	f, err := os.Create(filepath.Join(dir, "img.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	m := NewMaker(nil)
	m.Dir = dir
	require.NoError(t, m.Load(strings.NewReader(`<screenplay><bitmap id="b" src="img.png" x="1" y="2"/></screenplay>`)))
	v, err := m.Attribute("b", "width")
	require.NoError(t, err)
	assert.Equal(t, operand.ScalarValue(4), v)

	rec := canvas.NewRecorder(100, 100)
	m.Draw(rec, 0)
	require.Len(t, rec.Draws(), 1)
	assert.Equal(t, "DrawBitmap", rec.Draws()[0].Name)
	assert.Equal(t, math32.B2(1, 2, 5, 5), rec.Draws()[0].Bounds)
}
