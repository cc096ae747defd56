// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{0xff, 0, 0, 0xff}},
		{"Blue", color.NRGBA{0, 0, 0xff, 0xff}},
		{"#f00", color.NRGBA{0xff, 0, 0, 0xff}},
		{"#8f00", color.NRGBA{0xff, 0, 0, 0x88}},
		{"#00ff00", color.NRGBA{0, 0xff, 0, 0xff}},
		{"#80102030", color.NRGBA{0x10, 0x20, 0x30, 0x80}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 0xff}},
		{"rgba(1,2,3,0.5)", color.NRGBA{1, 2, 3, 128}},
	}
	for _, test := range tests {
		c, err := FromString(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, c, test.in)
	}
	_, err := FromString("notacolor")
	assert.Error(t, err)
	_, err = FromString("#12345")
	assert.Error(t, err)
	_, err = FromString("")
	assert.Error(t, err)
}

func TestARGB(t *testing.T) {
	c := color.NRGBA{0x11, 0x22, 0x33, 0x44}
	assert.Equal(t, uint32(0x44112233), AsARGB(c))
	assert.Equal(t, c, FromARGB(0x44112233))
	assert.Equal(t, "#44112233", AsHex(c))
	assert.Equal(t, uint32(0xff0a0b0c), RGB(10, 11, 12))
	assert.Equal(t, uint32(0xffff0000), RGB(300, -4, 0))
}

func TestLerp(t *testing.T) {
	got := Lerp(Black, White, 0.5)
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, got)
	assert.Equal(t, Black, Lerp(Black, White, 0))
}

func TestHSV(t *testing.T) {
	h, s, v := HSV(color.NRGBA{0, 0xff, 0, 0xff})
	assert.InDelta(t, 120, h, 1e-3)
	assert.InDelta(t, 1, s, 1e-6)
	assert.InDelta(t, 1, v, 1e-6)
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0x80}, FromHSV(240, 1, 1, 0x80))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, FromHSV(360, 1, 1, 0xff))
}
