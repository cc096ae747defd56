// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing, named colors,
// packed ARGB conversion and color space helpers.
// Colors are non-premultiplied [color.NRGBA] values throughout,
// and packed as 0xAARRGGBB when stored in numeric attributes.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/animator/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// Black is opaque black.
	Black = color.NRGBA{0, 0, 0, 0xff}

	// White is opaque white.
	White = color.NRGBA{0xff, 0xff, 0xff, 0xff}

	// Transparent is fully transparent black.
	Transparent = color.NRGBA{}
)

// AsNRGBA returns the given color as a non-premultiplied [color.NRGBA].
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return Transparent
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromName returns the named color with the given lowercase name
// from the SVG 1.1 color keyword table.
func FromName(name string) (color.NRGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Transparent, false
	}
	return AsNRGBA(c), true
}

// FromString parses a color from one of the following forms:
//   - a named color, such as "red"
//   - "#rgb", "#argb", "#rrggbb" or "#aarrggbb"
//   - "rgb(r,g,b)" or "rgba(r,g,b,a)" with 0-255 components
//     and an alpha that is either 0-1 or 0-255
func FromString(str string) (color.NRGBA, error) {
	s := strings.TrimSpace(str)
	if s == "" {
		return Transparent, errors.New("colors.FromString: empty color")
	}
	ls := strings.ToLower(s)
	switch {
	case ls[0] == '#':
		return FromHex(ls)
	case strings.HasPrefix(ls, "rgba(") || strings.HasPrefix(ls, "rgb("):
		open := strings.IndexByte(ls, '(')
		args := strings.Split(strings.TrimSuffix(ls[open+1:], ")"), ",")
		if len(args) < 3 || len(args) > 4 {
			return Transparent, fmt.Errorf("colors.FromString: could not process %q", str)
		}
		var v [4]float64
		v[3] = 255
		for i, a := range args {
			f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
			if err != nil {
				return Transparent, fmt.Errorf("colors.FromString: %q: %w", str, err)
			}
			v[i] = f
		}
		if len(args) == 4 && v[3] <= 1 {
			v[3] *= 255
		}
		return color.NRGBA{clamp8(v[0]), clamp8(v[1]), clamp8(v[2]), clamp8(v[3])}, nil
	}
	if c, ok := FromName(ls); ok {
		return c, nil
	}
	return Transparent, fmt.Errorf("colors.FromString: unknown color %q", str)
}

// FromHex parses the given hex color string, with or without a leading #.
// Three and six digit forms are opaque; four and eight digit forms
// carry the alpha first.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent, errors.New("colors.FromHex: could not process: " + hex)
	}
	switch len(hex) {
	case 3:
		n |= 0xf000
		fallthrough
	case 4:
		a, r, g, b := n>>12&0xf, n>>8&0xf, n>>4&0xf, n&0xf
		return color.NRGBA{uint8(r * 0x11), uint8(g * 0x11), uint8(b * 0x11), uint8(a * 0x11)}, nil
	case 6:
		n |= 0xff000000
		fallthrough
	case 8:
		return FromARGB(uint32(n)), nil
	}
	return Transparent, errors.New("colors.FromHex: could not process: " + hex)
}

// AsHex returns the color as a "#AARRGGBB" hex string.
func AsHex(c color.Color) string {
	return fmt.Sprintf("#%08X", AsARGB(c))
}

// AsARGB packs the color as 0xAARRGGBB.
func AsARGB(c color.Color) uint32 {
	n := AsNRGBA(c)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) color.NRGBA {
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)}
}

// RGB returns the packed opaque ARGB value for the given components,
// each clamped to 0-255.
func RGB(r, g, b float32) uint32 {
	return AsARGB(color.NRGBA{clamp8(float64(r)), clamp8(float64(g)), clamp8(float64(b)), 0xff})
}

// Lerp returns the component-wise linear interpolation between x and y.
func Lerp(x, y color.Color, t float32) color.NRGBA {
	a, b := AsNRGBA(x), AsNRGBA(y)
	l := func(p, q uint8) uint8 {
		return clamp8(float64(math32.Lerp(float32(p), float32(q), t)))
	}
	return color.NRGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// WithAlpha returns the color with its alpha set to the given 0-1 value.
func WithAlpha(c color.Color, a float32) color.NRGBA {
	n := AsNRGBA(c)
	n.A = clamp8(float64(math32.Clamp(a, 0, 1) * 255))
	return n
}

// HSV returns the hue (0-360), saturation (0-1) and value (0-1)
// of the given color.
func HSV(c color.Color) (h, s, v float32) {
	n := AsNRGBA(c)
	n.A = 0xff
	cf, _ := colorful.MakeColor(n)
	hh, ss, vv := cf.Hsv()
	return float32(hh), float32(ss), float32(vv)
}

// FromHSV returns the color with the given hue (degrees),
// saturation and value (0-1) and alpha (0-255).
func FromHSV(h, s, v float32, alpha uint8) color.NRGBA {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	cf := colorful.Hsv(float64(h), float64(math32.Clamp(s, 0, 1)), float64(math32.Clamp(v, 0, 1))).Clamped()
	r, g, b := cf.RGB255()
	return color.NRGBA{r, g, b, alpha}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
