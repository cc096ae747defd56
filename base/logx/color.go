// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"image/color"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default
// unless the NO_COLOR environment variable is set.
var UseColor = !termenv.EnvNoColor()

var (
	errorColor   = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	warnColor    = color.RGBA{0xf9, 0xa8, 0x25, 0xff}
	successColor = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	cmdColor     = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
)

// colorize returns the given string in the given color
// if [UseColor] is on and the terminal supports it.
func colorize(s string, c color.Color) string {
	if !UseColor {
		return s
	}
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.FromColor(c)).String()
}

// ErrorColor returns the given string in the error color.
func ErrorColor(s string) string { return colorize(s, errorColor) }

// WarnColor returns the given string in the warning color.
func WarnColor(s string) string { return colorize(s, warnColor) }

// SuccessColor returns the given string in the success color.
func SuccessColor(s string) string { return colorize(s, successColor) }

// CmdColor returns the given string in the color used for commands and file names.
func CmdColor(s string) string { return colorize(s, cmdColor) }
