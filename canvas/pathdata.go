// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// pathArgs is the number of numeric arguments taken by each
// lowercase path data command.
var pathArgs = map[byte]int{
	'm': 2, 'l': 2, 'h': 1, 'v': 1, 'c': 6, 's': 4, 'q': 4, 't': 2, 'a': 7, 'z': 0,
}

// pathScanner splits SVG path data into commands and numbers.
type pathScanner struct {
	d   string
	pos int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.d) {
		switch s.d[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) atNumber() bool {
	s.skipSeparators()
	if s.pos >= len(s.d) {
		return false
	}
	c := s.d[s.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

// number reads one number: an optional sign, digits with at most one
// decimal point, and an optional exponent. A second decimal point or
// a sign starts the next number, as in "0.5.5" or "1-2".
func (s *pathScanner) number() (float32, error) {
	s.skipSeparators()
	start := s.pos
	i := s.pos
	if i < len(s.d) && (s.d[i] == '-' || s.d[i] == '+') {
		i++
	}
	dot := false
	for ; i < len(s.d); i++ {
		c := s.d[i]
		if c == '.' && !dot {
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
	}
	if i < len(s.d) && (s.d[i] == 'e' || s.d[i] == 'E') {
		j := i + 1
		if j < len(s.d) && (s.d[j] == '-' || s.d[j] == '+') {
			j++
		}
		if j < len(s.d) && s.d[j] >= '0' && s.d[j] <= '9' {
			for j < len(s.d) && s.d[j] >= '0' && s.d[j] <= '9' {
				j++
			}
			i = j
		}
	}
	s.pos = i
	f, err := strconv.ParseFloat(s.d[start:i], 32)
	if err != nil {
		return 0, fmt.Errorf("canvas.ParsePathData: invalid number %q at %d", s.d[start:i], start)
	}
	return float32(f), nil
}

// flag reads an arc flag, which may be packed without separators.
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.pos < len(s.d) {
		switch s.d[s.pos] {
		case '0':
			s.pos++
			return false, nil
		case '1':
			s.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("canvas.ParsePathData: expected arc flag at %d", s.pos)
}

// ParsePathData parses SVG path data into a new [Path]. All of the
// commands M L H V C S Q T A Z are supported in both absolute
// (uppercase) and relative (lowercase) forms, with implicit repeats
// of the last command. Extra coordinates after a move are lines.
func ParsePathData(d string) (*Path, error) {
	p := &Path{}
	s := &pathScanner{d: d}
	var cmd byte
	var lastCtrl [2]float32 // reflected control point for S and T
	var lastCmd byte
	for {
		s.skipSeparators()
		if s.pos >= len(s.d) {
			break
		}
		c := s.d[s.pos]
		if _, ok := pathArgs[c|0x20]; ok {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return p, fmt.Errorf("canvas.ParsePathData: expected command at %d in %q", s.pos, d)
		} else if !s.atNumber() {
			return p, fmt.Errorf("canvas.ParsePathData: unexpected character %q at %d", c, s.pos)
		}
		lower := cmd | 0x20
		rel := cmd == lower
		if lower == 'z' {
			p.Close()
			lastCmd = 'z'
			continue
		}
		n := pathArgs[lower]
		var a [7]float32
		for i := 0; i < n; i++ {
			var err error
			if lower == 'a' && (i == 3 || i == 4) {
				var f bool
				f, err = s.flag()
				if f {
					a[i] = 1
				}
			} else {
				a[i], err = s.number()
			}
			if err != nil {
				return p, err
			}
		}
		cur := p.Last()
		if rel {
			switch lower {
			case 'h':
				a[0] += cur.X
			case 'v':
				a[0] += cur.Y
			case 'a':
				a[5] += cur.X
				a[6] += cur.Y
			default:
				for i := 0; i < n; i += 2 {
					a[i] += cur.X
					a[i+1] += cur.Y
				}
			}
		}
		// control point reflected through the current point
		rx, ry := cur.X, cur.Y
		if (lower == 's' && (lastCmd == 'c' || lastCmd == 's')) || (lower == 't' && (lastCmd == 'q' || lastCmd == 't')) {
			rx, ry = 2*cur.X-lastCtrl[0], 2*cur.Y-lastCtrl[1]
		}
		switch lower {
		case 'm':
			p.MoveTo(a[0], a[1])
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'l':
			p.LineTo(a[0], a[1])
		case 'h':
			p.LineTo(a[0], cur.Y)
		case 'v':
			p.LineTo(cur.X, a[0])
		case 'c':
			p.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
			lastCtrl = [2]float32{a[2], a[3]}
		case 's':
			p.CubicTo(rx, ry, a[0], a[1], a[2], a[3])
			lastCtrl = [2]float32{a[0], a[1]}
		case 'q':
			p.QuadTo(a[0], a[1], a[2], a[3])
			lastCtrl = [2]float32{a[0], a[1]}
		case 't':
			p.QuadTo(rx, ry, a[0], a[1])
			lastCtrl = [2]float32{rx, ry}
		case 'a':
			p.ArcTo(a[0], a[1], a[2], a[3] != 0, a[4] != 0, a[5], a[6])
		}
		lastCmd = lower
	}
	return p, nil
}

// MustParsePathData is [ParsePathData] for constant path data,
// panicking on any error.
func MustParsePathData(d string) *Path {
	p, err := ParsePathData(strings.TrimSpace(d))
	if err != nil {
		panic(err)
	}
	return p
}
