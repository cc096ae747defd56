// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import "io"

// Dump writes an outline of the document in the given file after it
// has run for the given number of seconds.
func Dump(w io.Writer, file string, at float32) error {
	m, err := open(file)
	if err != nil {
		return err
	}
	m.Advance(0)
	if at > 0 {
		m.Advance(int32(at * 1000))
	}
	return m.Dump(w)
}
