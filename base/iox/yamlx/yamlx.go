// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for opening and saving
// YAML files.
package yamlx

import (
	"bufio"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// Read reads the given object from the given reader using YAML encoding.
// An empty input leaves the object unchanged.
func Read(v any, reader io.Reader) error {
	err := yaml.NewDecoder(reader).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// Write writes the given object using YAML encoding with two-space indentation.
func Write(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteBytes writes the given object to bytes using YAML encoding.
func WriteBytes(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
