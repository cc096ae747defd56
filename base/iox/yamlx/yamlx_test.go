// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Code string `yaml:"code"`
	Line int    `yaml:"line"`
}

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write([]entry{{Code: "DuplicateID", Line: 4}}, &buf))
	assert.Contains(t, buf.String(), "code: DuplicateID")
	var got []entry
	require.NoError(t, Read(&got, &buf))
	assert.Equal(t, []entry{{Code: "DuplicateID", Line: 4}}, got)
}

func TestReadEmpty(t *testing.T) {
	e := entry{Line: 3}
	require.NoError(t, Read(&e, strings.NewReader("")))
	assert.Equal(t, 3, e.Line)
}
