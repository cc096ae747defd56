// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	errs []any
}

func (r *recorder) Error(args ...any) { r.errs = append(r.errs, args...) }

func TestLog1(t *testing.T) {
	v := Log1(strconv.Atoi("12"))
	assert.Equal(t, 12, v)
	v = Log1(strconv.Atoi("x"))
	assert.Equal(t, 0, v)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
	assert.Panics(t, func() { Must1(strconv.Atoi("x")) })
}

func TestTest(t *testing.T) {
	r := &recorder{}
	assert.NoError(t, Test(r, nil))
	v, err := strconv.Atoi("5")
	assert.Equal(t, 5, Test1(r, v, err))
	assert.Empty(t, r.errs)
	v, err = strconv.Atoi("q")
	Test1(r, v, err)
	assert.Len(t, r.errs, 1)
}
