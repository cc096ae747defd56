// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"errors"
	"testing"

	"cogentcore.org/animator/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"123", IntValue(123)},
		{"-7", IntValue(-7)},
		{"0x1F", IntValue(31)},
		{"0xdeadBEEF", IntValue(int32(-559038737))},
		{"1.5", ScalarValue(1.5)},
		{"2.", ScalarValue(2)},
		{".25", ScalarValue(0.25)},
		{"1e2", ScalarValue(100)},
		{"3000000000", ScalarValue(3e9)},
	}
	for _, test := range tests {
		v, ok := ParseNumber(test.in)
		require.True(t, ok, test.in)
		assert.Equal(t, test.want, v, test.in)
	}
	for _, bad := range []string{"", "abc", "0x", "1.2.3", "0xZZ"} {
		_, ok := ParseNumber(bad)
		assert.False(t, ok, bad)
	}
}

func TestConvert(t *testing.T) {
	v, err := Convert(ScalarValue(2.7), Int)
	require.NoError(t, err)
	assert.Equal(t, IntValue(2), v)

	v, err = Convert(ScalarValue(-2.5), Int)
	require.NoError(t, err)
	assert.Equal(t, IntValue(-3), v)

	v, err = Convert(StringValue("42"), Scalar)
	require.NoError(t, err)
	assert.Equal(t, ScalarValue(42), v)

	v, err = Convert(ScalarValue(1.5), String)
	require.NoError(t, err)
	assert.Equal(t, StringValue("1.5"), v)

	v, err = Convert(IntValue(3), Array)
	require.NoError(t, err)
	assert.Equal(t, ArrayValue(Int, IntValue(3)), v)

	v, err = Convert(ArrayValue(Int, IntValue(3)), Scalar)
	require.NoError(t, err)
	assert.Equal(t, ScalarValue(3), v)

	v, err = Convert(StringValue("true"), Boolean)
	require.NoError(t, err)
	assert.Equal(t, IntValue(1), v)

	v, err = Convert(IntValue(5), Boolean)
	require.NoError(t, err)
	assert.Equal(t, IntValue(1), v)

	v, err = Convert(StringValue("red"), Color)
	require.NoError(t, err)
	assert.Equal(t, IntValue(int32(-65536)), v) // 0xffff0000

	v, err = Convert(StringValue("1, 2"), Point)
	require.NoError(t, err)
	assert.Equal(t, ScalarArray(1, 2), v)

	_, err = Convert(StringValue("abc"), Int)
	assert.True(t, errors.Is(err, ErrConversion))
	_, err = Convert(IntValue(1), Object)
	assert.Error(t, err)
	_, err = Convert(ObjectValue(3), String)
	assert.Error(t, err)
}

func TestSentinels(t *testing.T) {
	assert.Equal(t, NaN32, FloorToInt(math32.NaN()))
	assert.True(t, math32.IsNaN(IntToScalar(NaN32)))
	assert.Equal(t, MaxInt32, FloorToInt(math32.Inf(1)))
	assert.True(t, math32.IsInf(IntToScalar(MinInt32), -1))
	assert.Equal(t, "NaN", ScalarValue(math32.NaN()).String())
}

func TestComponents(t *testing.T) {
	c, err := Components(StringValue("#80102030"), Color)
	require.NoError(t, err)
	assert.Equal(t, []float32{0x80, 0x10, 0x20, 0x30}, c)
	argb := uint32(0x80102030)
	assert.Equal(t, IntValue(int32(argb)), FromComponents(Color, NoType, c))

	c, err = Components(ScalarArray(1, 2, 3), Array)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, c)
	assert.Equal(t, ArrayValue(Int, IntValue(1), IntValue(2)), FromComponents(Array, Int, []float32{1.5, 2.9}))

	c, err = Components(IntValue(4), Int)
	require.NoError(t, err)
	assert.Equal(t, []float32{4}, c)

	_, err = Components(StringValue("x"), String)
	assert.Error(t, err)
}

func TestTruthAndString(t *testing.T) {
	b, err := Truth(StringValue("0"))
	require.NoError(t, err)
	assert.False(t, b)
	_, err = Truth(StringValue("zz"))
	assert.Error(t, err)
	assert.Equal(t, "[1,2.5,a]", ArrayValue(String, IntValue(1), ScalarValue(2.5), StringValue("a")).String())
	a := ScalarArray(1)
	b2 := a.Clone()
	b2.Elems[0].Scalar = 9
	assert.Equal(t, float32(1), a.Elems[0].Scalar)
}
