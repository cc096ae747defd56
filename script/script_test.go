// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"errors"
	"fmt"
	"testing"

	"cogentcore.org/animator/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testScene is a minimal [Resolver] with a few objects.
type testScene struct {
	ids     map[string]operand.Ref
	members map[operand.Ref]map[string]operand.Value
	boxed   map[operand.Ref]operand.Value
}

func newTestScene() *testScene {
	return &testScene{
		ids: map[string]operand.Ref{"rect": 1, "a": 2, "i": 3, "label": 4},
		members: map[operand.Ref]map[string]operand.Value{
			1: {"width": operand.ScalarValue(40), "left": operand.IntValue(10)},
		},
		boxed: map[operand.Ref]operand.Value{
			2: operand.ArrayValue(operand.Int, operand.IntValue(1), operand.IntValue(4), operand.IntValue(6)),
			3: operand.IntValue(2),
			4: operand.StringValue("hello"),
		},
	}
}

func (s *testScene) ResolveIdentifier(name string) (operand.Value, bool, error) {
	if r, ok := s.ids[name]; ok {
		return operand.ObjectValue(r), true, nil
	}
	return operand.Value{}, false, nil
}

func (s *testScene) ResolveMember(obj operand.Value, name string) (operand.Value, error) {
	if v, ok := s.members[obj.Ref][name]; ok {
		return v, nil
	}
	return operand.Value{}, fmt.Errorf("no member %q", name)
}

func (s *testScene) CallFunction(obj operand.Value, name string, args []operand.Value) (operand.Value, bool, error) {
	if obj.Ref == 4 && name == "slice" && len(args) == 2 {
		str := s.boxed[4].Str
		return operand.StringValue(str[args[0].Int:args[1].Int]), true, nil
	}
	return operand.Value{}, false, nil
}

func (s *testScene) Unbox(obj operand.Value) (operand.Value, error) {
	if v, ok := s.boxed[obj.Ref]; ok {
		return v, nil
	}
	return operand.Value{}, errors.New("not a data element")
}

func TestIntExpressions(t *testing.T) {
	tests := []struct {
		expr string
		want int32
	}{
		{"1>1/2", 1},
		{"(6+7)*8", 104},
		{"0&&1?2:3", 3},
		{"3*(4+5)", 27},
		{"0x123", 0x123},
		{"0XABC", 0xabc},
		{"'123'|\"456\"", 123 | 456},
		{"123|'456'", 123 | 456},
		{"'2'<11", 1},
		{"2<'11'", 1},
		{"'2'<'11'", 0},
		{"-345", -345},
		{"+678", 678},
		{"6+7*8", 62},
		{"-1-2-8/4", -5},
		{"-9%4", -1},
		{"9%-4", 1},
		{"-9%-4", -1},
		{"123&978", 123 & 978},
		{"123^978", 123 ^ 978},
		{"2<<4", 32},
		{"99>>3", 12},
		{"~55", ^55},
		{"~~55", 55},
		{"!55", 0},
		{"!!55", 1},
		{"2<=2", 1},
		{"20>=11.", 1},
		{"2.!=2", 0},
		{"2=='2.'", 1},
		{"'20'<11.", 0},
		{"1&&2||3", 1},
		{"1&&0||0", 0},
		{"0||1&&3", 1},
		{"1?(0?3:4):5", 4},
		{"1?2?3:4:5", 3},
		{"0?1:0?2:3", 3},
		{"0?1:1?2:3", 2},
		{"0?2?3:4:5", 5},
		{"1?0?3:4:5", 4},
		{"0?0:3?4:5", 4},
		{"true+1", 2},
	}
	e := NewEngine(nil)
	for _, tt := range tests {
		v, err := e.Evaluate(tt.expr, operand.NoType)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, operand.Int, v.Type, tt.expr)
		assert.Equal(t, tt.want, v.Int, tt.expr)
	}
}

func TestScalarExpressions(t *testing.T) {
	tests := []struct {
		expr string
		want float32
	}{
		{"1.0+2.0", 3},
		{"1.0+5", 6},
		{"6-1.0", 5},
		{"- -5.5- -1.5", 7},
		{"2.5*6.", 15},
		{"4.5/.5", 9},
		{"9.5/19", 0.5},
		{"9.5%0.5", 0},
		{"9%2.5", 1.5},
		{"-9%2.5", -1.5},
		{"123.5", 123.5},
		{"7/2", 3.5},
		{"Math.PI", 3.14159265},
		{"Math.max(1, 7.5, 3)", 7.5},
		{"Math.floor(2.7)", 2},
		{"Math.round(2.5)", 3},
		{"Math.sqrt(16)", 4},
	}
	e := NewEngine(nil)
	for _, tt := range tests {
		v, err := e.Evaluate(tt.expr, operand.NoType)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, operand.Scalar, v.Type, tt.expr)
		assert.InDelta(t, tt.want, v.Scalar, 1e-4, tt.expr)
	}
}

func TestHexLiteral(t *testing.T) {
	e := NewEngine(nil)
	v, err := e.Evaluate("0xdeadBEEF", operand.Int)
	require.NoError(t, err)
	u := uint32(0xdeadbeef)
	assert.Equal(t, int32(u), v.Int)
}

func TestStrings(t *testing.T) {
	e := NewEngine(newTestScene())
	tests := []struct {
		expr string
		want string
	}{
		{`"abc"+"abc"`, "abcabc"},
		{`'123'+"456"`, "123456"},
		{`123+"456"`, "123456"},
		{`'a\tb'`, "a\tb"},
		{`label+"!"`, "hello!"},
		{`label.slice(1,3)`, "el"},
	}
	for _, tt := range tests {
		v, err := e.Evaluate(tt.expr, operand.NoType)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, v.Str, tt.expr)
	}
}

func TestBuiltins(t *testing.T) {
	e := NewEngine(nil)
	v, err := e.Evaluate("isNaN(NaN)", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(1), v)

	v, err = e.Evaluate("isFinite(1/0.)", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(1), v, "division by zero is the largest finite scalar")

	v, err = e.Evaluate("isFinite(Number.POSITIVE_INFINITY)", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(0), v)

	v, err = e.Evaluate("rgb(255, 0, 0)", operand.Color)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffff0000), uint32(v.Int))

	v, err = e.Evaluate("blue", operand.Color)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xff0000ff), uint32(v.Int))

	v, err = e.Evaluate("eval('1+' + '2')", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(3), v)

	e.Seed(7)
	r1, err := e.Evaluate("Math.random()", operand.Scalar)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r1.Scalar, float32(0))
	assert.Less(t, r1.Scalar, float32(1))
	e.Seed(7)
	r2, err := e.Evaluate("Math.random()", operand.Scalar)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestDivideByZero(t *testing.T) {
	e := NewEngine(nil)
	v, err := e.Evaluate("0/0", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.NaN32, v.Int)

	v, err = e.Evaluate("5/0", operand.Scalar)
	require.NoError(t, err)
	assert.True(t, v.Scalar > 1e30)

	v, err = e.Evaluate("-5/0", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.MinInt32, v.Int)

	v, err = e.Evaluate("0./0", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, "NaN", v.String())
}

func TestScene(t *testing.T) {
	e := NewEngine(newTestScene())

	v, err := e.Evaluate("a[i]", operand.Int)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(6), v)

	v, err = e.Evaluate("[1,4,6][2]", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(6), v)

	v, err = e.Evaluate("#script:rect.width/2", operand.Scalar)
	require.NoError(t, err)
	assert.Equal(t, operand.ScalarValue(20), v)

	v, err = e.Evaluate("rect.left+1", operand.String)
	require.NoError(t, err)
	assert.Equal(t, operand.StringValue("11"), v)

	_, err = e.Evaluate("a.length", operand.NoType)
	require.Error(t, err, "a is an object, so length comes from the resolver")

	v, err = e.Evaluate("'rect'", operand.Object)
	require.NoError(t, err)
	assert.Equal(t, operand.ObjectValue(1), v)

	v, err = e.Evaluate("rect == rect", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(1), v)

	v, err = e.Evaluate("[1, 2.5]", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.Scalar, v.Elem)
	assert.Equal(t, "[1,2.5]", v.String())

	v, err = e.Evaluate("1, 2, 3", operand.Array)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	v, err = e.Evaluate("7", operand.Array)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
}

func TestEnum(t *testing.T) {
	e := NewEngine(nil)
	names := []string{"normal", "create", "immediate", "once"}
	v, err := e.EvaluateEnum("immediate", names)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(2), v)

	v, err = e.EvaluateEnum("1+2", names)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(3), v)
}

type testExtension struct{}

func (testExtension) Identifier(name string) (operand.Value, bool) {
	if name == "answer" {
		return operand.IntValue(42), true
	}
	return operand.Value{}, false
}

func (testExtension) Function(name string, args []operand.Value) (operand.Value, bool, error) {
	if name == "twice" && len(args) == 1 {
		return operand.IntValue(2 * args[0].Int), true, nil
	}
	return operand.Value{}, false, nil
}

func TestExtension(t *testing.T) {
	e := NewEngine(nil)
	e.AddExtension(testExtension{})
	v, err := e.Evaluate("twice(answer)", operand.NoType)
	require.NoError(t, err)
	assert.Equal(t, operand.IntValue(84), v)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		expr string
		code ErrorCodes
	}{
		{"", ErrPrematureEnd},
		{"1+", ErrPrematureEnd},
		{"(1+2", ErrPrematureEnd},
		{"1+2)", ErrMismatchedBrackets},
		{"[1,2", ErrPrematureEnd},
		{"1 2", ErrExpectedOperator},
		{"'abc", ErrUnterminatedString},
		{"nothere", ErrCouldNotFindReferenceID},
		{"a[5]", ErrArrayIndexOutOfBounds},
		{"i[0]", ErrExpectedArray},
		{"a['x']", ErrExpectedNumberForArrayIndex},
		{"'x'?1:2", ErrExpectedIntForCondition},
		{"'x'*2", ErrExpectedNumber},
		{"nofunc(1)", ErrNoFunctionHandlerFound},
		{"Math.nofunc(1)", ErrNoFunctionHandlerFound},
		{"Math.sqrt()", ErrErrorInFunctionParameters},
		{"(1).x", ErrDotOperatorExpectsObject},
		{"rect.nothere", ErrHandleMemberFailed},
		{"rect[0]", ErrHandleUnboxFailed},
	}
	e := NewEngine(newTestScene())
	for _, tt := range tests {
		_, err := e.Evaluate(tt.expr, operand.NoType)
		require.Error(t, err, tt.expr)
		var se *Error
		require.True(t, errors.As(err, &se), tt.expr)
		assert.Equal(t, tt.code, se.Code, tt.expr)
		assert.True(t, errors.Is(err, &Error{Code: tt.code}), tt.expr)
	}

	_, err := e.Evaluate("'abc'", operand.Int)
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrTypeConversionFailed, se.Code)
	assert.ErrorIs(t, err, operand.ErrConversion)
}

func TestErrorPosition(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.Evaluate("1 + missing", operand.NoType)
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 4, se.Pos)
	assert.Equal(t, "missing", se.Name)
	assert.Contains(t, se.Error(), "could not find reference id at 4")
}
