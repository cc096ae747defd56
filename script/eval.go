// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script evaluates the small C-like expressions embedded in
// attribute text, such as "#script:rect.width/2" or "a[i]+1".
// Identifiers are resolved against a scene through a [Resolver].
package script

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
)

// Prefix marks attribute text that is always evaluated as an expression.
const Prefix = "#script:"

// Resolver connects an [Engine] to the objects of a scene.
type Resolver interface {

	// ResolveIdentifier resolves a bare identifier, such as an element id,
	// "parent" or a member of the working object. It returns false if the
	// identifier is not known to the scene.
	ResolveIdentifier(name string) (operand.Value, bool, error)

	// ResolveMember returns the named member of an object value.
	ResolveMember(obj operand.Value, name string) (operand.Value, error)

	// CallFunction calls the named function member of an object value,
	// or a global scene function when obj is invalid. It returns false
	// if there is no such function.
	CallFunction(obj operand.Value, name string, args []operand.Value) (operand.Value, bool, error)

	// Unbox returns the primitive value held by an object value,
	// such as the value of an int or array data element.
	Unbox(obj operand.Value) (operand.Value, error)
}

// Extension provides additional identifiers and functions,
// consulted after everything else.
type Extension interface {
	Identifier(name string) (operand.Value, bool)
	Function(name string, args []operand.Value) (operand.Value, bool, error)
}

// Engine evaluates expressions. It is not safe for concurrent use.
type Engine struct {

	// Resolver resolves scene identifiers, members and functions.
	// It may be nil, in which case only built-ins are available.
	Resolver Resolver

	// Extensions are consulted for identifiers and functions
	// that nothing else resolves.
	Extensions []Extension

	rand  *rand.Rand
	expr  string
	depth int
	enums []string
}

// NewEngine returns a new engine using the given resolver.
func NewEngine(r Resolver) *Engine {
	e := &Engine{Resolver: r}
	e.Seed(0)
	return e
}

// Seed reseeds the generator behind Math.random.
func (e *Engine) Seed(seed uint64) {
	e.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AddExtension adds an extension to the engine.
func (e *Engine) AddExtension(x Extension) {
	e.Extensions = append(e.Extensions, x)
}

// Evaluate evaluates the expression and coerces the result to the
// expected type; [operand.NoType] returns the result as is.
// A leading [Prefix] is ignored. Errors are of type *[Error].
func (e *Engine) Evaluate(expr string, expected operand.Type) (operand.Value, error) {
	expr = strings.TrimPrefix(strings.TrimSpace(expr), Prefix)
	prev := e.expr
	e.expr = expr
	defer func() { e.expr = prev }()
	n, err := parse(expr)
	if err != nil {
		return operand.Value{}, err
	}
	v, err := e.eval(n)
	if err != nil {
		return operand.Value{}, err
	}
	return e.coerce(v, expected, n.position())
}

// EvaluateEnum evaluates the expression as an enum value, where the
// given names evaluate to their index and a string result is looked
// up in them.
func (e *Engine) EvaluateEnum(expr string, names []string) (operand.Value, error) {
	prev := e.enums
	e.enums = names
	defer func() { e.enums = prev }()
	return e.Evaluate(expr, operand.Enum)
}

func (e *Engine) errorf(code ErrorCodes, pos int, name string) *Error {
	return &Error{Code: code, Pos: pos, Expr: e.expr, Name: name}
}

// wrap wraps an error from a resolver or extension, keeping
// script errors as they are.
func (e *Engine) wrap(err error, code ErrorCodes, pos int, name string) error {
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	re := e.errorf(code, pos, name)
	re.Err = err
	return re
}

func (e *Engine) coerce(v operand.Value, expected operand.Type, pos int) (operand.Value, error) {
	switch expected {
	case operand.NoType:
		return v, nil
	case operand.Object:
		if v.Type == operand.String {
			r, err := e.scene(v.Str, pos)
			if err != nil {
				return operand.Value{}, err
			}
			v = r
		}
		if v.Type != operand.Object {
			return operand.Value{}, e.errorf(ErrTypeConversionFailed, pos, v.String())
		}
		return v, nil
	case operand.Enum:
		if v.Type == operand.String {
			if i := slices.Index(e.enums, v.Str); i >= 0 {
				return operand.IntValue(int32(i)), nil
			}
		}
	}
	v, err := e.prim(v, pos)
	if err != nil {
		return operand.Value{}, err
	}
	c, err := operand.Convert(v, expected)
	if err != nil {
		re := e.errorf(ErrTypeConversionFailed, pos, "")
		re.Err = err
		return operand.Value{}, re
	}
	return c, nil
}

// scene resolves an identifier that must be known to the scene.
func (e *Engine) scene(name string, pos int) (operand.Value, error) {
	if e.Resolver != nil {
		v, ok, err := e.Resolver.ResolveIdentifier(name)
		if err != nil {
			return operand.Value{}, e.wrap(err, ErrCouldNotFindReferenceID, pos, name)
		}
		if ok {
			return v, nil
		}
	}
	return operand.Value{}, e.errorf(ErrCouldNotFindReferenceID, pos, name)
}

// inScene returns whether the scene defines the identifier,
// so that it shadows a built-in namespace.
func (e *Engine) inScene(name string) bool {
	if e.Resolver == nil {
		return false
	}
	_, ok, _ := e.Resolver.ResolveIdentifier(name)
	return ok
}

// prim unboxes object values into their primitive value.
func (e *Engine) prim(v operand.Value, pos int) (operand.Value, error) {
	if v.Type != operand.Object {
		return v, nil
	}
	if e.Resolver == nil {
		return operand.Value{}, e.errorf(ErrHandleUnboxFailed, pos, "")
	}
	u, err := e.Resolver.Unbox(v)
	if err != nil {
		return operand.Value{}, e.wrap(err, ErrHandleUnboxFailed, pos, "")
	}
	if u.Type == operand.Object {
		return operand.Value{}, e.errorf(ErrHandleUnboxFailed, pos, "")
	}
	return u, nil
}

// number converts the value to an int or scalar, reporting
// the given code if it can not.
func (e *Engine) number(v operand.Value, pos int, code ErrorCodes) (operand.Value, error) {
	v, err := e.prim(v, pos)
	if err != nil {
		return operand.Value{}, err
	}
	switch v.Type {
	case operand.Int, operand.Scalar:
		return v, nil
	case operand.String:
		if n, ok := operand.ParseNumber(v.Str); ok {
			return n, nil
		}
	case operand.Array:
		if len(v.Elems) == 1 {
			return e.number(v.Elems[0], pos, code)
		}
	}
	return operand.Value{}, e.errorf(code, pos, v.String())
}

func (e *Engine) integer(v operand.Value, pos int, code ErrorCodes) (int32, error) {
	n, err := e.number(v, pos, code)
	if err != nil {
		return 0, err
	}
	if n.Type == operand.Scalar {
		return operand.FloorToInt(n.Scalar), nil
	}
	return n.Int, nil
}

func (e *Engine) truth(v operand.Value, pos int, code ErrorCodes) (bool, error) {
	n, err := e.number(v, pos, code)
	if err != nil {
		return false, err
	}
	b, _ := operand.Truth(n)
	return b, nil
}

func (e *Engine) eval(n node) (operand.Value, error) {
	switch n := n.(type) {
	case *literal:
		return n.val.Clone(), nil
	case *ident:
		return e.identifier(n)
	case *unary:
		return e.unary(n)
	case *binary:
		return e.binary(n)
	case *conditional:
		c, err := e.eval(n.cond)
		if err != nil {
			return operand.Value{}, err
		}
		b, err := e.truth(c, n.pos, ErrExpectedIntForCondition)
		if err != nil {
			return operand.Value{}, err
		}
		if b {
			return e.eval(n.yes)
		}
		return e.eval(n.no)
	case *member:
		return e.member(n)
	case *index:
		return e.index(n)
	case *call:
		return e.call(n)
	case *arrayLit:
		return e.array(n)
	}
	return operand.Value{}, e.errorf(ErrExpectedValue, n.position(), "")
}

func (e *Engine) identifier(n *ident) (operand.Value, error) {
	if e.Resolver != nil {
		v, ok, err := e.Resolver.ResolveIdentifier(n.name)
		if err != nil {
			return operand.Value{}, e.wrap(err, ErrCouldNotFindReferenceID, n.pos, n.name)
		}
		if ok {
			return v, nil
		}
	}
	if i := slices.Index(e.enums, n.name); i >= 0 {
		return operand.IntValue(int32(i)), nil
	}
	if v, ok := builtinIdentifier(n.name); ok {
		return v, nil
	}
	for _, x := range e.Extensions {
		if v, ok := x.Identifier(n.name); ok {
			return v, nil
		}
	}
	return operand.Value{}, e.errorf(ErrCouldNotFindReferenceID, n.pos, n.name)
}

func (e *Engine) unary(n *unary) (operand.Value, error) {
	x, err := e.eval(n.x)
	if err != nil {
		return operand.Value{}, err
	}
	switch n.op {
	case "!":
		b, err := e.truth(x, n.pos, ErrExpectedBooleanExpression)
		if err != nil {
			return operand.Value{}, err
		}
		return operand.BoolValue(!b), nil
	case "~":
		i, err := e.integer(x, n.pos, ErrExpectedNumber)
		if err != nil {
			return operand.Value{}, err
		}
		return operand.IntValue(^i), nil
	}
	v, err := e.number(x, n.pos, ErrExpectedNumber)
	if err != nil || n.op == "+" {
		return v, err
	}
	if v.Type == operand.Int {
		if v.Int == operand.NaN32 {
			return v, nil
		}
		return operand.IntValue(-v.Int), nil
	}
	return operand.ScalarValue(-v.Scalar), nil
}

func (e *Engine) binary(n *binary) (operand.Value, error) {
	x, err := e.eval(n.x)
	if err != nil {
		return operand.Value{}, err
	}
	if n.op == "&&" || n.op == "||" {
		b, err := e.truth(x, n.pos, ErrExpectedBooleanExpression)
		if err != nil {
			return operand.Value{}, err
		}
		if b == (n.op == "||") {
			return operand.BoolValue(b), nil
		}
		y, err := e.eval(n.y)
		if err != nil {
			return operand.Value{}, err
		}
		b, err = e.truth(y, n.pos, ErrExpectedBooleanExpression)
		return operand.BoolValue(b), err
	}
	y, err := e.eval(n.y)
	if err != nil {
		return operand.Value{}, err
	}
	if (n.op == "==" || n.op == "!=") && x.Type == operand.Object && y.Type == operand.Object {
		return operand.BoolValue((x.Ref == y.Ref) == (n.op == "==")), nil
	}
	if x, err = e.prim(x, n.pos); err != nil {
		return operand.Value{}, err
	}
	if y, err = e.prim(y, n.pos); err != nil {
		return operand.Value{}, err
	}
	if x.Type == operand.String || y.Type == operand.String {
		switch n.op {
		case "+":
			return operand.StringValue(x.String() + y.String()), nil
		case "==", "!=", "<", "<=", ">", ">=":
			if x.Type == operand.String && y.Type == operand.String {
				return operand.BoolValue(compare(n.op, strings.Compare(x.Str, y.Str))), nil
			}
		}
	}
	switch n.op {
	case "|", "^", "&", "<<", ">>":
		a, err := e.integer(x, n.pos, ErrExpectedNumber)
		if err != nil {
			return operand.Value{}, err
		}
		b, err := e.integer(y, n.pos, ErrExpectedNumber)
		if err != nil {
			return operand.Value{}, err
		}
		return operand.IntValue(bitwise(n.op, a, b)), nil
	}
	a, err := e.number(x, n.pos, ErrExpectedNumber)
	if err != nil {
		return operand.Value{}, err
	}
	b, err := e.number(y, n.pos, ErrExpectedNumber)
	if err != nil {
		return operand.Value{}, err
	}
	if a.Type == operand.Int && b.Type == operand.Int {
		return intOp(n.op, a.Int, b.Int), nil
	}
	as, _ := operand.Convert(a, operand.Scalar)
	bs, _ := operand.Convert(b, operand.Scalar)
	return scalarOp(n.op, as.Scalar, bs.Scalar), nil
}

// compare returns the result of a relational operator given the
// sign of the comparison.
func compare(op string, c int) bool {
	switch op {
	case "==":
		return c == 0
	case "!=":
		return c != 0
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	}
	return c >= 0
}

func bitwise(op string, a, b int32) int32 {
	switch op {
	case "|":
		return a | b
	case "^":
		return a ^ b
	case "&":
		return a & b
	case "<<":
		return a << (uint32(b) & 31)
	}
	return a >> (uint32(b) & 31)
}

// intOp applies an arithmetic or relational operator to integers.
// Division that is not exact yields a scalar, and division by zero
// yields the integer NaN or infinity sentinels.
func intOp(op string, a, b int32) operand.Value {
	switch op {
	case "+":
		return operand.IntValue(a + b)
	case "-":
		return operand.IntValue(a - b)
	case "*":
		return operand.IntValue(a * b)
	case "/":
		switch {
		case b == 0 && a == 0:
			return operand.IntValue(operand.NaN32)
		case b == 0 && a > 0:
			return operand.IntValue(operand.MaxInt32)
		case b == 0:
			return operand.IntValue(operand.MinInt32)
		case a%b == 0:
			return operand.IntValue(a / b)
		}
		return operand.ScalarValue(float32(a) / float32(b))
	case "%":
		if b == 0 {
			return operand.IntValue(operand.NaN32)
		}
		return operand.IntValue(a % b)
	}
	c := 0
	if a < b {
		c = -1
	} else if a > b {
		c = 1
	}
	return operand.BoolValue(compare(op, c))
}

// scalarOp applies an arithmetic or relational operator to scalars.
// Division by zero yields NaN or the largest finite scalar.
func scalarOp(op string, a, b float32) operand.Value {
	switch op {
	case "+":
		return operand.ScalarValue(a + b)
	case "-":
		return operand.ScalarValue(a - b)
	case "*":
		return operand.ScalarValue(a * b)
	case "/":
		switch {
		case b != 0:
			return operand.ScalarValue(a / b)
		case a == 0 || math32.IsNaN(a):
			return operand.ScalarValue(math32.NaN())
		case a > 0:
			return operand.ScalarValue(math32.MaxFloat32)
		}
		return operand.ScalarValue(-math32.MaxFloat32)
	case "%":
		return operand.ScalarValue(math32.Mod(a, b))
	}
	if math32.IsNaN(a) || math32.IsNaN(b) {
		return operand.BoolValue(op == "!=")
	}
	c := 0
	if a < b {
		c = -1
	} else if a > b {
		c = 1
	}
	return operand.BoolValue(compare(op, c))
}

func (e *Engine) member(n *member) (operand.Value, error) {
	if id, ok := n.x.(*ident); ok && isNamespace(id.name) && !e.inScene(id.name) {
		if v, ok := namespaceMember(id.name, n.name); ok {
			return v, nil
		}
		return operand.Value{}, e.errorf(ErrExpectedFieldName, n.pos, id.name+"."+n.name)
	}
	x, err := e.eval(n.x)
	if err != nil {
		return operand.Value{}, err
	}
	switch x.Type {
	case operand.Object:
		if e.Resolver == nil {
			break
		}
		v, err := e.Resolver.ResolveMember(x, n.name)
		if err != nil {
			return operand.Value{}, e.wrap(err, ErrHandleMemberFailed, n.pos, n.name)
		}
		return v, nil
	case operand.Array:
		if n.name == "length" {
			return operand.IntValue(int32(len(x.Elems))), nil
		}
	case operand.String:
		if n.name == "length" {
			return operand.IntValue(int32(utf8.RuneCountInString(x.Str))), nil
		}
	}
	return operand.Value{}, e.errorf(ErrDotOperatorExpectsObject, n.pos, n.name)
}

func (e *Engine) index(n *index) (operand.Value, error) {
	x, err := e.eval(n.x)
	if err != nil {
		return operand.Value{}, err
	}
	if x, err = e.prim(x, n.pos); err != nil {
		return operand.Value{}, err
	}
	if x.Type != operand.Array {
		return operand.Value{}, e.errorf(ErrExpectedArray, n.pos, "")
	}
	iv, err := e.eval(n.index)
	if err != nil {
		return operand.Value{}, err
	}
	i, err := e.integer(iv, n.index.position(), ErrExpectedNumberForArrayIndex)
	if err != nil {
		return operand.Value{}, err
	}
	if i < 0 || int(i) >= len(x.Elems) {
		return operand.Value{}, e.errorf(ErrArrayIndexOutOfBounds, n.pos, "")
	}
	return x.Elems[i], nil
}

func (e *Engine) call(n *call) (operand.Value, error) {
	args := make([]operand.Value, len(n.args))
	for i, a := range n.args {
		v, err := e.eval(a)
		if err != nil {
			return operand.Value{}, err
		}
		args[i] = v
	}
	switch fn := n.fn.(type) {
	case *ident:
		if e.Resolver != nil {
			v, ok, err := e.Resolver.CallFunction(operand.Value{}, fn.name, args)
			if err != nil {
				return operand.Value{}, e.wrap(err, ErrHandleMemberFunctionFailed, n.pos, fn.name)
			}
			if ok {
				return v, nil
			}
		}
		if v, ok, err := e.callGlobal(fn.name, args, n.pos); ok {
			return v, err
		}
		for _, x := range e.Extensions {
			v, ok, err := x.Function(fn.name, args)
			if err != nil {
				return operand.Value{}, e.wrap(err, ErrHandleMemberFunctionFailed, n.pos, fn.name)
			}
			if ok {
				return v, nil
			}
		}
		return operand.Value{}, e.errorf(ErrNoFunctionHandlerFound, n.pos, fn.name)
	case *member:
		if id, ok := fn.x.(*ident); ok && id.name == "Math" && !e.inScene(id.name) {
			if v, ok, err := e.callMath(fn.name, args, n.pos); ok {
				return v, err
			}
			return operand.Value{}, e.errorf(ErrNoFunctionHandlerFound, n.pos, "Math."+fn.name)
		}
		obj, err := e.eval(fn.x)
		if err != nil {
			return operand.Value{}, err
		}
		if obj.Type != operand.Object {
			return operand.Value{}, e.errorf(ErrDotOperatorExpectsObject, fn.pos, fn.name)
		}
		if e.Resolver != nil {
			v, ok, err := e.Resolver.CallFunction(obj, fn.name, args)
			if err != nil {
				return operand.Value{}, e.wrap(err, ErrHandleMemberFunctionFailed, fn.pos, fn.name)
			}
			if ok {
				return v, nil
			}
		}
		return operand.Value{}, e.errorf(ErrNoFunctionHandlerFound, fn.pos, fn.name)
	}
	return operand.Value{}, e.errorf(ErrNoFunctionHandlerFound, n.pos, "")
}

// array evaluates an array literal. Mixed integers and scalars
// become scalars, and other mixtures convert to the type of the
// first element.
func (e *Engine) array(n *arrayLit) (operand.Value, error) {
	a := operand.ArrayValue(operand.NoType)
	for _, en := range n.elems {
		v, err := e.eval(en)
		if err != nil {
			return operand.Value{}, err
		}
		a.Elems = append(a.Elems, v)
	}
	if len(a.Elems) == 0 {
		return a, nil
	}
	elem := a.Elems[0].Type
	for _, v := range a.Elems[1:] {
		if v.Type == elem {
			continue
		}
		if v.Type.IsNumeric() && elem.IsNumeric() {
			elem = operand.Scalar
		}
	}
	a.Elem = elem
	for i, v := range a.Elems {
		if v.Type == elem {
			continue
		}
		c, err := operand.Convert(v, elem)
		if err != nil {
			return operand.Value{}, e.errorf(ErrTypeConversionFailed, n.elems[i].position(), v.String())
		}
		a.Elems[i] = c
	}
	return a, nil
}
