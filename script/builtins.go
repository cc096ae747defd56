// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"math"
	"strings"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
)

// mathConstants are the members of the Math namespace.
var mathConstants = map[string]float32{
	"E":       math32.E,
	"LN10":    math32.Ln10,
	"LN2":     math32.Ln2,
	"LOG10E":  math32.Log10E,
	"LOG2E":   math32.Log2E,
	"PI":      math32.Pi,
	"SQRT1_2": math32.Sqrt1_2,
	"SQRT2":   math32.Sqrt2,
}

// numberConstants are the members of the Number namespace.
var numberConstants = map[string]float32{
	"MAX_VALUE":         math32.MaxFloat32,
	"MIN_VALUE":         math32.SmallestNonzeroFloat32,
	"NaN":               float32(math.NaN()),
	"NEGATIVE_INFINITY": float32(math.Inf(-1)),
	"POSITIVE_INFINITY": float32(math.Inf(1)),
}

type mathFunc struct {
	args int // -1 for one or more
	fun  func(e *Engine, a []float32) float32
}

func unaryMath(f func(float32) float32) mathFunc {
	return mathFunc{args: 1, fun: func(_ *Engine, a []float32) float32 { return f(a[0]) }}
}

// mathFuncs are the function members of the Math namespace.
var mathFuncs = map[string]mathFunc{
	"abs":   unaryMath(math32.Abs),
	"acos":  unaryMath(math32.Acos),
	"asin":  unaryMath(math32.Asin),
	"atan":  unaryMath(math32.Atan),
	"atan2": {args: 2, fun: func(_ *Engine, a []float32) float32 { return math32.Atan2(a[0], a[1]) }},
	"ceil":  unaryMath(math32.Ceil),
	"cos":   unaryMath(math32.Cos),
	"exp":   unaryMath(math32.Exp),
	"floor": unaryMath(math32.Floor),
	"log":   unaryMath(math32.Log),
	"max": {args: -1, fun: func(_ *Engine, a []float32) float32 {
		m := a[0]
		for _, v := range a[1:] {
			m = math32.Max(m, v)
		}
		return m
	}},
	"min": {args: -1, fun: func(_ *Engine, a []float32) float32 {
		m := a[0]
		for _, v := range a[1:] {
			m = math32.Min(m, v)
		}
		return m
	}},
	"pow":    {args: 2, fun: func(_ *Engine, a []float32) float32 { return math32.Pow(a[0], a[1]) }},
	"random": {args: 0, fun: func(e *Engine, _ []float32) float32 { return e.rand.Float32() }},
	"round":  unaryMath(func(x float32) float32 { return math32.Floor(x + 0.5) }),
	"sin":    unaryMath(math32.Sin),
	"sqrt":   unaryMath(math32.Sqrt),
	"tan":    unaryMath(math32.Tan),
}

// namespaceMember returns a constant member of the Math or Number namespace.
func namespaceMember(ns, name string) (operand.Value, bool) {
	var f float32
	var ok bool
	switch ns {
	case "Math":
		f, ok = mathConstants[name]
	case "Number":
		f, ok = numberConstants[name]
	}
	return operand.ScalarValue(f), ok
}

func isNamespace(name string) bool {
	return name == "Math" || name == "Number"
}

// builtinIdentifier resolves the global constants and named colors.
func builtinIdentifier(name string) (operand.Value, bool) {
	switch name {
	case "NaN":
		return operand.ScalarValue(math32.NaN()), true
	case "Infinity":
		return operand.ScalarValue(math32.Inf(1)), true
	}
	if c, ok := colors.FromName(strings.ToLower(name)); ok {
		return operand.IntValue(int32(colors.AsARGB(c))), true
	}
	return operand.Value{}, false
}

// callMath calls a function of the Math namespace on numeric arguments.
func (e *Engine) callMath(name string, args []operand.Value, pos int) (operand.Value, bool, error) {
	mf, ok := mathFuncs[name]
	if !ok {
		return operand.Value{}, false, nil
	}
	if (mf.args >= 0 && len(args) != mf.args) || (mf.args < 0 && len(args) == 0) {
		return operand.Value{}, true, e.errorf(ErrErrorInFunctionParameters, pos, name)
	}
	fs, err := e.scalars(args, pos)
	if err != nil {
		return operand.Value{}, true, err
	}
	return operand.ScalarValue(mf.fun(e, fs)), true, nil
}

// callGlobal calls one of the global built-in functions.
func (e *Engine) callGlobal(name string, args []operand.Value, pos int) (operand.Value, bool, error) {
	switch name {
	case "isNaN", "isFinite":
		if len(args) != 1 {
			return operand.Value{}, true, e.errorf(ErrErrorInFunctionParameters, pos, name)
		}
		fs, err := e.scalars(args, pos)
		if err != nil {
			return operand.Value{}, true, err
		}
		if name == "isNaN" {
			return operand.BoolValue(math32.IsNaN(fs[0])), true, nil
		}
		return operand.BoolValue(!math32.IsNaN(fs[0]) && !math32.IsInf(fs[0], 0)), true, nil
	case "rgb":
		if len(args) != 3 {
			return operand.Value{}, true, e.errorf(ErrErrorInFunctionParameters, pos, name)
		}
		fs, err := e.scalars(args, pos)
		if err != nil {
			return operand.Value{}, true, err
		}
		return operand.IntValue(int32(colors.RGB(fs[0], fs[1], fs[2]))), true, nil
	case "eval":
		if len(args) != 1 {
			return operand.Value{}, true, e.errorf(ErrErrorInFunctionParameters, pos, name)
		}
		s, err := operand.Convert(args[0], operand.String)
		if err != nil {
			return operand.Value{}, true, e.errorf(ErrTypeConversionFailed, pos, name)
		}
		e.depth++
		defer func() { e.depth-- }()
		if e.depth > maxEvalDepth {
			return operand.Value{}, true, e.errorf(ErrEvalTooDeep, pos, name)
		}
		v, err := e.Evaluate(s.Str, operand.NoType)
		return v, true, err
	}
	return operand.Value{}, false, nil
}

// maxEvalDepth limits the nesting of eval calls.
const maxEvalDepth = 16

func (e *Engine) scalars(args []operand.Value, pos int) ([]float32, error) {
	fs := make([]float32, len(args))
	for i, a := range args {
		n, err := e.number(a, pos, ErrErrorInFunctionParameters)
		if err != nil {
			return nil, err
		}
		s, _ := operand.Convert(n, operand.Scalar)
		fs[i] = s.Scalar
	}
	return fs, nil
}
