// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import "fmt"

// ErrorCodes are the diagnostics an expression can fail with.
type ErrorCodes string

const (
	ErrArrayIndexOutOfBounds       ErrorCodes = "array index out of bounds"
	ErrCouldNotFindReferenceID     ErrorCodes = "could not find reference id"
	ErrDotOperatorExpectsObject    ErrorCodes = "dot operator expects object"
	ErrErrorInFunctionParameters   ErrorCodes = "error in function parameters"
	ErrExpectedArray               ErrorCodes = "expected array"
	ErrExpectedBooleanExpression   ErrorCodes = "expected boolean expression"
	ErrExpectedFieldName           ErrorCodes = "expected field name"
	ErrExpectedIntForCondition     ErrorCodes = "expected int for condition operator"
	ErrExpectedNumber              ErrorCodes = "expected number"
	ErrExpectedNumberForArrayIndex ErrorCodes = "expected number for array index"
	ErrExpectedOperator            ErrorCodes = "expected operator"
	ErrExpectedToken               ErrorCodes = "expected token"
	ErrEvalTooDeep                 ErrorCodes = "eval nested too deeply"
	ErrExpectedValue               ErrorCodes = "expected value"
	ErrHandleMemberFailed          ErrorCodes = "handle member failed"
	ErrHandleMemberFunctionFailed  ErrorCodes = "handle member function failed"
	ErrHandleUnboxFailed           ErrorCodes = "handle unbox failed"
	ErrMismatchedArrayBrace        ErrorCodes = "mismatched array brace"
	ErrMismatchedBrackets          ErrorCodes = "mismatched brackets"
	ErrNoFunctionHandlerFound      ErrorCodes = "no function handler found"
	ErrPrematureEnd                ErrorCodes = "premature end"
	ErrTooManyParameters           ErrorCodes = "too many parameters"
	ErrTypeConversionFailed        ErrorCodes = "type conversion failed"
	ErrUnterminatedString          ErrorCodes = "unterminated string"
	ErrUnexpectedCharacter         ErrorCodes = "unexpected character"
)

// Error is an expression error with its position in the expression text.
type Error struct {

	// Code is the kind of error.
	Code ErrorCodes

	// Pos is the byte offset of the error in Expr.
	Pos int

	// Expr is the expression text.
	Expr string

	// Name is the identifier or member the error is about, if any.
	Name string

	// Err is an underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("script: %s at %d in %q", e.Code, e.Pos, e.Expr)
	if e.Name != "" {
		s += ": " + e.Name
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code,
// so errors.Is(err, &script.Error{Code: ...}) matches by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Pos == 0 && t.Expr == ""
}
