// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"cogentcore.org/animator/operand"
)

// node is a parsed expression node.
type node interface {
	position() int
}

type (
	literal struct {
		pos int
		val operand.Value
	}
	ident struct {
		pos  int
		name string
	}
	unary struct {
		pos int
		op  string
		x   node
	}
	binary struct {
		pos  int
		op   string
		x, y node
	}
	conditional struct {
		pos           int
		cond, yes, no node
	}
	member struct {
		pos  int
		x    node
		name string
	}
	index struct {
		pos      int
		x, index node
	}
	call struct {
		pos  int
		fn   node
		args []node
	}
	arrayLit struct {
		pos   int
		elems []node
	}
)

func (n *literal) position() int { return n.pos }
func (n *ident) position() int { return n.pos }
func (n *unary) position() int { return n.pos }
func (n *binary) position() int { return n.pos }
func (n *conditional) position() int { return n.pos }
func (n *member) position() int { return n.pos }
func (n *index) position() int { return n.pos }
func (n *call) position() int { return n.pos }
func (n *arrayLit) position() int { return n.pos }

// precedence gives the binding power of the binary operators;
// higher binds tighter.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6,
	"!=": 6,
	"<":  7,
	"<=": 7,
	">":  7,
	">=": 7,
	"<<": 8,
	">>": 8,
	"+":  9,
	"-":  9,
	"*":  10,
	"/":  10,
	"%":  10,
}

// maxArgs is the most arguments a function call can take.
const maxArgs = 16

type parser struct {
	expr string
	toks []token
	cur  int
}

// parse parses a complete expression. A top level comma separated
// list parses as an array literal.
func parse(expr string) (node, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{expr: expr, toks: toks}
	if p.peek().kind == tokEOF {
		return nil, p.errorf(ErrPrematureEnd, p.peek().pos)
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.isOp(",") {
		list := &arrayLit{pos: first.position(), elems: []node{first}}
		for p.isOp(",") {
			p.next()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			list.elems = append(list.elems, e)
		}
		first = list
	}
	if t := p.peek(); t.kind != tokEOF {
		if t.text == ")" {
			return nil, p.errorf(ErrMismatchedBrackets, t.pos)
		}
		if t.text == "]" {
			return nil, p.errorf(ErrMismatchedArrayBrace, t.pos)
		}
		return nil, p.errorf(ErrExpectedOperator, t.pos)
	}
	return first, nil
}

func (p *parser) errorf(code ErrorCodes, pos int) *Error {
	return &Error{Code: code, Pos: pos, Expr: p.expr}
}

func (p *parser) peek() token {
	return p.toks[p.cur]
}

func (p *parser) next() token {
	t := p.toks[p.cur]
	if t.kind != tokEOF {
		p.cur++
	}
	return t
}

func (p *parser) isOp(op string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == op
}

func (p *parser) expect(op string, code ErrorCodes) error {
	if !p.isOp(op) {
		t := p.peek()
		if t.kind == tokEOF {
			return p.errorf(ErrPrematureEnd, t.pos)
		}
		return p.errorf(code, t.pos)
	}
	p.next()
	return nil
}

// parseExpr parses a conditional expression, which has the lowest
// precedence and associates to the right.
func (p *parser) parseExpr() (node, error) {
	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.isOp("?") {
		return cond, nil
	}
	q := p.next()
	yes, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":", ErrExpectedToken); err != nil {
		return nil, err
	}
	no, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &conditional{pos: q.pos, cond: cond, yes: yes, no: no}, nil
}

func (p *parser) parseBinary(minPrec int) (node, error) {
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp {
			return x, nil
		}
		prec, ok := precedence[t.text]
		if !ok || prec < minPrec {
			return x, nil
		}
		p.next()
		y, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		x = &binary{pos: t.pos, op: t.text, x: x, y: y}
	}
}

func (p *parser) parseUnary() (node, error) {
	t := p.peek()
	if t.kind == tokOp {
		switch t.text {
		case "-", "+", "!", "~":
			p.next()
			x, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &unary{pos: t.pos, op: t.text, x: x}, nil
		}
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (node, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp {
			return x, nil
		}
		switch t.text {
		case ".":
			p.next()
			nt := p.next()
			if nt.kind != tokIdent {
				if nt.kind == tokEOF {
					return nil, p.errorf(ErrPrematureEnd, nt.pos)
				}
				return nil, p.errorf(ErrExpectedFieldName, nt.pos)
			}
			x = &member{pos: nt.pos, x: x, name: nt.text}
		case "[":
			p.next()
			i, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect("]", ErrMismatchedArrayBrace); err != nil {
				return nil, err
			}
			x = &index{pos: t.pos, x: x, index: i}
		case "(":
			p.next()
			args, err := p.parseList(")", ErrMismatchedBrackets)
			if err != nil {
				return nil, err
			}
			if len(args) > maxArgs {
				return nil, p.errorf(ErrTooManyParameters, t.pos)
			}
			x = &call{pos: x.position(), fn: x, args: args}
		default:
			return x, nil
		}
	}
}

// parseList parses comma separated expressions up to and
// including the closing token.
func (p *parser) parseList(closing string, code ErrorCodes) ([]node, error) {
	var list []node
	if p.isOp(closing) {
		p.next()
		return list, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if p.isOp(",") {
			p.next()
			continue
		}
		return list, p.expect(closing, code)
	}
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokEOF:
		return nil, p.errorf(ErrPrematureEnd, t.pos)
	case tokNumber:
		v, ok := operand.ParseNumber(t.text)
		if !ok {
			return nil, p.errorf(ErrExpectedNumber, t.pos)
		}
		return &literal{pos: t.pos, val: v}, nil
	case tokString:
		return &literal{pos: t.pos, val: operand.StringValue(t.text)}, nil
	case tokIdent:
		switch t.text {
		case "true":
			return &literal{pos: t.pos, val: operand.IntValue(1)}, nil
		case "false":
			return &literal{pos: t.pos, val: operand.IntValue(0)}, nil
		}
		return &ident{pos: t.pos, name: t.text}, nil
	}
	switch t.text {
	case "(":
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")", ErrMismatchedBrackets); err != nil {
			return nil, err
		}
		return x, nil
	case "[":
		elems, err := p.parseList("]", ErrMismatchedArrayBrace)
		if err != nil {
			return nil, err
		}
		return &arrayLit{pos: t.pos, elems: elems}, nil
	case ")":
		return nil, p.errorf(ErrMismatchedBrackets, t.pos)
	case "]":
		return nil, p.errorf(ErrMismatchedArrayBrace, t.pos)
	}
	return nil, p.errorf(ErrExpectedValue, t.pos)
}
