// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	tdparse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

type tokenKinds int

const (
	tokEOF tokenKinds = iota
	tokNumber
	tokString
	tokIdent
	tokOp
)

type token struct {
	kind tokenKinds
	text string
	pos  int
}

// tokenize splits the expression into tokens using the ECMAScript lexer,
// dropping whitespace and comments. It always ends with a tokEOF token.
func tokenize(expr string) ([]token, error) {
	l := js.NewLexer(tdparse.NewInputString(expr))
	var toks []token
	pos := 0
	for {
		tt, data := l.Next()
		start := pos
		pos += len(data)
		switch {
		case tt == js.ErrorToken:
			if l.Err() == io.EOF {
				toks = append(toks, token{kind: tokEOF, pos: len(expr)})
				return toks, nil
			}
			code := ErrUnexpectedCharacter
			msg := l.Err().Error()
			if strings.Contains(msg, "unterminated string") {
				code = ErrUnterminatedString
			}
			return nil, &Error{Code: code, Pos: start, Expr: expr, Err: l.Err()}
		case tt == js.WhitespaceToken || tt == js.LineTerminatorToken || tt == js.CommentToken:
			continue
		case js.IsNumeric(tt):
			toks = append(toks, token{kind: tokNumber, text: string(data), pos: start})
		case tt == js.StringToken:
			s, ok := unquote(string(data))
			if !ok {
				return nil, &Error{Code: ErrUnterminatedString, Pos: start, Expr: expr}
			}
			toks = append(toks, token{kind: tokString, text: s, pos: start})
		case js.IsIdentifierName(tt):
			toks = append(toks, token{kind: tokIdent, text: string(data), pos: start})
		default:
			toks = append(toks, token{kind: tokOp, text: string(data), pos: start})
		}
	}
}

// unquote removes the quotes of a string literal and
// processes its escape sequences.
func unquote(s string) (string, bool) {
	if len(s) < 2 || s[len(s)-1] != s[0] {
		return "", false
	}
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x', 'u':
			n := 2
			if s[i] == 'u' {
				n = 4
			}
			if i+1+n > len(s) {
				return "", false
			}
			r, err := strconv.ParseUint(s[i+1:i+1+n], 16, 32)
			if err != nil {
				return "", false
			}
			var buf [utf8.UTFMax]byte
			b.Write(buf[:utf8.EncodeRune(buf[:], rune(r))])
			i += n
		case '\n':
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), true
}
