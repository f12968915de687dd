// Copyright Trident Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package lexer implements Trident's iterative, error-recovering lexer
// (spec.md §4.1).  It never panics: malformed input is recorded in the
// shared diagnostic collector and lexing continues.
package lexer

import (
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/target"
	"github.com/trident-lang/trident/pkg/token"
)

// maxIntDigits bounds decimal integer literals before the "IntegerOutOfRange"
// diagnostic fires; shorter literals are additionally checked to be below
// the field prime.
const maxIntDigits = 100

// Lexer tokenizes one source file, single-pass and iterative (no recursion,
// so lexing time and stack usage are linear in input size regardless of
// nesting — spec.md §8 "the lexer terminates without stack growth
// proportional to input size").
type Lexer struct {
	file   *source.File
	runes  []rune
	pos    int
	diags  *source.Collector
	tokens []token.Token
}

// New constructs a Lexer over a source file, recording diagnostics into
// diags as it scans.
func New(file *source.File, diags *source.Collector) *Lexer {
	return &Lexer{file: file, runes: file.Contents(), diags: diags}
}

// Lex tokenizes the entire file and returns the resulting token sequence.
// An empty file yields zero tokens (spec.md §8 boundary behavior).
func Lex(file *source.File, diags *source.Collector) []token.Token {
	l := New(file, diags)
	l.run()

	log.WithFields(log.Fields{"file": file.Name(), "tokens": len(l.tokens)}).Debug("lexer: complete")

	return l.tokens
}

func (l *Lexer) run() {
	for l.pos < len(l.runes) {
		l.skipTrivia()

		if l.pos >= len(l.runes) {
			break
		}

		l.scanOne()
	}
}

func (l *Lexer) skipTrivia() {
	for l.pos < len(l.runes) {
		r := l.runes[l.pos]

		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.pos++
		case r == '/' && l.peekAt(1) == '/':
			for l.pos < len(l.runes) && l.runes[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.runes) {
		return 0
	}

	return l.runes[l.pos+offset]
}

func (l *Lexer) emit(kind token.Kind, start, end int, text string) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Span: l.file.Span(start, end), Text: text})
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) scanOne() {
	start := l.pos
	r := l.runes[l.pos]

	switch {
	case r == '#':
		l.pos++
		l.emit(token.Hash, start, l.pos, "#")
	case isIdentStart(r):
		l.scanIdent(start)
	case isDigit(r):
		l.scanInt(start)
	default:
		l.scanPunct(start)
	}
}

func (l *Lexer) scanIdent(start int) {
	for l.pos < len(l.runes) && isIdentCont(l.runes[l.pos]) {
		l.pos++
	}

	text := string(l.runes[start:l.pos])

	if kw, ok := token.Keywords[text]; ok {
		l.emit(kw, start, l.pos, text)
		return
	}

	l.emit(token.Ident, start, l.pos, text)
}

func (l *Lexer) scanInt(start int) {
	for l.pos < len(l.runes) && isDigit(l.runes[l.pos]) {
		l.pos++
	}

	text := string(l.runes[start:l.pos])

	n, _ := new(big.Int).SetString(text, 10)

	if len(text) > maxIntDigits || n.Cmp(target.Prime()) >= 0 {
		l.diags.ErrorWithHelp("IntegerOutOfRange",
			"integer literal does not fit the target field prime",
			"split the computation or use a smaller constant",
			l.file.Span(start, l.pos))
	}

	l.emit(token.IntLiteral, start, l.pos, text)
}

// multiChar lists multi-character punctuation tokens in longest-match-first
// order, per the grammar's multi-character tokens ("/%", "*.", "->", "=>",
// "..", "::", plus the forbidden "!=", "<=", ">=", "&&", "||").
var multiChar = []struct {
	text string
	kind token.Kind
}{
	{"/%", token.SlashPct},
	{"*.", token.StarDot},
	{"->", token.Arrow},
	{"=>", token.FatArrow},
	{"==", token.EqEq},
	{"..", token.DotDot},
	{"::", token.ColonColon},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"&&", token.AmpAmp},
	{"||", token.PipePipe},
}

var singleChar = map[rune]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	',': token.Comma,
	':': token.Colon,
	';': token.Semi,
	'.': token.Dot,
	'=': token.Eq,
	'+': token.Plus,
	'*': token.Star,
	'&': token.Amp,
	'^': token.Caret,
	'<': token.Lt,
	'-': token.Minus,
	'/': token.Slash,
	'>': token.Gt,
	'!': token.Bang,
}

func (l *Lexer) scanPunct(start int) {
	rest := l.runes[l.pos:]

	for _, m := range multiChar {
		n := len(m.text)
		if len(rest) >= n && string(rest[:n]) == m.text {
			l.pos += n
			l.reportIfForbidden(m.kind, start, l.pos, m.text)
			l.emit(m.kind, start, l.pos, m.text)

			return
		}
	}

	r := l.runes[l.pos]
	if kind, ok := singleChar[r]; ok {
		l.pos++
		l.reportIfForbidden(kind, start, l.pos, string(r))
		l.emit(kind, start, l.pos, string(r))

		return
	}

	// UnexpectedCharacter: record and skip one rune to keep scanning.
	l.diags.Error("UnexpectedCharacter", "unexpected character '"+string(r)+"'", l.file.Span(start, l.pos+1))
	l.pos++
}

// forbiddenKinds is the set of operator kinds the lexer recognizes but that
// never parse as valid operators (spec.md §4.1).  A '>' that closes a
// generic list is not reported.
var forbiddenKinds = map[token.Kind]string{
	token.Minus:    "-",
	token.Slash:    "/",
	token.BangEq:   "!=",
	token.Gt:       ">",
	token.LtEq:     "<=",
	token.GtEq:     ">=",
	token.AmpAmp:   "&&",
	token.PipePipe: "||",
	token.Bang:     "!",
}

func (l *Lexer) reportIfForbidden(kind token.Kind, start, end int, text string) {
	if _, ok := forbiddenKinds[kind]; !ok {
		return
	}

	// A '>' closing `fn name<...` or `::<...` is the generic list closer.
	if kind == token.Gt {
		i := len(l.tokens) - 1
		for i >= 0 && (l.tokens[i].Kind == token.Ident || l.tokens[i].Kind == token.IntLiteral ||
			l.tokens[i].Kind == token.Comma || l.tokens[i].Kind == token.Plus || l.tokens[i].Kind == token.Star) {
			i--
		}

		if i >= 1 && l.tokens[i].Kind == token.Lt && (l.tokens[i-1].Kind == token.ColonColon ||
			(i >= 2 && l.tokens[i-1].Kind == token.Ident && l.tokens[i-2].Kind == token.KwFn)) {
			return
		}
	}

	help := token.ForbiddenSuggestions[text]
	l.diags.ErrorWithHelp("ForbiddenOperator", "forbidden operator '"+text+"'", help, l.file.Span(start, end))
}
