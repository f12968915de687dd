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

// Package parser implements Trident's recursive-descent parser (spec.md
// §4.2).  It is best-effort: on a recoverable error it resynchronizes at
// the next statement or item boundary and keeps parsing, accumulating
// diagnostics rather than aborting on the first mistake.
package parser

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/token"
)

// DefaultMaxDepth is the default maximum nesting depth across all recursive
// productions (spec.md §4.2); exceeding it yields NestingDepthExceeded.
const DefaultMaxDepth = 256

// Parser holds the token stream and parsing state for one file.
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	diags    *source.Collector
	maxDepth int
	depth    int
}

// New constructs a Parser over a token stream produced by pkg/lexer.
func New(file *source.File, toks []token.Token, diags *source.Collector) *Parser {
	return &Parser{file: file, toks: toks, diags: diags, maxDepth: DefaultMaxDepth}
}

// WithMaxDepth overrides the configured maximum nesting depth.
func (p *Parser) WithMaxDepth(n int) *Parser {
	p.maxDepth = n
	return p
}

// Parse parses the full token stream into an ast.File.
func Parse(file *source.File, toks []token.Token, diags *source.Collector) ast.File {
	p := New(file, toks, diags)
	f := p.parseFile()

	log.WithFields(log.Fields{"file": file.Name(), "items": len(f.Items)}).Debug("parser: complete")

	return f
}

// ===================================================================
// Token stream helpers
// ===================================================================

func (p *Parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}

	return p.eofToken()
}

func (p *Parser) eofToken() token.Token {
	end := p.file.Len()
	return token.Token{Kind: token.EOF, Span: p.file.Span(end, end)}
}

func (p *Parser) peekKind() token.Kind { return p.cur().Kind }

func (p *Parser) at(k token.Kind) bool { return p.peekKind() == k }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}

	return t
}

func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.at(k) {
		return p.advance()
	}

	t := p.cur()
	p.diags.Error("UnexpectedToken", "expected "+what+" but found something else", t.Span)
	p.resyncToStmtOrItem()

	return t
}

func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.diags.Error("NestingDepthExceeded", "nesting depth exceeds the configured maximum", p.cur().Span)
		return false
	}

	return true
}

func (p *Parser) leave() { p.depth-- }

// resyncToStmtOrItem advances the token cursor until a plausible statement
// or item boundary, per spec.md §4.2/§7's resynchronization policy.
func (p *Parser) resyncToStmtOrItem() {
	for !p.at(token.EOF) {
		switch p.peekKind() {
		case token.Semi:
			p.advance()
			return
		case token.RBrace, token.KwFn, token.KwStruct, token.KwConst, token.KwEvent, token.KwPub, token.KwUse:
			return
		}

		p.advance()
	}
}

// ===================================================================
// File
// ===================================================================

func (p *Parser) parseFile() ast.File {
	start := p.cur().Span

	var kind ast.FileKind

	switch {
	case p.at(token.KwProgram):
		p.advance()

		kind = ast.ProgramFile
	case p.at(token.KwModule):
		p.advance()

		kind = ast.ModuleFile
	default:
		p.diags.Error("MissingDeclaration", "file must begin with 'program NAME' or 'module NAME'", p.cur().Span)
	}

	name := ""
	if p.at(token.Ident) {
		name = p.advance().Text
	} else {
		p.diags.Error("MissingDeclaration", "expected module/program name", p.cur().Span)
	}

	var uses []ast.Use
	for p.at(token.KwUse) {
		uses = append(uses, p.parseUse())
	}

	var items []ast.Item
	for !p.at(token.EOF) {
		if item, ok := p.parseItem(); ok {
			items = append(items, item)
		} else {
			p.resyncToStmtOrItem()
		}
	}

	end := p.cur().Span

	return ast.File{SpanVal: span(start, end), Kind: kind, Name: name, Uses: uses, Items: items}
}

func (p *Parser) parseUse() ast.Use {
	start := p.advance().Span // 'use'

	path := []string{p.identText()}
	for p.at(token.Dot) {
		p.advance()

		path = append(path, p.identText())
	}

	end := p.cur().Span

	return ast.Use{SpanVal: span(start, end), Path: path}
}

func (p *Parser) identText() string {
	if p.at(token.Ident) {
		return p.advance().Text
	}

	p.diags.Error("UnexpectedToken", "expected identifier", p.cur().Span)

	return ""
}

// ===================================================================
// Items
// ===================================================================

func (p *Parser) parseAttributes() []ast.Attribute {
	var attrs []ast.Attribute

	for p.at(token.Hash) {
		start := p.advance().Span // '#'
		p.expect(token.LBracket, "'['")

		name := p.identText()
		arg := ""

		if p.at(token.LParen) {
			p.advance()
			arg = p.identText()
			p.expect(token.RParen, "')'")
		}

		end := p.expect(token.RBracket, "']'").Span
		attrs = append(attrs, ast.Attribute{SpanVal: span(start, end), Name: name, Arg: arg})
	}

	return attrs
}

func (p *Parser) parseItem() (ast.Item, bool) {
	attrs := p.parseAttributes()
	start := p.cur().Span

	visibility := ast.Private
	if p.at(token.KwPub) {
		p.advance()

		visibility = ast.Public
	}

	switch p.peekKind() {
	case token.KwFn:
		return p.parseFunction(start, visibility, attrs), true
	case token.KwStruct:
		return p.parseStruct(start, visibility), true
	case token.KwConst:
		return p.parseConst(start, visibility), true
	case token.KwEvent:
		return p.parseEvent(start), true
	case token.KwSec, token.KwInput, token.KwOutput, token.KwRam:
		return p.parseIoDecl(start), true
	default:
		p.diags.Error("MissingDeclaration", "expected an item (fn, struct, const, event, I/O declaration)", p.cur().Span)
		return nil, false
	}
}

func (p *Parser) parseFunction(start source.Span, vis ast.Visibility, attrs []ast.Attribute) ast.Function {
	p.advance() // 'fn'
	name := p.identText()

	var generics []string
	if p.at(token.Lt) {
		p.advance()

		generics = append(generics, p.identText())
		for p.at(token.Comma) {
			p.advance()

			generics = append(generics, p.identText())
		}

		p.expectGt()
	}

	p.expect(token.LParen, "'('")

	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pstart := p.cur().Span
		pname := p.identText()
		p.expect(token.Colon, "':'")
		ptype := p.parseType()
		params = append(params, ast.Param{SpanVal: span(pstart, ptype.Span()), Name: pname, Type: ptype})

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	p.expect(token.RParen, "')'")

	var retType ast.Type
	if p.at(token.Arrow) {
		p.advance()

		retType = p.parseType()
	}

	body := p.parseBlock()

	return ast.Function{
		SpanVal:    span(start, body.Span()),
		Name:       name,
		Generics:   generics,
		Params:     params,
		ReturnType: retType,
		Body:       body,
		Visibility: vis,
		Attributes: attrs,
	}
}

// expectGt consumes a '>' closing a generic parameter list.  The lexer has
// no standalone '>' keyword token distinct from the forbidden Gt kind; a
// generic parameter list closer is the one legal use of that glyph.
func (p *Parser) expectGt() {
	if p.at(token.Gt) {
		p.advance()
		return
	}

	p.diags.Error("UnexpectedToken", "expected '>' to close generic parameter list", p.cur().Span)
}

func (p *Parser) parseStruct(start source.Span, vis ast.Visibility) ast.Struct {
	p.advance() // 'struct'
	name := p.identText()
	p.expect(token.LBrace, "'{'")

	var fields []ast.Field

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fstart := p.cur().Span
		fvis := ast.Private

		if p.at(token.KwPub) {
			p.advance()

			fvis = ast.Public
		}

		fname := p.identText()
		p.expect(token.Colon, "':'")
		ftype := p.parseType()
		fields = append(fields, ast.Field{SpanVal: span(fstart, ftype.Span()), Name: fname, Type: ftype, Visibility: fvis})

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.Struct{SpanVal: span(start, end), Name: name, Fields: fields, Visibility: vis}
}

func (p *Parser) parseConst(start source.Span, vis ast.Visibility) ast.Const {
	p.advance() // 'const'
	name := p.identText()
	p.expect(token.Colon, "':'")
	typ := p.parseType()
	p.expect(token.Eq, "'='")
	value := p.parseExpr()

	return ast.Const{SpanVal: span(start, value.Span()), Name: name, Type: typ, Value: value, Visibility: vis}
}

func (p *Parser) parseEvent(start source.Span) ast.Event {
	p.advance() // 'event'
	name := p.identText()
	p.expect(token.LBrace, "'{'")

	var fields []ast.Field

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fstart := p.cur().Span
		fname := p.identText()
		p.expect(token.Colon, "':'")
		ftype := p.parseType()
		fields = append(fields, ast.Field{SpanVal: span(fstart, ftype.Span()), Name: fname, Type: ftype})

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.Event{SpanVal: span(start, end), Name: name, Fields: fields}
}

func (p *Parser) parseIoDecl(start source.Span) ast.IoDecl {
	secret := false
	if p.at(token.KwSec) {
		p.advance()

		secret = true
	}

	var kind ast.IoKind

	switch p.peekKind() {
	case token.KwInput:
		p.advance()

		kind = ast.IoPubInput
	case token.KwOutput:
		p.advance()

		kind = ast.IoPubOutput
	case token.KwRam:
		p.advance()

		kind = ast.IoPubRam
	default:
		p.diags.Error("UnexpectedToken", "expected 'input', 'output' or 'ram'", p.cur().Span)
	}

	if secret {
		// IoSec* constants are declared immediately after their IoPub*
		// counterparts in the same relative order, so offsetting by
		// IoSecInput maps Pub{Input,Output,Ram} -> Sec{Input,Output,Ram}.
		kind += ast.IoSecInput
	}

	p.expect(token.Colon, "':'")
	typ := p.parseType()

	return ast.IoDecl{SpanVal: span(start, typ.Span()), Kind: kind, Type: typ}
}

// ===================================================================
// Types
// ===================================================================

func (p *Parser) parseType() ast.Type {
	start := p.cur().Span

	switch p.peekKind() {
	case token.KwField:
		p.advance()
		return ast.FieldType{SpanVal: start}
	case token.KwBool:
		p.advance()
		return ast.BoolType{SpanVal: start}
	case token.KwU32:
		p.advance()
		return ast.U32Type{SpanVal: start}
	case token.KwDigest:
		p.advance()
		return ast.DigestType{SpanVal: start}
	case token.KwXField:
		p.advance()
		return ast.ExtFieldType{SpanVal: start}
	case token.LBracket:
		return p.parseArrayType(start)
	case token.LParen:
		return p.parseTupleType(start)
	case token.Ident:
		path := []string{p.advance().Text}
		for p.at(token.Dot) {
			p.advance()

			path = append(path, p.identText())
		}

		return ast.NamedType{SpanVal: span(start, p.toks[p.pos-1].Span), Path: path}
	default:
		p.diags.Error("UnexpectedToken", "expected a type", p.cur().Span)
		return ast.FieldType{SpanVal: start}
	}
}

func (p *Parser) parseArrayType(start source.Span) ast.Type {
	p.advance() // '['
	elem := p.parseType()
	p.expect(token.Semi, "';'")
	size := p.parseSizeExpr()
	end := p.expect(token.RBracket, "']'").Span

	return ast.ArrayType{SpanVal: span(start, end), Element: elem, Size: size}
}

func (p *Parser) parseTupleType(start source.Span) ast.Type {
	p.advance() // '('

	var elems []ast.Type
	for !p.at(token.RParen) && !p.at(token.EOF) {
		elems = append(elems, p.parseType())

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RParen, "')'").Span

	return ast.TupleType{SpanVal: span(start, end), Elements: elems}
}

// parseSizeExpr parses the symbolic size-expression grammar `size = INT |
// IDENT | size "+" size | size "*" size` with '*' binding tighter than '+'.
func (p *Parser) parseSizeExpr() ast.SizeExpr {
	return p.parseSizeAdd()
}

func (p *Parser) parseSizeAdd() ast.SizeExpr {
	lhs := p.parseSizeMul()

	for p.at(token.Plus) {
		start := lhs.Span()
		p.advance()

		rhs := p.parseSizeMul()
		lhs = ast.SizeBinOp{SpanVal: span(start, rhs.Span()), Op: "+", Lhs: lhs, Rhs: rhs}
	}

	return lhs
}

func (p *Parser) parseSizeMul() ast.SizeExpr {
	lhs := p.parseSizeAtom()

	for p.at(token.Star) {
		start := lhs.Span()
		p.advance()

		rhs := p.parseSizeAtom()
		lhs = ast.SizeBinOp{SpanVal: span(start, rhs.Span()), Op: "*", Lhs: lhs, Rhs: rhs}
	}

	return lhs
}

func (p *Parser) parseSizeAtom() ast.SizeExpr {
	start := p.cur().Span

	switch p.peekKind() {
	case token.IntLiteral:
		t := p.advance()

		v, err := strconv.ParseUint(t.Text, 10, 64)
		if err != nil {
			p.diags.Error("IntegerOutOfRange", "size expression literal out of range", t.Span)
		}

		return ast.SizeLiteral{SpanVal: start, Value: v}
	case token.Ident:
		t := p.advance()
		return ast.SizeParam{SpanVal: start, Name: t.Text}
	default:
		p.diags.Error("UnexpectedToken", "expected a size expression", p.cur().Span)
		return ast.SizeLiteral{SpanVal: start, Value: 0}
	}
}

// ===================================================================
// Shared helpers
// ===================================================================

func span(a, b source.Span) source.Span {
	start, end := a.Start, b.End
	if end < start {
		end = start
	}

	return source.NewSpan(a.File, start, end, a.Line, a.Column)
}
