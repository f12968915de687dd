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
package parser

import (
	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/token"
)

// Operator precedence, loosest to tightest: equality/comparison, bitwise,
// additive, multiplicative.  The grammar in spec.md §6 lists `binop` as a
// single flat production; this table is the parser's disambiguation,
// chosen to match ordinary arithmetic expectations.
var precedence = map[token.Kind]int{
	token.EqEq:     1,
	token.Lt:       1,
	token.Amp:      2,
	token.Caret:    2,
	token.Plus:     3,
	token.Star:     4,
	token.StarDot:  4,
	token.SlashPct: 4,
}

var opText = map[token.Kind]string{
	token.EqEq:     "==",
	token.Lt:       "<",
	token.Amp:      "&",
	token.Caret:    "^",
	token.Plus:     "+",
	token.Star:     "*",
	token.StarDot:  "*.",
	token.SlashPct: "/%",
}

func (p *Parser) parseExpr() ast.Expr {
	if !p.enter() {
		return ast.Literal{SpanVal: p.cur().Span}
	}
	defer p.leave()

	return p.parseBinExpr(0)
}

func (p *Parser) parseBinExpr(minPrec int) ast.Expr {
	lhs := p.parsePostfix()

	for {
		prec, ok := precedence[p.peekKind()]
		if !ok || prec < minPrec {
			return lhs
		}

		opKind := p.advance().Kind
		rhs := p.parseBinExpr(prec + 1)
		lhs = ast.BinOp{SpanVal: span(lhs.Span(), rhs.Span()), Op: opText[opKind], Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()

	for {
		switch p.peekKind() {
		case token.Dot:
			p.advance()

			fieldSpan := p.cur().Span
			field := p.identText()
			e = ast.FieldAccess{SpanVal: span(e.Span(), fieldSpan), Base: e, Field: field}
		case token.LBracket:
			p.advance()

			idx := p.parseExpr()
			end := p.expect(token.RBracket, "']'").Span
			e = ast.Index{SpanVal: span(e.Span(), end), Base: e, Index: idx}
		default:
			return e
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	start := p.cur().Span

	switch p.peekKind() {
	case token.IntLiteral:
		t := p.advance()
		return ast.Literal{SpanVal: start, Digits: t.Text}
	case token.KwTrue:
		p.advance()
		return ast.Literal{SpanVal: start, IsBool: true, Value: true}
	case token.KwFalse:
		p.advance()
		return ast.Literal{SpanVal: start, IsBool: true, Value: false}
	case token.LParen:
		return p.parseParenOrTuple(start)
	case token.LBracket:
		return p.parseArrayInit(start)
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwMatch:
		return p.parseMatchExpr()
	case token.Ident:
		return p.parsePathExprOrCallOrStructInit()
	default:
		p.diags.Error("UnexpectedToken", "expected an expression", p.cur().Span)
		p.advance()

		return ast.Literal{SpanVal: start}
	}
}

func (p *Parser) parseParenOrTuple(start source.Span) ast.Expr {
	p.advance() // '('

	if p.at(token.RParen) {
		end := p.advance().Span
		return ast.TupleExpr{SpanVal: span(start, end)}
	}

	first := p.parseExpr()

	if p.at(token.Comma) {
		elems := []ast.Expr{first}

		for p.at(token.Comma) {
			p.advance()

			if p.at(token.RParen) {
				break
			}

			elems = append(elems, p.parseExpr())
		}

		end := p.expect(token.RParen, "')'").Span

		return ast.TupleExpr{SpanVal: span(start, end), Elements: elems}
	}

	p.expect(token.RParen, "')'")

	return first
}

func (p *Parser) parseArrayInit(start source.Span) ast.Expr {
	p.advance() // '['

	var elems []ast.Expr

	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elems = append(elems, p.parseExpr())

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RBracket, "']'").Span

	return ast.ArrayInit{SpanVal: span(start, end), Elements: elems}
}

func (p *Parser) parseIf() ast.Expr {
	start := p.advance().Span // 'if'
	cond := p.parseExpr()
	then := p.parseBlock()

	var elseBlock *ast.Block

	end := then.Span()

	if p.at(token.KwElse) {
		p.advance()

		if p.at(token.KwIf) {
			nested := p.parseIf()
			wrapped := ast.Block{SpanVal: nested.Span(), Tail: nested}
			elseBlock = &wrapped
		} else {
			b := p.parseBlock()
			elseBlock = &b
		}

		end = elseBlock.Span()
	}

	return ast.If{SpanVal: span(start, end), Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.advance().Span // 'match'
	scrutinee := p.parseExpr()
	p.expect(token.LBrace, "'{'")

	var arms []ast.MatchArm

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		arms = append(arms, p.parseMatchArm())

		if p.at(token.Comma) {
			p.advance()
		}
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.MatchExpr{SpanVal: span(start, end), Scrutinee: scrutinee, Arms: arms}
}

func (p *Parser) parseMatchArm() ast.MatchArm {
	start := p.cur().Span
	pat := p.parsePattern()
	p.expect(token.FatArrow, "'=>'")
	body := p.parseBlock()

	return ast.MatchArm{SpanVal: span(start, body.Span()), Pattern: pat, Body: body}
}

func (p *Parser) parsePattern() ast.Pattern {
	start := p.cur().Span

	switch p.peekKind() {
	case token.Underscore:
		p.advance()
		return ast.WildcardPattern{SpanVal: start}
	case token.IntLiteral, token.KwTrue, token.KwFalse:
		lit := p.parsePrimary().(ast.Literal)
		return ast.LiteralPattern{SpanVal: start, Lit: lit}
	case token.Ident:
		path := []string{p.advance().Text}
		for p.at(token.Dot) {
			p.advance()

			path = append(path, p.identText())
		}

		if p.at(token.LBrace) {
			return p.parseStructPattern(start, path)
		}

		return ast.BindPattern{SpanVal: start, Name: path[len(path)-1]}
	default:
		p.diags.Error("UnexpectedToken", "expected a pattern", p.cur().Span)
		p.advance()

		return ast.WildcardPattern{SpanVal: start}
	}
}

func (p *Parser) parseStructPattern(start source.Span, path []string) ast.Pattern {
	p.advance() // '{'

	var fields []ast.FieldPattern

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fstart := p.cur().Span

		if p.at(token.Underscore) {
			p.advance()

			fields = append(fields, ast.FieldPattern{SpanVal: fstart, Name: "_"})
		} else {
			name := p.identText()

			if p.at(token.Colon) {
				p.advance()

				sub := p.parsePattern()
				fields = append(fields, ast.FieldPattern{SpanVal: span(fstart, sub.Span()), Name: name, Pattern: sub})
			} else {
				fields = append(fields, ast.FieldPattern{SpanVal: fstart, Name: name})
			}
		}

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.StructPattern{SpanVal: span(start, end), Path: path, Fields: fields}
}

func (p *Parser) parsePathExprOrCallOrStructInit() ast.Expr {
	start := p.cur().Span
	pathEnd := start
	path := []string{p.advance().Text}

	for p.at(token.Dot) {
		p.advance()

		pathEnd = p.cur().Span
		path = append(path, p.identText())
	}

	switch p.peekKind() {
	case token.LParen:
		return p.parseCallArgs(start, path, nil)
	case token.ColonColon:
		p.advance()
		p.expect(token.Lt, "'<' generic argument list")

		var gargs []ast.SizeExpr
		gargs = append(gargs, p.parseSizeExpr())

		for p.at(token.Comma) {
			p.advance()

			gargs = append(gargs, p.parseSizeExpr())
		}

		p.expectGt()

		return p.parseCallArgs(start, path, gargs)
	case token.LBrace:
		// Only `Path { name: ...` is a struct initializer; any other '{'
		// opens the block that follows a `for`/`if`/`match` head.
		if p.pos+2 < len(p.toks) && p.toks[p.pos+1].Kind == token.Ident && p.toks[p.pos+2].Kind == token.Colon {
			return p.parseStructInit(start, path)
		}

		return ast.Variable{SpanVal: span(start, pathEnd), Path: path}
	default:
		return ast.Variable{SpanVal: span(start, pathEnd), Path: path}
	}
}

func (p *Parser) parseCallArgs(start source.Span, path []string, gargs []ast.SizeExpr) ast.Expr {
	p.advance() // '('

	var args []ast.Expr

	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.parseExpr())

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RParen, "')'").Span

	return ast.Call{SpanVal: span(start, end), Path: path, GenericArgs: gargs, Args: args}
}

func (p *Parser) parseStructInit(start source.Span, path []string) ast.Expr {
	p.advance() // '{'

	var fields []ast.FieldInit

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fname := p.identText()
		p.expect(token.Colon, "':'")
		fval := p.parseExpr()
		fields = append(fields, ast.FieldInit{Name: fname, Value: fval})

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.StructInit{SpanVal: span(start, end), Path: path, Fields: fields}
}
