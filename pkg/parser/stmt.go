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
	"strconv"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/token"
)

func (p *Parser) parseBlock() ast.Block {
	start := p.expect(token.LBrace, "'{'").Span

	if !p.enter() {
		return ast.Block{SpanVal: start}
	}
	defer p.leave()

	var stmts []ast.Stmt

	var tail ast.Expr

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.startsStmtOnly() {
			stmts = append(stmts, p.parseStmt())
			continue
		}
		// Could be an assignment, a tail expression, or an expression
		// statement followed by more statements; look for '=' or a
		// trailing ';'.
		e := p.parseExpr()

		if p.at(token.Eq) {
			place, ok := e.(ast.Place)
			if !ok {
				p.diags.Error("UnexpectedToken", "left-hand side of assignment is not a place", e.Span())
			}

			p.advance()

			value := p.parseExpr()
			end := value.Span()

			if p.at(token.Semi) {
				end = p.advance().Span
			}

			stmts = append(stmts, ast.Assign{SpanVal: span(e.Span(), end), PlaceV: place, Value: value})

			continue
		}

		if p.at(token.Semi) {
			p.advance()

			stmts = append(stmts, ast.ExprStmt{SpanVal: e.Span(), Value: e})

			continue
		}

		tail = e

		break
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.Block{SpanVal: span(start, end), Stmts: stmts, Tail: tail}
}

// startsStmtOnly reports whether the current token can only begin a
// statement-only construct (one with no expression-value reading), so the
// block parser can dispatch to parseStmt without first attempting an
// expression parse.
func (p *Parser) startsStmtOnly() bool {
	switch p.peekKind() {
	case token.KwLet, token.KwFor, token.KwEmit, token.KwSeal,
		token.KwAssert, token.KwAssertEq, token.KwAssertDigest,
		token.KwAsm, token.KwReturn:
		return true
	}

	return false
}

func (p *Parser) parseStmt() ast.Stmt {
	if !p.enter() {
		return ast.ExprStmt{SpanVal: p.cur().Span, Value: ast.Literal{SpanVal: p.cur().Span}}
	}
	defer p.leave()

	switch p.peekKind() {
	case token.KwLet:
		return p.parseLet()
	case token.KwFor:
		return p.parseFor()
	case token.KwEmit:
		return p.parseEmit(false)
	case token.KwSeal:
		return p.parseEmit(true)
	case token.KwAssert, token.KwAssertEq, token.KwAssertDigest:
		return p.parseAssert()
	case token.KwAsm:
		return p.parseInlineAsm()
	case token.KwReturn:
		return p.parseReturn()
	default:
		return p.parseAssignOrExprStmt()
	}
}

func (p *Parser) parseLet() ast.Stmt {
	start := p.advance().Span // 'let'

	mutable := false
	if p.at(token.KwMut) {
		p.advance()

		mutable = true
	}

	name := p.identText()

	var typ ast.Type
	if p.at(token.Colon) {
		p.advance()

		typ = p.parseType()
	}

	p.expect(token.Eq, "'='")
	value := p.parseExpr()
	end := value.Span()

	if p.at(token.Semi) {
		end = p.advance().Span
	}

	return ast.Let{SpanVal: span(start, end), Mutable: mutable, Name: name, Type: typ, Value: value}
}

func (p *Parser) parseAssignOrExprStmt() ast.Stmt {
	start := p.cur().Span
	e := p.parseExpr()

	if p.at(token.Eq) {
		place, ok := e.(ast.Place)
		if !ok {
			p.diags.Error("UnexpectedToken", "left-hand side of assignment is not a place", start)
		}

		p.advance()

		value := p.parseExpr()
		end := value.Span()

		if p.at(token.Semi) {
			end = p.advance().Span
		}

		return ast.Assign{SpanVal: span(start, end), PlaceV: place, Value: value}
	}

	end := e.Span()
	if p.at(token.Semi) {
		end = p.advance().Span
	}

	return ast.ExprStmt{SpanVal: span(start, end), Value: e}
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.advance().Span // 'for'
	varName := p.identText()
	p.expect(token.KwIn, "'in'")
	from := p.parseExpr()
	p.expect(token.DotDot, "'..'")
	to := p.parseExpr()

	var bound *uint64

	if p.at(token.KwBounded) {
		p.advance()

		t := p.expect(token.IntLiteral, "integer bound")

		v, err := strconv.ParseUint(t.Text, 10, 64)
		if err == nil {
			bound = &v
		}
	}

	body := p.parseBlock()

	return ast.For{SpanVal: span(start, body.Span()), Var: varName, Start: from, End: to, Bound: bound, Body: body}
}

func (p *Parser) parseEmit(sealed bool) ast.Stmt {
	start := p.advance().Span // 'emit'/'seal'
	path := []string{p.identText()}

	for p.at(token.Dot) {
		p.advance()

		path = append(path, p.identText())
	}

	p.expect(token.LBrace, "'{'")

	var fields []ast.EmitField

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fname := p.identText()
		p.expect(token.Colon, "':'")
		fval := p.parseExpr()
		fields = append(fields, ast.EmitField{Name: fname, Value: fval})

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	end := p.expect(token.RBrace, "'}'").Span

	return ast.Emit{SpanVal: span(start, end), Event: path, Fields: fields, Sealed: sealed}
}

func (p *Parser) parseAssert() ast.Stmt {
	start := p.cur().Span

	var kind ast.AssertKind

	switch p.peekKind() {
	case token.KwAssert:
		kind = ast.AssertPlain
	case token.KwAssertEq:
		kind = ast.AssertEq
	case token.KwAssertDigest:
		kind = ast.AssertDigest
	}

	p.advance()
	p.expect(token.LParen, "'('")

	var args []ast.Expr
	args = append(args, p.parseExpr())

	for p.at(token.Comma) {
		p.advance()

		args = append(args, p.parseExpr())
	}

	end := p.expect(token.RParen, "')'").Span

	if p.at(token.Semi) {
		end = p.advance().Span
	}

	return ast.Assert{SpanVal: span(start, end), Kind: kind, Args: args}
}

func (p *Parser) parseInlineAsm() ast.Stmt {
	start := p.advance().Span // 'asm'

	targetTag := ""
	effect := 0
	hasEffect := false

	if p.at(token.LParen) {
		p.advance()

		if p.at(token.Ident) {
			targetTag = p.advance().Text
		}

		if p.at(token.Comma) {
			p.advance()

			sign := 1
			if p.at(token.Plus) {
				p.advance()
			} else if p.at(token.Minus) {
				// The lexer reports '-' as a forbidden operator diagnostic,
				// but the inline-asm effect grammar is the one place a
				// literal sign is meaningful; consume it defensively so
				// parsing does not cascade further errors.
				p.advance()

				sign = -1
			}

			t := p.expect(token.IntLiteral, "stack effect magnitude")

			v, err := strconv.Atoi(t.Text)
			if err == nil {
				effect = sign * v
				hasEffect = true
			}
		}

		p.expect(token.RParen, "')'")
	}

	bodyStart := p.expect(token.LBrace, "'{'")
	rawStart := p.cur().Span.Start
	depth := 1
	rawEnd := rawStart

	for depth > 0 && !p.at(token.EOF) {
		switch p.peekKind() {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				rawEnd = p.cur().Span.Start
			}
		}

		if depth > 0 {
			rawEnd = p.cur().Span.End
		}

		p.advance()
	}

	body := ""
	if rawEnd > rawStart {
		body = string(p.file.Contents()[rawStart:rawEnd])
	}

	end := source.NewSpan(bodyStart.Span.File, rawEnd, rawEnd, bodyStart.Span.Line, bodyStart.Span.Column)

	return ast.InlineAsm{SpanVal: span(start, end), TargetTag: targetTag, StackEffect: effect, HasEffect: hasEffect, Body: body}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.advance().Span // 'return'

	var value ast.Expr
	if !p.at(token.Semi) && !p.at(token.RBrace) {
		value = p.parseExpr()
	}

	end := start
	if value != nil {
		end = value.Span()
	}

	if p.at(token.Semi) {
		end = p.advance().Span
	}

	return ast.Return{SpanVal: span(start, end), Value: value}
}
