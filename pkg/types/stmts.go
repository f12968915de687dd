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
package types

import (
	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/target"
)

// checkBlock type-checks every statement of b in its own lexical scope and
// returns the static type of its tail expression, or nil for a block with
// no tail (spec.md §4.5).
func (fc *fnContext) checkBlock(e *env, b ast.Block) ast.Type {
	c := fc.checker

	e.push()
	defer e.pop()

	returned := false

	for _, stmt := range b.Stmts {
		if returned {
			c.warnOrError("UnreachableCode", "unreachable code after return", stmt.Span())
		}

		fc.checkStmt(e, stmt)

		if _, ok := stmt.(ast.Return); ok {
			returned = true
		}
	}

	if b.Tail == nil {
		return nil
	}

	if returned {
		c.warnOrError("UnreachableCode", "unreachable code after return", b.Tail.Span())
	}

	return fc.exprType(e, b.Tail)
}

func (fc *fnContext) checkStmt(e *env, stmt ast.Stmt) {
	switch v := stmt.(type) {
	case ast.Let:
		fc.checkLet(e, v)
	case ast.Assign:
		fc.checkAssign(e, v)
	case ast.For:
		fc.checkFor(e, v)
	case ast.Match:
		fc.checkMatchStmt(e, v)
	case ast.Emit:
		fc.checkEmit(e, v)
	case ast.Assert:
		fc.checkAssert(e, v)
	case ast.InlineAsm:
		// Raw assembly body; the parser preserves it verbatim and the
		// checker does not interpret it (spec.md §4.2).  It is accepted
		// only on stack-architecture targets.
		if fc.checker.cfg.Architecture == target.RegisterArchitecture {
			fc.checker.diags.Error("AsmUnsupportedArchitecture",
				"inline assembly is only supported on stack-architecture targets", v.SpanVal)
		}
	case ast.Return:
		fc.checkReturn(e, v)
	case ast.ExprStmt:
		fc.exprType(e, v.Value)
	}
}

func (fc *fnContext) checkLet(e *env, v ast.Let) {
	c := fc.checker
	valType := fc.exprType(e, v.Value)

	bindType := v.Type
	if bindType == nil {
		bindType = valType
	} else if !sameType(valType, bindType) && !(isIntLiteral(v.Value) && sameType(bindType, ast.U32Type{})) {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(bindType), Got: typeName(valType)}, v.Value.Span()))
	}

	e.define(v.Name, binding{typ: bindType, mutable: v.Mutable})
}

// isIntLiteral reports whether e is an integer literal, which is accepted
// where a U32 is expected.
func isIntLiteral(e ast.Expr) bool {
	l, ok := e.(ast.Literal)
	return ok && !l.IsBool
}

func (fc *fnContext) checkAssign(e *env, v ast.Assign) {
	c := fc.checker

	placeType := fc.checkPlaceType(e, v.PlaceV)
	valType := fc.exprType(e, v.Value)

	if !sameType(placeType, valType) {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(placeType), Got: typeName(valType)}, v.Value.Span()))
	}

	name, ok := placeRootName(v.PlaceV)
	if !ok {
		return
	}

	b, ok := e.lookup(name)
	if !ok {
		return
	}

	if !b.mutable {
		c.diags.Add(diagFromErr(&ImmutableAssignment{Name: name}, v.SpanVal))
	}
}

// checkPlaceType infers the static type of an assignment target.
func (fc *fnContext) checkPlaceType(e *env, p ast.Place) ast.Type {
	switch v := p.(type) {
	case ast.Variable:
		return fc.variableType(e, v)
	case ast.FieldAccess:
		return fc.fieldAccessType(e, v)
	case ast.Index:
		return fc.indexType(e, v)
	default:
		return ast.FieldType{}
	}
}

// placeRootName walks through field accesses and indexing down to the
// local variable an assignment ultimately targets, so mutability is
// checked against that variable's binding.
func placeRootName(p ast.Place) (string, bool) {
	switch v := p.(type) {
	case ast.Variable:
		if len(v.Path) == 1 {
			return v.Path[0], true
		}

		return "", false
	case ast.FieldAccess:
		if pl, ok := v.Base.(ast.Place); ok {
			return placeRootName(pl)
		}

		return "", false
	case ast.Index:
		if pl, ok := v.Base.(ast.Place); ok {
			return placeRootName(pl)
		}

		return "", false
	default:
		return "", false
	}
}

func (fc *fnContext) checkFor(e *env, v ast.For) {
	c := fc.checker

	startType := fc.exprType(e, v.Start)
	if !sameType(startType, ast.U32Type{}) && !isIntLiteral(v.Start) {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "U32", Got: typeName(startType)}, v.Start.Span()))
	}

	endType := fc.exprType(e, v.End)
	if !sameType(endType, ast.U32Type{}) && !isIntLiteral(v.End) {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "U32", Got: typeName(endType)}, v.End.Span()))
	}

	if v.Bound == nil {
		_, startConst := c.evalConstExpr(fc.module, v.Start, map[string]bool{})
		_, endConst := c.evalConstExpr(fc.module, v.End, map[string]bool{})

		if !startConst || !endConst {
			c.diags.Add(diagFromErr(&MissingBoundAnnotation{}, v.SpanVal))
		}
	}

	e.push()
	e.define(v.Var, binding{typ: ast.U32Type{}, mutable: false})
	fc.checkBlock(e, v.Body)
	e.pop()
}

func (fc *fnContext) checkMatchStmt(e *env, v ast.Match) {
	c := fc.checker
	_ = fc.exprType(e, v.Scrutinee)

	if !hasCatchAllArm(v.Arms) {
		c.diags.Add(diagFromErr(&NonExhaustiveMatch{}, v.SpanVal))
	}

	for _, arm := range v.Arms {
		e.push()
		bindPatternVars(e, arm.Pattern, fc)
		fc.checkBlock(e, arm.Body)
		e.pop()
	}
}

func (fc *fnContext) checkEmit(e *env, v ast.Emit) {
	c := fc.checker

	name := v.Event[len(v.Event)-1]
	qualified := fc.module + "::" + name

	if len(v.Event) > 1 {
		qualified = joinPath(v.Event[:len(v.Event)-1]) + "::" + name
	}

	ev, ok := c.events[qualified]
	if !ok {
		ev, ok = c.events[fc.module+"::"+name]
	}

	if !ok {
		c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: joinPath(v.Event)}, v.SpanVal))

		for _, fi := range v.Fields {
			fc.exprType(e, fi.Value)
		}

		return
	}

	fieldTypes := map[string]ast.Type{}
	for _, f := range ev.Fields {
		fieldTypes[f.Name] = f.Type
	}

	for _, fi := range v.Fields {
		got := fc.exprType(e, fi.Value)

		want, ok := fieldTypes[fi.Name]
		if !ok {
			c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: ev.Name + "." + fi.Name}, fi.Value.Span()))
			continue
		}

		if !sameType(got, want) {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(want), Got: typeName(got)}, fi.Value.Span()))
		}
	}
}

func (fc *fnContext) checkAssert(e *env, v ast.Assert) {
	c := fc.checker

	switch v.Kind {
	case ast.AssertPlain:
		if len(v.Args) != 1 {
			c.diags.Add(diagFromErr(&WrongArity{Func: "assert", Expected: 1, Got: len(v.Args)}, v.SpanVal))
		}

		for _, a := range v.Args {
			t := fc.exprType(e, a)
			if !sameType(t, ast.BoolType{}) {
				c.diags.Add(diagFromErr(&TypeMismatch{Expected: "Bool", Got: typeName(t)}, a.Span()))
			}
		}

	case ast.AssertEq:
		if len(v.Args) != 2 {
			c.diags.Add(diagFromErr(&WrongArity{Func: "assert_eq", Expected: 2, Got: len(v.Args)}, v.SpanVal))
			return
		}

		lhs := fc.exprType(e, v.Args[0])
		rhs := fc.exprType(e, v.Args[1])

		if !sameType(lhs, rhs) {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(lhs), Got: typeName(rhs)}, v.SpanVal))
		}

	case ast.AssertDigest:
		if len(v.Args) != 2 {
			c.diags.Add(diagFromErr(&WrongArity{Func: "assert_digest", Expected: 2, Got: len(v.Args)}, v.SpanVal))
			return
		}

		for _, a := range v.Args {
			t := fc.exprType(e, a)
			if !sameType(t, ast.DigestType{}) {
				c.diags.Add(diagFromErr(&TypeMismatch{Expected: "Digest", Got: typeName(t)}, a.Span()))
			}
		}
	}
}

func (fc *fnContext) checkReturn(e *env, v ast.Return) {
	c := fc.checker

	var got ast.Type
	if v.Value != nil {
		got = fc.exprType(e, v.Value)
	}

	if fc.fn.ReturnType == nil {
		if got != nil {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: "nothing", Got: typeName(got)}, v.SpanVal))
		}

		return
	}

	if got == nil {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(fc.fn.ReturnType), Got: "nothing"}, v.SpanVal))
		return
	}

	if !sameType(got, fc.fn.ReturnType) {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(fc.fn.ReturnType), Got: typeName(got)}, v.SpanVal))
	}
}
