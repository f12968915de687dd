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
)

// ioFuncNames are the standard-library function names a `#[pure]` function
// may never call (spec.md §4.4 "#[pure] enforcement").
var ioFuncNames = map[string]bool{
	"pub_read": true, "pub_write": true, "divine": true,
	"sec_read": true, "ram_read": true, "ram_write": true,
}

// exprType infers an expression's static type, reporting diagnostics and
// falling back to Field so checking of the enclosing function can proceed.
func (fc *fnContext) exprType(e *env, expr ast.Expr) ast.Type {
	switch v := expr.(type) {
	case ast.Literal:
		if v.IsBool {
			return ast.BoolType{SpanVal: v.SpanVal}
		}

		return ast.FieldType{SpanVal: v.SpanVal}

	case ast.Variable:
		return fc.variableType(e, v)

	case ast.BinOp:
		return fc.binOpType(e, v)

	case ast.Call:
		return fc.callType(e, v)

	case ast.StructInit:
		return fc.structInitType(e, v)

	case ast.ArrayInit:
		return fc.arrayInitType(e, v)

	case ast.TupleExpr:
		elems := make([]ast.Type, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = fc.exprType(e, el)
		}

		return ast.TupleType{SpanVal: v.SpanVal, Elements: elems}

	case ast.FieldAccess:
		return fc.fieldAccessType(e, v)

	case ast.Index:
		return fc.indexType(e, v)

	case ast.Block:
		return fc.checkBlock(e, v)

	case ast.If:
		return fc.ifType(e, v)

	case ast.MatchExpr:
		return fc.matchExprType(e, v)

	default:
		return ast.FieldType{}
	}
}

func (fc *fnContext) variableType(e *env, v ast.Variable) ast.Type {
	c := fc.checker

	if len(v.Path) == 1 {
		if b, ok := e.lookup(v.Path[0]); ok {
			return b.typ
		}
	}

	qualified := fc.module + "::" + v.Path[len(v.Path)-1]
	if len(v.Path) > 1 {
		qualified = joinPath(v.Path[:len(v.Path)-1]) + "::" + v.Path[len(v.Path)-1]
	}

	if cst, ok := c.consts[qualified]; ok {
		return cst.Type
	}

	c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: joinPath(v.Path)}, v.SpanVal))

	return ast.FieldType{SpanVal: v.SpanVal}
}

func (fc *fnContext) binOpType(e *env, v ast.BinOp) ast.Type {
	c := fc.checker
	lhs := fc.exprType(e, v.Lhs)
	rhs := fc.exprType(e, v.Rhs)

	isField := func(t ast.Type) bool { _, ok := t.(ast.FieldType); return ok }
	isU32 := func(t ast.Type) bool { _, ok := t.(ast.U32Type); return ok }
	isBool := func(t ast.Type) bool { _, ok := t.(ast.BoolType); return ok }
	isExt := func(t ast.Type) bool { _, ok := t.(ast.ExtFieldType); return ok }

	mismatch := func() ast.Type {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "compatible operand types for '" + v.Op + "'", Got: typeName(lhs) + ", " + typeName(rhs)}, v.SpanVal))
		return ast.FieldType{SpanVal: v.SpanVal}
	}

	switch v.Op {
	case "+", "*":
		switch {
		case isField(lhs) && isField(rhs):
			return ast.FieldType{SpanVal: v.SpanVal}
		case isU32(lhs) && isU32(rhs):
			return ast.U32Type{SpanVal: v.SpanVal}
		default:
			return mismatch()
		}
	case "==":
		if (isField(lhs) && isField(rhs)) || (isU32(lhs) && isU32(rhs)) || (isBool(lhs) && isBool(rhs)) {
			return ast.BoolType{SpanVal: v.SpanVal}
		}

		return mismatch()
	case "<":
		if isU32(lhs) && isU32(rhs) {
			return ast.BoolType{SpanVal: v.SpanVal}
		}

		return mismatch()
	case "&", "^":
		if isU32(lhs) && isU32(rhs) {
			return ast.U32Type{SpanVal: v.SpanVal}
		}

		return mismatch()
	case "/%":
		if isU32(lhs) && isU32(rhs) {
			return ast.TupleType{SpanVal: v.SpanVal, Elements: []ast.Type{ast.U32Type{}, ast.U32Type{}}}
		}

		return mismatch()
	case "*.":
		if isExt(lhs) && isField(rhs) {
			return ast.ExtFieldType{SpanVal: v.SpanVal}
		}

		return mismatch()
	default:
		return mismatch()
	}
}

func (fc *fnContext) structInitType(e *env, v ast.StructInit) ast.Type {
	c := fc.checker

	st, ok := c.lookupStruct(v.Path)
	if !ok {
		c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: joinPath(v.Path)}, v.SpanVal))
		return ast.FieldType{SpanVal: v.SpanVal}
	}

	fieldTypes := map[string]ast.Type{}
	for _, f := range st.Fields {
		fieldTypes[f.Name] = f.Type
	}

	for _, fi := range v.Fields {
		got := fc.exprType(e, fi.Value)

		want, ok := fieldTypes[fi.Name]
		if !ok {
			c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: st.Name + "." + fi.Name}, fi.Value.Span()))
			continue
		}

		if !sameType(got, want) {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(want), Got: typeName(got)}, fi.Value.Span()))
		}
	}

	return ast.NamedType{SpanVal: v.SpanVal, Path: v.Path}
}

func (fc *fnContext) arrayInitType(e *env, v ast.ArrayInit) ast.Type {
	var elemType ast.Type = ast.FieldType{SpanVal: v.SpanVal}

	for i, el := range v.Elements {
		t := fc.exprType(e, el)
		if i == 0 {
			elemType = t
		} else if !sameType(t, elemType) {
			fc.checker.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(elemType), Got: typeName(t)}, el.Span()))
		}
	}

	return ast.ArrayType{SpanVal: v.SpanVal, Element: elemType, Size: ast.SizeLiteral{Value: uint64(len(v.Elements))}}
}

func (fc *fnContext) fieldAccessType(e *env, v ast.FieldAccess) ast.Type {
	c := fc.checker
	baseType := fc.exprType(e, v.Base)

	named, ok := baseType.(ast.NamedType)
	if !ok {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "struct type", Got: typeName(baseType)}, v.SpanVal))
		return ast.FieldType{SpanVal: v.SpanVal}
	}

	st, ok := c.lookupStruct(named.Path)
	if !ok {
		c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: joinPath(named.Path)}, v.SpanVal))
		return ast.FieldType{SpanVal: v.SpanVal}
	}

	for _, f := range st.Fields {
		if f.Name == v.Field {
			return f.Type
		}
	}

	c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: st.Name + "." + v.Field}, v.SpanVal))

	return ast.FieldType{SpanVal: v.SpanVal}
}

func (fc *fnContext) indexType(e *env, v ast.Index) ast.Type {
	c := fc.checker
	baseType := fc.exprType(e, v.Base)
	_ = fc.exprType(e, v.Index)

	arr, ok := baseType.(ast.ArrayType)
	if !ok {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "array type", Got: typeName(baseType)}, v.SpanVal))
		return ast.FieldType{SpanVal: v.SpanVal}
	}

	return arr.Element
}

func (fc *fnContext) ifType(e *env, v ast.If) ast.Type {
	c := fc.checker

	condType := fc.exprType(e, v.Cond)
	if _, ok := condType.(ast.BoolType); !ok {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "Bool", Got: typeName(condType)}, v.Cond.Span()))
	}

	thenType := fc.checkBlock(e, v.Then)

	if v.Else == nil {
		return nil
	}

	elseType := fc.checkBlock(e, *v.Else)

	if thenType != nil && elseType != nil && !sameType(thenType, elseType) {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(thenType), Got: typeName(elseType)}, v.Else.Span()))
	}

	return thenType
}

func (fc *fnContext) matchExprType(e *env, v ast.MatchExpr) ast.Type {
	c := fc.checker
	_ = fc.exprType(e, v.Scrutinee)

	if !hasCatchAllArm(v.Arms) {
		c.diags.Add(diagFromErr(&NonExhaustiveMatch{}, v.SpanVal))
	}

	var result ast.Type

	for _, arm := range v.Arms {
		e.push()
		bindPatternVars(e, arm.Pattern, fc)
		t := fc.checkBlock(e, arm.Body)
		e.pop()

		if result == nil {
			result = t
		} else if t != nil && !sameType(result, t) {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(result), Got: typeName(t)}, arm.Body.Span()))
		}
	}

	return result
}

func hasCatchAllArm(arms []ast.MatchArm) bool {
	for _, a := range arms {
		switch a.Pattern.(type) {
		case ast.WildcardPattern, ast.BindPattern:
			return true
		}
	}

	return false
}

func bindPatternVars(e *env, p ast.Pattern, fc *fnContext) {
	switch v := p.(type) {
	case ast.BindPattern:
		e.define(v.Name, binding{typ: ast.FieldType{}, mutable: false})
	case ast.StructPattern:
		for _, f := range v.Fields {
			if f.Pattern != nil {
				bindPatternVars(e, f.Pattern, fc)
			} else if f.Name != "_" {
				e.define(f.Name, binding{typ: ast.FieldType{}, mutable: false})
			}
		}
	}
}
