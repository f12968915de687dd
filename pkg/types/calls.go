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

import "github.com/trident-lang/trident/pkg/ast"

// callType checks a call's arguments against the callee's declared
// parameters, resolves size-generic arguments (explicit or inferred from
// array-literal argument lengths), enforces #[pure] and records the
// resolved instantiation for the IR builder.
func (fc *fnContext) callType(e *env, v ast.Call) ast.Type {
	c := fc.checker
	name := v.Path[len(v.Path)-1]

	if fc.pure && ioFuncNames[name] {
		c.diags.Add(diagFromErr(&PureFunctionViolation{Func: fc.fn.Name, Reason: "calls I/O function " + name}, v.SpanVal))
	}

	fe, qualified, ok := c.lookupFunc(fc.module, v.Path)
	if !ok {
		c.diags.Add(diagFromErr(&UndefinedIdentifier{Name: joinPath(v.Path)}, v.SpanVal))
		return ast.FieldType{SpanVal: v.SpanVal}
	}

	if fc.pure && !fe.fn.IsPure() && !isIntrinsic(fe.fn) {
		c.diags.Add(diagFromErr(&PureFunctionViolation{Func: fc.fn.Name, Reason: "calls non-pure function " + name}, v.SpanVal))
	}

	if len(v.Args) != len(fe.fn.Params) {
		c.diags.Add(diagFromErr(&WrongArity{Func: name, Expected: len(fe.fn.Params), Got: len(v.Args)}, v.SpanVal))
	}

	argTypes := make([]ast.Type, len(v.Args))
	for i, a := range v.Args {
		argTypes[i] = fc.exprType(e, a)
	}

	for i, p := range fe.fn.Params {
		if i >= len(argTypes) {
			break
		}

		if !sameType(argTypes[i], p.Type) {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(p.Type), Got: typeName(argTypes[i])}, v.Args[i].Span()))
		}
	}

	if len(fe.fn.Generics) > 0 {
		sizeArgs, ok := fc.resolveGenericArgs(fe.fn, v, argTypes)
		if !ok {
			c.diags.Add(diagFromErr(&AmbiguousGenericCall{Func: name}, v.SpanVal))
		} else {
			c.exports.CallSiteSizeArgs[v.SpanVal] = sizeArgs
			c.recordMonomorphization(QualifiedName{Module: fe.module, Name: fe.fn.Name}, sizeArgs)
		}
	}

	c.callGraph[fc.module+"::"+fc.fn.Name] = append(c.callGraph[fc.module+"::"+fc.fn.Name], qualified)

	if fe.fn.ReturnType == nil {
		return nil
	}

	return fe.fn.ReturnType
}

func isIntrinsic(fn ast.Function) bool {
	_, ok := fn.Intrinsic()
	return ok
}

// resolveGenericArgs resolves a generic call's size arguments, preferring
// an explicit `::<...>` argument list and otherwise inferring each
// generic's value from an array-typed parameter whose declared size is
// exactly that generic name, matched against the corresponding argument's
// inferred array length.
func (fc *fnContext) resolveGenericArgs(fn ast.Function, call ast.Call, argTypes []ast.Type) ([]uint64, bool) {
	if len(call.GenericArgs) > 0 {
		out := make([]uint64, len(call.GenericArgs))

		for i, se := range call.GenericArgs {
			v, ok := fc.checker.EvalSizeExpr(se, nil)
			if !ok {
				return nil, false
			}

			out[i] = v
		}

		return out, true
	}

	resolved := make(map[string]uint64, len(fn.Generics))

	for i, p := range fn.Params {
		if i >= len(argTypes) {
			break
		}

		pArr, ok := p.Type.(ast.ArrayType)
		if !ok {
			continue
		}

		sizeParam, ok := pArr.Size.(ast.SizeParam)
		if !ok {
			continue
		}

		aArr, ok := argTypes[i].(ast.ArrayType)
		if !ok {
			continue
		}

		if lit, ok := aArr.Size.(ast.SizeLiteral); ok {
			resolved[sizeParam.Name] = lit.Value
		}
	}

	out := make([]uint64, len(fn.Generics))

	for i, g := range fn.Generics {
		v, ok := resolved[g]
		if !ok {
			return nil, false
		}

		out[i] = v
	}

	return out, true
}
