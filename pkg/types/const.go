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
	"strings"

	"golang.org/x/exp/slices"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/target"
)

// evalConstants evaluates every module-level const declaration to a
// concrete target.FieldElement, substituting referenced consts transitively
// (spec.md §4.4 "module-level const values are fully evaluated at check
// time"). Order is deterministic regardless of map iteration.
func (c *Checker) evalConstants() {
	keys := make([]string, 0, len(c.consts))
	for k := range c.consts {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	visiting := map[string]bool{}
	for _, k := range keys {
		c.evalConst(k, visiting)
	}
}

// evalConst evaluates one qualified const, memoizing the result and
// rejecting a cycle through const references.
func (c *Checker) evalConst(qualified string, visiting map[string]bool) (target.FieldElement, bool) {
	if v, ok := c.constVals[qualified]; ok {
		return v, true
	}

	cst, ok := c.consts[qualified]
	if !ok {
		return target.FieldElement{}, false
	}

	if visiting[qualified] {
		c.diags.Add(diagFromErr(&RecursiveCall{Path: []string{qualified}}, cst.Span()))
		return target.FieldElement{}, false
	}

	visiting[qualified] = true

	module := qualified
	if idx := strings.LastIndex(qualified, "::"); idx >= 0 {
		module = qualified[:idx]
	}

	val, ok := c.evalConstExpr(module, cst.Value, visiting)

	visiting[qualified] = false

	if !ok {
		c.diags.Add(diagFromErr(&TypeMismatch{Expected: "compile-time constant", Got: "non-constant expression"}, cst.Value.Span()))
		return target.FieldElement{}, false
	}

	c.constVals[qualified] = val
	c.exports.Constants[qualified] = val

	return val, true
}

// evalConstExpr folds an expression to a FieldElement using only the
// restricted subset spec.md §4.4 guarantees const initializers can use:
// literals, references to other consts, and +/* over those.
func (c *Checker) evalConstExpr(module string, e ast.Expr, visiting map[string]bool) (target.FieldElement, bool) {
	switch v := e.(type) {
	case ast.Literal:
		if v.IsBool {
			if v.Value {
				return target.FieldFromUint64(1), true
			}

			return target.FieldFromUint64(0), true
		}

		return target.FieldFromDecimal(v.Digits)

	case ast.Variable:
		name := v.Path[len(v.Path)-1]
		qualified := module + "::" + name

		if len(v.Path) > 1 {
			qualified = joinPath(v.Path[:len(v.Path)-1]) + "::" + name
		}

		return c.evalConst(qualified, visiting)

	case ast.BinOp:
		lhs, ok := c.evalConstExpr(module, v.Lhs, visiting)
		if !ok {
			return target.FieldElement{}, false
		}

		rhs, ok := c.evalConstExpr(module, v.Rhs, visiting)
		if !ok {
			return target.FieldElement{}, false
		}

		switch v.Op {
		case "+":
			return lhs.Add(rhs), true
		case "*":
			return lhs.Mul(rhs), true
		default:
			return target.FieldElement{}, false
		}

	default:
		return target.FieldElement{}, false
	}
}
