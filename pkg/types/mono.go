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
	"golang.org/x/exp/slices"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/source"
)

// EvalSizeExpr evaluates a size expression to a concrete non-negative
// integer, substituting bindings for any SizeParam it references (spec.md
// §4.4 "Size expressions ... evaluation supports only + and * over
// non-negative integers"). ok is false if a referenced parameter has no
// binding.
func (c *Checker) EvalSizeExpr(se ast.SizeExpr, bindings map[string]uint64) (uint64, bool) {
	switch v := se.(type) {
	case ast.SizeLiteral:
		return v.Value, true
	case ast.SizeParam:
		val, ok := bindings[v.Name]
		return val, ok
	case ast.SizeBinOp:
		lhs, ok := c.EvalSizeExpr(v.Lhs, bindings)
		if !ok {
			return 0, false
		}

		rhs, ok := c.EvalSizeExpr(v.Rhs, bindings)
		if !ok {
			return 0, false
		}

		switch v.Op {
		case "+":
			return lhs + rhs, true
		case "*":
			return lhs * rhs, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

// spanOf returns the declaration span of a qualified function name, used to
// anchor a diagnostic that otherwise has no single natural call site (a
// cycle spans several declarations).
func (c *Checker) spanOf(qualifiedFuncName string) source.Span {
	if fe, ok := c.funcs[qualifiedFuncName]; ok {
		return fe.fn.Span()
	}

	return source.Span{}
}

func (c *Checker) recordMonomorphization(fn QualifiedName, sizeArgs []uint64) {
	c.exports.Monomorphizations.Insert(MonoInstance{Func: fn, SizeArgs: sizeArgs})
}

// detectRecursion walks the call graph built while checking function
// bodies and fails with RecursiveCall for any cycle, direct or mutual
// (spec.md §4.4 "Recursion detection").
func (c *Checker) detectRecursion() {
	const (
		unvisited = iota
		visiting
		done
	)

	state := map[string]int{}

	var stack []string

	var visit func(name string)

	visit = func(name string) {
		if state[name] == done {
			return
		}

		if state[name] == visiting {
			cycle := append(append([]string{}, stack...), name)
			c.diags.Add(diagFromErr(&RecursiveCall{Path: cycle}, c.spanOf(name)))

			return
		}

		state[name] = visiting
		stack = append(stack, name)

		callees := append([]string{}, c.callGraph[name]...)
		slices.Sort(callees)

		for _, callee := range callees {
			visit(callee)
		}

		stack = stack[:len(stack)-1]
		state[name] = done
	}

	names := make([]string, 0, len(c.callGraph))
	for name := range c.callGraph {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		visit(name)
	}
}

// detectDeadCode warns on functions unreachable from any program entry
// point or public library item (spec.md §4.4 "Dead code detection").
func (c *Checker) detectDeadCode(filtered map[string]ast.File) {
	reachable := map[string]bool{}

	var roots []string

	for key, f := range filtered {
		for _, item := range f.Items {
			fn, ok := item.(ast.Function)
			if !ok {
				continue
			}

			if (f.Kind == ast.ProgramFile && fn.Name == "main") || (f.Kind == ast.ModuleFile && fn.Visibility == ast.Public) {
				roots = append(roots, key+"::"+fn.Name)
			}
		}
	}

	slices.Sort(roots)

	var visit func(name string)

	visit = func(name string) {
		if reachable[name] {
			return
		}

		reachable[name] = true

		callees := append([]string{}, c.callGraph[name]...)
		slices.Sort(callees)

		for _, callee := range callees {
			visit(callee)
		}
	}

	for _, r := range roots {
		visit(r)
	}

	names := make([]string, 0, len(c.funcs))
	for name := range c.funcs {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if reachable[name] {
			continue
		}

		fe := c.funcs[name]
		if fe.fn.IsTest() {
			continue
		}

		c.warnOrError("UnusedItem", "function \""+fe.fn.Name+"\" is never called", fe.fn.Span())
	}
}
