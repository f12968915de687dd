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

// checkModule type-checks every function body declared directly in one
// module (structs, consts and intrinsics were already registered).
func (c *Checker) checkModule(key string, f ast.File) {
	c.currentModule = key

	for _, item := range f.Items {
		fn, ok := item.(ast.Function)
		if !ok {
			continue
		}

		c.checkFunction(key, fn)
	}
}

func (c *Checker) checkFunction(module string, fn ast.Function) {
	e := newEnv()

	for _, p := range fn.Params {
		e.define(p.Name, binding{typ: p.Type, mutable: false})
	}

	for _, g := range fn.Generics {
		e.define(g, binding{typ: ast.U32Type{}, mutable: false})
	}

	ctx := &fnContext{checker: c, module: module, fn: fn, pure: fn.IsPure()}
	ctx.checkBlock(e, fn.Body)

	if fn.ReturnType != nil {
		if fn.Body.Tail == nil {
			c.diags.Add(diagFromErr(&TypeMismatch{Expected: typeName(fn.ReturnType), Got: "nothing"}, fn.Body.Span()))
		}
	}
}

// fnContext carries the state specific to checking one function body: the
// owning checker, the enclosing module's key, the function itself, and
// whether `#[pure]` restrictions apply.
type fnContext struct {
	checker *Checker
	module  string
	fn      ast.Function
	pure    bool
}
