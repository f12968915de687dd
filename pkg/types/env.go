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

// binding is one local variable's static type and mutability.
type binding struct {
	typ     ast.Type
	mutable bool
}

// env is a stack of lexical scopes for local bindings, pushed on block
// entry and popped on exit.
type env struct {
	scopes []map[string]binding
}

func newEnv() *env {
	e := &env{}
	e.push()

	return e
}

func (e *env) push() { e.scopes = append(e.scopes, map[string]binding{}) }

func (e *env) pop() { e.scopes = e.scopes[:len(e.scopes)-1] }

func (e *env) define(name string, b binding) {
	e.scopes[len(e.scopes)-1][name] = b
}

func (e *env) lookup(name string) (binding, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if b, ok := e.scopes[i][name]; ok {
			return b, true
		}
	}

	return binding{}, false
}
