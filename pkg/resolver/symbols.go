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
package resolver

import (
	"github.com/dolthub/swiss"

	"github.com/trident-lang/trident/pkg/ast"
)

// Symbol is one qualified top-level definition discovered while building the
// module graph.
type Symbol struct {
	Module string
	Name   string
	Item   ast.Item
}

// SymbolTable maps a module's qualified item names to their definitions.
// Backed by swiss.Map for open-addressed lookup performance on the large
// symbol counts a whole-program compile can produce.
type SymbolTable struct {
	m *swiss.Map[string, Symbol]
}

// NewSymbolTable constructs an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{m: swiss.NewMap[string, Symbol](64)}
}

func qualify(module, name string) string { return module + "::" + name }

// Insert records a symbol. If an item with the same module-qualified name
// already exists, Insert leaves the table unchanged and returns the existing
// symbol with ok=false so the caller can raise DuplicateDefinition.
func (t *SymbolTable) Insert(module, name string, item ast.Item) (Symbol, bool) {
	key := qualify(module, name)

	if existing, found := t.m.Get(key); found {
		return existing, false
	}

	sym := Symbol{Module: module, Name: name, Item: item}
	t.m.Put(key, sym)

	return sym, true
}

// Lookup finds a symbol by module and name.
func (t *SymbolTable) Lookup(module, name string) (Symbol, bool) {
	return t.m.Get(qualify(module, name))
}

// Len reports the number of symbols recorded.
func (t *SymbolTable) Len() int { return t.m.Count() }
