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
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"

	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/target"
)

// QualifiedName identifies a top-level item by the module that declares it
// and its local name.
type QualifiedName struct {
	Module string
	Name   string
}

func (q QualifiedName) String() string { return q.Module + "::" + q.Name }

func monoKey(fn QualifiedName, sizeArgs []uint64) string {
	parts := make([]string, len(sizeArgs))
	for i, a := range sizeArgs {
		parts[i] = strconv.FormatUint(a, 10)
	}

	return fn.String() + "__" + strings.Join(parts, "_")
}

// MonoInstance is one concrete instantiation of a size-generic function
// (spec.md §4.4 "Generic monomorphization").
type MonoInstance struct {
	Func     QualifiedName
	SizeArgs []uint64
}

// MonoTable is the monomorphization table: the set of concrete
// (function, size-args) instantiations the IR builder must emit, deduped
// by key. Backed by swiss.Map for the same open-addressed lookup
// performance as the resolver's symbol table; iteration always goes
// through the sorted key index so emission order never depends on the
// swiss map's own (unspecified) iteration order.
type MonoTable struct {
	m    *swiss.Map[string, MonoInstance]
	keys []string
}

func newMonoTable() *MonoTable {
	return &MonoTable{m: swiss.NewMap[string, MonoInstance](16)}
}

// Insert records an instantiation, a no-op if already present.
func (t *MonoTable) Insert(inst MonoInstance) {
	key := monoKey(inst.Func, inst.SizeArgs)
	if _, ok := t.m.Get(key); ok {
		return
	}

	t.m.Put(key, inst)
	t.keys = append(t.keys, key)
}

// Instances returns every recorded instantiation in deterministic
// (sorted-key) order.
func (t *MonoTable) Instances() []MonoInstance {
	keys := append([]string{}, t.keys...)
	slices.Sort(keys)

	out := make([]MonoInstance, 0, len(keys))
	for _, k := range keys {
		if v, ok := t.m.Get(k); ok {
			out = append(out, v)
		}
	}

	return out
}

// Len reports the number of distinct instantiations recorded.
func (t *MonoTable) Len() int { return t.m.Count() }

// Exports is the type checker's output record consumed by the IR builder
// (spec.md §4.4 "Outputs").
type Exports struct {
	Monomorphizations *MonoTable
	CallSiteSizeArgs  map[source.Span][]uint64
	Intrinsics        map[string]string
	Constants         map[string]target.FieldElement
	TestFunctions     []QualifiedName
}

func newExports() *Exports {
	return &Exports{
		Monomorphizations: newMonoTable(),
		CallSiteSizeArgs:  map[source.Span][]uint64{},
		Intrinsics:        map[string]string{},
		Constants:         map[string]target.FieldElement{},
	}
}
