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
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/source"
)

// Module is one node of the module graph: a parsed file together with the
// dotted path it is known by and the dotted paths of the modules it uses.
type Module struct {
	Key  string
	Path []string
	File ast.File
}

// Loader fetches and parses the file a dotted module path resolves to.
// pkg/compiler supplies an implementation backed by pkg/source, pkg/lexer
// and pkg/parser; resolver stays agnostic of how a file reaches memory.
type Loader func(path []string) (ast.File, error)

// Graph is the fully discovered module graph: every reachable module plus a
// dependencies-first topological order.
type Graph struct {
	Modules map[string]*Module
	Order   []string
	Symbols *SymbolTable
}

// Build discovers the full module graph reachable from the given entry
// files, loading additional modules on demand via load. Entry files are
// keyed by their declared name (spec.md §3 "program NAME"/"module NAME");
// every other module is keyed by the dotted path it was `use`d by.
func Build(entries []ast.File, load Loader, diags *source.Collector) (*Graph, error) {
	g := &Graph{Modules: map[string]*Module{}, Symbols: NewSymbolTable()}

	for _, f := range entries {
		key := f.Name
		g.Modules[key] = &Module{Key: key, Path: []string{f.Name}, File: f}
	}

	// Discover transitively: resolve every `use` path not already present.
	queue := make([]string, 0, len(entries))
	for k := range g.Modules {
		queue = append(queue, k)
	}

	sort.Strings(queue)

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]

		mod := g.Modules[key]

		for _, use := range mod.File.Uses {
			depKey := strings.Join(use.Path, ".")
			if _, ok := g.Modules[depKey]; ok {
				continue
			}

			file, err := load(use.Path)
			if err != nil {
				return nil, &ModuleNotFound{Path: use.Path, At: use.Span()}
			}

			g.Modules[depKey] = &Module{Key: depKey, Path: use.Path, File: file}
			queue = append(queue, depKey)
		}
	}

	for _, mod := range g.Modules {
		registerSymbols(g.Symbols, mod, diags)
	}

	order, err := topoSort(g.Modules)
	if err != nil {
		return nil, err
	}

	g.Order = order

	log.WithFields(log.Fields{"modules": len(g.Modules)}).Debug("resolver: module graph built")

	return g, nil
}

func registerSymbols(t *SymbolTable, mod *Module, diags *source.Collector) {
	for _, item := range mod.File.Items {
		name := itemName(item)
		if name == "" {
			continue
		}

		if _, ok := t.Insert(mod.Key, name, item); !ok {
			diags.Error("DuplicateDefinition", "\""+name+"\" is defined more than once in this module", item.Span())
		}
	}
}

func itemName(item ast.Item) string {
	switch v := item.(type) {
	case ast.Function:
		return v.Name
	case ast.Struct:
		return v.Name
	case ast.Const:
		return v.Name
	case ast.Event:
		return v.Name
	default:
		return ""
	}
}

// topoSort orders modules dependencies-first via iterative DFS, breaking
// ties deterministically by sorting each module's `use` edges and the
// overall root set lexicographically (spec.md §4.3 "Ordering ... ties
// broken by deterministic import order").
func topoSort(modules map[string]*Module) ([]string, error) {
	keys := make([]string, 0, len(modules))
	for k := range modules {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[string]int, len(modules))

	var order []string

	var stack []string

	var visit func(key string) error

	visit = func(key string) error {
		switch state[key] {
		case done:
			return nil
		case visiting:
			cyclePath := append(append([]string{}, stack[slices.Index(stack, key):]...), key)
			return &CircularDependency{CyclePath: cyclePath, At: modules[key].File.Span()}
		}

		state[key] = visiting
		stack = append(stack, key)

		mod, ok := modules[key]
		if ok {
			deps := make([]string, 0, len(mod.File.Uses))
			for _, use := range mod.File.Uses {
				deps = append(deps, strings.Join(use.Path, "."))
			}

			slices.Sort(deps)

			for _, dep := range deps {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[key] = done
		order = append(order, key)

		return nil
	}

	for _, k := range keys {
		if err := visit(k); err != nil {
			return nil, err
		}
	}

	return order, nil
}
