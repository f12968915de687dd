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
package resolver_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/lexer"
	"github.com/trident-lang/trident/pkg/parser"
	"github.com/trident-lang/trident/pkg/resolver"
	"github.com/trident-lang/trident/pkg/source"
)

func parseText(t *testing.T, name, text string) ast.File {
	t.Helper()

	f := source.NewFile(0, name, []byte(text))
	diags := source.NewCollector()
	toks := lexer.Lex(f, diags)
	file := parser.Parse(f, toks, diags)
	require.False(t, diags.HasErrors(), "%v", diags.Diagnostics())

	return file
}

func TestBuildSimpleGraph(t *testing.T) {
	entry := parseText(t, "main.tri", `program Main
use a.b
fn main() { }
`)

	loaded := map[string]string{
		"a.b": "module AB\nfn helper() { }\n",
	}

	load := func(path []string) (ast.File, error) {
		key := ""
		for i, p := range path {
			if i > 0 {
				key += "."
			}

			key += p
		}

		text, ok := loaded[key]
		if !ok {
			return ast.File{}, fmt.Errorf("no such module %q", key)
		}

		return parseText(t, key+".tri", text), nil
	}

	diags := source.NewCollector()
	g, err := resolver.Build([]ast.File{entry}, load, diags)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	require.Len(t, g.Modules, 2)
	assert.Contains(t, g.Order, "Main")
	assert.Contains(t, g.Order, "a.b")

	// Dependencies come before dependents in the topological order.
	depIdx, mainIdx := -1, -1

	for i, k := range g.Order {
		if k == "a.b" {
			depIdx = i
		}

		if k == "Main" {
			mainIdx = i
		}
	}

	assert.Less(t, depIdx, mainIdx)
}

func TestBuildDetectsCycle(t *testing.T) {
	entry := parseText(t, "main.tri", `program Main
use a
fn main() { }
`)

	loaded := map[string]string{
		"a": "module A\nuse b\nfn fa() { }\n",
		"b": "module B\nuse a\nfn fb() { }\n",
	}

	load := func(path []string) (ast.File, error) {
		key := path[0]

		text, ok := loaded[key]
		if !ok {
			return ast.File{}, fmt.Errorf("no such module %q", key)
		}

		return parseText(t, key+".tri", text), nil
	}

	diags := source.NewCollector()
	_, err := resolver.Build([]ast.File{entry}, load, diags)
	require.Error(t, err)

	var cycleErr *resolver.CircularDependency

	require.ErrorAs(t, err, &cycleErr)
}

func TestBuildDetectsModuleNotFound(t *testing.T) {
	entry := parseText(t, "main.tri", `program Main
use missing.module
fn main() { }
`)

	load := func(path []string) (ast.File, error) {
		return ast.File{}, fmt.Errorf("not found")
	}

	diags := source.NewCollector()
	_, err := resolver.Build([]ast.File{entry}, load, diags)
	require.Error(t, err)

	var notFound *resolver.ModuleNotFound

	require.ErrorAs(t, err, &notFound)
}

func TestBuildDetectsDuplicateDefinition(t *testing.T) {
	entry := parseText(t, "main.tri", `program Main
fn main() { }
fn main() { }
`)

	diags := source.NewCollector()
	_, err := resolver.Build([]ast.File{entry}, nil, diags)
	require.NoError(t, err)
	assert.True(t, diags.HasErrors())
}

func TestMangle(t *testing.T) {
	assert.Equal(t, "std_core_field__add", resolver.Mangle([]string{"std", "core", "field"}, "add", nil))
	assert.Equal(t, "shape__area__3_4", resolver.Mangle([]string{"shape"}, "area", []uint64{3, 4}))
}

func TestResolveRootsPrefersEnvOverride(t *testing.T) {
	cfg := resolver.RootConfig{StdlibRoot: "/opt/trident/stdlib", ExtlibRoot: "/opt/trident/extlib"}
	roots := resolver.ResolveRoots(cfg, "/home/user/project")

	assert.Equal(t, "/opt/trident/stdlib", roots.Stdlib)
	assert.Equal(t, "/opt/trident/extlib", roots.Extlib)
	assert.Equal(t, "/home/user/project", roots.Project)
}

func TestFilePathRoutesByPrefix(t *testing.T) {
	roots := resolver.Roots{Stdlib: "/std", Extlib: "/ext", Project: "/proj"}

	assert.Equal(t, "/std/std/core/field.tri", roots.FilePath([]string{"std", "core", "field"}))
	assert.Equal(t, "/ext/ext/widgets.tri", roots.FilePath([]string{"ext", "widgets"}))
	assert.Equal(t, "/proj/shape.tri", roots.FilePath([]string{"shape"}))
}
