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
package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/lexer"
	"github.com/trident-lang/trident/pkg/parser"
	"github.com/trident-lang/trident/pkg/resolver"
	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/target"
	"github.com/trident-lang/trident/pkg/types"
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

func buildGraph(t *testing.T, text string) (*resolver.Graph, *source.Collector) {
	t.Helper()

	entry := parseText(t, "main.tri", text)
	diags := source.NewCollector()
	g, err := resolver.Build([]ast.File{entry}, nil, diags)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())

	return g, diags
}

func hasCode(diags []source.Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}

	return false
}

func TestCheckSimpleProgramHasNoErrors(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn add(a: Field, b: Field) -> Field {
    a + b
}
fn main() {
    let x = add(1, 2)
    assert_eq(x, x)
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	assert.False(t, diags.HasErrors(), "%v", diags.Diagnostics())
}

func TestCheckRecursionDetected(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn loopy(n: Field) -> Field {
    loopy(n)
}
fn main() {
    let x = loopy(1)
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	require.True(t, diags.HasErrors())
	assert.True(t, hasCode(diags.Diagnostics(), "RecursiveCall"))
}

func TestCheckImmutableAssignmentRejected(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn main() {
    let x = 1
    x = 2
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	require.True(t, diags.HasErrors())
	assert.True(t, hasCode(diags.Diagnostics(), "ImmutableAssignment"))
}

func TestCheckMutableAssignmentAccepted(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn main() {
    let mut x = 1
    x = 2
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	assert.False(t, diags.HasErrors(), "%v", diags.Diagnostics())
}

func TestCheckMissingBoundAnnotation(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn main() {
    let n: U32 = 5
    for i in 0..n {
        assert(true)
    }
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	require.True(t, diags.HasErrors())
	assert.True(t, hasCode(diags.Diagnostics(), "MissingBoundAnnotation"))
}

func TestCheckBoundedLoopAccepted(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn main() {
    let n: U32 = 5
    for i in 0..n bounded 16 {
        assert(true)
    }
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	assert.False(t, diags.HasErrors(), "%v", diags.Diagnostics())
}

func TestCheckConstantLoopBoundAccepted(t *testing.T) {
	g, _ := buildGraph(t, `program Main
const N: U32 = 4
fn main() {
    for i in 0..N {
        assert(true)
    }
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	assert.False(t, diags.HasErrors(), "%v", diags.Diagnostics())
}

func TestCheckPureFunctionCallingIoIsRejected(t *testing.T) {
	g, _ := buildGraph(t, `program Main
#[pure]
fn helper() -> Field {
    pub_read()
}
fn main() {
    let x = helper()
}
fn pub_read() -> Field {
    0
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	require.True(t, diags.HasErrors())
	assert.True(t, hasCode(diags.Diagnostics(), "PureFunctionViolation"))
}

func TestCheckDeadCodeWarning(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn unused() -> Field {
    1
}
fn main() {
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	assert.True(t, hasCode(diags.Diagnostics(), "UnusedItem"))
}

func TestCheckConstFoldingAcrossReferences(t *testing.T) {
	g, _ := buildGraph(t, `program Main
const A: Field = 2
const B: Field = 3
const C: Field = A * B
fn main() {
    assert_eq(C, C)
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	require.False(t, diags.HasErrors(), "%v", diags.Diagnostics())

	exports := c.Exports()
	v, ok := exports.Constants["Main::C"]
	require.True(t, ok)
	assert.Equal(t, "6", v.String())
}

func TestCheckStrictPromotesUnusedItemToError(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn unused() -> Field {
    1
}
fn main() {
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, []string{"strict"})
	c.Check(g)

	require.True(t, diags.HasErrors())
	assert.True(t, hasCode(diags.Diagnostics(), "UnusedItem"))
}

func TestCheckWrongArityReported(t *testing.T) {
	g, _ := buildGraph(t, `program Main
fn add(a: Field, b: Field) -> Field {
    a + b
}
fn main() {
    let x = add(1)
}
`)

	diags := source.NewCollector()
	c := types.NewChecker(target.DefaultTriton(), diags, nil)
	c.Check(g)

	require.True(t, diags.HasErrors())
	assert.True(t, hasCode(diags.Diagnostics(), "WrongArity"))
}
