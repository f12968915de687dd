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
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/token"
)

func lex(t *testing.T, text string) ([]token.Token, *source.Collector) {
	t.Helper()

	f := source.NewFile(0, "test.tri", []byte(text))
	diags := source.NewCollector()
	toks := Lex(f, diags)

	return toks, diags
}

func TestEmptyFileProducesNoTokens(t *testing.T) {
	toks, diags := lex(t, "")
	assert.Empty(t, toks)
	assert.False(t, diags.HasErrors())
}

func TestKeywordsAndIdents(t *testing.T) {
	toks, diags := lex(t, "program hello fn main")
	require.False(t, diags.HasErrors())
	require.Len(t, toks, 4)
	assert.Equal(t, token.KwProgram, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, "hello", toks[1].Text)
	assert.Equal(t, token.KwFn, toks[2].Kind)
	assert.Equal(t, token.Ident, toks[3].Kind)
}

func TestMultiCharTokensLongestMatchFirst(t *testing.T) {
	toks, diags := lex(t, "-> => /% *. .. :: ==")
	require.False(t, diags.HasErrors())
	require.Len(t, toks, 7)

	kinds := []token.Kind{token.Arrow, token.FatArrow, token.SlashPct, token.StarDot, token.DotDot, token.ColonColon, token.EqEq}
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestForbiddenOperatorsAreRejected(t *testing.T) {
	toks, diags := lex(t, "5 - 3")
	require.True(t, diags.HasErrors())
	ds := diags.Diagnostics()
	require.Len(t, ds, 1)
	assert.Equal(t, "ForbiddenOperator", ds[0].Code)
	assert.Contains(t, ds[0].Help, "sub(a, b)")
	// Lexing continues past the bad token.
	require.Len(t, toks, 3)
	assert.Equal(t, token.Minus, toks[1].Kind)
}

func TestLineCommentsAreSkipped(t *testing.T) {
	toks, diags := lex(t, "let a = 1 // comment\nlet b = 2")
	require.False(t, diags.HasErrors())
	// No Comment tokens are emitted; comments are pure trivia here.
	for _, tk := range toks {
		assert.NotEqual(t, token.Comment, tk.Kind)
	}
}

func TestUnexpectedCharacterRecoversAndContinues(t *testing.T) {
	toks, diags := lex(t, "let a @ = 1")
	require.True(t, diags.HasErrors())
	ds := diags.Diagnostics()
	require.Len(t, ds, 1)
	assert.Equal(t, "UnexpectedCharacter", ds[0].Code)
	// let, a, =, 1  -- the '@' itself produced no token.
	require.Len(t, toks, 4)
}

func TestIntegerOutOfRange(t *testing.T) {
	big := ""
	for i := 0; i < 101; i++ {
		big += "9"
	}

	_, diags := lex(t, big)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "IntegerOutOfRange", diags.Diagnostics()[0].Code)
}

func TestAttributeMarker(t *testing.T) {
	toks, diags := lex(t, "#[test]")
	require.False(t, diags.HasErrors())
	require.Len(t, toks, 4)
	assert.Equal(t, token.Hash, toks[0].Kind)
	assert.Equal(t, token.LBracket, toks[1].Kind)
	assert.Equal(t, token.Ident, toks[2].Kind)
	assert.Equal(t, token.RBracket, toks[3].Kind)
}
