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

// Package token defines the tagged token kinds produced by the lexer
// (spec.md §3 "Token", §4.1 "Lexer").
package token

import "github.com/trident-lang/trident/pkg/source"

// Kind tags a lexeme's syntactic category.
type Kind uint16

// Token kinds.  Keywords, punctuation (including multi-character tokens)
// and literal categories per spec.md §4.1 and the grammar in §6.
const (
	EOF Kind = iota
	Ident
	IntLiteral
	Comment

	// Keywords
	KwProgram
	KwModule
	KwUse
	KwFn
	KwPub
	KwSec
	KwConst
	KwStruct
	KwEvent
	KwLet
	KwMut
	KwIf
	KwElse
	KwFor
	KwIn
	KwBounded
	KwMatch
	KwReturn
	KwAsm
	KwEmit
	KwSeal
	KwAssert
	KwAssertEq
	KwAssertDigest
	KwTrue
	KwFalse
	KwInput
	KwOutput
	KwRam

	// Primitive type names
	KwField
	KwBool
	KwU32
	KwDigest
	KwXField

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	ColonColon
	Semi
	Dot
	DotDot
	Arrow    // ->
	FatArrow // =>
	Eq       // =
	EqEq     // ==
	Plus     // +
	Star     // *
	StarDot  // *.
	Amp      // &
	Caret    // ^
	SlashPct // /%
	Lt       // <
	Underscore
	Hash // # (attribute marker prefix, '#[')

	// Forbidden operator kinds: recognized but never valid as operators
	// (Gt also closes a generic list). Carried as distinct kinds so the
	// parser/lexer can report a targeted diagnostic instead of a generic
	// "unexpected character".
	Minus      // -
	Slash      // /
	BangEq     // !=
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	AmpAmp     // &&
	PipePipe   // ||
	Bang       // !
)

// Keywords maps identifier text to its reserved keyword Kind.
var Keywords = map[string]Kind{
	"program":       KwProgram,
	"module":        KwModule,
	"use":           KwUse,
	"fn":            KwFn,
	"pub":           KwPub,
	"sec":           KwSec,
	"const":         KwConst,
	"struct":        KwStruct,
	"event":         KwEvent,
	"let":           KwLet,
	"mut":           KwMut,
	"if":            KwIf,
	"else":          KwElse,
	"for":           KwFor,
	"in":            KwIn,
	"bounded":       KwBounded,
	"match":         KwMatch,
	"return":        KwReturn,
	"asm":           KwAsm,
	"emit":          KwEmit,
	"seal":          KwSeal,
	"assert":        KwAssert,
	"assert_eq":     KwAssertEq,
	"assert_digest": KwAssertDigest,
	"true":          KwTrue,
	"false":         KwFalse,
	"input":         KwInput,
	"output":        KwOutput,
	"ram":           KwRam,
	"Field":         KwField,
	"Bool":          KwBool,
	"U32":           KwU32,
	"Digest":        KwDigest,
	"XField":        KwXField,
	"_":             Underscore,
}

// ForbiddenSuggestions maps a forbidden operator's literal text to the
// standard-library replacement the lexer suggests in its diagnostic help
// line, per spec.md §4.1 "Forbidden operators".
var ForbiddenSuggestions = map[string]string{
	"-":  "use sub(a, b) instead of a - b",
	"/":  "use a /% b (DivMod) instead of a / b",
	"!=": "use !(a == b) is also forbidden; restructure with match/if on a == b",
	">":  "use b < a instead of a > b",
	"<=": "use !(b < a); restructure the condition using <",
	">=": "use !(a < b); restructure the condition using <",
	"&&": "restructure as nested if, there is no boolean and operator",
	"||": "restructure as nested match arms, there is no boolean or operator",
	"!":  "restructure using match/if on the boolean value",
}

// Token is one lexeme: its kind, its source span, and (for identifiers and
// integer literals) its literal text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether k is one of the reserved keyword kinds.
func IsKeyword(k Kind) bool {
	return k >= KwProgram && k <= KwXField
}
