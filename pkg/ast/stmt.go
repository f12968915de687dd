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
package ast

import "github.com/trident-lang/trident/pkg/source"

// Stmt is the tagged union of statements (spec.md §3 "Stmt").
type Stmt interface {
	Node
	isStmt()
}

// Let is `let mut? name: type? = value`.
type Let struct {
	SpanVal source.Span
	Mutable bool
	Name    string
	Type    Type // nil if omitted; inferred from Value
	Value   Expr
}

// Place is the left-hand side of an assignment: a variable, a field access,
// or an index expression.
type Place interface {
	Node
	isPlace()
}

func (Variable) isPlace()    {}
func (FieldAccess) isPlace() {}
func (Index) isPlace()       {}

// Assign is `place = value`.
type Assign struct {
	SpanVal source.Span
	PlaceV  Place
	Value   Expr
}

// For is `for var in start..end bounded? B { body }`.  Bound is nil when no
// `bounded` annotation was given; the checker then reports
// "MissingBoundAnnotation" unless both range ends are constants.
type For struct {
	SpanVal source.Span
	Var     string
	Start   Expr
	End     Expr
	Bound   *uint64 // nil if absent
	Body    Block
}

// Match is a match used in statement position (desugars identically to
// MatchExpr but drops any value).
type Match struct {
	SpanVal   source.Span
	Scrutinee Expr
	Arms      []MatchArm
}

// EmitField is one `name: expr` entry in an `emit`/`seal` statement.
type EmitField struct {
	Name  string
	Value Expr
}

// Emit is `emit EventName { fields }` or, when Sealed is true, `seal
// EventName { fields }`.
type Emit struct {
	SpanVal source.Span
	Event   []string
	Fields  []EmitField
	Sealed  bool
}

// AssertKind distinguishes assert / assert_eq / assert_digest.
type AssertKind uint8

// Assert kinds.
const (
	AssertPlain AssertKind = iota
	AssertEq
	AssertDigest
)

// Assert is `assert(...)`, `assert_eq(a, b)` or `assert_digest(a, b)`.
type Assert struct {
	SpanVal source.Span
	Kind    AssertKind
	Args    []Expr
}

// InlineAsm is `asm(target_tag?, effect?) { raw_body }`.  The parser does
// not validate raw_body; it is preserved verbatim (spec.md §4.2).
type InlineAsm struct {
	SpanVal     source.Span
	TargetTag   string // empty if untagged (applies to every target)
	StackEffect int    // signed net stack effect; 0 if omitted
	HasEffect   bool
	Body        string
}

// Return is `return expr?`.
type Return struct {
	SpanVal source.Span
	Value   Expr // nil for a bare `return`
}

// ExprStmt is an expression evaluated for its side effects (its value, if
// any, is discarded).
type ExprStmt struct {
	SpanVal source.Span
	Value   Expr
}

func (Let) isStmt()       {}
func (Assign) isStmt()    {}
func (For) isStmt()       {}
func (Match) isStmt()     {}
func (Emit) isStmt()      {}
func (Assert) isStmt()    {}
func (InlineAsm) isStmt() {}
func (Return) isStmt()    {}
func (ExprStmt) isStmt()  {}

func (s Let) Span() source.Span       { return s.SpanVal }
func (s Assign) Span() source.Span    { return s.SpanVal }
func (s For) Span() source.Span       { return s.SpanVal }
func (s Match) Span() source.Span     { return s.SpanVal }
func (s Emit) Span() source.Span      { return s.SpanVal }
func (s Assert) Span() source.Span    { return s.SpanVal }
func (s InlineAsm) Span() source.Span { return s.SpanVal }
func (s Return) Span() source.Span    { return s.SpanVal }
func (s ExprStmt) Span() source.Span  { return s.SpanVal }
