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

// Expr is the tagged union of expressions (spec.md §3 "Expr").
type Expr interface {
	Node
	isExpr()
}

// Literal is an integer or boolean constant.
type Literal struct {
	SpanVal source.Span
	// Digits holds the literal's decimal digits for integer literals; Bool
	// literals set IsBool and Value to true or false.
	Digits string
	IsBool bool
	Value  bool
}

// Variable is a (possibly dotted) reference to a local, const or function.
type Variable struct {
	SpanVal source.Span
	Path    []string
}

// BinOp is `lhs op rhs` for one of the legal operators in spec.md §4.4.
type BinOp struct {
	SpanVal source.Span
	Op      string
	Lhs     Expr
	Rhs     Expr
}

// Call is `path::<generic_args>(args)` or `path(args)`.
type Call struct {
	SpanVal     source.Span
	Path        []string
	GenericArgs []SizeExpr
	Args        []Expr
}

// FieldInit is one `name: expr` entry in a struct initializer.
type FieldInit struct {
	SpanVal source.Span
	Name    string
	Value   Expr
}

// StructInit is `Path { f1: v1, ... }`.
type StructInit struct {
	SpanVal source.Span
	Path    []string
	Fields  []FieldInit
}

// ArrayInit is `[e1, e2, ...]`.
type ArrayInit struct {
	SpanVal  source.Span
	Elements []Expr
}

// TupleExpr is `(e1, e2, ...)`.
type TupleExpr struct {
	SpanVal  source.Span
	Elements []Expr
}

// FieldAccess is `base.field`.
type FieldAccess struct {
	SpanVal source.Span
	Base    Expr
	Field   string
}

// Index is `base[index]`.
type Index struct {
	SpanVal source.Span
	Base    Expr
	Index   Expr
}

// Block is `{ stmts; tail? }`; an empty block has width zero (spec.md §4.5).
type Block struct {
	SpanVal source.Span
	Stmts   []Stmt
	Tail    Expr // nil if the block has no tail expression
}

// If is `if cond { then } else { else_ }` used as an expression.
type If struct {
	SpanVal source.Span
	Cond    Expr
	Then    Block
	Else    *Block // nil for a statement-position if with no else
}

// MatchArm is one `pattern => block` arm.
type MatchArm struct {
	SpanVal source.Span
	Pattern Pattern
	Body    Block
}

// MatchExpr is `match scrutinee { arms }` used as an expression.
type MatchExpr struct {
	SpanVal   source.Span
	Scrutinee Expr
	Arms      []MatchArm
}

func (Literal) isExpr()     {}
func (Variable) isExpr()    {}
func (BinOp) isExpr()       {}
func (Call) isExpr()        {}
func (StructInit) isExpr()  {}
func (ArrayInit) isExpr()   {}
func (TupleExpr) isExpr()   {}
func (FieldAccess) isExpr() {}
func (Index) isExpr()       {}
func (Block) isExpr()       {}
func (If) isExpr()          {}
func (MatchExpr) isExpr()   {}

func (e Literal) Span() source.Span     { return e.SpanVal }
func (e Variable) Span() source.Span    { return e.SpanVal }
func (e BinOp) Span() source.Span       { return e.SpanVal }
func (e Call) Span() source.Span        { return e.SpanVal }
func (e StructInit) Span() source.Span  { return e.SpanVal }
func (e ArrayInit) Span() source.Span   { return e.SpanVal }
func (e TupleExpr) Span() source.Span   { return e.SpanVal }
func (e FieldAccess) Span() source.Span { return e.SpanVal }
func (e Index) Span() source.Span       { return e.SpanVal }
func (e Block) Span() source.Span       { return e.SpanVal }
func (e If) Span() source.Span          { return e.SpanVal }
func (e MatchExpr) Span() source.Span   { return e.SpanVal }

// ===================================================================
// Patterns
// ===================================================================

// Pattern is the tagged union used in match arms (spec.md §6 grammar).
type Pattern interface {
	Node
	isPattern()
}

// WildcardPattern is `_`.
type WildcardPattern struct{ SpanVal source.Span }

// LiteralPattern matches an exact literal value.
type LiteralPattern struct {
	SpanVal source.Span
	Lit     Literal
}

// BindPattern binds the scrutinee to a new variable name.
type BindPattern struct {
	SpanVal source.Span
	Name    string
}

// FieldPattern is one field entry within a StructPattern: `f: pat`, or a
// bare `f` shorthand which binds a variable of the same name, or `_`.
type FieldPattern struct {
	SpanVal source.Span
	Name    string
	Pattern Pattern // nil for the bare-shorthand form
}

// StructPattern destructures a struct by field name.
type StructPattern struct {
	SpanVal source.Span
	Path    []string
	Fields  []FieldPattern
}

func (WildcardPattern) isPattern() {}
func (LiteralPattern) isPattern()  {}
func (BindPattern) isPattern()     {}
func (StructPattern) isPattern()   {}

func (p WildcardPattern) Span() source.Span { return p.SpanVal }
func (p LiteralPattern) Span() source.Span  { return p.SpanVal }
func (p BindPattern) Span() source.Span     { return p.SpanVal }
func (p StructPattern) Span() source.Span   { return p.SpanVal }
