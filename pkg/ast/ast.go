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

// Package ast defines Trident's abstract syntax tree (spec.md §3).  Every
// node carries a source span for diagnostics.  Variants are modeled as
// distinct Go structs implementing small marker interfaces rather than a
// single tagged union, following the teacher's struct-per-variant style in
// pkg/corset/ast.
package ast

import "github.com/trident-lang/trident/pkg/source"

// Node is implemented by every AST node.
type Node interface {
	Span() source.Span
}

// Visibility distinguishes private (module-local) from public items.
type Visibility uint8

const (
	// Private items are visible only within their defining module.
	Private Visibility = iota
	// Public items are visible to importing modules.
	Public
)

// ===================================================================
// Attributes
// ===================================================================

// Attribute is `#[name]` or `#[name(arg)]` attached to an item or statement.
type Attribute struct {
	SpanVal source.Span
	Name    string
	Arg     string // empty if no parenthesized argument
}

// Span implements Node.
func (a Attribute) Span() source.Span { return a.SpanVal }

// HasArg reports whether this attribute carries a parenthesized argument.
func (a Attribute) HasArg() bool { return a.Arg != "" }

// ===================================================================
// Types
// ===================================================================

// Type is the tagged union of type expressions (spec.md §3 "Type").
type Type interface {
	Node
	isType()
}

// FieldType is the prime field element type.
type FieldType struct{ SpanVal source.Span }

// BoolType is the boolean type.
type BoolType struct{ SpanVal source.Span }

// U32Type is the 32-bit unsigned integer type.
type U32Type struct{ SpanVal source.Span }

// DigestType is a hash digest, width fixed by the target configuration.
type DigestType struct{ SpanVal source.Span }

// ExtFieldType is an extension-field element.
type ExtFieldType struct{ SpanVal source.Span }

// ArrayType is `[Element; SizeExpr]`; Size may reference size-generic
// parameters and is evaluated after monomorphization.
type ArrayType struct {
	SpanVal source.Span
	Element Type
	Size    SizeExpr
}

// TupleType is `(T1, T2, ...)`.
type TupleType struct {
	SpanVal  source.Span
	Elements []Type
}

// NamedType refers to a user-defined struct/const/module-qualified type by
// dotted path, e.g. `shape.Point` or `Point`.
type NamedType struct {
	SpanVal source.Span
	Path    []string
}

func (FieldType) isType()    {}
func (BoolType) isType()     {}
func (U32Type) isType()      {}
func (DigestType) isType()   {}
func (ExtFieldType) isType() {}
func (ArrayType) isType()    {}
func (TupleType) isType()    {}
func (NamedType) isType()    {}

// Span implements Node for each Type variant.
func (t FieldType) Span() source.Span    { return t.SpanVal }
func (t BoolType) Span() source.Span     { return t.SpanVal }
func (t U32Type) Span() source.Span      { return t.SpanVal }
func (t DigestType) Span() source.Span   { return t.SpanVal }
func (t ExtFieldType) Span() source.Span { return t.SpanVal }
func (t ArrayType) Span() source.Span    { return t.SpanVal }
func (t TupleType) Span() source.Span    { return t.SpanVal }
func (t NamedType) Span() source.Span    { return t.SpanVal }

// SizeExpr is the symbolic expression tree over size-generic parameters
// the parser produces for array sizes (`[Field; M + N]`); the type checker
// evaluates it with monomorphization bindings (spec.md §4.2, §4.4).
type SizeExpr interface {
	Node
	isSizeExpr()
}

// SizeLiteral is a constant integer size.
type SizeLiteral struct {
	SpanVal source.Span
	Value   uint64
}

// SizeParam references a size-generic parameter by name (e.g. `N`).
type SizeParam struct {
	SpanVal source.Span
	Name    string
}

// SizeBinOp combines two size expressions with `+` or `*`.
type SizeBinOp struct {
	SpanVal source.Span
	Op      string // "+" or "*"
	Lhs     SizeExpr
	Rhs     SizeExpr
}

func (SizeLiteral) isSizeExpr() {}
func (SizeParam) isSizeExpr()   {}
func (SizeBinOp) isSizeExpr()   {}

func (s SizeLiteral) Span() source.Span { return s.SpanVal }
func (s SizeParam) Span() source.Span   { return s.SpanVal }
func (s SizeBinOp) Span() source.Span   { return s.SpanVal }

// ===================================================================
// Items
// ===================================================================

// Item is the tagged union of top-level declarations (spec.md §3 "Item").
type Item interface {
	Node
	isItem()
}

// Param is one function parameter.
type Param struct {
	SpanVal source.Span
	Name    string
	Type    Type
}

// Function is `fn name<generics>(params) -> return_type { body }`.
type Function struct {
	SpanVal    source.Span
	Name       string
	Generics   []string // size-generic parameter names
	Params     []Param
	ReturnType Type // nil if the function returns nothing
	Body       Block
	Visibility Visibility
	Attributes []Attribute
}

// Field is one struct field.
type Field struct {
	SpanVal    source.Span
	Name       string
	Type       Type
	Visibility Visibility
}

// Struct is `struct Name { fields }`.
type Struct struct {
	SpanVal    source.Span
	Name       string
	Fields     []Field
	Visibility Visibility
}

// Const is `const Name: Type = expr`, fully evaluated at check time.
type Const struct {
	SpanVal    source.Span
	Name       string
	Type       Type
	Value      Expr
	Visibility Visibility
}

// Event is `event Name { fields }`, emitted with `emit`/`seal`.
type Event struct {
	SpanVal source.Span
	Name    string
	Fields  []Field
}

// IoKind distinguishes public/secret and input/output/ram declarations.
type IoKind uint8

// IoDecl kinds, per the grammar's io_decl production.
const (
	IoPubInput IoKind = iota
	IoPubOutput
	IoPubRam
	IoSecInput
	IoSecOutput
	IoSecRam
)

// IoDecl is a program-level I/O declaration (`pub input: Field`, etc.).
type IoDecl struct {
	SpanVal source.Span
	Kind    IoKind
	Type    Type
}

func (Function) isItem() {}
func (Struct) isItem()   {}
func (Const) isItem()    {}
func (Event) isItem()    {}
func (IoDecl) isItem()   {}

func (f Function) Span() source.Span { return f.SpanVal }
func (s Struct) Span() source.Span   { return s.SpanVal }
func (c Const) Span() source.Span    { return c.SpanVal }
func (e Event) Span() source.Span    { return e.SpanVal }
func (i IoDecl) Span() source.Span   { return i.SpanVal }

// IsPure reports whether f is tagged `#[pure]`.
func (f Function) IsPure() bool {
	return f.HasAttribute("pure")
}

// IsTest reports whether f is tagged `#[test]`.
func (f Function) IsTest() bool {
	return f.HasAttribute("test")
}

// Intrinsic returns the mapped native instruction name and true if f is
// tagged `#[intrinsic(name)]`.
func (f Function) Intrinsic() (string, bool) {
	for _, a := range f.Attributes {
		if a.Name == "intrinsic" {
			return a.Arg, true
		}
	}

	return "", false
}

// CfgFlag returns the flag name and true if f is tagged `#[cfg(flag)]`.
func (f Function) CfgFlag() (string, bool) {
	for _, a := range f.Attributes {
		if a.Name == "cfg" {
			return a.Arg, true
		}
	}

	return "", false
}

// HasAttribute reports whether f carries an attribute with the given name.
func (f Function) HasAttribute(name string) bool {
	for _, a := range f.Attributes {
		if a.Name == name {
			return true
		}
	}

	return false
}

// ===================================================================
// File
// ===================================================================

// FileKind distinguishes `program NAME` from `module NAME`.
type FileKind uint8

const (
	// ProgramFile has an entry point and compiles with a preamble.
	ProgramFile FileKind = iota
	// ModuleFile has no entry point; only public items are emitted.
	ModuleFile
)

// Use is one `use a.b.c` import directive.
type Use struct {
	SpanVal source.Span
	Path    []string
}

func (u Use) Span() source.Span { return u.SpanVal }

// File is the parsed result of one source file: its declared kind, name,
// imports and items, in source order.
type File struct {
	SpanVal source.Span
	Kind    FileKind
	Name    string
	Uses    []Use
	Items   []Item
}

func (f File) Span() source.Span { return f.SpanVal }
