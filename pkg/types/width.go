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
	"github.com/trident-lang/trident/pkg/ast"
)

// Width returns a type's size in field elements, data-driven by the active
// target's digest width and extension degree so a different target's
// values reflow automatically (spec.md §4.4 "Width inference").
func (c *Checker) Width(t ast.Type) int {
	switch v := t.(type) {
	case ast.FieldType:
		return 1
	case ast.BoolType:
		return 1
	case ast.U32Type:
		return 1
	case ast.DigestType:
		return c.cfg.DigestWidth
	case ast.ExtFieldType:
		return c.cfg.ExtensionDegree
	case ast.ArrayType:
		size, ok := c.EvalSizeExpr(v.Size, nil)
		if !ok {
			return 0
		}

		return int(size) * c.Width(v.Element)
	case ast.TupleType:
		total := 0
		for _, e := range v.Elements {
			total += c.Width(e)
		}

		return total
	case ast.NamedType:
		st, ok := c.lookupStruct(v.Path)
		if !ok {
			return 0
		}

		total := 0
		for _, f := range st.Fields {
			total += c.Width(f.Type)
		}

		return total
	default:
		return 0
	}
}

// typeName renders a type for diagnostic messages.
func typeName(t ast.Type) string {
	switch v := t.(type) {
	case ast.FieldType:
		return "Field"
	case ast.BoolType:
		return "Bool"
	case ast.U32Type:
		return "U32"
	case ast.DigestType:
		return "Digest"
	case ast.ExtFieldType:
		return "XField"
	case ast.ArrayType:
		return "[" + typeName(v.Element) + "; ...]"
	case ast.TupleType:
		s := "("

		for i, e := range v.Elements {
			if i > 0 {
				s += ", "
			}

			s += typeName(e)
		}

		return s + ")"
	case ast.NamedType:
		return joinPath(v.Path)
	default:
		return "?"
	}
}

func joinPath(path []string) string {
	s := ""
	for i, p := range path {
		if i > 0 {
			s += "."
		}

		s += p
	}

	return s
}

func sameType(a, b ast.Type) bool {
	return typeName(a) == typeName(b)
}
