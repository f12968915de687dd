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
	"fmt"
	"strings"
)

// TypeMismatch reports an expression whose static type did not match what
// its context required.
type TypeMismatch struct {
	Expected string
	Got      string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// UndefinedIdentifier reports a reference to a name with no visible binding.
type UndefinedIdentifier struct{ Name string }

func (e *UndefinedIdentifier) Error() string { return fmt.Sprintf("undefined identifier %q", e.Name) }

// WrongArity reports a call with the wrong number of arguments.
type WrongArity struct {
	Func     string
	Expected int
	Got      int
}

func (e *WrongArity) Error() string {
	return fmt.Sprintf("%q expects %d argument(s), got %d", e.Func, e.Expected, e.Got)
}

// ImmutableAssignment reports an assignment to a binding not declared `mut`.
type ImmutableAssignment struct{ Name string }

func (e *ImmutableAssignment) Error() string {
	return fmt.Sprintf("cannot assign to %q: not declared mut", e.Name)
}

// RecursiveCall reports a cycle in the call graph.
type RecursiveCall struct{ Path []string }

func (e *RecursiveCall) Error() string {
	return fmt.Sprintf("recursive call: %s", strings.Join(e.Path, " -> "))
}

// NonExhaustiveMatch reports a match with no wildcard/bind arm covering the
// remaining cases.
type NonExhaustiveMatch struct{}

func (e *NonExhaustiveMatch) Error() string { return "match is not exhaustive" }

// MissingBoundAnnotation reports a `for` loop whose range is not a compile
// time constant and which has no `bounded N` clause.
type MissingBoundAnnotation struct{}

func (e *MissingBoundAnnotation) Error() string {
	return "loop range is not constant; add a 'bounded N' annotation"
}

// PureFunctionViolation reports a `#[pure]` function performing I/O,
// storage, or event operations, or calling a non-pure function.
type PureFunctionViolation struct {
	Func   string
	Reason string
}

func (e *PureFunctionViolation) Error() string {
	return fmt.Sprintf("pure function %q violates purity: %s", e.Func, e.Reason)
}

// AmbiguousGenericCall reports a call to a size-generic function whose size
// arguments could not be inferred from its arguments or an explicit list.
type AmbiguousGenericCall struct{ Func string }

func (e *AmbiguousGenericCall) Error() string {
	return fmt.Sprintf("cannot infer size arguments for generic call to %q", e.Func)
}

// IntrinsicOutsideStdLib reports `#[intrinsic(...)]` used outside the
// standard-library module tree.
type IntrinsicOutsideStdLib struct{ Func string }

func (e *IntrinsicOutsideStdLib) Error() string {
	return fmt.Sprintf("%q: #[intrinsic] is only valid within the standard library", e.Func)
}
