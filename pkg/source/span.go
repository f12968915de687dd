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

// Package source provides source positions, source files and the shared
// diagnostic collector used by every phase of the compiler.
package source

import "fmt"

// FileID uniquely identifies a source file within one compile invocation.
type FileID uint32

// Span identifies a contiguous slice of one source file.  Spans are carried
// by every AST and IR node so diagnostics can always point back to source.
type Span struct {
	File   FileID
	Start  int
	End    int
	Line   int
	Column int
}

// NewSpan constructs a span, checking the basic invariant that start <= end.
func NewSpan(file FileID, start, end, line, column int) Span {
	if start > end {
		panic("invalid span: start > end")
	}

	return Span{file, start, end, line, column}
}

// Length returns the number of runes covered by this span.
func (s Span) Length() int {
	return s.End - s.Start
}

// String renders a span as "file:line:column".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d", s.File, s.Line, s.Column)
}

// Before reports whether s sorts strictly before o, ordering first by file
// then by starting rune offset.  Used to keep diagnostics deterministic.
func (s Span) Before(o Span) bool {
	if s.File != o.File {
		return s.File < o.File
	}

	return s.Start < o.Start
}
