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
package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Renderer prints diagnostics with a source excerpt, a span underline, a
// severity label and an optional help line, colored by severity.  Terminal
// width is probed once (mirroring the teacher's pkg/util/termio approach of
// querying golang.org/x/term) so excerpts longer than the terminal are
// trimmed rather than wrapped unpredictably.
type Renderer struct {
	files map[FileID]*File
	width int
	red   func(a ...interface{}) string
	amber func(a ...interface{}) string
	bold  func(a ...interface{}) string
}

// NewRenderer constructs a Renderer over the given file set.  fd is the
// output file descriptor used to probe terminal width; pass -1 (or any
// non-terminal fd) to fall back to an 80-column default.
func NewRenderer(files []*File, fd int) *Renderer {
	byID := make(map[FileID]*File, len(files))
	for _, f := range files {
		byID[f.ID()] = f
	}

	width := 80

	if fd >= 0 {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return &Renderer{
		files: byID,
		width: width,
		red:   color.New(color.FgRed, color.Bold).SprintFunc(),
		amber: color.New(color.FgYellow, color.Bold).SprintFunc(),
		bold:  color.New(color.Bold).SprintFunc(),
	}
}

// Render writes a human-readable rendering of d to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) {
	label := r.amber(d.Severity.String())
	if d.Severity == SeverityError {
		label = r.red(d.Severity.String())
	}

	fmt.Fprintf(w, "%s[%s]: %s\n", label, d.Code, d.Message)

	f, ok := r.files[d.Span.File]
	if !ok {
		return
	}

	line := f.Line(d.Span.Line)
	if len(line) > r.width {
		line = line[:r.width]
	}

	fmt.Fprintf(w, "  --> %s:%d:%d\n", f.Name(), d.Span.Line, d.Span.Column)
	fmt.Fprintf(w, "   | %s\n", line)

	underlineLen := max(1, d.Span.Length())
	fmt.Fprintf(w, "   | %s%s\n", strings.Repeat(" ", max(0, d.Span.Column-1)), strings.Repeat("^", underlineLen))

	if d.Help != "" {
		fmt.Fprintf(w, "   = %s: %s\n", r.bold("help"), d.Help)
	}
}

// RenderAll renders every diagnostic in the (already sorted) slice.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		r.Render(w, d)
	}
}
