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

	"golang.org/x/exp/slices"
)

// Severity classifies a diagnostic.
type Severity uint8

const (
	// SeverityWarning indicates a non-fatal diagnostic.
	SeverityWarning Severity = iota
	// SeverityError indicates a fatal diagnostic; the CLI exits 1 if any is recorded.
	SeverityError
)

// String renders a severity for display.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// Diagnostic is a single structured error or warning, always associated with
// a span in one source file.  Every phase of the compiler accumulates
// diagnostics into a shared Collector (spec.md §7's "shared diagnostic
// collector") rather than failing eagerly.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Span     Span
	Help     string
}

// Error implements the standard error interface so a Diagnostic can be
// returned anywhere a plain error is expected.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Code, d.Message)
}

// Collector accumulates diagnostics across phases.  It never itself aborts
// a phase; callers decide whether to short-circuit based on HasErrors.
type Collector struct {
	diags []Diagnostic
}

// NewCollector constructs an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Error records a fatal diagnostic.
func (c *Collector) Error(code, message string, span Span) {
	c.diags = append(c.diags, Diagnostic{SeverityError, code, message, span, ""})
}

// ErrorWithHelp records a fatal diagnostic with a help suggestion.
func (c *Collector) ErrorWithHelp(code, message, help string, span Span) {
	c.diags = append(c.diags, Diagnostic{SeverityError, code, message, span, help})
}

// Warn records a non-fatal diagnostic.
func (c *Collector) Warn(code, message string, span Span) {
	c.diags = append(c.diags, Diagnostic{SeverityWarning, code, message, span, ""})
}

// Add records a diagnostic constructed elsewhere (e.g. by a sub-collector).
func (c *Collector) Add(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// Merge appends another collector's diagnostics onto this one.
func (c *Collector) Merge(o *Collector) {
	if o == nil {
		return
	}

	c.diags = append(c.diags, o.diags...)
}

// HasErrors reports whether any SeverityError diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Diagnostics returns all recorded diagnostics in deterministic order,
// sorted by (FileID, Span.Start) per the determinism requirement of
// spec.md §5 and §7.
func (c *Collector) Diagnostics() []Diagnostic {
	out := slices.Clone(c.diags)
	slices.SortFunc(out, func(a, b Diagnostic) int {
		if a.Span.File != b.Span.File {
			return int(a.Span.File) - int(b.Span.File)
		}

		return a.Span.Start - b.Span.Start
	})

	return out
}
