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

import "os"

// File represents one source file, held entirely in memory as runes so
// offsets and line/column tracking stay simple.  Every offset in this
// package is a rune index into the file, not a byte offset.
type File struct {
	id       FileID
	name     string
	contents []rune
	// lineStarts[i] is the rune offset of the first character of line i+1.
	lineStarts []int
}

// NewFile constructs a source file from raw bytes, precomputing line start
// offsets for span-to-line/column translation.
func NewFile(id FileID, name string, bytes []byte) *File {
	contents := []rune(string(bytes))
	starts := []int{0}

	for i, r := range contents {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &File{id, name, contents, starts}
}

// ReadFile reads a file from disk into a File.
func ReadFile(id FileID, name string) (*File, error) {
	bytes, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return NewFile(id, name, bytes), nil
}

// ID returns this file's identifier.
func (f *File) ID() FileID { return f.id }

// Name returns the file's name (typically a path).
func (f *File) Name() string { return f.name }

// Contents returns the full rune slice of this file.
func (f *File) Contents() []rune { return f.contents }

// Len returns the number of runes in this file.
func (f *File) Len() int { return len(f.contents) }

// LineColumn computes the 1-indexed line and column for a rune offset.
func (f *File) LineColumn(offset int) (line, column int) {
	// binary search for the last lineStart <= offset
	lo, hi := 0, len(f.lineStarts)-1

	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo + 1, offset - f.lineStarts[lo] + 1
}

// Span constructs a Span for [start,end) within this file, filling in
// line/column from start.
func (f *File) Span(start, end int) Span {
	line, column := f.LineColumn(start)
	return NewSpan(f.id, start, end, line, column)
}

// Line returns the raw text of the 1-indexed line number, or "" if there is
// no such line.
func (f *File) Line(number int) string {
	if number < 1 || number > len(f.lineStarts) {
		return ""
	}

	start := f.lineStarts[number-1]
	end := len(f.contents)

	if number < len(f.lineStarts) {
		end = f.lineStarts[number] - 1
	}

	if end < start {
		end = start
	}

	return string(f.contents[start:end])
}
