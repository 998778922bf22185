// Copyright Consensys Software Inc.
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
	"os"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text (excluding the line terminator).
type Line struct {
	// Original text
	text string
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p Line) String() string {
	return p.span.Text(p.text)
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p Line) Start() int {
	return p.span.start
}

// Span returns the span of this line in the original text.
func (p Line) Span() Span {
	return p.span
}

// Length returns the number of bytes in this line.
func (p Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents string
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, string(bytes)}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() string {
	return s.contents
}

// Lines splits this file into its physical lines.
func (s *File) Lines() []Line {
	return SplitLines(s.contents)
}

// SplitLines breaks a given text into its physical lines.  A trailing line
// terminator does not give rise to an additional (empty) line, though an empty
// text yields a single empty line.  Carriage returns preceding a newline are
// excluded from the line.
func SplitLines(text string) []Line {
	var (
		lines []Line
		start = 0
		num   = 1
	)
	//
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, Line{text, NewSpan(start, trimCarriage(text, start, i)), num})
			num++
			start = i + 1
		}
	}
	// Handle the final line
	if start < len(text) || len(lines) == 0 {
		lines = append(lines, Line{text, NewSpan(start, trimCarriage(text, start, len(text))), num})
	}
	//
	return lines
}

// FindEnclosingLine determines the line in a given text which encloses a given
// offset.  Observe that, if the offset is beyond the bounds of the text then
// the last physical line is returned.
func FindEnclosingLine(text string, offset int) Line {
	// Num records the line number, counting from 1.
	num := 1
	// Start records the starting offset of the current line.
	start := 0
	// Find the line.
	for i := 0; i < len(text) && i < offset; i++ {
		if text[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	end := findEndOfLine(start, text)
	//
	return Line{text, NewSpan(start, trimCarriage(text, start, end)), num}
}

// Find the end of the enclosing line
func findEndOfLine(index int, text string) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}

// Drop a carriage return immediately before the end of a line.
func trimCarriage(text string, start int, end int) int {
	if end > start && text[end-1] == '\r' {
		return end - 1
	}
	//
	return end
}
