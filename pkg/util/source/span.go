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

import "fmt"

// Span represents a contiguous slice of the original text.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical (byte) indices.  This allows us to do certain things, such as
// report buffer offsets back to an editor, determine the enclosing line, etc.
type Span struct {
	// The first byte of this span in the original text.
	start int
	// One past the final byte of this span in the original text.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original text.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original text.
func (p Span) End() int {
	return p.end
}

// Length returns the number of bytes covered by this span in the original
// text.
func (p Span) Length() int {
	return p.end - p.start
}

// Contains checks whether a given offset falls within this span.  The end of
// the span is exclusive.
func (p Span) Contains(offset int) bool {
	return p.start <= offset && offset < p.end
}

// Overlaps checks whether this span shares at least one position with the
// half-open range [start,end).
func (p Span) Overlaps(start int, end int) bool {
	return p.start < end && start < p.end
}

// Shift returns this span moved forward by a given amount.
func (p Span) Shift(delta int) Span {
	return Span{p.start + delta, p.end + delta}
}

// Text extracts the portion of a given string covered by this span.
func (p Span) Text(text string) string {
	return text[p.start:p.end]
}

func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}
