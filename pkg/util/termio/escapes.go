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
package termio

import (
	"fmt"
	"strings"
)

// TERM_BLACK represents black
const TERM_BLACK = uint(0)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_MAGENTA represents magenta
const TERM_MAGENTA = uint(5)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape is a sequence of SGR attributes (e.g. bold, or a foreground
// colour) which can be applied to some text shown in a terminal.
type AnsiEscape struct {
	attributes []uint
}

// NewAnsiEscape constructs an escape with no attributes.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// Bold adds the bold attribute.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with(1)
}

// Underline adds the underline attribute.
func (p AnsiEscape) Underline() AnsiEscape {
	return p.with(4)
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(30 + col)
}

// IsEmpty checks whether this escape has any attributes.
func (p AnsiEscape) IsEmpty() bool {
	return len(p.attributes) == 0
}

// Build constructs the final escape, or the empty string if there are no
// attributes.
func (p AnsiEscape) Build() string {
	if p.IsEmpty() {
		return ""
	}
	//
	codes := make([]string, len(p.attributes))
	//
	for i, a := range p.attributes {
		codes[i] = fmt.Sprintf("%d", a)
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";"))
}

// Wrap a given piece of text in this escape, such that all attributes are reset
// afterwards.
func (p AnsiEscape) Wrap(text string) string {
	if p.IsEmpty() {
		return text
	}
	//
	return fmt.Sprintf("%s%s%s", p.Build(), text, RESET)
}

// RESET clears all attributes.
const RESET = "\033[0m"

func (p AnsiEscape) with(attr uint) AnsiEscape {
	// Copy to avoid aliasing between escapes built from a common prefix.
	attrs := make([]uint, len(p.attributes), len(p.attributes)+1)
	copy(attrs, p.attributes)
	//
	return AnsiEscape{append(attrs, attr)}
}
