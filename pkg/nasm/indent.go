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
package nasm

import (
	"fmt"
	"strings"
)

// IndentAction identifies what an indentation request should do.
type IndentAction uint8

const (
	// NoOp leaves the line unchanged.
	NoOp IndentAction = iota
	// AlignZero removes all indentation from the line.
	AlignZero
	// AlignOffset indents the line by a given number of columns.
	AlignOffset
	// InsertLiteralTab inserts a tab character at the cursor.
	InsertLiteralTab
	// InsertSpaces inserts a given number of spaces at the cursor.
	InsertSpaces
)

// IndentDecision is the outcome of an indentation request.  This is a pure
// function of the line, the cursor and the configuration.
type IndentDecision struct {
	Action IndentAction
	// Width is the number of columns for AlignOffset and InsertSpaces.
	Width int
}

func (d IndentDecision) String() string {
	switch d.Action {
	case NoOp:
		return "noop"
	case AlignZero:
		return "align(0)"
	case AlignOffset:
		return fmt.Sprintf("align(%d)", d.Width)
	case InsertLiteralTab:
		return "insert(tab)"
	case InsertSpaces:
		return fmt.Sprintf("insert(%d spaces)", d.Width)
	}
	//
	return fmt.Sprintf("indent(%d,%d)", d.Action, d.Width)
}

// Decide determines how to indent a line, given the cursor offset within that
// line.  When the cursor sits immediately after a mnemonic (optionally preceded
// by a prefix) the decision is to insert whitespace separating it from its
// operands.  Otherwise, the whole line is re-indented: directives, labels,
// memory-style brackets and block comments sit at column zero, whilst
// everything else is indented by the basic offset.  Blank lines are left
// alone.
func Decide(line string, cursor int, config Config) IndentDecision {
	var (
		cursorAt = clamp(cursor, len(line))
		indent   = indentation(line)
		before   string
	)
	//
	if cursorAt > indent {
		before = line[indent:cursorAt]
	}
	//
	if isMnemonic(before) {
		switch config.AfterMnemonic {
		case WhitespaceTab:
			return IndentDecision{InsertLiteralTab, 1}
		case WhitespaceSpace:
			return IndentDecision{InsertSpaces, config.BasicOffset}
		default:
			return IndentDecision{NoOp, 0}
		}
	}
	//
	if IsBlank(line) {
		return IndentDecision{NoOp, 0}
	} else if isColumnZero(line, indent) {
		return IndentDecision{AlignZero, 0}
	}
	//
	return IndentDecision{AlignOffset, config.BasicOffset}
}

// Apply performs a given indentation decision on a line, returning the updated
// line and cursor.  When re-indenting, a cursor beyond the original
// indentation keeps its distance from the end of the line, whilst a cursor
// within the indentation moves to the new indentation boundary.  Indentation
// is always written using spaces.
func Apply(line string, cursor int, decision IndentDecision) (string, int) {
	cursor = clamp(cursor, len(line))
	//
	switch decision.Action {
	case InsertLiteralTab:
		return line[:cursor] + "\t" + line[cursor:], cursor + 1
	case InsertSpaces:
		return line[:cursor] + strings.Repeat(" ", decision.Width) + line[cursor:], cursor + decision.Width
	case AlignZero:
		return reindent(line, cursor, 0)
	case AlignOffset:
		return reindent(line, cursor, decision.Width)
	}
	//
	return line, cursor
}

// Indent decides how to indent a line and then applies that decision.
func Indent(line string, cursor int, config Config) (string, int) {
	return Apply(line, cursor, Decide(line, cursor, config))
}

func reindent(line string, cursor int, width int) (string, int) {
	var (
		indent  = indentation(line)
		updated = strings.Repeat(" ", width) + line[indent:]
	)
	//
	if cursor > indent {
		return updated, len(updated) - (len(line) - cursor)
	}
	//
	return updated, width
}

// Check whether the text before the cursor is exactly one instruction
// mnemonic, optionally preceded by a single prefix.
func isMnemonic(before string) bool {
	m := mnemonicRegexp.FindStringSubmatch(before)
	//
	if m == nil {
		return false
	} else if m[1] != "" && !prefixes.Contains(m[1]) {
		return false
	}
	//
	return instructions.Contains(m[2])
}

// Check whether the text starting at the first non-whitespace character belongs
// at column zero.
func isColumnZero(line string, indent int) bool {
	var (
		rest = line[indent:]
		word = leadingWord(rest)
	)
	//
	switch {
	case directives.Contains(word), preprocessor.Contains(word):
		return true
	case strings.HasPrefix(rest, "["):
		return true
	case blockCommentRegexp.MatchString(rest):
		return true
	}
	//
	return len(Labels(line)) > 0
}

func clamp(offset int, length int) int {
	return max(0, min(offset, length))
}
