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

// LexicalState describes the host's view of the cursor position, as
// determined by its own syntax tracking.
type LexicalState struct {
	InString  bool
	InComment bool
}

// CommentAction identifies what a comment command should do.
type CommentAction uint8

const (
	// InsertMarker inserts a comment marker at the cursor.
	InsertMarker CommentAction = iota
	// JumpToGutter remembers the cursor and moves to the right-hand comment
	// gutter, creating a comment there if necessary.
	JumpToGutter
	// ReturnToCode moves from the comment gutter back to the remembered code
	// position.
	ReturnToCode
)

func (a CommentAction) String() string {
	switch a {
	case JumpToGutter:
		return "jump-to-gutter"
	case ReturnToCode:
		return "return-to-code"
	default:
		return "insert-marker"
	}
}

// DecideComment determines the context-sensitive behaviour of a comment
// command.  On a blank line, within a string, or within the indentation (where
// the intention is usually to comment out the line) a marker is simply
// inserted.  Within the comment gutter of a line with code the cursor returns
// to the code, whilst elsewhere on such a line it moves into the gutter.
func DecideComment(line string, cursor int, state LexicalState) CommentAction {
	switch {
	case IsBlank(line) || state.InString:
		return InsertMarker
	case IsWithinIndentation(line, cursor):
		return InsertMarker
	case HasComment(line) && HasCode(line) && state.InComment:
		return ReturnToCode
	case HasCode(line):
		return JumpToGutter
	}
	//
	return InsertMarker
}
