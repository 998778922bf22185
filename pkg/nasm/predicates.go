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
	"github.com/consensys/go-nasm/pkg/util"
)

// IsBlank checks whether a line contains only whitespace.
func IsBlank(line string) bool {
	return indentation(line) == len(line)
}

// HasComment checks whether a line contains a comment marker outside of any
// string.
func HasComment(line string) bool {
	return CommentStart(line).HasValue()
}

// CommentStart returns the offset of the comment marker on a given line, if
// there is one.  Markers within strings are ignored.
func CommentStart(line string) util.Option[int] {
	for _, tok := range lexLine(line, 0) {
		if tok.Kind == tokComment {
			return util.Some(tok.Span.Start())
		}
	}
	//
	return util.None[int]()
}

// HasCode checks whether a line contains something other than whitespace and
// comments.  Since comments extend to the end of the line, this holds exactly
// when the first non-whitespace character is not a comment marker.
func HasCode(line string) bool {
	i := indentation(line)
	//
	return i < len(line) && line[i] != CommentMarker
}

// IsWithinIndentation checks whether a given offset lies between the start of
// a line and its first non-whitespace character (inclusive).
func IsWithinIndentation(line string, offset int) bool {
	return 0 <= offset && offset <= indentation(line)
}
