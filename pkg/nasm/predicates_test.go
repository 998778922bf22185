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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t "))
	assert.False(t, IsBlank("  ;"))
	assert.False(t, IsBlank("ret"))
	assert.True(t, IsBlank("\v\f\r"))
	assert.False(t, IsBlank("\u00a0"))
}

func Test_HasComment(t *testing.T) {
	assert.True(t, HasComment("; comment"))
	assert.True(t, HasComment("\tmov eax, 1 ; comment"))
	assert.True(t, HasComment("\tdb 'a;b' ; comment"))
	assert.False(t, HasComment("\tdb 'a;b'"))
	assert.False(t, HasComment("\tdb \"a;b\", `c;\\`;`"))
	assert.False(t, HasComment(""))
}

func Test_CommentStart(t *testing.T) {
	assert.Equal(t, 12, CommentStart("\tmov eax, 1 ; comment").Unwrap())
	assert.Equal(t, 10, CommentStart("\tdb 'a;b' ; comment").Unwrap())
	assert.True(t, CommentStart("\tret").IsEmpty())
}

func Test_HasCode(t *testing.T) {
	assert.True(t, HasCode("ret"))
	assert.True(t, HasCode("  ret ; comment"))
	assert.False(t, HasCode("  ; comment"))
	assert.False(t, HasCode("   "))
	assert.False(t, HasCode(""))
}

func Test_IsWithinIndentation(t *testing.T) {
	assert.True(t, IsWithinIndentation("    ret", 0))
	assert.True(t, IsWithinIndentation("    ret", 2))
	assert.True(t, IsWithinIndentation("    ret", 4))
	assert.False(t, IsWithinIndentation("    ret", 5))
	assert.False(t, IsWithinIndentation("    ret", -1))
	assert.True(t, IsWithinIndentation("", 0))
	assert.True(t, IsWithinIndentation("   ", 3))
}

func Test_DecideComment(t *testing.T) {
	var (
		code      = LexicalState{}
		inString  = LexicalState{InString: true}
		inComment = LexicalState{InComment: true}
	)
	//
	assert.Equal(t, InsertMarker, DecideComment("", 0, code))
	assert.Equal(t, InsertMarker, DecideComment("\tdb 'abc'", 6, inString))
	assert.Equal(t, InsertMarker, DecideComment("\tmov eax, 1", 1, code))
	assert.Equal(t, JumpToGutter, DecideComment("\tmov eax, 1", 5, code))
	assert.Equal(t, JumpToGutter, DecideComment("\tmov eax, 1 ; x", 5, code))
	assert.Equal(t, ReturnToCode, DecideComment("\tmov eax, 1 ; x", 15, inComment))
	assert.Equal(t, InsertMarker, DecideComment("  ; just a comment", 10, inComment))
}
