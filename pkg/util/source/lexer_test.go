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
	"slices"
	"testing"

	"github.com/consensys/go-nasm/pkg/util"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0, 0)
}

func TestLexer_01(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, NewSpan(0, 1)},
	}

	checkLexer(t, "(", 0, 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, NewSpan(0, 1)},
		{RBRACE, NewSpan(1, 2)},
	}

	checkLexer(t, "()", 0, 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens []Token = []Token{
		{NUMBER, NewSpan(0, 1)},
	}

	checkLexer(t, "1x", 0, 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, NewSpan(0, 1)},
		{WSPACE, NewSpan(1, 3)},
		{RBRACE, NewSpan(3, 4)},
	}

	checkLexer(t, "(  )", 0, 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens []Token = []Token{
		{NUMBER, NewSpan(10, 13)},
		{WSPACE, NewSpan(13, 14)},
		{COMMENT, NewSpan(14, 18)},
	}

	checkLexer(t, "123 ; ()", 10, 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens []Token = []Token{
		{STRING, NewSpan(0, 5)},
		{WSPACE, NewSpan(5, 6)},
		{NUMBER, NewSpan(6, 7)},
	}

	checkLexer(t, "'a;b' 1", 0, 0, tokens...)
}

func TestLexer_07(t *testing.T) {
	var tokens []Token = []Token{
		{STRING, NewSpan(0, 4)},
	}
	// Unterminated strings extend to the end
	checkLexer(t, "'a b", 0, 0, tokens...)
}

func TestLexer_08(t *testing.T) {
	var tokens []Token = []Token{
		{STRING, NewSpan(0, 6)},
		{NUMBER, NewSpan(6, 7)},
	}
	// Escaped delimiter does not terminate
	checkLexer(t, "`a\\`b`1", 0, 0, tokens...)
}

func TestLexer_09(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, NewSpan(0, 1)},
		{NUMBER, NewSpan(1, 3)},
		{RBRACE, NewSpan(3, 4)},
	}

	checkLexer(t, "(90)", 0, 0, tokens...)
}

// ==================================================================
// Framework
// ==================================================================

const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4
const COMMENT uint = 5
const STRING uint = 6

var scanner Scanner[byte] = Or(
	One(LBRACE, byte('(')),
	One(RBRACE, byte(')')),
	While(WSPACE, func(b byte) bool { return b == ' ' || b == '\t' }),
	While(NUMBER, func(b byte) bool { return '0' <= b && b <= '9' }),
	Rest(COMMENT, byte(';')),
	Quoted(STRING, byte('\''), util.None[byte]()),
	Quoted(STRING, byte('`'), util.Some(byte('\\'))))

func checkLexer(t *testing.T, input string, base int, remainder uint, expected ...Token) {
	items := []byte(input)
	// Construct text lexer
	lexer := NewLexer(items, base, scanner)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
