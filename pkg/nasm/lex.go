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
	"github.com/consensys/go-nasm/pkg/util/source"
)

// Kinds of token produced when lexing a single line.
const (
	tokSpace uint = iota
	tokComment
	tokString
	tokWord
	tokPunct
)

// CommentMarker begins a comment which extends to the end of the line.
const CommentMarker = ';'

// Line-level scanner.  Order matters here: comments and strings must be
// recognised before anything which could otherwise consume their contents.
var lineScanner source.Scanner[byte] = source.Or[byte](
	source.While(tokSpace, isSpace),
	source.Rest(tokComment, byte(CommentMarker)),
	source.Quoted(tokString, byte('\''), util.None[byte]()),
	source.Quoted(tokString, byte('"'), util.None[byte]()),
	source.Quoted(tokString, byte('`'), util.Some(byte('\\'))),
	&numberScanner{},
	source.While(tokWord, isSymbol),
	source.While(tokPunct, isExtended),
	source.Any[byte](tokPunct))

// Tokenise a single line of text.  The base offset is added to every span,
// such that tokens report positions within the enclosing buffer.
func lexLine(line string, base int) []source.Token {
	return source.NewLexer([]byte(line), base, lineScanner).Collect()
}

// Determine whether a byte is horizontal whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v' || b == '\r'
}

// Determine whether a byte can form part of a symbol (i.e. identifier, keyword
// or number).
func isSymbol(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	//
	switch b {
	case '_', '$', '#', '@', '~', '.', '?', '%':
		return true
	}
	//
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Non-ASCII bytes are grouped together, rather than split into individual
// punctuation tokens.
func isExtended(b byte) bool {
	return b >= 0x80
}

// ============================================================================
// Number Scanner
// ============================================================================

// numberScanner recognises numeric words.  These differ from ordinary words in
// that they may contain embedded signs (e.g. "1e+10").  The longest candidate
// which forms a valid constant is chosen, otherwise the scanner falls back to
// the plain symbol run (which will not classify as a constant).
type numberScanner struct{}

func (p *numberScanner) Scan(items []byte) util.Option[source.Token] {
	i := 0
	// Optional '$' and sign
	if i < len(items) && items[i] == '$' {
		i++
	}
	//
	if i < len(items) && (items[i] == '-' || items[i] == '+') {
		i++
	}
	//
	if i >= len(items) || !isDigit(items[i]) {
		return util.None[source.Token]()
	}
	// Determine candidate ends, which are the points where a symbol run stops,
	// along with the first item which cannot appear in a constant.
	var (
		ends []int
		bad  = -1
		n    = i
	)
	//
	for ; n < len(items) && (isSymbol(items[n]) || items[n] == '-' || items[n] == '+'); n++ {
		if (items[n] == '-' || items[n] == '+') && n > i {
			ends = append(ends, n)
		}
		//
		if bad < 0 && !isConstantChar(items[n]) {
			bad = n
		}
	}
	//
	ends = append(ends, n)
	// Longest valid constant wins
	for j := len(ends) - 1; j >= 0; j-- {
		if bad < 0 || ends[j] <= bad {
			return util.Some(source.Token{Kind: tokWord, Span: source.NewSpan(0, ends[j])})
		}
	}
	// Fall back to the leading symbol run
	n = 0
	for n < len(items) && isSymbol(items[n]) {
		n++
	}
	//
	if n == 0 {
		return util.None[source.Token]()
	}
	//
	return util.Some(source.Token{Kind: tokWord, Span: source.NewSpan(0, n)})
}

// Determine whether a byte can appear after the leading digit of a constant.
func isConstantChar(b byte) bool {
	switch {
	case isDigit(b), 'a' <= b && b <= 'f', 'A' <= b && b <= 'F':
		return true
	}
	//
	switch b {
	case 'H', 'h', 'X', 'x', 'D', 'd', 'T', 't', 'Q', 'q', 'O', 'o', 'B', 'b', 'Y', 'y', 'e', '-', '+', '_', '.':
		return true
	}
	//
	return false
}
