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
	"regexp"

	"github.com/consensys/go-nasm/pkg/util"
	"github.com/consensys/go-nasm/pkg/util/source"
)

// All patterns are compiled once.  Go's regexp package guarantees matching in
// time linear in the input, hence no line can trigger runaway backtracking.
var (
	// Operand of a section (or segment) directive.
	sectionRegexp = regexp.MustCompile(`^[\t\v\f\r ]*(?:section|segment)[\t\v\f\r ]+([^\t\v\f\r ;]+)`)
	// Candidate label at the start of the remaining text, with optional colon.
	labelRegexp = regexp.MustCompile(`^[\t\v\f\r ]*(\.?[A-Za-z_?][A-Za-z0-9_$#@~.?]*)([\t\v\f\r ]*:)?`)
	// Identifier as accepted for macro names.
	identifierRegexp = regexp.MustCompile(`^[A-Za-z_.?][A-Za-z0-9_$#@~.?]*$`)
	// Numeric constant.  Deliberately permissive, since validation of the
	// literal is the assembler's job.
	constantRegexp = regexp.MustCompile(`^\$?[-+]?[0-9][-+_0-9A-Fa-fHhXxDdTtQqOoBbYye.]*$`)
	// Mnemonic with at most one preceding prefix, anchored at both ends.
	mnemonicRegexp = regexp.MustCompile(`^(?:([^\t\v\f\r ]+)[\t\v\f\r ]+)?([^\t\v\f\r ]+)$`)
	// Block comment marker (two or more comment characters).
	blockCommentRegexp = regexp.MustCompile(`^;;+`)
)

// IsConstant determines whether a given token is a numeric constant, such as
// "42", "0x1A", "1_000", "0b1010" or "$0FFh".
func IsConstant(token string) bool {
	return constantRegexp.MatchString(token)
}

// IsIdentifier determines whether a given token has the shape of an
// identifier.
func IsIdentifier(token string) bool {
	return identifierRegexp.MatchString(token)
}

// SectionOperand returns the span (relative to the line) of the section name
// given to a section or segment directive on this line, if there is one.
func SectionOperand(line string) util.Option[source.Span] {
	if m := sectionRegexp.FindStringSubmatchIndex(line); m != nil {
		return util.Some(source.NewSpan(m[2], m[3]))
	}
	//
	return util.None[source.Span]()
}

// LabelMatch describes a label found at the start of a line.
type LabelMatch struct {
	// Name of the label, including the leading '.' for local labels.
	Name string
	// Local indicates a dot-prefixed label.
	Local bool
	// Colon indicates whether the label was terminated by a colon.
	Colon bool
	// Span of the name within the line.
	Span source.Span
}

// Labels identifies the chain of labels at the start of a line.  Nonlocal
// labels must be followed by a colon, since otherwise they are
// indistinguishable from macro invocations.  Local labels may omit the colon,
// though this terminates the chain.  For example, "x: .loop:" gives two
// labels, whilst "foo eax" gives none.
func Labels(line string) []LabelMatch {
	var (
		labels []LabelMatch
		pos    = 0
	)
	//
	for pos < len(line) {
		m := labelRegexp.FindStringSubmatchIndex(line[pos:])
		if m == nil {
			break
		}
		//
		var (
			span  = source.NewSpan(pos+m[2], pos+m[3])
			name  = span.Text(line)
			local = name[0] == '.'
			colon = m[4] >= 0
		)
		// Name must be a whole token
		if span.End() < len(line) && isSymbol(line[span.End()]) {
			break
		} else if !colon && !local {
			break
		}
		//
		labels = append(labels, LabelMatch{name, local, colon, span})
		//
		if !colon {
			break
		}
		//
		pos += m[1]
	}
	//
	return labels
}

// Determine the offset of the first non-whitespace character of a line, or the
// length of the line if there is none.
func indentation(line string) int {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	//
	return i
}

// Extract the symbol run at the start of a given text.
func leadingWord(text string) string {
	i := 0
	for i < len(text) && isSymbol(text[i]) {
		i++
	}
	//
	return text[:i]
}
