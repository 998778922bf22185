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

// A single step of token classification.  Rules are evaluated in a fixed
// order, and the first to match determines the category of a token.
type rule struct {
	// Name of this rule, used for debugging and testing.
	name string
	// Category assigned by this rule.
	category Category
	// Determines whether this rule applies to a given token.
	match func(ctx *lineContext, token source.Span) bool
}

// Order here is significant, as the first matching rule wins.
var classificationRules = []rule{
	{"section-name", SectionName, isSectionOperand},
	{"register", Register, inKeywordSet(registers)},
	{"prefix", Prefix, inKeywordSet(prefixes)},
	{"type", Type, inKeywordSet(types)},
	{"instruction", Instruction, inKeywordSet(instructions)},
	{"preprocessor", Preprocessor, inKeywordSet(preprocessor)},
	{"nonlocal-label", NonlocalLabel, isLabel(false)},
	{"local-label", LocalLabel, isLabel(true)},
	{"constant", Constant, isConstantToken},
	{"directive", Directive, inKeywordSet(directives)},
}

// lineContext captures everything about a line needed to classify its tokens.
// This is computed afresh for every request.
type lineContext struct {
	// Text of the line.
	text string
	// Tokens of the line, with spans relative to the start of the line.
	tokens []source.Token
	// Operand of a section directive (if any)
	section util.Option[source.Span]
	// Labels at the start of the line
	labels []LabelMatch
}

func newLineContext(line string) *lineContext {
	return &lineContext{
		line,
		lexLine(line, 0),
		SectionOperand(line),
		Labels(line),
	}
}

// Classify determines the category of the token enclosing a given position in
// some text.  Positions which fall on whitespace, or outside the text, are
// given category None.  This never fails: unrecognised tokens are simply None.
func Classify(text string, position int) Category {
	var (
		line = source.FindEnclosingLine(text, position)
		ctx  = newLineContext(line.String())
		pos  = position - line.Start()
	)
	//
	for _, tok := range ctx.tokens {
		if tok.Span.Contains(pos) {
			return ctx.classify(tok)
		}
	}
	//
	return None
}

// HighlightRange classifies all tokens overlapping the range [start,end) of a given
// text.  Whitespace is omitted, but every other token is reported (including
// those of category None), in the order they appear.
func HighlightRange(text string, start int, end int) []Highlight {
	var highlights []Highlight
	//
	for _, line := range source.SplitLines(text) {
		if line.Start() > end || line.Start()+line.Length() < start {
			continue
		}
		//
		for _, h := range HighlightLine(line.String(), line.Start()) {
			if h.Span.Overlaps(start, end) {
				highlights = append(highlights, h)
			}
		}
	}
	//
	return highlights
}

// HighlightLine classifies every non-whitespace token on a single line.  The
// base offset is added to all reported spans.
func HighlightLine(line string, base int) []Highlight {
	var (
		ctx        = newLineContext(line)
		highlights = make([]Highlight, 0, len(ctx.tokens))
	)
	//
	for _, tok := range ctx.tokens {
		if tok.Kind != tokSpace {
			highlights = append(highlights, Highlight{tok.Span.Shift(base), ctx.classify(tok)})
		}
	}
	//
	return highlights
}

// Classify a given token of this line.
func (p *lineContext) classify(tok source.Token) Category {
	switch tok.Kind {
	case tokSpace:
		return None
	case tokComment:
		return Comment
	case tokString:
		return String
	}
	//
	for _, r := range classificationRules {
		if r.match(p, tok.Span) {
			return r.category
		}
	}
	//
	return None
}

// ============================================================================
// Rules
// ============================================================================

func isSectionOperand(ctx *lineContext, token source.Span) bool {
	if ctx.section.IsEmpty() {
		return false
	}
	//
	operand := ctx.section.Unwrap()
	//
	return operand.Start() <= token.Start() && token.End() <= operand.End()
}

func inKeywordSet(set KeywordSet) func(*lineContext, source.Span) bool {
	return func(ctx *lineContext, token source.Span) bool {
		return set.Contains(token.Text(ctx.text))
	}
}

func isLabel(local bool) func(*lineContext, source.Span) bool {
	return func(ctx *lineContext, token source.Span) bool {
		for _, l := range ctx.labels {
			if l.Span == token {
				return l.Local == local
			}
		}
		//
		return false
	}
}

func isConstantToken(ctx *lineContext, token source.Span) bool {
	return IsConstant(token.Text(ctx.text))
}
