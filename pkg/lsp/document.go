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
package lsp

import (
	"sort"
	"unicode/utf8"

	"github.com/consensys/go-nasm/pkg/nasm"
	"github.com/consensys/go-nasm/pkg/util/source"
	"go.lsp.dev/protocol"
)

// Semantic token types reported to the client, in legend order.
var tokenLegend = []string{
	"namespace", "type", "variable", "function", "label", "macro",
	"keyword", "modifier", "comment", "string", "number",
}

// Index into the legend for each category.  Categories not present are not
// reported.
var tokenTypes = map[nasm.Category]uint32{
	nasm.SectionName:   0,
	nasm.Type:          1,
	nasm.Register:      2,
	nasm.NonlocalLabel: 3,
	nasm.LocalLabel:    4,
	nasm.Preprocessor:  5,
	nasm.Instruction:   6,
	nasm.Directive:     6,
	nasm.Prefix:        7,
	nasm.Comment:       8,
	nasm.String:        9,
	nasm.Constant:      10,
}

// document is an open text document, as last sent by the client.
type document struct {
	text  string
	lines []source.Line
}

func newDocument(text string) *document {
	return &document{text, source.SplitLines(text)}
}

// Convert an LSP position (line plus UTF-16 column) into a byte offset.
// Positions beyond the end of a line are clamped to its end.
func (d *document) offsetOf(pos protocol.Position) int {
	if int(pos.Line) >= len(d.lines) {
		return len(d.text)
	}
	//
	var (
		line   = d.lines[pos.Line]
		text   = line.String()
		column = uint32(0)
	)
	//
	for i, r := range text {
		if column >= pos.Character {
			return line.Start() + i
		}
		//
		column += utf16Width(r)
	}
	//
	return line.Start() + len(text)
}

// Convert a byte offset into an LSP position.
func (d *document) positionOf(offset int) protocol.Position {
	// Find the last line starting at or before the offset
	i := sort.Search(len(d.lines), func(i int) bool { return d.lines[i].Start() > offset }) - 1
	i = max(i, 0)
	//
	var (
		line = d.lines[i]
		end  = min(offset, line.Start()+line.Length())
	)
	//
	return protocol.Position{Line: uint32(i), Character: utf16Len(d.text[line.Start():end])}
}

func (d *document) rangeOf(span source.Span) protocol.Range {
	return protocol.Range{Start: d.positionOf(span.Start()), End: d.positionOf(span.End())}
}

// Encode the classification of every token using the relative encoding of
// semantic tokens: (delta line, delta start, length, type, modifiers).
func (d *document) semanticTokens(parallel bool) []uint32 {
	var (
		data     = make([]uint32, 0)
		prevLine = uint32(0)
		prevChar = uint32(0)
	)
	//
	for _, h := range nasm.HighlightBuffer(d.text, parallel) {
		typ, ok := tokenTypes[h.Category]
		if !ok {
			continue
		}
		//
		var (
			pos       = d.positionOf(h.Span.Start())
			length    = utf16Len(h.Span.Text(d.text))
			deltaChar = pos.Character
		)
		//
		if pos.Line == prevLine {
			deltaChar = pos.Character - prevChar
		}
		//
		data = append(data, pos.Line-prevLine, deltaChar, length, typ, 0)
		prevLine, prevChar = pos.Line, pos.Character
	}
	//
	return data
}

// Report every definition site as a (flat) document symbol.
func (d *document) symbols() []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0)
	//
	for _, def := range nasm.Outline(d.text) {
		var (
			rng  = d.rangeOf(source.NewSpan(def.Offset, def.Offset+len(def.Name)))
			kind = protocol.SymbolKindFunction
		)
		//
		if def.Kind == nasm.MacroDefinition {
			kind = protocol.SymbolKindConstant
		}
		//
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           def.Name,
			Detail:         def.Kind.String(),
			Kind:           kind,
			Range:          rng,
			SelectionRange: rng,
		})
	}
	//
	return symbols
}

// Construct one edit for each line whose indentation would change.
func (d *document) formatting(config nasm.Config) []protocol.TextEdit {
	edits := make([]protocol.TextEdit, 0)
	//
	for _, line := range d.lines {
		if updated, _ := nasm.Indent(line.String(), 0, config); updated != line.String() {
			edits = append(edits, protocol.TextEdit{Range: d.rangeOf(line.Span()), NewText: updated})
		}
	}
	//
	return edits
}

// Describe the token at a given position, or nil if it has no category.
func (d *document) hover(pos protocol.Position) *protocol.Hover {
	offset := d.offsetOf(pos)
	//
	for _, h := range nasm.HighlightRange(d.text, offset, offset+1) {
		if h.Span.Contains(offset) && h.Category != nasm.None {
			rng := d.rangeOf(h.Span)
			//
			return &protocol.Hover{
				Contents: protocol.MarkupContent{Kind: protocol.PlainText, Value: h.Category.String()},
				Range:    &rng,
			}
		}
	}
	//
	return nil
}

func utf16Len(text string) uint32 {
	n := uint32(0)
	//
	for _, r := range text {
		n += utf16Width(r)
	}
	//
	return n
}

func utf16Width(r rune) uint32 {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	//
	return 1
}
