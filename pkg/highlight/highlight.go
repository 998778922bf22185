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
package highlight

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/consensys/go-nasm/pkg/nasm"
)

// Mapping from categories to chroma token types.
var tokenTypes = map[nasm.Category]chroma.TokenType{
	nasm.None:          chroma.Text,
	nasm.Register:      chroma.NameBuiltin,
	nasm.Prefix:        chroma.KeywordPseudo,
	nasm.Type:          chroma.KeywordType,
	nasm.Instruction:   chroma.Keyword,
	nasm.Preprocessor:  chroma.CommentPreproc,
	nasm.NonlocalLabel: chroma.NameLabel,
	nasm.LocalLabel:    chroma.NameVariable,
	nasm.Constant:      chroma.LiteralNumber,
	nasm.Directive:     chroma.KeywordDeclaration,
	nasm.SectionName:   chroma.NameNamespace,
	nasm.Comment:       chroma.Comment,
	nasm.String:        chroma.LiteralString,
}

// TokenType returns the chroma token type used to render a given category.
func TokenType(category nasm.Category) chroma.TokenType {
	if t, ok := tokenTypes[category]; ok {
		return t
	}
	//
	return chroma.Text
}

// Tokens converts a given text into a stream of chroma tokens.  The stream
// covers the text completely, such that concatenating all token values gives
// back the original text.
func Tokens(text string, parallel bool) []chroma.Token {
	var (
		tokens []chroma.Token
		index  = 0
	)
	//
	for _, h := range nasm.HighlightBuffer(text, parallel) {
		// Fill any gap (e.g. whitespace or line breaks)
		if index < h.Span.Start() {
			tokens = append(tokens, chroma.Token{Type: chroma.Text, Value: text[index:h.Span.Start()]})
		}
		//
		tokens = append(tokens, chroma.Token{Type: TokenType(h.Category), Value: h.Span.Text(text)})
		index = h.Span.End()
	}
	//
	if index < len(text) {
		tokens = append(tokens, chroma.Token{Type: chroma.Text, Value: text[index:]})
	}
	//
	return tokens
}

// Render writes a given text to a writer, highlighted using a named chroma
// formatter (e.g. "terminal256", "html" or "noop") and style (e.g. "monokai").
func Render(w io.Writer, text string, formatter string, style string, parallel bool) error {
	f, ok := formatters.Registry[formatter]
	if !ok {
		return fmt.Errorf("unknown formatter \"%s\"", formatter)
	}
	//
	s, ok := styles.Registry[style]
	if !ok {
		return fmt.Errorf("unknown style \"%s\"", style)
	}
	//
	iterator := chroma.Literator(Tokens(text, parallel)...)
	//
	return f.Format(w, s, iterator)
}
