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

	"github.com/consensys/go-nasm/pkg/util/source"
)

// DefinitionKind distinguishes the constructs which give rise to definitions.
type DefinitionKind uint8

const (
	// LabelDefinition is a colon-terminated nonlocal label.
	LabelDefinition DefinitionKind = iota
	// MacroDefinition is a name introduced by %define, %macro and friends.
	MacroDefinition
)

func (k DefinitionKind) String() string {
	if k == MacroDefinition {
		return "macro"
	}
	//
	return "label"
}

// Definition is a navigable definition site.
type Definition struct {
	// Name being defined.
	Name string
	// Offset of the name within the text.
	Offset int
	// Line number of the definition (counting from 1).
	Line int
	// Kind of construct responsible.
	Kind DefinitionKind
}

func (d Definition) String() string {
	return fmt.Sprintf("%d: %s (%s)", d.Line, d.Name, d.Kind)
}

// Preprocessor directives whose first operand names a definition.
var definingDirectives = newKeywordSet(
	"%define", "%xdefine", "%idefine", "%ixdefine",
	"%assign", "%iassign",
	"%macro", "%imacro",
)

// Outline extracts all definition sites from a given text, in the order they
// appear.  Only colon-terminated nonlocal labels are included, since a bare
// identifier cannot be distinguished from a macro invocation.  Local labels
// are omitted, as are macro names which are not identifiers.
func Outline(text string) []Definition {
	var defs []Definition
	//
	for _, line := range source.SplitLines(text) {
		defs = append(defs, outlineLine(line)...)
	}
	//
	return defs
}

func outlineLine(line source.Line) []Definition {
	var (
		defs   []Definition
		text   = line.String()
		tokens = lexLine(text, 0)
	)
	//
	for _, l := range Labels(text) {
		if !l.Local && l.Colon {
			defs = append(defs, Definition{l.Name, line.Start() + l.Span.Start(), line.Number(), LabelDefinition})
		}
	}
	//
	for i, tok := range tokens {
		if tok.Kind != tokWord || !definingDirectives.Contains(tok.Span.Text(text)) {
			continue
		}
		// Expect whitespace followed by the name
		if i+2 < len(tokens) && tokens[i+1].Kind == tokSpace && tokens[i+2].Kind == tokWord {
			name := tokens[i+2].Span
			//
			if IsIdentifier(name.Text(text)) {
				defs = append(defs, Definition{name.Text(text), line.Start() + name.Start(), line.Number(), MacroDefinition})
			}
		}
	}
	//
	return defs
}
