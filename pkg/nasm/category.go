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

// Category identifies the lexical class assigned to a span of assembly text for
// the purposes of highlighting.
type Category uint8

const (
	// None indicates a span which receives no special treatment.
	None Category = iota
	// Register names (e.g. eax, xmm0).
	Register
	// Prefix for an instruction (e.g. lock, rep).
	Prefix
	// Type or operand size keyword (e.g. dword, strict).
	Type
	// Instruction mnemonic or pseudo-instruction (e.g. mov, db).
	Instruction
	// Preprocessor directive (e.g. %define).
	Preprocessor
	// NonlocalLabel is a label definition visible throughout the file.
	NonlocalLabel
	// LocalLabel is a dot-prefixed label scoped to the preceding nonlocal
	// label.
	LocalLabel
	// Constant is a numeric literal.
	Constant
	// Directive is an assembler directive (e.g. global, section).
	Directive
	// SectionName is the operand of a section or segment directive.
	SectionName
	// Comment is text from a comment marker to the end of the line.
	Comment
	// String is a quoted string or character constant.
	String
)

var categoryNames = []string{
	"none",
	"register",
	"prefix",
	"type",
	"instruction",
	"preprocessor",
	"label",
	"local-label",
	"constant",
	"directive",
	"section-name",
	"comment",
	"string",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	//
	return fmt.Sprintf("category(%d)", c)
}

// Highlight associates a category with a span of the original text.
type Highlight struct {
	Span     source.Span
	Category Category
}

func (h Highlight) String() string {
	return fmt.Sprintf("%s:%s", h.Span.String(), h.Category.String())
}
