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
	"strings"
	"testing"

	"github.com/consensys/go-nasm/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func Test_Classify_00(t *testing.T) {
	checkClassify(t, "mov", "mov", Instruction)
}

func Test_Classify_01(t *testing.T) {
	checkClassify(t, "movx", "movx", None)
}

func Test_Classify_02(t *testing.T) {
	checkClassify(t, "\tmov eax, ebx", "eax", Register)
	checkClassify(t, "\tmov eax, ebx", "ebx", Register)
}

func Test_Classify_03(t *testing.T) {
	checkClassify(t, "\tlock xadd [rdi], eax", "lock", Prefix)
	checkClassify(t, "\tlock xadd [rdi], eax", "xadd", Instruction)
	checkClassify(t, "\tlock xadd [rdi], eax", "rdi", Register)
}

func Test_Classify_04(t *testing.T) {
	checkClassify(t, "\tmov dword [ebp-4], 0x1A", "dword", Type)
	checkClassify(t, "\tmov dword [ebp-4], 0x1A", "0x1A", Constant)
	checkClassify(t, "\tmov dword [ebp-4], 0x1A", "4", Constant)
}

func Test_Classify_05(t *testing.T) {
	checkClassify(t, "%define BUFSIZE 1_000", "%define", Preprocessor)
	checkClassify(t, "%define BUFSIZE 1_000", "BUFSIZE", None)
	checkClassify(t, "%define BUFSIZE 1_000", "1_000", Constant)
}

func Test_Classify_06(t *testing.T) {
	checkClassify(t, "global _start", "global", Directive)
	checkClassify(t, "global _start", "_start", None)
}

func Test_Classify_07(t *testing.T) {
	checkClassify(t, "_start:", "_start", NonlocalLabel)
	checkClassify(t, "  _start :", "_start", NonlocalLabel)
}

func Test_Classify_08(t *testing.T) {
	// Without a colon, this could be a macro invocation.
	checkClassify(t, "foo", "foo", None)
	checkClassify(t, "foo eax", "foo", None)
}

func Test_Classify_09(t *testing.T) {
	checkClassify(t, ".loop", ".loop", LocalLabel)
	checkClassify(t, ".loop:", ".loop", LocalLabel)
	checkClassify(t, "  .loop: dec ecx", "dec", Instruction)
}

func Test_Classify_10(t *testing.T) {
	checkClassify(t, "x: .loop:", "x", NonlocalLabel)
	checkClassify(t, "x: .loop:", ".loop", LocalLabel)
}

func Test_Classify_11(t *testing.T) {
	checkClassify(t, "section .text", ".text", SectionName)
	checkClassify(t, "section .text", "section", Directive)
	checkClassify(t, "  segment code align=16", "code", SectionName)
	checkClassify(t, "  segment code align=16", "16", Constant)
}

func Test_Classify_12(t *testing.T) {
	// Section names take priority over everything
	checkClassify(t, "section eax", "eax", SectionName)
	checkClassify(t, "section .data ; data follows", "; data follows", Comment)
}

func Test_Classify_13(t *testing.T) {
	checkClassify(t, "\tmov eax, 1 ; mov ebx", "; mov ebx", Comment)
	checkClassify(t, "\tdb 'mov eax', 0", "'mov eax'", String)
	checkClassify(t, "\tdb \"a;b\", 10", "10", Constant)
}

func Test_Classify_14(t *testing.T) {
	// Instructions take priority over labels
	checkClassify(t, "loop: inc ecx", "loop", Instruction)
	checkClassify(t, "main: inc ecx", "main", NonlocalLabel)
}

func Test_Classify_15(t *testing.T) {
	checkClassify(t, "\ttimes 4 db 0", "times", Prefix)
	checkClassify(t, "\ttimes 4 db 0", "db", Instruction)
	checkClassify(t, "\tvmovaps zmm0{k1}, [rax]", "k1", Register)
}

func Test_Classify_16(t *testing.T) {
	checkClassify(t, "\tmov al, 0FFh", "0FFh", Constant)
	checkClassify(t, "\tmov al, $0ff", "$0ff", Constant)
	checkClassify(t, "\tmov al, 0b1010_1010", "0b1010_1010", Constant)
	checkClassify(t, "\tmov al, 1abcz", "1abcz", None)
}

func Test_Classify_Position(t *testing.T) {
	text := "start:\n\tmov eax, 1\n"
	//
	assert.Equal(t, NonlocalLabel, Classify(text, 0))
	assert.Equal(t, None, Classify(text, 6))
	assert.Equal(t, Instruction, Classify(text, 8))
	assert.Equal(t, Instruction, Classify(text, 10))
	assert.Equal(t, None, Classify(text, 11))
	assert.Equal(t, Register, Classify(text, 12))
	assert.Equal(t, Constant, Classify(text, 17))
	assert.Equal(t, None, Classify(text, 1000))
	assert.Equal(t, None, Classify(text, -1))
}

func Test_Classify_Keywords(t *testing.T) {
	checkKeywordSet(t, Registers(), Register)
	checkKeywordSet(t, Prefixes(), Prefix)
	checkKeywordSet(t, Types(), Type)
	checkKeywordSet(t, Instructions(), Instruction)
	checkKeywordSet(t, PreprocessorDirectives(), Preprocessor)
	checkKeywordSet(t, Directives(), Directive)
}

func Test_Classify_MatchesHighlight(t *testing.T) {
	text := "x: .loop: mov eax, [ebx+4] ; done"
	covered := make([]bool, len(text))
	//
	for _, h := range HighlightLine(text, 0) {
		for i := h.Span.Start(); i < h.Span.End(); i++ {
			covered[i] = true
			//
			assert.Equal(t, h.Category, Classify(text, i), "offset %d", i)
		}
	}
	// Whitespace is never classified
	for i, c := range covered {
		if !c {
			assert.Equal(t, None, Classify(text, i), "offset %d", i)
		}
	}
}

func Test_Highlight_00(t *testing.T) {
	text := "main:\n\tmov eax, 1\n"
	expected := []Highlight{
		{source.NewSpan(0, 4), NonlocalLabel},
		{source.NewSpan(4, 5), None},
		{source.NewSpan(7, 10), Instruction},
		{source.NewSpan(11, 14), Register},
		{source.NewSpan(14, 15), None},
		{source.NewSpan(16, 17), Constant},
	}
	//
	assert.Equal(t, expected, HighlightRange(text, 0, len(text)))
}

func Test_Highlight_01(t *testing.T) {
	text := "main:\n\tmov eax, 1\n"
	expected := []Highlight{
		{source.NewSpan(7, 10), Instruction},
		{source.NewSpan(11, 14), Register},
	}
	// Restricted range
	assert.Equal(t, expected, HighlightRange(text, 8, 12))
}

func Test_Highlight_02(t *testing.T) {
	assert.Empty(t, HighlightRange("   \n\t\n", 0, 6))
}

func Test_HighlightBuffer_00(t *testing.T) {
	var builder strings.Builder
	//
	for i := 0; i < 50; i++ {
		builder.WriteString("label:\n\tmov eax, ebx ; copy\n\t.local: jmp label\n%define X 1\n")
	}
	//
	text := builder.String()
	sequential := HighlightBuffer(text, false)
	parallel := HighlightBuffer(text, true)
	//
	assert.Equal(t, sequential, parallel)
	assert.Equal(t, HighlightRange(text, 0, len(text)), sequential)
}

// ==================================================================
// Framework
// ==================================================================

// Check that every keyword in a set classifies as expected when on its own,
// and that extending it by a single letter prevents it from matching.
func checkKeywordSet(t *testing.T, set KeywordSet, expected Category) {
	assert.Positive(t, set.Len())
	//
	for _, w := range set.Words() {
		assert.Equal(t, expected, Classify(w, 0), "keyword \"%s\"", w)
		//
		extended := w + "z"
		if !isKeyword(extended) {
			assert.Equal(t, None, Classify(extended, 0), "extended keyword \"%s\"", extended)
		}
	}
}

func isKeyword(word string) bool {
	for _, set := range []KeywordSet{registers, prefixes, types, instructions, preprocessor, directives} {
		if set.Contains(word) {
			return true
		}
	}
	//
	return false
}

// Check the classification of the first occurrence of a given token within a
// line, checking every position of the token.
func checkClassify(t *testing.T, line string, token string, expected Category) {
	start := strings.Index(line, token)
	if start < 0 {
		t.Fatalf("token \"%s\" not found in \"%s\"", token, line)
	}
	//
	for i := start; i < start+len(token); i++ {
		if actual := Classify(line, i); actual != expected {
			t.Errorf("classifying \"%s\" in \"%s\" at %d: got %s, expected %s", token, line, i, actual, expected)
		}
	}
}
