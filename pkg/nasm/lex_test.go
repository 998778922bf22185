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

	"github.com/stretchr/testify/assert"
)

func Test_IsConstant(t *testing.T) {
	for _, c := range []string{"0", "42", "0x1A", "1_000", "0FFh", "$0ff", "0b1010", "777q", "1e10", "1.5e-3", "-5", "$+8"} {
		assert.True(t, IsConstant(c), "constant \"%s\"", c)
	}
	//
	for _, c := range []string{"", "foo", "x10", "$", "1z", "0x1G", ".5"} {
		assert.False(t, IsConstant(c), "non-constant \"%s\"", c)
	}
}

func Test_Lex_00(t *testing.T) {
	checkLex(t, "\tmov eax, 1", "\t", "mov", " ", "eax", ",", " ", "1")
}

func Test_Lex_01(t *testing.T) {
	checkLex(t, "x: .loop: ; done", "x", ":", " ", ".loop", ":", " ", "; done")
}

func Test_Lex_02(t *testing.T) {
	checkLex(t, "dd 1.5e+3, 1+bar", "dd", " ", "1.5e+3", ",", " ", "1", "+", "bar")
}

func Test_Lex_03(t *testing.T) {
	checkLex(t, "db 'it''s', \"x\"", "db", " ", "'it'", "'s'", ",", " ", "\"x\"")
}

func Test_Lex_04(t *testing.T) {
	checkLex(t, "%%local: db 'ü'", "%%local", ":", " ", "db", " ", "'ü'")
	checkLex(t, "ü ret", "ü", " ", "ret")
}

func Test_Lex_05(t *testing.T) {
	// Long runs of signs are handled without blowup.  The trailing "+1z" cannot
	// end a constant, since "z" continues the symbol.
	text := "1" + strings.Repeat("+1", 10000) + "z"
	tokens := lexLine(text, 0)
	//
	assert.Equal(t, len(text)-3, tokens[0].Span.Length())
}

func checkLex(t *testing.T, line string, expected ...string) {
	var actual []string
	//
	for _, tok := range lexLine(line, 0) {
		actual = append(actual, tok.Span.Text(line))
	}
	//
	assert.Equal(t, expected, actual)
}
