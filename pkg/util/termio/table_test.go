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
package termio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_00(t *testing.T) {
	checkTable(t, 0, false, [][]string{{"0:3", "instruction", "mov"}, {"4:7", "register", "eax"}},
		"0:3 instruction mov\n4:7 register    eax\n")
}

func Test_Table_01(t *testing.T) {
	checkTable(t, 6, false, [][]string{{"abcdefgh", "x"}, {"a", "y"}},
		"abcd.. x\na      y\n")
}

func Test_Table_02(t *testing.T) {
	// Escapes wrap cells when enabled
	checkTable(t, 0, true, [][]string{{"a", "b"}}, "\033[1ma\033[0m b\n")
}

func Test_AnsiEscape(t *testing.T) {
	assert.Equal(t, "", NewAnsiEscape().Build())
	assert.Equal(t, "\033[1;31m", NewAnsiEscape().Bold().FgColour(TERM_RED).Build())
	assert.Equal(t, "x", NewAnsiEscape().Wrap("x"))
	assert.Equal(t, "\033[4mx\033[0m", NewAnsiEscape().Underline().Wrap("x"))
}

func checkTable(t *testing.T, maxWidth uint, escapes bool, rows [][]string, expected string) {
	var (
		buf   bytes.Buffer
		table = NewTablePrinter(uint(len(rows[0])))
	)
	//
	table.SetMaxWidth(maxWidth)
	table.AnsiEscapes(escapes)
	table.SetEscape(0, NewAnsiEscape().Bold())
	//
	for _, row := range rows {
		table.AddRow(row...)
	}
	//
	assert.NoError(t, table.Print(&buf))
	assert.Equal(t, expected, buf.String())
}
