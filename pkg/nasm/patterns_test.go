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
	"testing"

	"github.com/consensys/go-nasm/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func Test_Labels_00(t *testing.T) {
	checkLabels(t, "main:", LabelMatch{"main", false, true, source.NewSpan(0, 4)})
}

func Test_Labels_01(t *testing.T) {
	checkLabels(t, "x: .loop:",
		LabelMatch{"x", false, true, source.NewSpan(0, 1)},
		LabelMatch{".loop", true, true, source.NewSpan(3, 8)})
}

func Test_Labels_02(t *testing.T) {
	checkLabels(t, "\t.next mov eax, 1", LabelMatch{".next", true, false, source.NewSpan(1, 6)})
}

func Test_Labels_03(t *testing.T) {
	checkLabels(t, "foo eax")
	checkLabels(t, "; main:")
	checkLabels(t, "ab%c:")
	checkLabels(t, "1abc:")
}

func Test_Labels_04(t *testing.T) {
	// Chain stops at first non-label
	checkLabels(t, "a: b c:", LabelMatch{"a", false, true, source.NewSpan(0, 1)})
	checkLabels(t, "?x$y@z~w#v :", LabelMatch{"?x$y@z~w#v", false, true, source.NewSpan(0, 10)})
}

func Test_Labels_05(t *testing.T) {
	// Only ASCII whitespace separates labels
	checkLabels(t, "\vfoo:", LabelMatch{"foo", false, true, source.NewSpan(1, 4)})
	checkLabels(t, "\u00a0foo:")
}

func Test_SectionOperand(t *testing.T) {
	assert.Equal(t, source.NewSpan(8, 13), SectionOperand("section .text").Unwrap())
	assert.Equal(t, source.NewSpan(9, 14), SectionOperand("\tsegment .data;x").Unwrap())
	assert.True(t, SectionOperand("section").IsEmpty())
	assert.True(t, SectionOperand("sections .text").IsEmpty())
	assert.True(t, SectionOperand("; section .text").IsEmpty())
}

func checkLabels(t *testing.T, line string, expected ...LabelMatch) {
	actual := Labels(line)
	//
	if len(expected) == 0 {
		assert.Empty(t, actual)
	} else {
		assert.Equal(t, expected, actual)
	}
}
