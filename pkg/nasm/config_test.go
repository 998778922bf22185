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

	"github.com/stretchr/testify/assert"
)

func Test_Config_00(t *testing.T) {
	cfg := DefaultConfig()
	//
	assert.Equal(t, DefaultBasicOffset, cfg.BasicOffset)
	assert.Equal(t, WhitespaceTab, cfg.AfterMnemonic)
	assert.NoError(t, cfg.Validate())
}

func Test_Config_01(t *testing.T) {
	cfg, err := NewConfig(4, "Space")
	//
	assert.NoError(t, err)
	assert.Equal(t, Config{4, WhitespaceSpace}, cfg)
}

func Test_Config_02(t *testing.T) {
	_, err := NewConfig(0, "tab")
	assert.ErrorIs(t, err, ErrInvalidOffset)
	//
	_, err = NewConfig(-3, "tab")
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func Test_Config_03(t *testing.T) {
	_, err := NewConfig(8, "tabs")
	assert.ErrorIs(t, err, ErrInvalidWhitespace)
	//
	err = Config{8, Whitespace(7)}.Validate()
	assert.ErrorIs(t, err, ErrInvalidWhitespace)
}

func Test_ParseWhitespace(t *testing.T) {
	for _, ws := range []Whitespace{WhitespaceTab, WhitespaceSpace, WhitespaceNone} {
		parsed, err := ParseWhitespace(ws.String())
		//
		assert.NoError(t, err)
		assert.Equal(t, ws, parsed)
	}
}
