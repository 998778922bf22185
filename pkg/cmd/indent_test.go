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
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IndentFlags_00(t *testing.T) {
	assert.NoError(t, checkIndentFlags(false, false))
	assert.NoError(t, checkIndentFlags(true, false))
	assert.NoError(t, checkIndentFlags(false, true))
}

func Test_IndentFlags_01(t *testing.T) {
	assert.ErrorIs(t, checkIndentFlags(true, true), errCheckAndWrite)
}

func Test_IndentFlags_02(t *testing.T) {
	// Flags are registered on the command itself
	assert.NotNil(t, indentCmd.Flags().Lookup("write"))
	assert.NotNil(t, indentCmd.Flags().Lookup("check"))
	assert.Equal(t, "w", indentCmd.Flags().Lookup("write").Shorthand)
}
