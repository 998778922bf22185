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
package test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-nasm/pkg/nasm"
	"github.com/stretchr/testify/assert"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the assembly test files (asm) and the corresponding expected outputs
// are found.
const TestDir = "../../testdata"

// Expectation identifies a file extension holding the expected output for a
// given test, along with the function which produces that output from the
// source text.
type Expectation struct {
	extension string
	generate  func(string) string
}

// TESTFILE_EXTENSIONS identifies the possible expected outputs for a test.  At
// least one must exist for every test.
var TESTFILE_EXTENSIONS []Expectation = []Expectation{
	{"indented", func(text string) string { return nasm.IndentBuffer(text, nasm.DefaultConfig()) }},
	{"outline", outline},
}

// Check that all expected outputs for a given test match those generated from
// its source file, and that the source file satisfies the general properties
// expected of all inputs.
func Check(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.asm", TestDir, test)
		// Read the source file
		text = readTestFile(t, filename)
	)
	// Enable testing each file in parallel
	t.Parallel()
	// Record how many expectations checked.
	nTests := 0
	//
	for _, cfg := range TESTFILE_EXTENSIONS {
		expectedFilename := fmt.Sprintf("%s/%s.%s", TestDir, test, cfg.extension)
		// Skip missing expectations
		if _, err := os.Stat(expectedFilename); err != nil {
			continue
		}
		//
		expected := readTestFile(t, expectedFilename)
		assert.Equal(t, expected, cfg.generate(text), "%s (%s)", test, cfg.extension)
		//
		nTests++
	}
	// Sanity check at least one expectation found.
	if nTests == 0 {
		panic(fmt.Sprintf("missing any expectations for %s", test))
	}
	//
	checkProperties(t, test, text)
}

// Check general properties which hold for any input.
func checkProperties(t *testing.T, test string, text string) {
	cfg := nasm.DefaultConfig()
	// Indentation is idempotent
	once := nasm.IndentBuffer(text, cfg)
	assert.Equal(t, once, nasm.IndentBuffer(once, cfg), "%s: indentation not idempotent", test)
	// Highlighting agrees with classification at every position
	for _, h := range nasm.HighlightBuffer(text, true) {
		for i := h.Span.Start(); i < h.Span.End(); i++ {
			if c := nasm.Classify(text, i); c != h.Category {
				t.Errorf("%s: offset %d classified as %s, highlighted as %s", test, i, c, h.Category)
			}
		}
	}
}

func outline(text string) string {
	var builder strings.Builder
	//
	for _, def := range nasm.Outline(text) {
		builder.WriteString(def.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

func readTestFile(t *testing.T, filename string) string {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	return string(bytes)
}
