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

	"github.com/consensys/go-nasm/pkg/util"
	"github.com/consensys/go-nasm/pkg/util/source"
)

// HighlightBuffer classifies every token of a given text.  Since lines are
// classified independently, this can optionally be done in parallel.  Either
// way, highlights are returned in the order they appear.
func HighlightBuffer(text string, parallel bool) []Highlight {
	var (
		highlights []Highlight
		lines      = source.SplitLines(text)
		// Start timer
		stats = util.NewPerfStats()
	)
	//
	if parallel {
		highlights = ParallelHighlight(lines)
	} else {
		highlights = SequentialHighlight(lines)
	}
	// Log stats
	stats.Log("Highlighting", len(lines))
	//
	return highlights
}

// SequentialHighlight classifies a given set of lines one after the other.
func SequentialHighlight(lines []source.Line) []Highlight {
	var highlights []Highlight
	//
	for _, line := range lines {
		highlights = append(highlights, HighlightLine(line.String(), line.Start())...)
	}
	//
	return highlights
}

// ParallelHighlight classifies a given set of lines using one go-routine per
// line, and then reassembles the results in order.
func ParallelHighlight(lines []source.Line) []Highlight {
	type result struct {
		index      int
		highlights []Highlight
	}
	//
	var (
		highlights []Highlight
		// Construct a communication channel for results.
		c = make(chan result, len(lines))
		// Results indexed by line
		results = make([][]Highlight, len(lines))
	)
	//
	for i, line := range lines {
		go func(index int, line source.Line) {
			// Send outcome back
			c <- result{index, HighlightLine(line.String(), line.Start())}
		}(i, line)
	}
	// Collect up all the results
	for range lines {
		r := <-c
		results[r.index] = r.highlights
	}
	//
	for _, r := range results {
		highlights = append(highlights, r...)
	}
	//
	return highlights
}

// IndentBuffer re-indents every line of a given text as though the cursor were
// at the start of each line.  Line terminators are left untouched.
func IndentBuffer(text string, config Config) string {
	var (
		builder strings.Builder
		index   = 0
	)
	//
	for _, line := range source.SplitLines(text) {
		builder.WriteString(text[index:line.Start()])
		//
		updated, _ := Indent(line.String(), 0, config)
		builder.WriteString(updated)
		//
		index = line.Start() + line.Length()
	}
	//
	builder.WriteString(text[index:])
	//
	return builder.String()
}
