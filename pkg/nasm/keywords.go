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
	"slices"
)

//go:generate go run ./internal/generator

// KeywordSet is an immutable set of case-sensitive keywords.  Sets are
// constructed once, when the package is loaded, and never modified
// thereafter.
type KeywordSet struct {
	words map[string]struct{}
}

func newKeywordSet(words ...string) KeywordSet {
	set := make(map[string]struct{}, len(words))
	//
	for _, w := range words {
		set[w] = struct{}{}
	}
	//
	return KeywordSet{set}
}

// Contains checks whether a given token is a member of this set.  Only whole
// tokens match, hence "movx" is not contained in a set holding "mov".
func (s KeywordSet) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of keywords in this set.
func (s KeywordSet) Len() int {
	return len(s.words)
}

// Words returns the keywords of this set in sorted order.  The returned slice
// is a fresh copy.
func (s KeywordSet) Words() []string {
	words := make([]string, 0, len(s.words))
	//
	for w := range s.words {
		words = append(words, w)
	}
	//
	slices.Sort(words)
	//
	return words
}

// Registers returns the set of register names.
func Registers() KeywordSet { return registers }

// Prefixes returns the set of instruction prefixes.
func Prefixes() KeywordSet { return prefixes }

// Types returns the set of operand size and type keywords.
func Types() KeywordSet { return types }

// Instructions returns the set of instruction mnemonics.
func Instructions() KeywordSet { return instructions }

// PreprocessorDirectives returns the set of preprocessor directives, each of
// which includes its leading '%'.
func PreprocessorDirectives() KeywordSet { return preprocessor }

// Directives returns the set of assembler directives.
func Directives() KeywordSet { return directives }
