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
package source

import (
	"github.com/consensys/go-nasm/pkg/util"
)

// Scanner looks at a given sequence of items, starting from the beginning, and
// attempts to consume 1 or more of them.  If it cannot consume any, then None
// is returned.  Otherwise, it returns a Token which spans items 0..n+1
// where n is the last item of the token.
type Scanner[T any] interface {
	Scan([]T) util.Option[Token]
}

// One creates a scanner responsible for associating a single item with a given
// tag.
func One[T comparable](tag uint, item T) Scanner[T] {
	return &unitScanner[T]{item, tag}
}

// Any creates a scanner which associates any single item with a given tag.
// This is typically used as the final fall-back of an Or scanner, such that
// lexing never gets stuck.
func Any[T any](tag uint) Scanner[T] {
	return &anyScanner[T]{tag}
}

// While creates a scanner responsible for associating the longest non-empty
// run of items matching a given predicate with a given tag.
func While[T any](tag uint, pred func(T) bool) Scanner[T] {
	return &whileScanner[T]{tag, pred}
}

// Rest creates a scanner which, upon seeing a given item, associates it and
// everything following it with a given tag.  This is useful for line comments.
func Rest[T comparable](tag uint, first T) Scanner[T] {
	return &restScanner[T]{tag, first}
}

// Quoted creates a scanner which associates a delimited sequence with a given
// tag.  The sequence begins and ends with the delimiter, though an
// unterminated sequence simply extends to the end of the input.  When an escape
// item is given, any item following it cannot terminate the sequence.
func Quoted[T comparable](tag uint, delim T, escape util.Option[T]) Scanner[T] {
	return &quotedScanner[T]{tag, delim, escape}
}

// Or constructs a scanner which accepts words accepted by any of the given
// scanners.  Scanners are tried in order, with the first to succeed winning.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return &orScanner[T]{scanners}
}

// ============================================================================
// Unit Scanner
// ============================================================================

type unitScanner[T comparable] struct {
	item T
	tag  uint
}

func (p *unitScanner[T]) Scan(items []T) util.Option[Token] {
	if len(items) > 0 && items[0] == p.item {
		token := Token{p.tag, NewSpan(0, 1)}
		return util.Some(token)
	}
	//
	return util.None[Token]()
}

// ============================================================================
// Any Scanner
// ============================================================================

type anyScanner[T any] struct {
	tag uint
}

func (p *anyScanner[T]) Scan(items []T) util.Option[Token] {
	if len(items) > 0 {
		return util.Some(Token{p.tag, NewSpan(0, 1)})
	}
	//
	return util.None[Token]()
}

// ============================================================================
// While Scanner
// ============================================================================

type whileScanner[T any] struct {
	tag  uint
	pred func(T) bool
}

func (p *whileScanner[T]) Scan(items []T) util.Option[Token] {
	i := 0
	//
	for i < len(items) && p.pred(items[i]) {
		i++
	}
	//
	if i != 0 {
		token := Token{p.tag, NewSpan(0, i)}
		return util.Some(token)
	}
	//
	return util.None[Token]()
}

// ============================================================================
// Rest Scanner
// ============================================================================

type restScanner[T comparable] struct {
	tag   uint
	first T
}

func (p *restScanner[T]) Scan(items []T) util.Option[Token] {
	if len(items) > 0 && items[0] == p.first {
		return util.Some(Token{p.tag, NewSpan(0, len(items))})
	}
	//
	return util.None[Token]()
}

// ============================================================================
// Quoted Scanner
// ============================================================================

type quotedScanner[T comparable] struct {
	tag    uint
	delim  T
	escape util.Option[T]
}

func (p *quotedScanner[T]) Scan(items []T) util.Option[Token] {
	if len(items) == 0 || items[0] != p.delim {
		return util.None[Token]()
	}
	//
	for i := 1; i < len(items); i++ {
		if p.escape.HasValue() && items[i] == p.escape.Unwrap() {
			// Skip escaped item
			i++
		} else if items[i] == p.delim {
			return util.Some(Token{p.tag, NewSpan(0, i+1)})
		}
	}
	// Unterminated
	return util.Some(Token{p.tag, NewSpan(0, len(items))})
}

// ============================================================================
// Or Scanner
// ============================================================================

type orScanner[T any] struct {
	scanners []Scanner[T]
}

func (p *orScanner[T]) Scan(items []T) util.Option[Token] {
	for _, scanner := range p.scanners {
		if res := scanner.Scan(items); res.HasValue() {
			return res
		}
	}
	// Failed
	return util.None[Token]()
}
