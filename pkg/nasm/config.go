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
	"errors"
	"fmt"
	"strings"
)

// DefaultBasicOffset is the indentation used for ordinary instruction lines
// when nothing else is configured.  This corresponds to a typical tab width.
const DefaultBasicOffset = 8

// ErrInvalidOffset is reported for a basic offset which is not positive.
var ErrInvalidOffset = errors.New("invalid basic offset")

// ErrInvalidWhitespace is reported for an unknown after-mnemonic whitespace
// mode.
var ErrInvalidWhitespace = errors.New("invalid after-mnemonic whitespace")

// Whitespace determines what is inserted when indenting immediately after a
// mnemonic.
type Whitespace uint8

const (
	// WhitespaceTab inserts a literal tab character.
	WhitespaceTab Whitespace = iota
	// WhitespaceSpace inserts basic-offset many spaces.
	WhitespaceSpace
	// WhitespaceNone inserts nothing.
	WhitespaceNone
)

var whitespaceNames = []string{"tab", "space", "none"}

// ParseWhitespace converts a (case-insensitive) textual whitespace mode, such
// as "tab", into its corresponding value.
func ParseWhitespace(name string) (Whitespace, error) {
	for i, n := range whitespaceNames {
		if strings.EqualFold(n, name) {
			return Whitespace(i), nil
		}
	}
	//
	return WhitespaceTab, fmt.Errorf("%w \"%s\" (expected one of %s)", ErrInvalidWhitespace, name,
		strings.Join(whitespaceNames, ", "))
}

func (w Whitespace) String() string {
	if int(w) < len(whitespaceNames) {
		return whitespaceNames[w]
	}
	//
	return fmt.Sprintf("whitespace(%d)", w)
}

// Config holds the user-settable options which govern indentation.  A
// configuration is read-only at decision time.
type Config struct {
	// BasicOffset is the indentation of ordinary instruction lines.
	BasicOffset int
	// AfterMnemonic determines what is inserted after a mnemonic.
	AfterMnemonic Whitespace
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{DefaultBasicOffset, WhitespaceTab}
}

// NewConfig constructs a configuration from its textual form, checking that
// it is well-formed.
func NewConfig(offset int, afterMnemonic string) (Config, error) {
	ws, err := ParseWhitespace(afterMnemonic)
	if err != nil {
		return Config{}, err
	}
	//
	cfg := Config{offset, ws}
	//
	return cfg, cfg.Validate()
}

// Validate checks that this configuration is well-formed.
func (c Config) Validate() error {
	if c.BasicOffset <= 0 {
		return fmt.Errorf("%w %d (must be positive)", ErrInvalidOffset, c.BasicOffset)
	} else if int(c.AfterMnemonic) >= len(whitespaceNames) {
		return fmt.Errorf("%w %s", ErrInvalidWhitespace, c.AfterMnemonic.String())
	}
	//
	return nil
}
