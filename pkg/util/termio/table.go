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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing aligned columns to the terminal.  Rows
// are added one at a time, and column widths are determined from their
// contents.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       []AnsiEscape
	maxWidth      uint
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, make([]AnsiEscape, width), 0, true}
}

// AddRow appends a row to this table.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, v := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(v)))
	}
	//
	p.rows = append(p.rows, vals)
}

// SetEscape sets the escape used when printing every cell of a given column.
func (p *TablePrinter) SetEscape(col uint, escape AnsiEscape) {
	p.escapes[col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful when output is not a terminal as,
// otherwise, you get a lot of visible escape characters being printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of any column.  Zero means no
// bound.
func (p *TablePrinter) SetMaxWidth(width uint) {
	p.maxWidth = width
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) error {
	var builder strings.Builder
	//
	for _, row := range p.rows {
		builder.Reset()
		//
		for j, col := range row {
			width := p.widths[j]
			//
			if p.maxWidth > 0 {
				width = min(width, p.maxWidth)
			}
			//
			if j != 0 {
				builder.WriteString(" ")
			}
			//
			text := truncate(col, width)
			// Last column is not padded
			if j+1 < len(row) {
				text = pad(text, width)
			}
			//
			if p.enableEscapes {
				text = p.escapes[j].Wrap(text)
			}
			//
			builder.WriteString(text)
		}
		//
		if _, err := fmt.Fprintln(w, builder.String()); err != nil {
			return err
		}
	}
	//
	return nil
}

func truncate(text string, width uint) string {
	if uint(utf8.RuneCountInString(text)) <= width || width < 2 {
		return text
	}
	//
	runes := []rune(text)
	//
	return string(runes[:width-2]) + ".."
}

func pad(text string, width uint) string {
	n := uint(utf8.RuneCountInString(text))
	//
	if n >= width {
		return text
	}
	//
	return text + strings.Repeat(" ", int(width-n))
}
