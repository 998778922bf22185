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
	"fmt"
	"os"

	"github.com/consensys/go-nasm/pkg/highlight"
	"github.com/consensys/go-nasm/pkg/nasm"
	"github.com/consensys/go-nasm/pkg/util/source"
	"github.com/consensys/go-nasm/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file(s)",
	Short: "highlight one or more assembly files.",
	Long: `Render one or more assembly files with syntax highlighting, or
	(with --spans) list the classification of every token.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		getConfig(cmd)
		//
		spans := GetFlag(cmd, "spans")
		parallel := GetFlag(cmd, "parallel")
		format := GetString(cmd, "format")
		style := GetString(cmd, "style")
		// Only emit escapes when writing to a terminal
		if format == "" && termio.IsTerminal(os.Stdout) {
			format = "terminal256"
		} else if format == "" {
			format = "noop"
		}
		//
		for _, file := range readSourceFiles(args...) {
			log.Debugf("highlighting %s", file.Filename())
			//
			if spans {
				printSpans(file, parallel)
			} else if err := highlight.Render(os.Stdout, file.Contents(), format, style, parallel); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	},
}

// Print the classification of every token in a file, one per line.
func printSpans(file source.File, parallel bool) {
	var (
		text  = file.Contents()
		table = termio.NewTablePrinter(3)
	)
	//
	table.AnsiEscapes(termio.IsTerminal(os.Stdout))
	table.SetEscape(1, termio.NewAnsiEscape().FgColour(termio.TERM_CYAN))
	//
	for _, h := range nasm.HighlightBuffer(text, parallel) {
		table.AddRow(h.Span.String(), h.Category.String(), h.Span.Text(text))
	}
	//
	if err := table.Print(os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(highlightCmd)
	highlightCmd.Flags().Bool("spans", false, "list token classifications instead of rendering")
	highlightCmd.Flags().Bool("parallel", false, "classify lines in parallel")
	highlightCmd.Flags().String("format", "", "chroma formatter (e.g. terminal256, html or noop)")
	highlightCmd.Flags().String("style", "monokai", "chroma style")
}
