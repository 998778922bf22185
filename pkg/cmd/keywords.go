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

	"github.com/consensys/go-nasm/pkg/nasm"
	"github.com/consensys/go-nasm/pkg/util/termio"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [flags] [set]",
	Short: "list the recognised keywords.",
	Long: `Without arguments, summarise the keyword sets used for classification.
	Otherwise, list every keyword in the given set.`,
	Run: func(cmd *cobra.Command, args []string) {
		getConfig(cmd)
		//
		switch len(args) {
		case 0:
			printKeywordSets()
		case 1:
			set, ok := keywordSets()[args[0]]
			if !ok {
				fmt.Printf("unknown keyword set \"%s\"\n", args[0])
				os.Exit(2)
			}
			//
			for _, w := range set.Words() {
				fmt.Println(w)
			}
		default:
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
	},
}

// Keyword sets by name, where names match the categories they give rise to.
func keywordSets() map[string]nasm.KeywordSet {
	return map[string]nasm.KeywordSet{
		nasm.Register.String():     nasm.Registers(),
		nasm.Prefix.String():       nasm.Prefixes(),
		nasm.Type.String():         nasm.Types(),
		nasm.Instruction.String():  nasm.Instructions(),
		nasm.Preprocessor.String(): nasm.PreprocessorDirectives(),
		nasm.Directive.String():    nasm.Directives(),
	}
}

func printKeywordSets() {
	var (
		sets  = keywordSets()
		table = termio.NewTablePrinter(2)
	)
	//
	table.AnsiEscapes(termio.IsTerminal(os.Stdout))
	table.SetEscape(0, termio.NewAnsiEscape().Bold())
	//
	for _, c := range []nasm.Category{nasm.Register, nasm.Prefix, nasm.Type, nasm.Instruction, nasm.Preprocessor,
		nasm.Directive} {
		table.AddRow(c.String(), fmt.Sprintf("%d", sets[c.String()].Len()))
	}
	//
	if err := table.Print(os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
