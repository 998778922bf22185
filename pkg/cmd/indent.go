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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-nasm/pkg/nasm"
	"github.com/consensys/go-nasm/pkg/util"
	"github.com/consensys/go-nasm/pkg/util/source"
	"github.com/consensys/go-nasm/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var indentCmd = &cobra.Command{
	Use:   "indent [flags] file(s)",
	Short: "re-indent one or more assembly files.",
	Long: `Re-indent every line of one or more assembly files.  By default, the
	result is printed.  Using --write updates files in place, whilst --check
	reports misindented lines and fails if there are any.  These two flags
	cannot be combined.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := getConfig(cmd)
		write := GetFlag(cmd, "write")
		check := GetFlag(cmd, "check")
		misindented := 0
		//
		if err := checkIndentFlags(write, check); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for _, file := range readSourceFiles(args...) {
			stats := util.NewPerfStats()
			text := file.Contents()
			updated := nasm.IndentBuffer(text, config)
			//
			switch {
			case check:
				misindented += reportMisindented(file, config)
			case write && updated != text:
				if err := os.WriteFile(file.Filename(), []byte(updated), 0644); err != nil {
					fmt.Println(err)
					os.Exit(2)
				}
				//
				log.Debugf("rewrote %s", file.Filename())
			case !write:
				fmt.Print(updated)
			}
			//
			stats.Log(fmt.Sprintf("Indenting %s", file.Filename()), len(file.Lines()))
		}
		//
		if misindented > 0 {
			os.Exit(1)
		}
	},
}

var errCheckAndWrite = errors.New("--check and --write cannot be combined")

// Reject flag combinations which the indent command cannot honour.
func checkIndentFlags(write bool, check bool) error {
	if write && check {
		return errCheckAndWrite
	}
	//
	return nil
}

// Print every line of a file whose indentation would change, returning the
// number of such lines.
func reportMisindented(file source.File, config nasm.Config) int {
	var (
		count    = 0
		location = termio.NewAnsiEscape().Bold()
		expected = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		escapes  = termio.IsTerminal(os.Stdout)
	)
	//
	if !escapes {
		location, expected = termio.NewAnsiEscape(), termio.NewAnsiEscape()
	}
	//
	for _, line := range file.Lines() {
		updated, _ := nasm.Indent(line.String(), 0, config)
		//
		if updated != line.String() {
			fmt.Println(location.Wrap(fmt.Sprintf("%s:%d:", file.Filename(), line.Number())))
			fmt.Printf("-%s\n", line.String())
			fmt.Printf("+%s\n", expected.Wrap(updated))
			//
			count++
		}
	}
	//
	return count
}

func init() {
	rootCmd.AddCommand(indentCmd)
	indentCmd.Flags().BoolP("write", "w", false, "rewrite files in place")
	indentCmd.Flags().Bool("check", false, "report misindented lines (exits with 1 if any); incompatible with --write")
}
