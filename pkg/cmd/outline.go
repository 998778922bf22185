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
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [flags] file(s)",
	Short: "list definition sites in one or more assembly files.",
	Long: `List the labels and macros defined in one or more assembly files,
	suitable for navigation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		getConfig(cmd)
		kinds := GetFlag(cmd, "kinds")
		//
		for _, file := range readSourceFiles(args...) {
			for _, def := range nasm.Outline(file.Contents()) {
				if kinds {
					fmt.Printf("%s:%d: %s (%s)\n", file.Filename(), def.Line, def.Name, def.Kind)
				} else {
					fmt.Printf("%s:%d: %s\n", file.Filename(), def.Line, def.Name)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
	outlineCmd.Flags().Bool("kinds", false, "show the kind of each definition")
}
