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
	"strconv"

	"github.com/consensys/go-nasm/pkg/nasm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] file offset",
	Short: "classify the token at a given offset.",
	Long: `Print the category of the token enclosing a given (byte) offset in an
	assembly file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		getConfig(cmd)
		//
		offset, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("invalid offset \"%s\"\n", args[1])
			os.Exit(2)
		}
		//
		file := readSourceFiles(args[0])[0]
		log.Debugf("classifying offset %d of %s", offset, file.Filename())
		//
		fmt.Println(nasm.Classify(file.Contents(), offset))
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
