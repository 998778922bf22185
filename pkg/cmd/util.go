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
	"github.com/consensys/go-nasm/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure logging and construct the indentation configuration from the
// persistent flags, exiting if these are invalid.
func getConfig(cmd *cobra.Command) nasm.Config {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	config, err := nasm.NewConfig(GetInt(cmd, "basic-offset"), GetString(cmd, "after-mnemonic"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("using basic offset %d with %s after mnemonics", config.BasicOffset, config.AfterMnemonic)
	//
	return config
}

// Read the given source files, exiting if any cannot be read.
func readSourceFiles(filenames ...string) []source.File {
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return files
}
