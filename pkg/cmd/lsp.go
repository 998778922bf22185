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
	"context"
	"fmt"
	"os"

	"github.com/consensys/go-nasm/pkg/lsp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "run a language server over stdin/stdout.",
	Long: `Run a language server which communicates over stdin and stdout,
	providing semantic highlighting, formatting, hover and document symbols.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := getConfig(cmd)
		parallel := GetFlag(cmd, "parallel")
		// Logs must not interfere with the protocol on stdout
		log.SetOutput(os.Stderr)
		//
		server := lsp.NewServer(config, Version, parallel)
		//
		if err := server.Serve(context.Background(), stdio{}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// stdio joins stdin and stdout into a single stream.
type stdio struct{}

func (stdio) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdio) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdio) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	//
	return os.Stdout.Close()
}

func init() {
	rootCmd.AddCommand(lspCmd)
	lspCmd.Flags().Bool("parallel", false, "classify lines in parallel")
}
