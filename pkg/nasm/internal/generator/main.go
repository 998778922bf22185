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
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Directory (relative to pkg/nasm) holding the generator's inputs.
const generatorDir = "internal/generator"

// Order in which keyword sets are emitted.  This matches the priority order
// used by the classifier, which makes the generated file easier to audit.
var keywordSets = []keywordSpec{
	{"registers", "register names."},
	{"prefixes", "instruction prefixes."},
	{"types", "operand size and type keywords."},
	{"instructions", "instruction mnemonics and pseudo-instructions."},
	{"preprocessor", "preprocessor directives, including their leading sigil."},
	{"directives", "assembler directives."},
}

// Invoked via "go generate" from the nasm package directory.
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-nasm")
	// Read all keyword lists
	cfg, err := readKeywordSets(keywordSets)
	assertNoError(err, "reading keyword lists")
	//
	assertNoError(bgen.Generate(cfg, "nasm", filepath.Join(generatorDir, "templates"),
		bavard.Entry{
			File:      "keywords_gen.go",
			Templates: []string{"keywords.go.tmpl"},
		},
	), "generating keyword tables")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "keywords_gen.go")
}

type keywordSpec struct {
	Name string
	Doc  string
}

type keywordList struct {
	keywordSpec
	Words []string
}

type keywordConfig struct {
	Sets []keywordList
}

func readKeywordSets(specs []keywordSpec) (*keywordConfig, error) {
	var (
		cfg  keywordConfig
		seen = make(map[string]string)
	)
	//
	for _, spec := range specs {
		words, err := readKeywordFile(filepath.Join(generatorDir, "keywords", spec.Name+".txt"))
		if err != nil {
			return nil, err
		}
		// Sanity check that no keyword belongs to more than one set, since the
		// classifier would otherwise silently prefer one of them.
		for _, w := range words {
			if other, ok := seen[w]; ok {
				return nil, fmt.Errorf("keyword \"%s\" in both %s and %s", w, other, spec.Name)
			}
			//
			seen[w] = spec.Name
		}
		//
		cfg.Sets = append(cfg.Sets, keywordList{spec, words})
	}
	//
	return &cfg, nil
}

// Read a keyword file containing one keyword per line.  Blank lines and lines
// starting with '#' are ignored.
func readKeywordFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	var (
		words   []string
		scanner = bufio.NewScanner(file)
	)
	//
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		//
		if line != "" && !strings.HasPrefix(line, "#") {
			words = append(words, line)
		}
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	//
	slices.Sort(words)
	//
	return slices.Compact(words), nil
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
