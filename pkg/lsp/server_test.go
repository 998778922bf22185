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
package lsp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/consensys/go-nasm/pkg/nasm"
	"github.com/stretchr/testify/assert"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const documentURI = protocol.DocumentURI("file:///tmp/sample.asm")

func Test_Server_00(t *testing.T) {
	ctx, client, done := startServer(t)
	//
	var result map[string]any
	//
	_, err := client.Call(ctx, "initialize", map[string]any{}, &result)
	assert.NoError(t, err)
	assert.Contains(t, result, "capabilities")
	//
	open(t, ctx, client, sample)
	//
	var symbols []protocol.DocumentSymbol
	//
	_, err = client.Call(ctx, "textDocument/documentSymbol", identify(), &symbols)
	assert.NoError(t, err)
	//
	if assert.Len(t, symbols, 2) {
		assert.Equal(t, "main", symbols[0].Name)
		assert.Equal(t, "W", symbols[1].Name)
	}
	//
	shutdown(t, ctx, client, done)
}

func Test_Server_01(t *testing.T) {
	ctx, client, done := startServer(t)
	//
	open(t, ctx, client, "\tret\n")
	// Replace the document
	err := client.Notify(ctx, "textDocument/didChange", protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: identify().TextDocument, Version: 2},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "  nop\n"}},
	})
	assert.NoError(t, err)
	//
	var edits []protocol.TextEdit
	//
	_, err = client.Call(ctx, "textDocument/formatting", protocol.DocumentFormattingParams{TextDocument: identify().TextDocument}, &edits)
	assert.NoError(t, err)
	assert.Equal(t, []protocol.TextEdit{{Range: rng(0, 0, 0, 5), NewText: "        nop"}}, edits)
	//
	var tokens protocol.SemanticTokens
	//
	_, err = client.Call(ctx, "textDocument/semanticTokens/full", protocol.SemanticTokensParams{TextDocument: identify().TextDocument}, &tokens)
	assert.NoError(t, err)
	assert.Equal(t, []uint32{0, 2, 3, 6, 0}, tokens.Data)
	//
	shutdown(t, ctx, client, done)
}

func Test_Server_02(t *testing.T) {
	ctx, client, done := startServer(t)
	// Unknown methods are reported, but do not break the connection.
	_, err := client.Call(ctx, "textDocument/rename", map[string]any{}, nil)
	assert.Error(t, err)
	// As are malformed parameters.
	_, err = client.Call(ctx, "textDocument/hover", []int{1}, nil)
	assert.Error(t, err)
	//
	var hover *protocol.Hover
	//
	_, err = client.Call(ctx, "textDocument/hover", protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{TextDocument: identify().TextDocument},
	}, &hover)
	assert.NoError(t, err)
	assert.Nil(t, hover)
	//
	shutdown(t, ctx, client, done)
}

// Start a server on one end of a pipe, returning a client connected to the
// other end and a channel which receives the outcome of serving.
func startServer(t *testing.T) (context.Context, jsonrpc2.Conn, chan error) {
	var (
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		serverEnd   net.Conn
		clientEnd   net.Conn
		done        = make(chan error, 1)
	)
	//
	t.Cleanup(cancel)
	//
	clientEnd, serverEnd = net.Pipe()
	//
	go func() {
		done <- NewServer(nasm.DefaultConfig(), "test", false).Serve(ctx, serverEnd)
	}()
	//
	client := jsonrpc2.NewConn(jsonrpc2.NewStream(clientEnd))
	client.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	t.Cleanup(func() { client.Close() })
	//
	return ctx, client, done
}

func open(t *testing.T, ctx context.Context, client jsonrpc2.Conn, text string) {
	err := client.Notify(ctx, "textDocument/didOpen", protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: documentURI, LanguageID: "nasm", Version: 1, Text: text},
	})
	//
	assert.NoError(t, err)
}

func shutdown(t *testing.T, ctx context.Context, client jsonrpc2.Conn, done chan error) {
	_, err := client.Call(ctx, "shutdown", nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, client.Notify(ctx, "exit", nil))
	assert.NoError(t, <-done)
}

func identify() protocol.DocumentSymbolParams {
	return protocol.DocumentSymbolParams{TextDocument: protocol.TextDocumentIdentifier{URI: documentURI}}
}
