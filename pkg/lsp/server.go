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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/consensys/go-nasm/pkg/nasm"
	log "github.com/sirupsen/logrus"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// Server is a language server offering highlighting (as semantic tokens),
// formatting, hover and document symbols for NASM files.  Documents are
// synchronised in full on every change.
type Server struct {
	config nasm.Config
	// Classify lines of a document in parallel.
	parallel bool
	// Version reported to the client.
	version string
	// Guards all fields below.
	mutex     sync.Mutex
	documents map[protocol.DocumentURI]*document
	shutdown  bool
	conn      jsonrpc2.Conn
}

// NewServer constructs a server using a given indentation configuration.
func NewServer(config nasm.Config, version string, parallel bool) *Server {
	return &Server{
		config:    config,
		parallel:  parallel,
		version:   version,
		documents: make(map[protocol.DocumentURI]*document),
	}
}

// Serve handles messages arriving over a given stream until either the
// client sends "exit", the stream is closed, or the context is cancelled.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	//
	s.mutex.Lock()
	s.conn = conn
	s.mutex.Unlock()
	//
	conn.Go(ctx, s.handle)
	//
	select {
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	case <-conn.Done():
	}
	// An orderly exit closes the connection itself.
	if s.isShutdown() {
		return nil
	}
	//
	return conn.Err()
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	log.Debugf("received %s", req.Method())
	//
	switch req.Method() {
	case "initialize":
		return reply(ctx, s.initialize(), nil)
	case "initialized", "$/cancelRequest", "$/setTrace", "workspace/didChangeConfiguration":
		return reply(ctx, nil, nil)
	case "shutdown":
		s.mutex.Lock()
		s.shutdown = true
		s.mutex.Unlock()
		//
		return reply(ctx, nil, nil)
	case "exit":
		err := reply(ctx, nil, nil)
		s.conn.Close()
		//
		return err
	case "textDocument/didOpen":
		return handle(ctx, reply, req, func(p protocol.DidOpenTextDocumentParams) any {
			s.update(p.TextDocument.URI, p.TextDocument.Text)
			return nil
		})
	case "textDocument/didChange":
		return handle(ctx, reply, req, func(p protocol.DidChangeTextDocumentParams) any {
			// Full synchronisation means the last change holds the whole text
			if n := len(p.ContentChanges); n > 0 {
				s.update(p.TextDocument.URI, p.ContentChanges[n-1].Text)
			}
			//
			return nil
		})
	case "textDocument/didClose":
		return handle(ctx, reply, req, func(p protocol.DidCloseTextDocumentParams) any {
			s.mutex.Lock()
			delete(s.documents, p.TextDocument.URI)
			s.mutex.Unlock()
			//
			return nil
		})
	case "textDocument/semanticTokens/full":
		return handle(ctx, reply, req, func(p protocol.SemanticTokensParams) any {
			data := make([]uint32, 0)
			//
			if doc := s.document(p.TextDocument.URI); doc != nil {
				data = doc.semanticTokens(s.parallel)
			}
			//
			return &protocol.SemanticTokens{Data: data}
		})
	case "textDocument/documentSymbol":
		return handle(ctx, reply, req, func(p protocol.DocumentSymbolParams) any {
			if doc := s.document(p.TextDocument.URI); doc != nil {
				return doc.symbols()
			}
			//
			return nil
		})
	case "textDocument/formatting":
		return handle(ctx, reply, req, func(p protocol.DocumentFormattingParams) any {
			if doc := s.document(p.TextDocument.URI); doc != nil {
				return doc.formatting(s.config)
			}
			//
			return nil
		})
	case "textDocument/hover":
		return handle(ctx, reply, req, func(p protocol.HoverParams) any {
			if doc := s.document(p.TextDocument.URI); doc != nil {
				if h := doc.hover(p.Position); h != nil {
					return h
				}
			}
			//
			return nil
		})
	}
	//
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

// Decode the parameters of a request, apply a given function and reply with
// its result.  Malformed parameters are reported to the client rather than
// terminating the connection.
func handle[P any](ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, fn func(P) any) error {
	var params P
	//
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInvalidParams, err.Error()))
	}
	//
	return reply(ctx, fn(params), nil)
}

// Capabilities are static, hence the response is fixed.
func (s *Server) initialize() any {
	return map[string]any{
		"capabilities": map[string]any{
			"textDocumentSync":           map[string]any{"openClose": true, "change": protocol.TextDocumentSyncKindFull},
			"hoverProvider":              true,
			"documentSymbolProvider":     true,
			"documentFormattingProvider": true,
			"semanticTokensProvider": map[string]any{
				"legend": map[string]any{"tokenTypes": tokenLegend, "tokenModifiers": []string{}},
				"full":   true,
			},
		},
		"serverInfo": protocol.ServerInfo{Name: "go-nasm", Version: s.version},
	}
}

func (s *Server) update(id protocol.DocumentURI, text string) {
	log.Debugf("updating %s (%d bytes)", filename(id), len(text))
	//
	s.mutex.Lock()
	defer s.mutex.Unlock()
	//
	s.documents[id] = newDocument(text)
}

func (s *Server) document(id protocol.DocumentURI) *document {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	//
	return s.documents[id]
}

func (s *Server) isShutdown() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	//
	return s.shutdown
}

// Determine a readable name for a document, falling back to its URI when it is
// not a file.
func filename(id protocol.DocumentURI) string {
	if strings.HasPrefix(string(id), uri.FileScheme+"://") {
		return uri.URI(id).Filename()
	}
	//
	return string(id)
}
