// Package mcp implements the JSON-RPC 2.0 tool server that exposes the
// profile fetchers and the hangman game to an external agent over HTTP.
//
// The wire protocol follows the Model Context Protocol shape: a single POST
// endpoint accepts jsonrpc requests for initialize, ping, tools/list, and
// tools/call, and every tool result is wrapped in a text content block.
package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/codeGROOVE-dev/devroast/pkg/devroast"
	"github.com/codeGROOVE-dev/devroast/pkg/github"
	"github.com/codeGROOVE-dev/devroast/pkg/handle"
	"github.com/codeGROOVE-dev/devroast/pkg/hangman"
	"github.com/codeGROOVE-dev/devroast/pkg/leetcode"
	"github.com/codeGROOVE-dev/devroast/pkg/profile"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "devroast"
	serverVersion   = "1.0.0"

	// maxRequestBody bounds how much of a request body is read.
	maxRequestBody = 1 << 20
)

// Server handles JSON-RPC tool traffic for one configured operator.
type Server struct {
	identity    string
	token       string
	logger      *slog.Logger
	profileOpts []devroast.Option

	mu   sync.Mutex
	game *hangman.Game
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithProfileOptions forwards options to the profile fetch calls (used in
// tests to point the clients at local servers).
func WithProfileOptions(opts ...devroast.Option) Option {
	return func(s *Server) { s.profileOpts = opts }
}

// NewServer creates a tool server. The token guards every request to the
// tool endpoint; identity is what the validate tool returns.
func NewServer(token, identity string, opts ...Option) *Server {
	s := &Server{
		token:    token,
		identity: identity,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the full HTTP handler: the authenticated tool endpoint
// plus the unauthenticated health endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", instrument("/mcp", s.requireBearer(http.HandlerFunc(s.handleRPC))))
	mux.Handle("/healthz", instrument("/healthz", http.HandlerFunc(handleHealth)))
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes used by this server.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var req jsonRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeResponse(w, jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      nil,
			Error:   &rpcError{Code: codeParseError, Message: "parse error"},
		})
		return
	}

	resp := s.dispatch(r, req)
	s.writeResponse(w, resp)
}

func (s *Server) writeResponse(w http.ResponseWriter, resp jsonRPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) dispatch(r *http.Request, req jsonRPCRequest) jsonRPCResponse {
	base := jsonRPCResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		base.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{"listChanged": false}},
			"serverInfo":      map[string]any{"name": serverName, "version": serverVersion},
		}
		return base

	case "ping":
		base.Result = map[string]any{}
		return base

	case "tools/list":
		base.Result = map[string]any{"tools": toolDefinitions()}
		return base

	case "tools/call":
		return s.handleToolCall(r.Context(), req, base)

	default:
		base.Error = &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
		return base
	}
}

// rpcErrorFor maps a tool failure to a JSON-RPC error. Caller mistakes
// (bad identifiers, unknown profiles, bad letters) map to invalid params;
// everything else is an internal error.
func rpcErrorFor(err error) *rpcError {
	switch {
	case errors.Is(err, handle.ErrInvalid),
		errors.Is(err, profile.ErrProfileNotFound),
		errors.Is(err, hangman.ErrInvalidLetter):
		return &rpcError{Code: codeInvalidParams, Message: err.Error()}
	}

	var ghErr *github.APIError
	if errors.As(err, &ghErr) {
		return &rpcError{Code: codeInternalError, Message: ghErr.Error()}
	}
	var lcErr *leetcode.APIError
	if errors.As(err, &lcErr) {
		return &rpcError{Code: codeInternalError, Message: lcErr.Error()}
	}
	return &rpcError{Code: codeInternalError, Message: err.Error()}
}
