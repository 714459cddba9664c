package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/devroast/internal/metrics"
	"github.com/codeGROOVE-dev/devroast/pkg/devroast"
	"github.com/codeGROOVE-dev/devroast/pkg/hangman"
)

func toolDefinitions() []map[string]any {
	return []map[string]any{
		{
			"name":        "validate",
			"description": "Return the identity of the operator running this server",
			"inputSchema": map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			"name":        "github_profile",
			"description": "Fetch a GitHub profile, summarize it, and return roast instructions grounded in the numbers",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"user": map[string]string{"type": "string", "description": "GitHub username or profile URL"},
				},
				"required": []string{"user"},
			},
		},
		{
			"name":        "leetcode_profile",
			"description": "Fetch LeetCode solve statistics and return critique instructions grounded in the numbers",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"username": map[string]string{"type": "string", "description": "LeetCode username"},
				},
				"required": []string{"username"},
			},
		},
		{
			"name":        "hangman_start",
			"description": "Start a new hangman game with a random programming word",
			"inputSchema": map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			"name":        "hangman_guess",
			"description": "Guess a letter in the current hangman game",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"letter": map[string]string{"type": "string", "description": "The letter to guess (single character)"},
				},
				"required": []string{"letter"},
			},
		},
		{
			"name":        "hangman_status",
			"description": "Show the current hangman game state without making a guess",
			"inputSchema": map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			"name":        "hangman_rules",
			"description": "Explain the rules of the hangman game",
			"inputSchema": map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (s *Server) handleToolCall(ctx context.Context, req jsonRPCRequest, base jsonRPCResponse) jsonRPCResponse {
	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		base.Error = &rpcError{Code: codeInvalidParams, Message: "invalid params: " + err.Error()}
		return base
	}

	start := time.Now()
	resp := s.callTool(ctx, params, base)

	status := "ok"
	if resp.Error != nil {
		status = "error"
	}
	metrics.RecordToolCall(params.Name, status)
	metrics.RecordToolCallDuration(params.Name, float64(time.Since(start).Milliseconds()))
	s.logger.InfoContext(ctx, "tool call", "tool", params.Name, "status", status, "duration", time.Since(start))

	return resp
}

func (s *Server) callTool(ctx context.Context, params toolCallParams, base jsonRPCResponse) jsonRPCResponse {
	switch params.Name {
	case "validate":
		base.Result = mcpContent(s.identity)
		return base
	case "github_profile":
		return s.toolGitHubProfile(ctx, params.Arguments, base)
	case "leetcode_profile":
		return s.toolLeetCodeProfile(ctx, params.Arguments, base)
	case "hangman_start":
		return s.toolHangmanStart(base)
	case "hangman_guess":
		return s.toolHangmanGuess(params.Arguments, base)
	case "hangman_status":
		return s.toolHangmanStatus(base)
	case "hangman_rules":
		base.Result = mcpContent(hangman.Rules())
		return base
	default:
		base.Error = &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown tool: %s", params.Name)}
		return base
	}
}

type githubProfileArgs struct {
	User string `json:"user"`
}

func (s *Server) toolGitHubProfile(ctx context.Context, raw json.RawMessage, base jsonRPCResponse) jsonRPCResponse {
	var args githubProfileArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		base.Error = &rpcError{Code: codeInvalidParams, Message: err.Error()}
		return base
	}

	opts := append([]devroast.Option{devroast.WithLogger(s.logger)}, s.profileOpts...)
	rec, err := devroast.GitHubProfileData(ctx, args.User, opts...)
	if err != nil {
		metrics.RecordUpstreamError("github")
		base.Error = rpcErrorFor(err)
		return base
	}

	data, err := json.Marshal(rec)
	if err != nil {
		base.Error = &rpcError{Code: codeInternalError, Message: err.Error()}
		return base
	}
	base.Result = mcpContent(string(data))
	return base
}

type leetcodeProfileArgs struct {
	Username string `json:"username"`
}

func (s *Server) toolLeetCodeProfile(ctx context.Context, raw json.RawMessage, base jsonRPCResponse) jsonRPCResponse {
	var args leetcodeProfileArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		base.Error = &rpcError{Code: codeInvalidParams, Message: err.Error()}
		return base
	}

	opts := append([]devroast.Option{devroast.WithLogger(s.logger)}, s.profileOpts...)
	rec, err := devroast.LeetCodeProfileData(ctx, args.Username, opts...)
	if err != nil {
		metrics.RecordUpstreamError("leetcode")
		base.Error = rpcErrorFor(err)
		return base
	}

	data, err := json.Marshal(rec)
	if err != nil {
		base.Error = &rpcError{Code: codeInternalError, Message: err.Error()}
		return base
	}
	base.Result = mcpContent(string(data))
	return base
}

func (s *Server) toolHangmanStart(base jsonRPCResponse) jsonRPCResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game = hangman.New()
	base.Result = mcpContent(s.game.StartMessage())
	return base
}

type hangmanGuessArgs struct {
	Letter string `json:"letter"`
}

func (s *Server) toolHangmanGuess(raw json.RawMessage, base jsonRPCResponse) jsonRPCResponse {
	var args hangmanGuessArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		base.Error = &rpcError{Code: codeInvalidParams, Message: err.Error()}
		return base
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		base.Result = mcpContent("No game in progress! Please start a new game first.")
		return base
	}

	report, err := s.game.Guess(args.Letter)
	if err != nil {
		base.Error = rpcErrorFor(err)
		return base
	}
	base.Result = mcpContent(report)
	return base
}

func (s *Server) toolHangmanStatus(base jsonRPCResponse) jsonRPCResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		base.Result = mcpContent("No game in progress! Please start a new game first.")
		return base
	}
	base.Result = mcpContent(s.game.Status())
	return base
}

func mcpContent(text string) map[string]any {
	return map[string]any{
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
	}
}
