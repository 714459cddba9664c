// Package leetcode fetches LeetCode user submission statistics.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/devroast/pkg/profile"
)

const (
	defaultEndpoint = "https://leetcode.com/graphql"
	userAgent       = "devroast/1.0"
	maxBodySize     = 1 << 20
)

const graphQLQuery = `query($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      ranking
      reputation
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
      totalSubmissionNum {
        difficulty
        count
        submissions
      }
    }
  }
}`

// graphQLRequest represents the GraphQL query structure.
//
//nolint:govet // fieldalignment: struct ordering for JSON readability
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLResponse represents the GraphQL response structure.
type graphQLResponse struct {
	Data struct {
		MatchedUser *Stats `json:"matchedUser"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// TierCount is one per-difficulty submission bucket.
type TierCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// Stats is the raw matched-user payload: per-tier submission counts plus
// ranking and reputation scalars.
type Stats struct {
	Username string `json:"username"`
	Profile  struct {
		Ranking    int `json:"ranking"`
		Reputation int `json:"reputation"`
	} `json:"profile"`
	SubmitStats struct {
		Accepted []TierCount `json:"acSubmissionNum"`
		Total    []TierCount `json:"totalSubmissionNum"`
	} `json:"submitStatsGlobal"`
}

// APIError contains details about a LeetCode API error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("LeetCode API error %d: %s", e.StatusCode, e.Message)
}

// Client handles LeetCode requests.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
}

// Option configures a Client.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	endpoint string
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithEndpoint overrides the GraphQL endpoint (used in tests).
func WithEndpoint(endpoint string) Option {
	return func(c *config) { c.endpoint = endpoint }
}

// New creates a LeetCode client.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default(), endpoint: defaultEndpoint}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		endpoint:   cfg.endpoint,
	}, nil
}

// Fetch retrieves submission statistics for the given username via a single
// GraphQL round trip. An absent matchedUser means the account does not
// exist; that and any non-200 status are distinct typed failures.
func (c *Client) Fetch(ctx context.Context, username string) (*Stats, error) {
	if username == "" {
		return nil, fmt.Errorf("leetcode: %w", profile.ErrProfileNotFound)
	}

	c.logger.InfoContext(ctx, "fetching leetcode profile", "username", username)

	reqBody := graphQLRequest{
		Query: graphQLQuery,
		Variables: map[string]any{
			"username": username,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // best effort close

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize)) //nolint:errcheck // best effort read of error body
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(msg)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return nil, fmt.Errorf("parsing leetcode response: %w", err)
	}

	// A nonexistent username comes back as a null matchedUser, usually
	// alongside a GraphQL error, so the existence check runs first.
	if gqlResp.Data.MatchedUser == nil || gqlResp.Data.MatchedUser.Username == "" {
		return nil, fmt.Errorf("leetcode user %q: %w", username, profile.ErrProfileNotFound)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: gqlResp.Errors[0].Message}
	}

	return gqlResp.Data.MatchedUser, nil
}
