// Package github fetches GitHub profile and repository data.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codeGROOVE-dev/devroast/pkg/profile"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "devroast/1.0"
	acceptHeader   = "application/vnd.github.v3+json"
	maxBodySize    = 1 << 20
	repoPageSize   = 100
)

// User is the raw account payload from the users endpoint. Optional fields
// decode to their zero value and stay absent in the normalized record.
//
//nolint:govet // fieldalignment: intentional layout for readability
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	TwitterUser string `json:"twitter_username"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Repo is one raw repository entry. A JSON null language decodes to "".
type Repo struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Stars    int    `json:"stargazers_count"`
	Fork     bool   `json:"fork"`
}

// APIError contains details about a GitHub API error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error %d: %s", e.StatusCode, e.Message)
}

// Client handles GitHub requests.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// Option configures a Client.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	baseURL string
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(baseURL string) Option {
	return func(c *config) { c.baseURL = baseURL }
}

// New creates a GitHub client.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default(), baseURL: defaultBaseURL}
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
		baseURL:    cfg.baseURL,
	}, nil
}

// Fetch retrieves the account profile and up to one page of owned
// repositories for the given handle. Both requests run concurrently and
// both settle before Fetch returns. A repository-list failure is tolerated:
// the profile is returned with a nil repo slice and repo-derived fields
// default downstream. A profile failure fails the whole call.
func (c *Client) Fetch(ctx context.Context, handle string) (*User, []Repo, error) {
	if handle == "" {
		return nil, nil, fmt.Errorf("github: %w", profile.ErrProfileNotFound)
	}

	c.logger.InfoContext(ctx, "fetching github profile", "username", handle)

	var (
		user    *User
		userErr error
		repos   []Repo
		repoErr error
	)

	var g errgroup.Group

	g.Go(func() error {
		user, userErr = c.fetchUser(ctx, handle)
		return nil // errors handled via userErr
	})

	g.Go(func() error {
		repos, repoErr = c.fetchRepos(ctx, handle)
		return nil
	})

	_ = g.Wait() //nolint:errcheck // errors returned via captured variables

	if userErr != nil {
		return nil, nil, userErr
	}
	if repoErr != nil {
		c.logger.WarnContext(ctx, "repository list unavailable, continuing without repo stats",
			"username", handle, "error", repoErr)
		repos = nil
	}

	return user, repos, nil
}

func (c *Client) fetchUser(ctx context.Context, handle string) (*User, error) {
	body, err := c.get(ctx, c.baseURL+"/users/"+handle, handle)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("parsing github user response: %w", err)
	}
	if user.Login == "" {
		return nil, fmt.Errorf("github user %q: response missing login field", handle)
	}
	return &user, nil
}

func (c *Client) fetchRepos(ctx context.Context, handle string) ([]Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d", c.baseURL, handle, repoPageSize)
	body, err := c.get(ctx, url, handle)
	if err != nil {
		return nil, err
	}

	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("parsing github repos response: %w", err)
	}
	return repos, nil
}

func (c *Client) get(ctx context.Context, url, handle string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // best effort close

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("github user %q: %w", handle, profile.ErrProfileNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize)) //nolint:errcheck // best effort read of error body
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(msg)}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
