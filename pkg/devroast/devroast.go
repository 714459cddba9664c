// Package devroast provides the aggregation entry points for developer
// profile data. Each call resolves the identifier, fetches from the source
// platform, normalizes the payload, and embeds deterministic instruction
// text for a downstream generation agent.
//
// Basic usage:
//
//	rec, err := devroast.GitHubProfileData(ctx, "https://github.com/torvalds")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rec.Instruction)
//
// Nothing is retained between calls: every invocation builds a fresh record
// from a fresh upstream round trip.
package devroast

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/devroast/pkg/github"
	"github.com/codeGROOVE-dev/devroast/pkg/handle"
	"github.com/codeGROOVE-dev/devroast/pkg/leetcode"
	"github.com/codeGROOVE-dev/devroast/pkg/profile"
)

// Option configures a profile data call.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	githubBaseURL    string
	leetcodeEndpoint string
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithGitHubBaseURL overrides the GitHub API base URL (used in tests).
func WithGitHubBaseURL(baseURL string) Option {
	return func(c *config) { c.githubBaseURL = baseURL }
}

// WithLeetCodeEndpoint overrides the LeetCode GraphQL endpoint (used in tests).
func WithLeetCodeEndpoint(endpoint string) Option {
	return func(c *config) { c.leetcodeEndpoint = endpoint }
}

// GitHubProfileData resolves the identifier (handle or profile URL),
// fetches the account and repository data, and returns the normalized
// record with instruction text attached.
func GitHubProfileData(ctx context.Context, idOrURL string, opts ...Option) (*profile.GitHub, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	username, err := handle.Resolve(idOrURL)
	if err != nil {
		return nil, err
	}

	clientOpts := []github.Option{github.WithLogger(cfg.logger)}
	if cfg.githubBaseURL != "" {
		clientOpts = append(clientOpts, github.WithBaseURL(cfg.githubBaseURL))
	}
	client, err := github.New(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	user, repos, err := client.Fetch(ctx, username)
	if err != nil {
		return nil, err
	}

	rec := NormalizeGitHub(user, repos, time.Now())
	rec.Instruction = profile.BuildGitHubInstruction(rec)
	return &rec, nil
}

// LeetCodeProfileData fetches submission statistics for a bare username and
// returns the normalized record with instruction text attached.
func LeetCodeProfileData(ctx context.Context, username string, opts ...Option) (*profile.LeetCode, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, handle.ErrInvalid
	}

	clientOpts := []leetcode.Option{leetcode.WithLogger(cfg.logger)}
	if cfg.leetcodeEndpoint != "" {
		clientOpts = append(clientOpts, leetcode.WithEndpoint(cfg.leetcodeEndpoint))
	}
	client, err := leetcode.New(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	stats, err := client.Fetch(ctx, username)
	if err != nil {
		return nil, err
	}

	rec := NormalizeLeetCode(stats)
	rec.Instruction = profile.BuildLeetCodeInstruction(rec)
	return &rec, nil
}
