// Package profile defines the normalized record types for developer profile
// aggregation, along with the pure functions that build them from raw
// upstream payloads.
package profile

import (
	"errors"
)

// Common errors returned by source client packages.
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// GitHub is the normalized record for a code-host profile. Records are
// built fresh per invocation and never mutated afterwards.
//
//nolint:govet // fieldalignment: intentional layout for readability
type GitHub struct {
	Username        string   `json:"username"`
	Name            string   `json:"name,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Followers       int      `json:"followers"`
	Following       int      `json:"following"`
	PublicRepos     int      `json:"public_repos"`
	TotalStars      int      `json:"total_stars"`
	ForkCount       int      `json:"fork_count"`
	AccountAgeDays  int      `json:"account_age_days"`
	DaysSinceActive int      `json:"days_since_active"`
	TopLanguages    []string `json:"top_languages,omitempty"`
	TwitterHandle   string   `json:"twitter_handle,omitempty"`
	Instruction     string   `json:"instruction"`
}

// LeetCode is the normalized record for a competitive-programming profile.
//
//nolint:govet // fieldalignment: intentional layout for readability
type LeetCode struct {
	Username       string  `json:"username"`
	Ranking        int     `json:"ranking"`
	Reputation     int     `json:"reputation"`
	TotalSolved    int     `json:"total_solved"`
	EasySolved     int     `json:"easy_solved"`
	MediumSolved   int     `json:"medium_solved"`
	HardSolved     int     `json:"hard_solved"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	Instruction    string  `json:"instruction"`
}
