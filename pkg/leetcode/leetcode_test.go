package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeGROOVE-dev/devroast/pkg/profile"
)

const statsJSON = `{
	"data": {
		"matchedUser": {
			"username": "testuser",
			"profile": {"ranking": 12345, "reputation": 99},
			"submitStatsGlobal": {
				"acSubmissionNum": [
					{"difficulty": "All", "count": 120, "submissions": 300},
					{"difficulty": "Easy", "count": 60, "submissions": 100},
					{"difficulty": "Medium", "count": 45, "submissions": 150},
					{"difficulty": "Hard", "count": 15, "submissions": 50}
				],
				"totalSubmissionNum": [
					{"difficulty": "All", "count": 200, "submissions": 400}
				]
			}
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(context.Background(), WithEndpoint(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestFetch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Variables["username"] != "testuser" {
			t.Errorf("username variable = %v, want %q", req.Variables["username"], "testuser")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statsJSON))
	})

	stats, err := client.Fetch(context.Background(), "testuser")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if stats.Username != "testuser" {
		t.Errorf("Username = %q, want %q", stats.Username, "testuser")
	}
	if stats.Profile.Ranking != 12345 {
		t.Errorf("Ranking = %d, want 12345", stats.Profile.Ranking)
	}
	if len(stats.SubmitStats.Accepted) != 4 {
		t.Errorf("Accepted tiers = %d, want 4", len(stats.SubmitStats.Accepted))
	}
}

func TestFetchUserNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"matchedUser": null}}`))
	})

	_, err := client.Fetch(context.Background(), "nonexistent")
	if !errors.Is(err, profile.ErrProfileNotFound) {
		t.Errorf("Fetch() error = %v, want ErrProfileNotFound", err)
	}
}

func TestFetchUserNotFoundWithErrors(t *testing.T) {
	// The live endpoint reports a nonexistent username as a GraphQL error
	// plus a null matchedUser in the same response.
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors": [{"message": "That user does not exist."}], "data": {"matchedUser": null}}`))
	})

	_, err := client.Fetch(context.Background(), "nonexistent")
	if !errors.Is(err, profile.ErrProfileNotFound) {
		t.Errorf("Fetch() error = %v, want ErrProfileNotFound", err)
	}
}

func TestFetchGraphQLErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors": [{"message": "something broke"}], "data": {"matchedUser": {"username": "testuser"}}}`))
	})

	_, err := client.Fetch(context.Background(), "testuser")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Fetch() error = %v, want *APIError", err)
	}
}

func TestFetchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Fetch(context.Background(), "testuser")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Fetch() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
}
