package devroast

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/devroast/pkg/github"
	"github.com/codeGROOVE-dev/devroast/pkg/leetcode"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestNormalizeGitHub(t *testing.T) {
	user := &github.User{
		Login:       "testuser",
		Name:        "Test User",
		Bio:         "Test bio",
		TwitterUser: "testuser",
		Followers:   100,
		Following:   50,
		PublicRepos: 10,
		CreatedAt:   "2014-06-15T00:00:00Z",
		UpdatedAt:   "2024-06-10T00:00:00Z",
	}
	repos := []github.Repo{
		{Name: "alpha", Language: "Go", Stars: 40},
		{Name: "beta", Language: "Go", Stars: 2, Fork: true},
		{Name: "gamma", Language: "Rust", Stars: 1},
		{Name: "delta", Language: "null"},
		{Name: "epsilon", Language: "Python"},
	}

	rec := NormalizeGitHub(user, repos, testNow)

	if rec.Username != "testuser" {
		t.Errorf("Username = %q, want %q", rec.Username, "testuser")
	}
	if rec.TotalStars != 43 {
		t.Errorf("TotalStars = %d, want 43", rec.TotalStars)
	}
	if rec.ForkCount != 1 {
		t.Errorf("ForkCount = %d, want 1", rec.ForkCount)
	}
	if rec.AccountAgeDays != 3653 {
		t.Errorf("AccountAgeDays = %d, want 3653", rec.AccountAgeDays)
	}
	if rec.DaysSinceActive != 5 {
		t.Errorf("DaysSinceActive = %d, want 5", rec.DaysSinceActive)
	}
	if rec.TwitterHandle != "testuser" {
		t.Errorf("TwitterHandle = %q, want %q", rec.TwitterHandle, "testuser")
	}
	wantLangs := []string{"Go", "Rust", "Python"}
	if diff := cmp.Diff(wantLangs, rec.TopLanguages); diff != "" {
		t.Errorf("TopLanguages mismatch (-want +got):\n%s", diff)
	}
	if rec.Instruction != "" {
		t.Errorf("Instruction = %q, want empty before synthesis", rec.Instruction)
	}
}

func TestNormalizeGitHubNoRepos(t *testing.T) {
	user := &github.User{
		Login:     "lurker",
		CreatedAt: "2024-06-01T00:00:00Z",
		UpdatedAt: "2024-06-14T00:00:00Z",
	}

	rec := NormalizeGitHub(user, nil, testNow)

	if rec.TotalStars != 0 {
		t.Errorf("TotalStars = %d, want 0", rec.TotalStars)
	}
	if len(rec.TopLanguages) != 0 {
		t.Errorf("TopLanguages = %v, want empty", rec.TopLanguages)
	}
}

func TestNormalizeGitHubBadTimestamps(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
	}{
		{"unparseable", "not-a-date"},
		{"empty", ""},
		{"future", "2030-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &github.User{Login: "u", CreatedAt: tt.createdAt}
			rec := NormalizeGitHub(user, nil, testNow)
			if rec.AccountAgeDays != 0 {
				t.Errorf("AccountAgeDays = %d, want 0", rec.AccountAgeDays)
			}
		})
	}
}

func TestTopLanguagesTieBreak(t *testing.T) {
	repos := []github.Repo{
		{Name: "a", Language: "Rust"},
		{Name: "b", Language: "Go"},
		{Name: "c", Language: "Go"},
		{Name: "d", Language: "Rust"},
		{Name: "e", Language: "Python"},
		{Name: "f", Language: "C"},
	}

	// Go and Rust tie at 2; Rust appeared first. Python and C tie at 1;
	// Python appeared first, and the cap of three drops C.
	want := []string{"Rust", "Go", "Python"}
	got := topLanguages(repos)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("topLanguages mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeLeetCode(t *testing.T) {
	stats := &leetcode.Stats{Username: "testuser"}
	stats.Profile.Ranking = 12345
	stats.Profile.Reputation = 99
	stats.SubmitStats.Accepted = []leetcode.TierCount{
		{Difficulty: "All", Count: 120, Submissions: 300},
		{Difficulty: "Easy", Count: 60},
		{Difficulty: "Medium", Count: 45},
		{Difficulty: "Hard", Count: 15},
	}
	stats.SubmitStats.Total = []leetcode.TierCount{
		{Difficulty: "All", Count: 200, Submissions: 400},
	}

	rec := NormalizeLeetCode(stats)

	if rec.TotalSolved != 120 {
		t.Errorf("TotalSolved = %d, want 120", rec.TotalSolved)
	}
	if rec.EasySolved != 60 || rec.MediumSolved != 45 || rec.HardSolved != 15 {
		t.Errorf("tier counts = %d/%d/%d, want 60/45/15", rec.EasySolved, rec.MediumSolved, rec.HardSolved)
	}
	if rec.AcceptanceRate != 60.0 {
		t.Errorf("AcceptanceRate = %v, want 60.0", rec.AcceptanceRate)
	}
}

func TestNormalizeLeetCodeZeroSubmissions(t *testing.T) {
	stats := &leetcode.Stats{Username: "newbie"}

	rec := NormalizeLeetCode(stats)

	if rec.AcceptanceRate != 0 {
		t.Errorf("AcceptanceRate = %v, want 0", rec.AcceptanceRate)
	}
	if rec.TotalSolved != 0 {
		t.Errorf("TotalSolved = %d, want 0", rec.TotalSolved)
	}
}

func TestNormalizeLeetCodeRounding(t *testing.T) {
	stats := &leetcode.Stats{Username: "u"}
	stats.SubmitStats.Accepted = []leetcode.TierCount{{Difficulty: "All", Count: 1}}
	stats.SubmitStats.Total = []leetcode.TierCount{{Difficulty: "All", Count: 3}}

	rec := NormalizeLeetCode(stats)

	if rec.AcceptanceRate != 33.33 {
		t.Errorf("AcceptanceRate = %v, want 33.33", rec.AcceptanceRate)
	}
}
