// Pure normalization of raw upstream payloads into fixed output records.

package devroast

import (
	"math"
	"sort"
	"time"

	"github.com/codeGROOVE-dev/devroast/pkg/github"
	"github.com/codeGROOVE-dev/devroast/pkg/leetcode"
	"github.com/codeGROOVE-dev/devroast/pkg/profile"
)

const topLanguageCount = 3

// NormalizeGitHub builds the normalized code-host record from a raw user
// payload and its (possibly nil) repository list. Repo-derived fields
// default to zero/empty when the list is unavailable. The instruction field
// is left empty; callers attach it via BuildGitHubInstruction.
func NormalizeGitHub(user *github.User, repos []github.Repo, now time.Time) profile.GitHub {
	rec := profile.GitHub{
		Username:        user.Login,
		Name:            user.Name,
		Bio:             user.Bio,
		Followers:       user.Followers,
		Following:       user.Following,
		PublicRepos:     user.PublicRepos,
		AccountAgeDays:  daysSince(user.CreatedAt, now),
		DaysSinceActive: daysSince(user.UpdatedAt, now),
		TopLanguages:    topLanguages(repos),
		TwitterHandle:   user.TwitterUser,
	}

	for _, repo := range repos {
		if repo.Stars > 0 {
			rec.TotalStars += repo.Stars
		}
		if repo.Fork {
			rec.ForkCount++
		}
	}

	return rec
}

// NormalizeLeetCode builds the normalized competitive record from raw
// submission statistics. Missing difficulty tiers default to zero; the
// acceptance rate is 0 when no submissions exist.
func NormalizeLeetCode(stats *leetcode.Stats) profile.LeetCode {
	rec := profile.LeetCode{
		Username:     stats.Username,
		Ranking:      stats.Profile.Ranking,
		Reputation:   stats.Profile.Reputation,
		TotalSolved:  tierCount(stats.SubmitStats.Accepted, "All"),
		EasySolved:   tierCount(stats.SubmitStats.Accepted, "Easy"),
		MediumSolved: tierCount(stats.SubmitStats.Accepted, "Medium"),
		HardSolved:   tierCount(stats.SubmitStats.Accepted, "Hard"),
	}

	if total := tierCount(stats.SubmitStats.Total, "All"); total > 0 {
		rate := float64(rec.TotalSolved) / float64(total) * 100
		rec.AcceptanceRate = math.Round(rate*100) / 100
	}

	return rec
}

// daysSince returns the whole days between the RFC3339 timestamp and now,
// truncated. Unparseable or future timestamps yield 0.
func daysSince(timestamp string, now time.Time) int {
	if timestamp == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return 0
	}
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// topLanguages returns up to three primary languages ranked by occurrence
// count, descending. Repos without a language are excluded; ties break by
// first-seen order over the repository list.
func topLanguages(repos []github.Repo) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, repo := range repos {
		lang := repo.Language
		if lang == "" || lang == "null" {
			continue
		}
		if _, seen := counts[lang]; !seen {
			firstSeen[lang] = i
			order = append(order, lang)
		}
		counts[lang]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > topLanguageCount {
		order = order[:topLanguageCount]
	}
	return order
}

func tierCount(tiers []leetcode.TierCount, difficulty string) int {
	for _, tier := range tiers {
		if tier.Difficulty == difficulty {
			return tier.Count
		}
	}
	return 0
}
