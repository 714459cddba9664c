// Deterministic instruction text for a downstream generation agent. The
// contract is determinism and presence of the numeric facts, not sentiment.

package profile

import (
	"fmt"
	"strings"
)

// BuildGitHubInstruction renders the instruction text for a normalized
// code-host record. The literal repo, star, follower, and account-age
// values always appear verbatim in the output.
func BuildGitHubInstruction(rec GitHub) string {
	var b strings.Builder

	fmt.Fprintf(&b, "GitHub user %s has %d public repositories with %d total stars, %d followers, and an account that is %d days old.",
		rec.Username, rec.PublicRepos, rec.TotalStars, rec.Followers, rec.AccountAgeDays)
	fmt.Fprintf(&b, " Their last profile activity was %d days ago.", rec.DaysSinceActive)

	if len(rec.TopLanguages) > 0 {
		fmt.Fprintf(&b, " Their most used languages are %s.", strings.Join(rec.TopLanguages, ", "))
	}

	if rec.TwitterHandle != "" {
		fmt.Fprintf(&b, " They link a Twitter account (@%s) on their profile; work that cross-platform presence into the roast.", rec.TwitterHandle)
	} else {
		b.WriteString(" They link no other social accounts, so keep the focus on the code.")
	}

	b.WriteString(" Write a short, witty roast of this developer grounded in these numbers.")
	b.WriteString(" End with a section titled \"Advice\" containing three concrete suggestions for improving their profile.")

	return b.String()
}

// BuildLeetCodeInstruction renders the instruction text for a normalized
// competitive-programming record.
func BuildLeetCodeInstruction(rec LeetCode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "LeetCode user %s is ranked %d with a reputation of %d.", rec.Username, rec.Ranking, rec.Reputation)
	fmt.Fprintf(&b, " They have solved %d problems in total (%d easy, %d medium, %d hard) with an acceptance rate of %.2f%%.",
		rec.TotalSolved, rec.EasySolved, rec.MediumSolved, rec.HardSolved, rec.AcceptanceRate)

	b.WriteString(" Write a blunt critique of this solve history.")
	b.WriteString(" End with a section titled \"Grind Plan\" laying out which problem tiers to focus on next.")

	return b.String()
}
