// Package handle resolves caller-supplied profile identifiers to bare
// account handles. Input may be a handle ("torvalds") or a full profile URL
// ("https://github.com/torvalds"); either way no network access occurs.
package handle

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalid is returned when the input is empty or yields no usable handle.
var ErrInvalid = errors.New("missing or invalid profile identifier")

// hostMarkers are domain substrings that mark the input as a profile URL
// rather than a bare handle.
var hostMarkers = []string{"github.com", "leetcode.com"}

// Resolve trims the input and, if it looks like a profile URL on a known
// host, extracts the first non-empty path segment as the handle. Bare
// handles pass through unchanged, so Resolve is idempotent.
func Resolve(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalid
	}

	lower := strings.ToLower(s)
	host := ""
	for _, marker := range hostMarkers {
		if strings.Contains(lower, marker) {
			host = marker
			break
		}
	}
	if host == "" {
		return s, nil
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", ErrInvalid
	}

	for _, segment := range strings.Split(u.Path, "/") {
		if segment == "" {
			continue
		}
		// LeetCode profile URLs nest the handle under /u/; on GitHub
		// "u" is a legal handle.
		if segment == "u" && host == "leetcode.com" {
			continue
		}
		return segment, nil
	}
	return "", ErrInvalid
}
