package postfmt

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var aliases = map[string]Platform{
	"x":     Twitter,
	"mail":  Email,
	"insta": Instagram,
	"ig":    Instagram,
	"wa":    WhatsApp,
	"li":    LinkedIn,
}

// ParsePlatform resolves a user supplied platform name.
func ParsePlatform(name string) (Platform, error) {
	raw := strings.TrimSpace(strings.ToLower(name))
	for _, p := range Platforms() {
		if raw == string(p) {
			return p, nil
		}
	}
	if p, ok := aliases[raw]; ok {
		return p, nil
	}
	return "", UnsupportedPlatformError{Name: name, Suggestions: suggest(raw)}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

func suggest(raw string) []string {
	if raw == "" {
		return nil
	}
	names := make([]string, 0, len(Platforms()))
	for _, p := range Platforms() {
		names = append(names, string(p))
	}

	ranks := fuzzy.RankFindFold(raw, names)
	if len(ranks) == 0 {
		// catch typos that are not subsequences, e.g. "linkdein"
		for _, name := range names {
			if d := fuzzy.LevenshteinDistance(raw, name); d <= 2 {
				ranks = append(ranks, fuzzy.Rank{Source: raw, Target: name, Distance: d})
			}
		}
	}
	sort.Stable(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}
