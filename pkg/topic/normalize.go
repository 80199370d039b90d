// Package topic holds the pure topic helpers shared by the write and read paths: key normalization
// and diversity selection for display lists.
package topic

import (
	"strings"
	"unicode"
)

// NormalizeKey returns the aggregate key for a topic: lowercased, punctuation removed and
// whitespace runs collapsed to a single space. Trending topics are keyed by this form.
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(clean(s)), " ")
}

// NormalizeMatchKey returns the match key for a topic: lowercased, punctuation and all whitespace
// removed. Stored entity texts and query topics are compared in this form, so "Space-Exploration",
// "space exploration" and "SpaceExploration" all collapse to "spaceexploration".
func NormalizeMatchKey(s string) string {
	return strings.Join(strings.Fields(clean(s)), "")
}

// clean lowercases s and drops every rune that is neither a word character nor whitespace
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)
}

// NormalizeMatchKeys normalizes a list of topics for matching, dropping empty and duplicate keys
// while keeping the first-seen order
func NormalizeMatchKeys(topics []string) []string {
	seen := make(map[string]bool, len(topics))
	res := make([]string, 0, len(topics))
	for _, t := range topics {
		key := NormalizeMatchKey(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, key)
	}
	return res
}
