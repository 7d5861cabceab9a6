package aoc

import "strings"

// IndexAll returns the index of every occurrence of substr in s, in
// ascending order. Unlike strings.Index in a loop that skips past each
// match, occurrences may overlap: IndexAll("aaa", "aa") is [0 1].
func IndexAll(s, substr string) []int {
	if substr == "" {
		return nil
	}
	var out []int
	for i := 0; ; i++ {
		j := strings.Index(s[i:], substr)
		if j < 0 {
			return out
		}
		i += j
		out = append(out, i)
	}
}

// Fields splits s around sep and trims the surrounding space of each
// piece.
func Fields(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
