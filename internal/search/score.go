// Package search implements the free-text question answering engine: a
// keyword scorer over the resume sections and an ordered table of intent
// rules that synthesize the final answer.
package search

import (
	"regexp"
	"strings"
)

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// Tokenize lowercases and splits the query on whitespace, dropping tokens of
// two characters or fewer.
func Tokenize(query string) []string {
	fields := strings.Fields(normalize(query))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Score counts case-insensitive whole-word occurrences of every keyword in
// text and sums them. A keyword may take a plural "s" suffix, so "card"
// scores against "Cards" but never inside "cardiology". The result is never
// negative.
func Score(text string, keywords []string) int {
	normalized := normalize(text)

	score := 0
	for _, keyword := range keywords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `s?\b`)
		if err != nil {
			continue
		}
		score += len(re.FindAllStringIndex(normalized, -1))
	}
	return score
}
