package utils

import (
	"regexp"
	"strings"
)

// NormalizeQuestion case-folds and collapses whitespace so equivalent
// phrasings group together (matching, stats).
func NormalizeQuestion(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

var wordRegex = regexp.MustCompile(`[a-z0-9]+`)

// Tokens splits a question into lowercased words, punctuation stripped, so
// "fees?" and "fees" compare equal.
func Tokens(s string) []string {
	return wordRegex.FindAllString(strings.ToLower(s), -1)
}
