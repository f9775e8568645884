package docbot

import (
	"strings"

	"golang.org/x/text/cases"
)

// Contains reports whether text contains query under Unicode case folding.
// An empty query matches nothing.
func Contains(text, query string) bool {
	q := fold(query)
	if q == "" {
		return false
	}
	return strings.Contains(fold(text), q)
}

// CountOccurrences returns the number of non-overlapping, case-insensitive
// occurrences of query in text. The query is matched literally, so
// characters such as "(" or "*" carry no special meaning.
func CountOccurrences(text, query string) int {
	q := fold(query)
	if q == "" {
		return 0
	}
	return strings.Count(fold(text), q)
}

// fold returns the case-folded form of s. A Caser is stateful, so a new one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
