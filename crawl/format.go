package crawl

import (
	"github.com/cespare/xxhash/v2"
)

// contentKey identifies page text for duplicate detection.
func contentKey(text string) uint64 {
	return xxhash.Sum64String(text)
}

// TruncateURL shortens a URL to at most maxLen characters for status lines.
// The tail of the URL names the page, so the head is replaced by "...".
// Lengths count runes, so percent-decoded or IRI paths are never split
// mid-character.
func TruncateURL(url string, maxLen int) string {
	runes := []rune(url)
	switch {
	case maxLen <= 0:
		return ""
	case len(runes) <= maxLen:
		return url
	case maxLen <= len(ellipsis):
		return string(runes[:maxLen])
	}
	return ellipsis + string(runes[len(runes)-maxLen+len(ellipsis):])
}

const ellipsis = "..."
