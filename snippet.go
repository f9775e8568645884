package docbot

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Snippet bounds.
const (
	// SnippetContextLines is the number of lines kept on each side of a match.
	SnippetContextLines = 2

	// MaxSnippetLength is the maximum snippet length in characters before
	// ReadMoreMarker is appended.
	MaxSnippetLength = 1000

	// ReadMoreMarker is appended to truncated snippets.
	ReadMoreMarker = " ... [Read more]"
)

// boilerplatePatterns match whole lines of site chrome that never carry
// documentation content. Lines are trimmed before matching.
var boilerplatePatterns = []*regexp.Regexp{
	// Theme switchers
	regexp.MustCompile(`(?i)^(toggle|switch|change)\s+(to\s+)?((dark|light|auto|system)\s+)?(theme|mode|color scheme)$`),
	regexp.MustCompile(`(?i)^((dark|light|auto|system)\s+)?(theme|mode)$`),

	// Navigation chrome
	regexp.MustCompile(`(?i)^(skip|jump)\s+to\s+(the\s+)?(main\s+)?(content|navigation|search)$`),
	regexp.MustCompile(`(?i)^((main|site|primary)\s+)?navigation(\s+menu)?$`),
	regexp.MustCompile(`(?i)^(toggle|open|close|show|hide)\s+(the\s+)?(navigation|nav|menu|sidebar|table of contents)$`),
	regexp.MustCompile(`(?i)^(table of contents|on this page|contents|in this article)$`),

	// Indexes
	regexp.MustCompile(`(?i)^((general|module|python module|search)\s+)?index$`),

	// Pagination
	regexp.MustCompile(`(?i)^[«‹<←]?\s*(previous|prev|next)(\s+(page|topic|chapter))?\s*[»›>→]?$`),
	regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`),

	// Changelog links
	regexp.MustCompile(`(?i)^(changelog|change log|release notes|what's new)$`),

	// Feedback links
	regexp.MustCompile(`(?i)^(report|file|submit)\s+(an?\s+)?(bug|issue|problem|documentation issue)\b`),
	regexp.MustCompile(`(?i)^(edit|improve)\s+(this\s+page|on\s+github)\b`),
}

// isBoilerplate reports whether a trimmed line is empty or site chrome.
func isBoilerplate(line string) bool {
	if line == "" {
		return true
	}
	for _, re := range boilerplatePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// FilterBoilerplate trims every line and drops empty lines and known site
// chrome (theme toggles, navigation, indexes, pagination, changelog and
// bug-report links). Filtering already filtered lines returns them unchanged.
func FilterBoilerplate(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isBoilerplate(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// ExtractRelevantSnippet returns the lines of fullText that contain query,
// each padded with up to SnippetContextLines lines of context on both sides.
// Overlapping windows are merged and lines keep their original order.
// Snippets longer than MaxSnippetLength characters are cut and suffixed with
// ReadMoreMarker. Returns an empty string when no line matches.
func ExtractRelevantSnippet(fullText, query string) string {
	q := fold(query)
	if q == "" {
		return ""
	}

	lines := FilterBoilerplate(strings.Split(fullText, "\n"))

	keep := make([]bool, len(lines))
	matched := false
	for i, line := range lines {
		if !strings.Contains(fold(line), q) {
			continue
		}
		matched = true
		start := max(0, i-SnippetContextLines)
		end := min(len(lines)-1, i+SnippetContextLines)
		for j := start; j <= end; j++ {
			keep[j] = true
		}
	}
	if !matched {
		return ""
	}

	selected := make([]string, 0, len(lines))
	for i, line := range lines {
		if keep[i] {
			selected = append(selected, line)
		}
	}

	return truncateSnippet(strings.Join(selected, "\n"))
}

// truncateSnippet cuts s to MaxSnippetLength runes, keeping UTF-8 intact.
func truncateSnippet(s string) string {
	if utf8.RuneCountInString(s) <= MaxSnippetLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxSnippetLength]) + ReadMoreMarker
}
