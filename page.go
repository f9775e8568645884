package docbot

import "context"

// Page represents a fetched documentation page considered for a reply.
// Pages are transient: they live for the duration of one search.
type Page struct {
	URL   string
	Text  string // Visible body text, trimmed
	Count int    // Query occurrences, set by RankPages
}

// Searcher answers a query against the documentation rooted at baseURL.
// Implementations never fail: every error is folded into the returned Result.
type Searcher interface {
	Search(ctx context.Context, baseURL, query string) *Result
}
