package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
	"github.com/google/uuid"
)

// Ensure LoggingSearcher implements docbot.Searcher.
var _ docbot.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher and logs one line per search.
type LoggingSearcher struct {
	next   docbot.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docbot.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome under a
// fresh search_id.
func (s *LoggingSearcher) Search(ctx context.Context, baseURL, query string) (result *docbot.Result) {
	defer func(begin time.Time) {
		if result == nil {
			result = &docbot.Result{Status: docbot.StatusFailed}
		}
		attrs := []any{
			"search_id", uuid.NewString(),
			"url", baseURL,
			"query", query,
			"status", result.Status.String(),
			"pages", len(result.Pages),
			"duration", time.Since(begin),
		}
		if result.Err != nil {
			attrs = append(attrs, "err", result.Err)
		}
		s.logger.Info("search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, baseURL, query)
}
