package mock

import (
	"context"

	"github.com/fwojciec/docbot"
)

var _ docbot.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docbot.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, baseURL, query string) *docbot.Result
}

func (s *Searcher) Search(ctx context.Context, baseURL, query string) *docbot.Result {
	return s.SearchFn(ctx, baseURL, query)
}
