// Package crawl provides the one-hop documentation search.
// It fetches a documentation root, fans out over the pages it links to,
// ranks the pages that mention a query and composes a reply from excerpts.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/docbot"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of candidate pages fetched at once.
const DefaultConcurrency = 8

var _ docbot.Searcher = (*Searcher)(nil)

// Searcher answers queries against a documentation site.
type Searcher struct {
	Fetcher     docbot.Fetcher
	Links       docbot.LinkExtractor
	Text        docbot.TextExtractor
	RateLimiter docbot.DomainLimiter // optional
	Logger      *slog.Logger         // optional
	Concurrency int
	TopPages    int
}

// Search fetches baseURL and every page it links to under baseURL, keeps the
// pages containing query, ranks them and builds a reply from the top pages.
//
// Search never fails. A base page that cannot be fetched yields StatusFailed
// and no further requests are made. Linked pages that fail are logged and
// skipped. When no page produces a snippet the result is StatusEmpty.
func (s *Searcher) Search(ctx context.Context, baseURL, query string) (result *docbot.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger().Error("search panicked", "url", baseURL, "panic", r)
			result = &docbot.Result{Status: docbot.StatusFailed, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return s.search(ctx, baseURL, query)
}

func (s *Searcher) search(ctx context.Context, baseURL, query string) *docbot.Result {
	logger := s.logger().With("url", baseURL)

	if strings.TrimSpace(query) == "" {
		return &docbot.Result{Status: docbot.StatusEmpty}
	}

	html, err := s.fetch(ctx, baseURL)
	if err != nil {
		logger.Error("failed to retrieve documentation", "err", err)
		return &docbot.Result{
			Status: docbot.StatusFailed,
			Err:    fmt.Errorf("fetch base page: %w", err),
		}
	}

	var pages []*docbot.Page
	if text, err := s.Text.ExtractText(html); err != nil {
		logger.Warn("failed to extract base page text", "err", err)
	} else {
		pages = append(pages, &docbot.Page{URL: baseURL, Text: text})
	}

	candidates := s.candidates(logger, baseURL, html)
	for _, page := range s.fetchAll(ctx, logger, candidates) {
		if page != nil {
			pages = append(pages, page)
		}
	}

	relevant := make([]*docbot.Page, 0, len(pages))
	for _, page := range pages {
		if docbot.Contains(page.Text, query) {
			relevant = append(relevant, page)
		}
	}
	relevant = dedupeContent(relevant)

	ranked := docbot.RankPages(relevant, query, s.topPages())

	excerpts := make([]docbot.Excerpt, 0, len(ranked))
	contributors := make([]*docbot.Page, 0, len(ranked))
	for _, page := range ranked {
		snippet := docbot.ExtractRelevantSnippet(page.Text, query)
		if snippet == "" {
			continue
		}
		excerpts = append(excerpts, docbot.Excerpt{URL: page.URL, Snippet: snippet})
		contributors = append(contributors, page)
	}

	reply := docbot.FormatReply(excerpts)
	if reply == "" {
		logger.Debug("no relevant documentation", "candidates", len(candidates), "matched", len(relevant))
		return &docbot.Result{Status: docbot.StatusEmpty}
	}

	return &docbot.Result{
		Status: docbot.StatusOK,
		Reply:  reply,
		Pages:  contributors,
	}
}

// Reply runs Search and renders the result as reply text.
func (s *Searcher) Reply(ctx context.Context, baseURL, query string) string {
	return s.Search(ctx, baseURL, query).String()
}

// candidates returns the distinct links found on the base page, in first-seen
// order. The base URL itself is excluded since its page is already in hand.
func (s *Searcher) candidates(logger *slog.Logger, baseURL, html string) []string {
	links, err := s.Links.ExtractLinks(html, baseURL)
	if err != nil {
		logger.Warn("failed to extract links", "err", err)
		return nil
	}

	seen := map[string]struct{}{baseURL: {}}
	urls := make([]string, 0, len(links))
	for _, link := range links {
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		urls = append(urls, link)
	}
	return urls
}

// fetchAll fetches every URL with at most Concurrency requests in flight.
// The result is positional: failed URLs leave a nil entry. A failure never
// cancels the other fetches.
func (s *Searcher) fetchAll(ctx context.Context, logger *slog.Logger, urls []string) []*docbot.Page {
	pages := make([]*docbot.Page, len(urls))

	var g errgroup.Group
	g.SetLimit(s.concurrency())
	for i, u := range urls {
		g.Go(func() error {
			page, err := s.fetchPage(ctx, u)
			if err != nil {
				logger.Warn("skipping candidate page", "candidate", u, "err", err)
				return nil
			}
			pages[i] = page
			return nil
		})
	}
	_ = g.Wait()

	return pages
}

// fetchPage fetches one candidate and extracts its text.
func (s *Searcher) fetchPage(ctx context.Context, rawURL string) (page *docbot.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	html, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	text, err := s.Text.ExtractText(html)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	return &docbot.Page{URL: rawURL, Text: text}, nil
}

// fetch waits for the rate limiter, if any, and fetches the URL.
func (s *Searcher) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", docbot.Errorf(docbot.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

// dedupeContent drops pages whose text is identical to an earlier page.
func dedupeContent(pages []*docbot.Page) []*docbot.Page {
	seen := make(map[uint64]struct{}, len(pages))
	unique := make([]*docbot.Page, 0, len(pages))
	for _, page := range pages {
		h := contentKey(page.Text)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, page)
	}
	return unique
}

func (s *Searcher) concurrency() int {
	if s.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return s.Concurrency
}

func (s *Searcher) topPages() int {
	if s.TopPages <= 0 {
		return docbot.DefaultTopPages
	}
	return s.TopPages
}

func (s *Searcher) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
