package docbot

import (
	"cmp"
	"slices"
)

// DefaultTopPages is the number of ranked pages that contribute snippets.
const DefaultTopPages = 5

// RankPages counts query occurrences on each page, storing the result in
// Page.Count, and returns the pages ordered by count, highest first. Pages
// with equal counts keep their input order. If limit is positive, at most
// limit pages are returned. The input slice is not reordered.
func RankPages(pages []*Page, query string, limit int) []*Page {
	ranked := slices.Clone(pages)
	for _, p := range ranked {
		p.Count = CountOccurrences(p.Text, query)
	}

	slices.SortStableFunc(ranked, func(a, b *Page) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
