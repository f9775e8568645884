package docbot_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPages(t *testing.T) {
	t.Parallel()

	t.Run("orders pages by descending count", func(t *testing.T) {
		t.Parallel()

		a := &docbot.Page{URL: "A", Text: "go go go"}
		b := &docbot.Page{URL: "B", Text: "go"}
		c := &docbot.Page{URL: "C", Text: "go go go go go"}

		ranked := docbot.RankPages([]*docbot.Page{a, b, c}, "go", docbot.DefaultTopPages)

		require.Len(t, ranked, 3)
		assert.Equal(t, "C", ranked[0].URL)
		assert.Equal(t, 5, ranked[0].Count)
		assert.Equal(t, "A", ranked[1].URL)
		assert.Equal(t, 3, ranked[1].Count)
		assert.Equal(t, "B", ranked[2].URL)
		assert.Equal(t, 1, ranked[2].Count)
	})

	t.Run("keeps discovery order for equal counts", func(t *testing.T) {
		t.Parallel()

		pages := []*docbot.Page{
			{URL: "first", Text: "Query"},
			{URL: "second", Text: "query query"},
			{URL: "third", Text: "QUERY"},
		}

		ranked := docbot.RankPages(pages, "query", 0)

		require.Len(t, ranked, 3)
		assert.Equal(t, "second", ranked[0].URL)
		assert.Equal(t, "first", ranked[1].URL)
		assert.Equal(t, "third", ranked[2].URL)
	})

	t.Run("limits result to the top pages", func(t *testing.T) {
		t.Parallel()

		var pages []*docbot.Page
		for i := 1; i <= 7; i++ {
			text := ""
			for range i {
				text += "hit "
			}
			pages = append(pages, &docbot.Page{URL: fmt.Sprintf("p%d", i), Text: text})
		}

		ranked := docbot.RankPages(pages, "hit", docbot.DefaultTopPages)

		require.Len(t, ranked, 5)
		assert.Equal(t, "p7", ranked[0].URL)
		assert.Equal(t, "p3", ranked[4].URL)
	})

	t.Run("does not reorder the input slice", func(t *testing.T) {
		t.Parallel()

		pages := []*docbot.Page{
			{URL: "low", Text: "x"},
			{URL: "high", Text: "x x"},
		}

		docbot.RankPages(pages, "x", 0)

		assert.Equal(t, "low", pages[0].URL)
		assert.Equal(t, "high", pages[1].URL)
	})

	t.Run("returns empty slice for no pages", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docbot.RankPages(nil, "x", docbot.DefaultTopPages))
	})
}
