package slog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/mock"
	docslog "github.com/fwojciec/docbot/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs outcome with search id and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		want := &docbot.Result{
			Status: docbot.StatusOK,
			Reply:  "reply",
			Pages:  []*docbot.Page{{URL: "https://example.com/docs/a"}},
		}
		inner := &mock.Searcher{
			SearchFn: func(_ context.Context, baseURL, query string) *docbot.Result {
				return want
			},
		}

		searcher := docslog.NewLoggingSearcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		got := searcher.Search(context.Background(), "https://example.com/docs", "client")

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "search_id=")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "query=client")
		assert.Contains(t, output, "status=ok")
		assert.Contains(t, output, "pages=1")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs cause of failed searches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Searcher{
			SearchFn: func(_ context.Context, _, _ string) *docbot.Result {
				return &docbot.Result{Status: docbot.StatusFailed, Err: errors.New("dial tcp: refused")}
			},
		}

		searcher := docslog.NewLoggingSearcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		searcher.Search(context.Background(), "https://example.com/docs", "client")

		output := buf.String()
		assert.Contains(t, output, "status=failed")
		assert.Contains(t, output, "err=\"dial tcp: refused\"")
	})

	t.Run("uses a distinct search id per call", func(t *testing.T) {
		t.Parallel()

		var first, second bytes.Buffer
		inner := &mock.Searcher{
			SearchFn: func(_ context.Context, _, _ string) *docbot.Result {
				return &docbot.Result{Status: docbot.StatusEmpty}
			},
		}

		docslog.NewLoggingSearcher(inner, slog.New(slog.NewJSONHandler(&first, nil))).
			Search(context.Background(), "https://example.com/docs", "a")
		docslog.NewLoggingSearcher(inner, slog.New(slog.NewJSONHandler(&second, nil))).
			Search(context.Background(), "https://example.com/docs", "a")

		var a, b struct {
			SearchID string `json:"search_id"`
		}
		require.NoError(t, json.Unmarshal(first.Bytes(), &a))
		require.NoError(t, json.Unmarshal(second.Bytes(), &b))
		assert.NotEmpty(t, a.SearchID)
		assert.NotEqual(t, a.SearchID, b.SearchID)
	})
}
