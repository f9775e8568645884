package goquery_test

import (
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves root-relative links against scheme and host", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/docs/intro">Intro</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/intro"}, links)
	})

	t.Run("drops links to other hosts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://other.com/x">Other</a>
<a href="http://example.com/docs/insecure">Other scheme</a>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("drops same-host links outside the base path", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/blog/post">Blog</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("passes absolute links under the base through", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="https://example.com/docs/api?v=2">API</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/api?v=2"}, links)
	})

	t.Run("joins relative links onto the trimmed base", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="guide/start">Start</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/guide/start"}, links)
	})

	t.Run("joins scheme-relative links onto the trimmed base", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="//example.com/docs/z">Z</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs///example.com/docs/z"}, links)
	})

	t.Run("applies a plain string prefix filter", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/docs-v2/intro">Old</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs-v2/intro"}, links)
	})

	t.Run("skips non-HTTP and fragment-only links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="mailto:team@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="tel:+123">Call</a>
<a href="ftp://example.com/docs/file">FTP</a>
<a href="#section">Section</a>
<a href="">Empty</a>
<a>No href</a>
<a href="/docs/real">Real</a>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/real"}, links)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/docs/api#client">Client</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/api"}, links)
	})

	t.Run("keeps document order and duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/docs/b">B</a><a href="/docs/a">A</a></nav>
<main><a href="/docs/b">B again</a></main>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/b",
			"https://example.com/docs/a",
			"https://example.com/docs/b",
		}, links)
	})

	t.Run("returns EINVALID for relative base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("<html></html>", "/docs")

		require.Error(t, err)
		assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
	})

	t.Run("returns no links for page without anchors", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks("<html><body><p>text</p></body></html>", "https://example.com/docs")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
