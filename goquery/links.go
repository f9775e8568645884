package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docbot"
)

var _ docbot.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects anchors that resolve under a crawl root.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns every anchor target that starts with
// baseURL once resolved. Resolution follows three rules:
//   - root-relative hrefs ("/x") resolve against the scheme and host of baseURL
//   - absolute http(s) hrefs pass through
//   - anything else, scheme-relative hrefs ("//host/x") included, is
//     appended to baseURL with a single slash
//
// Fragments are stripped. The prefix check is a plain string comparison, so
// "https://example.com/docs" also admits "https://example.com/docs-v2".
// Links keep document order and may repeat.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, docbot.Errorf(docbot.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved := resolveLink(base, baseURL, href)
		if resolved == "" {
			return
		}
		if !strings.HasPrefix(resolved, baseURL) {
			return
		}
		links = append(links, resolved)
	})

	return links, nil
}

// resolveLink turns href into an absolute URL string.
// Returns empty string for hrefs that cannot point at a documentation page:
// blank, fragment-only, unparsable, or using a non-HTTP scheme (mailto:,
// javascript:, tel:, data:, ftp:, ...).
func resolveLink(base *url.URL, baseURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	var resolved string
	switch {
	case strings.HasPrefix(href, "//"):
		resolved = strings.TrimRight(baseURL, "/") + "/" + href
	case strings.HasPrefix(href, "/"):
		resolved = base.ResolveReference(ref).String()
	case ref.Scheme == "":
		resolved = strings.TrimRight(baseURL, "/") + "/" + href
	case ref.Scheme == "http" || ref.Scheme == "https":
		resolved = href
	default:
		return ""
	}

	return stripFragment(resolved)
}

// stripFragment removes the "#..." suffix of a URL string.
func stripFragment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}
