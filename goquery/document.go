// Package goquery implements docbot.LinkExtractor and docbot.TextExtractor
// on top of goquery CSS selection over golang.org/x/net/html parse trees.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docbot"
	"golang.org/x/net/html"
)

// parseDocument parses raw HTML into a goquery document.
func parseDocument(raw string) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, docbot.Errorf(docbot.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}
