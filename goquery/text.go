package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docbot"
	"golang.org/x/net/html"
)

var _ docbot.TextExtractor = (*TextExtractor)(nil)

// hiddenSelector matches elements whose text is never rendered.
const hiddenSelector = "script, style, noscript, template, svg, iframe"

// blockSelector matches elements that start a new line when rendered.
const blockSelector = "address, article, aside, blockquote, br, dd, div, dl, dt, " +
	"figcaption, footer, h1, h2, h3, h4, h5, h6, header, hr, li, main, nav, " +
	"ol, p, pre, section, table, td, th, tr, ul"

// TextExtractor extracts the visible body text of a page, one rendered
// block per line.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the trimmed text of the page body. Scripts, styles and
// other non-rendered elements are dropped. Every block-level element starts
// and ends a line, and blank lines are removed.
func (e *TextExtractor) ExtractText(raw string) (string, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return "", err
	}

	body := doc.Find("body")
	body.Find(hiddenSelector).Remove()
	body.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			if n.Parent != nil {
				n.Parent.InsertBefore(lineBreak(), n)
			}
			n.AppendChild(lineBreak())
		}
	})

	return compactLines(body.Text()), nil
}

func lineBreak() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}

// compactLines trims every line of s and drops the blank ones.
func compactLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
