package docbot

// LinkExtractor discovers links on a page that fall under a crawl root.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the absolute URLs of every anchor
	// whose resolved value starts with baseURL. Order follows the document and
	// duplicates are permitted; callers de-duplicate.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// TextExtractor extracts the visible text of a page.
type TextExtractor interface {
	// ExtractText parses HTML and returns the trimmed text of the body with
	// scripts, styles and other non-rendered elements removed.
	ExtractText(html string) (string, error)
}
