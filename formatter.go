package docbot

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/markdown"
)

// EmbedDescriptionLimit is the longest reply a chat embed description holds.
const EmbedDescriptionLimit = 4096

// Excerpt is a snippet taken from one page.
type Excerpt struct {
	URL     string
	Snippet string
}

// FormatReply formats excerpts as a markdown reply. Each excerpt is preceded
// by a bold source line linking to its page and followed by a blank line.
// Excerpts with an empty snippet are skipped. Returns an empty string when
// nothing remains.
func FormatReply(excerpts []Excerpt) string {
	md := markdown.NewMarkdown(io.Discard)
	written := 0
	for _, e := range excerpts {
		if e.Snippet == "" {
			continue
		}
		md.PlainText(markdown.Bold("From:") + " " + markdown.Link(e.URL, e.URL))
		md.PlainText(e.Snippet)
		md.PlainText("")
		written++
	}
	if written == 0 {
		return ""
	}
	return strings.TrimRight(md.String(), "\r\n")
}

// TruncateReply shortens reply to at most limit characters, replacing the
// tail with an ellipsis. Replies within the limit are returned unchanged.
func TruncateReply(reply string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(reply) <= limit {
		return reply
	}
	runes := []rune(reply)
	return string(runes[:limit-1]) + "…"
}
