// Package render maps parsed document trees to HTML, and provides the
// best-effort print-view conversion for raw resume markdown.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/career-insights/internal/markdown"
)

// Spans renders a span sequence as inline HTML. All text content is escaped.
func Spans(spans []markdown.Span) string {
	var b strings.Builder
	for _, span := range spans {
		switch s := span.(type) {
		case markdown.Text:
			b.WriteString(html.EscapeString(s.Value))
		case markdown.Bold:
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(s.Value))
			b.WriteString("</strong>")
		case markdown.Code:
			b.WriteString("<code>")
			b.WriteString(html.EscapeString(s.Value))
			b.WriteString("</code>")
		case markdown.Link:
			fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener">%s</a>`,
				html.EscapeString(s.URL), html.EscapeString(s.Label))
		}
	}
	return b.String()
}

// Blocks renders a summary block sequence as HTML.
func Blocks(blocks []markdown.Block) string {
	var b strings.Builder
	for _, block := range blocks {
		switch blk := block.(type) {
		case markdown.Heading:
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", blk.Level, Spans(blk.Spans), blk.Level)
		case markdown.Paragraph:
			fmt.Fprintf(&b, "<p>%s</p>\n", Spans(blk.Spans))
		case markdown.List:
			b.WriteString("<ul>\n")
			for _, item := range blk.Items {
				fmt.Fprintf(&b, "<li>%s</li>\n", Spans(item))
			}
			b.WriteString("</ul>\n")
		}
	}
	return b.String()
}

// Summary parses and renders summary markdown in one step.
func Summary(text string) string {
	return Blocks(markdown.ParseSummary(text))
}
