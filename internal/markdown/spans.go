// Package markdown parses the narrow markdown subset the model is prompted to
// produce into typed document trees for display. It is not a general-purpose
// markdown parser: no tables, no nested lists, no escaping rules.
package markdown

import "regexp"

// Span is a typed fragment of a single text line.
type Span interface {
	isSpan()
}

// Text is a plain text fragment.
type Text struct {
	Value string
}

// Bold is a fragment wrapped in double asterisks.
type Bold struct {
	Value string
}

// Code is a fragment wrapped in backticks.
type Code struct {
	Value string
}

// Link is a [label](url) fragment.
type Link struct {
	Label string
	URL   string
}

func (Text) isSpan() {}
func (Bold) isSpan() {}
func (Code) isSpan() {}
func (Link) isSpan() {}

// inlineToken matches the three inline token forms in priority order:
// bold, inline code, link. Matching is non-overlapping, left to right.
var inlineToken = regexp.MustCompile(`\*\*(.+?)\*\*|` + "`([^`]+)`" + `|\[([^\]]+)\]\(([^)]+)\)`)

// Tokenize splits a single line into typed spans. Text between matches
// becomes a plain span; zero-length fragments are dropped. Tokenize never
// fails: a token that matched but did not yield its submatches is emitted
// verbatim as plain text.
func Tokenize(line string) []Span {
	var spans []Span
	last := 0
	for _, m := range inlineToken.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			spans = append(spans, Text{Value: line[last:m[0]]})
		}
		switch {
		case m[2] >= 0:
			spans = append(spans, Bold{Value: line[m[2]:m[3]]})
		case m[4] >= 0:
			spans = append(spans, Code{Value: line[m[4]:m[5]]})
		case m[6] >= 0 && m[8] >= 0:
			spans = append(spans, Link{Label: line[m[6]:m[7]], URL: line[m[8]:m[9]]})
		default:
			spans = append(spans, Text{Value: line[m[0]:m[1]]})
		}
		last = m[1]
	}
	if last < len(line) {
		spans = append(spans, Text{Value: line[last:]})
	}
	return spans
}
