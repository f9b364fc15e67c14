package markdown

import "strings"

// Block is a typed unit of the summary document tree.
type Block interface {
	isBlock()
}

// Heading is a section heading with its tokenized text.
type Heading struct {
	Level int
	Spans []Span
}

// Paragraph is a single tokenized text line.
type Paragraph struct {
	Spans []Span
}

// List is a maximal run of bullet lines. Consecutive bullets merge into one
// List; a blank line or any non-bullet line terminates it.
type List struct {
	Items [][]Span
}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}

// ParseSummary converts multi-line summary text into an ordered sequence of
// blocks. It is a single forward pass over trimmed lines with a bullet
// accumulator; any open list is flushed before a heading, a paragraph, on a
// blank line, and at end of input.
func ParseSummary(text string) []Block {
	var blocks []Block
	var items [][]Span

	flush := func() {
		if len(items) > 0 {
			blocks = append(blocks, List{Items: items})
			items = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "### "):
			flush()
			blocks = append(blocks, Heading{Level: 3, Spans: Tokenize(strings.TrimPrefix(line, "### "))})
		case strings.HasPrefix(line, "* "):
			items = append(items, Tokenize(line[2:]))
		case line == "":
			flush()
		default:
			flush()
			blocks = append(blocks, Paragraph{Spans: Tokenize(line)})
		}
	}
	flush()

	return blocks
}
