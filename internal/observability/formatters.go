// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-insights/internal/markdown"
	"github.com/jonathan/career-insights/internal/resume"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// spanText flattens tokenized spans back to display text, without markup.
func spanText(spans []markdown.Span) string {
	var sb strings.Builder
	for _, span := range spans {
		switch s := span.(type) {
		case markdown.Text:
			sb.WriteString(s.Value)
		case markdown.Bold:
			sb.WriteString(s.Value)
		case markdown.Code:
			sb.WriteString(s.Value)
		case markdown.Link:
			sb.WriteString(s.Label)
		}
	}
	return sb.String()
}

// PrintSummary outputs a human-readable outline of the parsed career summary.
func (p *Printer) PrintSummary(blocks []markdown.Block) {
	if len(blocks) == 0 {
		return
	}

	var sb strings.Builder

	headings := 0
	paragraphs := 0
	items := 0
	for _, block := range blocks {
		switch b := block.(type) {
		case markdown.Heading:
			headings++
			sb.WriteString(fmt.Sprintf("%s %s\n", strings.Repeat("#", b.Level), spanText(b.Spans)))
		case markdown.Paragraph:
			paragraphs++
		case markdown.List:
			items += len(b.Items)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Headings:   %d\n", headings))
	sb.WriteString(fmt.Sprintf("Paragraphs: %d\n", paragraphs))
	sb.WriteString(fmt.Sprintf("List items: %d", items))

	p.printBox("PARSED SUMMARY", sb.String())
}

// PrintDocument outputs a human-readable outline of the parsed resume.
func (p *Printer) PrintDocument(doc *resume.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Header.Name))
	if len(doc.Header.ContactFields) > 0 {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", strings.Join(doc.Header.ContactFields, " | ")))
	}
	sb.WriteString("\n")

	for _, section := range doc.Sections {
		switch section.Kind {
		case resume.SectionExperience:
			sb.WriteString(fmt.Sprintf("%s (%d jobs):\n", section.Title, len(section.Jobs)))
			count := min(len(section.Jobs), maxItemsToShow)
			for i := 0; i < count; i++ {
				job := section.Jobs[i]
				sb.WriteString(fmt.Sprintf("  • %s, %s", job.Title, job.Company))
				if job.DateRange != "" {
					sb.WriteString(fmt.Sprintf(" (%s)", job.DateRange))
				}
				sb.WriteString("\n")
			}
			if len(section.Jobs) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Jobs)-maxItemsToShow))
			}
		case resume.SectionSkills:
			sb.WriteString(fmt.Sprintf("%s (%d lines):\n", section.Title, len(section.Skills)))
			count := min(len(section.Skills), maxItemsToShow)
			for i := 0; i < count; i++ {
				line := section.Skills[i]
				if line.Category != "" {
					sb.WriteString(fmt.Sprintf("  • %s: %s\n", line.Category, line.Items))
				} else {
					sb.WriteString(fmt.Sprintf("  • %s\n", line.Items))
				}
			}
			if len(section.Skills) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Skills)-maxItemsToShow))
			}
		default:
			lines := 0
			if section.Text != "" {
				lines = len(strings.Split(section.Text, "\n"))
			}
			sb.WriteString(fmt.Sprintf("%s (%d lines of text)\n", section.Title, lines))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintModelCall outputs which model handled a call and how long it took.
func (p *Printer) PrintModelCall(label, model, elapsed string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Call:    %s\n", label))
	sb.WriteString(fmt.Sprintf("Model:   %s\n", model))
	sb.WriteString(fmt.Sprintf("Elapsed: %s", elapsed))
	p.printBox("MODEL CALL", sb.String())
}
