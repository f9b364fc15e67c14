package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/career-insights/internal/observability"
	"github.com/jonathan/career-insights/internal/render"
	"github.com/jonathan/career-insights/internal/resume"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render resume markdown to HTML and PDF",
	Long:  "Reads resume markdown from a file and writes a standalone print-ready HTML page and/or a PDF rendered with a headless browser. No API key is needed.",
	RunE:  runRender,
}

var (
	renderInputFile string
	renderHTMLFile  string
	renderPDFFile   string
	renderVerbose   bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume markdown file (required)")
	renderCmd.Flags().StringVar(&renderHTMLFile, "html", "", "Path to output HTML file")
	renderCmd.Flags().StringVar(&renderPDFFile, "pdf", "", "Path to output PDF file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a resume outline")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderHTMLFile == "" && renderPDFFile == "" {
		return fmt.Errorf("at least one of --html or --pdf is required")
	}

	content, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	markdownText := string(content)

	if renderVerbose {
		printer := observability.NewPrinter(os.Stderr)
		doc, parseErr := resume.Parse(markdownText)
		if parseErr == nil {
			printer.PrintDocument(doc)
		} else if errors.Is(parseErr, resume.ErrUnparseable) {
			fmt.Fprintln(os.Stderr, "Warning: markdown could not be parsed into a resume document; the print view degrades to whatever lines match")
		}
	}

	// The HTML and PDF exports are independent, so write them concurrently.
	g, ctx := errgroup.WithContext(context.Background())

	if renderHTMLFile != "" {
		g.Go(func() error {
			page, err := render.PrintHTML(markdownText)
			if err != nil {
				return fmt.Errorf("failed to build print view: %w", err)
			}
			return writeOutput(renderHTMLFile, page)
		})
	}

	if renderPDFFile != "" {
		g.Go(func() error {
			pdf, err := render.PrintPDF(ctx, markdownText)
			if err != nil {
				return fmt.Errorf("failed to render PDF: %w", err)
			}
			if err := os.WriteFile(renderPDFFile, pdf, 0644); err != nil {
				return fmt.Errorf("failed to write PDF file: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if renderHTMLFile != "" {
		fmt.Fprintf(os.Stdout, "HTML: %s\n", renderHTMLFile)
	}
	if renderPDFFile != "" {
		fmt.Fprintf(os.Stdout, "PDF:  %s\n", renderPDFFile)
	}
	return nil
}
