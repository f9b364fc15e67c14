package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/markdown"
	"github.com/jonathan/career-insights/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze profile text into a career summary",
	Long:  "Reads pasted profile text from a file and produces a markdown career summary (professional overview, key strengths, growth areas, suggested next steps) using the Gemini API.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeAPIKey     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to profile text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output markdown file (defaults to stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a summary outline and model call details")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	profileContent, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	if strings.TrimSpace(string(profileContent)) == "" {
		return fmt.Errorf("profile file is empty")
	}

	apiKey := resolveAPIKey(analyzeAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	req := &analysis.Request{}
	start := time.Now()
	if err := req.Start(func() (string, error) {
		return analysis.AnalyzeProfile(ctx, client, string(profileContent))
	}); err != nil {
		return err
	}
	if req.State() == analysis.StateFailed {
		return fmt.Errorf("analysis failed: %w", req.Err())
	}
	summary := req.Result()

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintModelCall("profile analysis", client.GetModel(llm.TierStandard), time.Since(start).Round(time.Millisecond).String())
		printer.PrintSummary(markdown.ParseSummary(summary))
	}

	return writeOutput(analyzeOutputFile, summary)
}

// resolveAPIKey prefers the flag value over the environment.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// writeOutput writes content to path, or stdout when path is empty.
func writeOutput(path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, content)
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
