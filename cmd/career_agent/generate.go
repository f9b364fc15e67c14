package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/observability"
	"github.com/jonathan/career-insights/internal/resume"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate resume markdown from a career summary",
	Long:  "Reads a career summary markdown file and produces a structured resume in markdown using the Gemini API. Personal info flags fill the resume header; omitted fields use bracketed placeholders.",
	RunE:  runGenerate,
}

var (
	generateInputFile  string
	generateOutputFile string
	generateConfigFile string
	generateAPIKey     string
	generateVerbose    bool
	generateName       string
	generateEmail      string
	generatePhone      string
	generateWebsite    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateInputFile, "in", "i", "", "Path to career summary markdown file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output resume markdown file (defaults to stdout)")
	generateCmd.Flags().StringVar(&generateConfigFile, "config", "", "Path to JSON config file with personal-info defaults (optional)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a resume outline and model call details")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Candidate name for the resume header")
	generateCmd.Flags().StringVar(&generateEmail, "email", "", "Candidate email for the resume header")
	generateCmd.Flags().StringVar(&generatePhone, "phone", "", "Candidate phone for the resume header")
	generateCmd.Flags().StringVar(&generateWebsite, "website", "", "Candidate website for the resume header")

	if err := generateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	analysisContent, err := os.ReadFile(generateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read summary file: %w", err)
	}
	if strings.TrimSpace(string(analysisContent)) == "" {
		return fmt.Errorf("summary file is empty")
	}

	cfg := config.Config{
		APIKey:  generateAPIKey,
		Name:    generateName,
		Email:   generateEmail,
		Phone:   generatePhone,
		Website: generateWebsite,
	}
	verbose := generateVerbose
	if generateConfigFile != "" {
		fileCfg, err := config.LoadConfig(generateConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// Flags win; the file fills whatever was left empty.
		cfg = cfg.MergeWithDefaults(*fileCfg)
		verbose = verbose || fileCfg.Verbose
	}

	info := analysis.PersonalInfo{
		Name:    cfg.Name,
		Email:   cfg.Email,
		Phone:   cfg.Phone,
		Website: cfg.Website,
	}
	if err := info.Validate(); err != nil {
		return fmt.Errorf("invalid personal info: %w", err)
	}

	apiKey := resolveAPIKey(cfg.APIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, cfg.LLMConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	req := &analysis.Request{}
	start := time.Now()
	if err := req.Start(func() (string, error) {
		return analysis.GenerateResume(ctx, client, string(analysisContent), info)
	}); err != nil {
		return err
	}
	if req.State() == analysis.StateFailed {
		return fmt.Errorf("resume generation failed: %w", req.Err())
	}
	markdownText := req.Result()

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintModelCall("resume generation", client.GetModel(llm.TierAdvanced), time.Since(start).Round(time.Millisecond).String())
		doc, parseErr := resume.Parse(markdownText)
		if parseErr == nil {
			printer.PrintDocument(doc)
		} else if errors.Is(parseErr, resume.ErrUnparseable) {
			fmt.Fprintln(os.Stderr, "Warning: generated markdown could not be parsed into a resume document")
		}
	}

	return writeOutput(generateOutputFile, markdownText)
}
