package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/prompts"
)

// noResponseMessage is the single generic message every upstream failure is
// rewrapped into before it reaches the user.
const noResponseMessage = "no response from the model"

// AnalyzeProfile sends the pasted profile text to the model and returns the
// career-summary markdown.
func AnalyzeProfile(ctx context.Context, client llm.Client, profileText string) (string, error) {
	profileText = strings.TrimSpace(profileText)
	if profileText == "" {
		return "", &APICallError{Message: "profile text is empty"}
	}

	template := prompts.MustGet("prompts.json", "analyze-profile")
	prompt := prompts.Format(template, map[string]string{
		"ProfileText": profileText,
	})

	responseText, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &APICallError{Message: noResponseMessage, Cause: err}
	}

	return llm.CleanMarkdownFence(responseText), nil
}

// GenerateResume sends the prior analysis plus candidate details to the
// model and returns the resume markdown. Absent personal-info fields are
// substituted with fixed placeholders before prompting.
func GenerateResume(ctx context.Context, client llm.Client, analysisText string, info PersonalInfo) (string, error) {
	analysisText = strings.TrimSpace(analysisText)
	if analysisText == "" {
		return "", &APICallError{Message: "analysis text is empty"}
	}

	filled := info.withPlaceholders()
	template := prompts.MustGet("prompts.json", "generate-resume")
	prompt := prompts.Format(template, map[string]string{
		"Analysis": analysisText,
		"Name":     filled.Name,
		"Email":    filled.Email,
		"Phone":    filled.Phone,
		"Website":  filled.Website,
	})

	responseText, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", &APICallError{Message: noResponseMessage, Cause: err}
	}

	return llm.CleanMarkdownFence(responseText), nil
}
