package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/career-insights/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records prompts and returns a canned response or error.
type stubClient struct {
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	c.tiers = append(c.tiers, tier)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (c *stubClient) Close() error                  { return nil }

func TestAnalyzeProfile(t *testing.T) {
	client := &stubClient{response: "### Professional Overview\nSolid engineer."}

	result, err := AnalyzeProfile(context.Background(), client, "10 years of Go development")
	require.NoError(t, err)

	assert.Equal(t, "### Professional Overview\nSolid engineer.", result)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "10 years of Go development")
	assert.Equal(t, []llm.ModelTier{llm.TierStandard}, client.tiers)
}

func TestAnalyzeProfile_StripsFence(t *testing.T) {
	client := &stubClient{response: "```markdown\n### Overview\n```"}

	result, err := AnalyzeProfile(context.Background(), client, "profile")
	require.NoError(t, err)
	assert.Equal(t, "### Overview", result)
}

func TestAnalyzeProfile_EmptyProfile(t *testing.T) {
	client := &stubClient{}

	_, err := AnalyzeProfile(context.Background(), client, "   \n ")
	require.Error(t, err)
	assert.Empty(t, client.prompts, "no call should be made for empty input")
}

func TestAnalyzeProfile_UpstreamFailure(t *testing.T) {
	cause := errors.New("connection reset")
	client := &stubClient{err: cause}

	_, err := AnalyzeProfile(context.Background(), client, "profile")
	require.Error(t, err)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no response from the model", apiErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestGenerateResume(t *testing.T) {
	client := &stubClient{response: "# Jane Doe\njane@x.com | 555-1111 | site.com"}
	info := PersonalInfo{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1111", Website: "site.com"}

	result, err := GenerateResume(context.Background(), client, "### Overview\nStrong.", info)
	require.NoError(t, err)

	assert.Contains(t, result, "# Jane Doe")
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "### Overview")
	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "jane@x.com")
	assert.Equal(t, []llm.ModelTier{llm.TierAdvanced}, client.tiers)
}

func TestGenerateResume_PlaceholdersForAbsentFields(t *testing.T) {
	client := &stubClient{response: "# resume"}

	_, err := GenerateResume(context.Background(), client, "analysis", PersonalInfo{Name: "Jane"})
	require.NoError(t, err)

	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Jane")
	assert.NotContains(t, prompt, PlaceholderName)
	assert.Contains(t, prompt, PlaceholderEmail)
	assert.Contains(t, prompt, PlaceholderPhone)
	assert.Contains(t, prompt, PlaceholderWebsite)
}

func TestGenerateResume_EmptyAnalysis(t *testing.T) {
	client := &stubClient{}

	_, err := GenerateResume(context.Background(), client, "", PersonalInfo{})
	require.Error(t, err)
	assert.Empty(t, client.prompts)
}

func TestPersonalInfoValidate(t *testing.T) {
	tests := []struct {
		name    string
		info    PersonalInfo
		wantErr bool
	}{
		{"All empty is valid", PersonalInfo{}, false},
		{"Valid email", PersonalInfo{Email: "jane@x.com"}, false},
		{"Invalid email", PersonalInfo{Email: "not-an-email"}, true},
		{"Full info", PersonalInfo{Name: "Jane", Email: "jane@x.com", Phone: "555-1111", Website: "site.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
