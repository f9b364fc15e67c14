package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsShortInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   \n \t \n"},
		{"Single line", "# Jane Doe"},
		{"Single line among blanks", "\n\n# Jane Doe\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Header
	}{
		{
			name:  "Name with marker and three contacts",
			input: "# Jane Doe\njane@x.com | 555-1111 | site.com",
			expected: Header{
				Name:          "Jane Doe",
				ContactFields: []string{"jane@x.com", "555-1111", "site.com"},
			},
		},
		{
			name:  "Name without marker",
			input: "Jane Doe\njane@x.com|555-1111",
			expected: Header{
				Name:          "Jane Doe",
				ContactFields: []string{"jane@x.com", "555-1111"},
			},
		},
		{
			name:  "Blank lines before header are skipped",
			input: "\n\n# Jane Doe\n\njane@x.com | 555-1111",
			expected: Header{
				Name:          "Jane Doe",
				ContactFields: []string{"jane@x.com", "555-1111"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Header)
		})
	}
}

func TestParseSkillsSection(t *testing.T) {
	input := "# Jane Doe\njane@x.com | 555-1111 | site.com\n## Skills\n* **Tools:** Git, Docker\n* Extra skill"

	doc, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.Header.Name)
	assert.Equal(t, []string{"jane@x.com", "555-1111", "site.com"}, doc.Header.ContactFields)

	require.Len(t, doc.Sections, 1)
	section := doc.Sections[0]
	assert.Equal(t, "Skills", section.Title)
	assert.Equal(t, SectionSkills, section.Kind)
	assert.Equal(t, []SkillLine{
		{Category: "Tools", Items: "Git, Docker"},
		{Category: "", Items: "Extra skill"},
	}, section.Skills)
}

func TestParseWorkExperienceSection(t *testing.T) {
	input := "# Jane Doe\njane@x.com\n## Work Experience\n**Engineer** | Acme\n*2020 - Present*\n* Did X\n* Did Y"

	doc, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	section := doc.Sections[0]
	assert.Equal(t, SectionExperience, section.Kind)
	require.Len(t, section.Jobs, 1)
	assert.Equal(t, Job{
		Title:     "Engineer",
		Company:   "Acme",
		DateRange: "2020 - Present",
		Bullets:   []string{"Did X", "Did Y"},
	}, section.Jobs[0])
}

func TestParseMultipleJobs(t *testing.T) {
	input := "# Jane Doe\njane@x.com\n## Work Experience\n" +
		"**Engineer** | Acme\n*2020 - Present*\n* Did X\n" +
		"**Intern** | Beta Corp\n*2019*\n* Did Y\n* Did Z"

	doc, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	jobs := doc.Sections[0].Jobs
	require.Len(t, jobs, 2)
	assert.Equal(t, "Engineer", jobs[0].Title)
	assert.Equal(t, []string{"Did X"}, jobs[0].Bullets)
	assert.Equal(t, "Intern", jobs[1].Title)
	assert.Equal(t, "Beta Corp", jobs[1].Company)
	assert.Equal(t, "2019", jobs[1].DateRange)
	assert.Equal(t, []string{"Did Y", "Did Z"}, jobs[1].Bullets)
}

func TestParseLenientDegradation(t *testing.T) {
	t.Run("Unmatched experience lines are dropped", func(t *testing.T) {
		input := "# Jane Doe\njane@x.com\n## Work Experience\nstray prose line\n**Engineer** | Acme\nanother stray\n* Did X"

		doc, err := Parse(input)
		require.NoError(t, err)
		require.Len(t, doc.Sections[0].Jobs, 1)
		assert.Equal(t, []string{"Did X"}, doc.Sections[0].Jobs[0].Bullets)
	})

	t.Run("Date before any job header is ignored", func(t *testing.T) {
		input := "# Jane Doe\njane@x.com\n## Work Experience\n*2020*\n**Engineer** | Acme"

		doc, err := Parse(input)
		require.NoError(t, err)
		require.Len(t, doc.Sections[0].Jobs, 1)
		assert.Empty(t, doc.Sections[0].Jobs[0].DateRange)
	})

	t.Run("Lines before the first section are discarded", func(t *testing.T) {
		input := "# Jane Doe\njane@x.com\norphan line\n## Summary\nbody"

		doc, err := Parse(input)
		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "body", doc.Sections[0].Text)
	})
}

func TestParseGenericSection(t *testing.T) {
	input := "# Jane Doe\njane@x.com\n## Education\nBS Computer Science\nState University, 2018"

	doc, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 1)
	section := doc.Sections[0]
	assert.Equal(t, "Education", section.Title)
	assert.Equal(t, SectionGeneric, section.Kind)
	assert.Equal(t, "BS Computer Science\nState University, 2018", section.Text)
	assert.Empty(t, section.Jobs)
	assert.Empty(t, section.Skills)
}

func TestParseIdempotent(t *testing.T) {
	input := "# Jane Doe\njane@x.com | 555-1111\n## Work Experience\n**Engineer** | Acme\n*2020 - Present*\n* Did X\n## Skills\n* **Tools:** Git"
	first, err := Parse(input)
	require.NoError(t, err)
	second, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-parsing the same input should yield a structurally identical tree")
}
