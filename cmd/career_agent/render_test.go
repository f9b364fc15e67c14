package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --in flag",
			args:        []string{"render"},
			wantError:   true,
			errorString: "required",
		},
		{
			name:        "No output flags",
			args:        []string{"render", "--in", "resume.md"},
			wantError:   true,
			errorString: "at least one of --html or --pdf",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRenderCommand_HTMLOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.md")
	htmlPath := filepath.Join(dir, "resume.html")
	markdown := "# Jane Doe\njane@x.com | 555-1111\n## Skills\n* **Tools:** Git"
	require.NoError(t, os.WriteFile(resumePath, []byte(markdown), 0644))

	cmd := exec.Command(binaryPath, "render", "--in", resumePath, "--html", htmlPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Jane Doe</h1>")
	assert.Contains(t, string(data), "<style>")
}
