package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	algos := []string{"linear", "matexp", "mathbig"}

	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _fibbench_completions fibbench", `algorithms="linear matexp mathbig"`, "-max-time"}},
		{"zsh", []string{"#compdef fibbench", "algorithms=(linear matexp mathbig)", "-metrics-file"}},
		{"fish", []string{"complete -c fibbench -o algo -x -a 'linear matexp mathbig'", "-o log-level"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, GenerateCompletion(&buf, tt.shell, algos))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
			assert.NotContains(t, buf.String(), "%!", "no formatting errors")
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell")
	assert.Zero(t, buf.Len())
}
