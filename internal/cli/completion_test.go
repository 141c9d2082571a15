package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execCompletion(shell string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := newCompletionCmd()
	cmd.SetOut(stdout)
	err := runCompletion(cmd, shell)
	return stdout.String(), err
}

func TestCompletionShells(t *testing.T) {
	for _, shell := range validShells {
		t.Run(shell, func(t *testing.T) {
			stdout, err := execCompletion(shell)
			assert.NoError(t, err)
			assert.NotEmpty(t, stdout)
		})
	}
}

func TestCompletionInvalidShell(t *testing.T) {
	_, err := execCompletion("invalid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell: invalid")
}

func TestDetectShell(t *testing.T) {
	tests := map[string]string{
		"/bin/bash":          "bash",
		"/usr/local/bin/zsh": "zsh",
		"/usr/bin/fish":      "fish",
		"/usr/bin/pwsh":      "powershell",
		"/bin/sh":            "",
		"":                   "",
	}
	for path, want := range tests {
		assert.Equal(t, want, detectShell(path), path)
	}
}
