package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nickel", "config.yaml")
	if content != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return path
}

func execConfigGet(path, key string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := configGetCmd
	cmd.SetOut(stdout)
	err := runConfigGet(cmd, path, key)
	return stdout.String(), err
}

func TestConfigGetAll(t *testing.T) {
	plain = true
	path := setupConfigTest(t, "")

	stdout, err := execConfigGet(path, "")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "Configuration ("+path+"):")
	assert.Contains(t, stdout, "timezone:      (local)")
	assert.Contains(t, stdout, "format:        text")
	assert.Contains(t, stdout, "horizon_days:  30")
	assert.Contains(t, stdout, "color:         auto")
}

func TestConfigGetKey(t *testing.T) {
	path := setupConfigTest(t, "timezone: Europe/Prague\nhorizon_days: 7\n")

	tests := []struct {
		key  string
		want string
	}{
		{"timezone", "Europe/Prague\n"},
		{"horizon_days", "7\n"},
		{"format", "text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			stdout, err := execConfigGet(path, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestConfigGetUnknownKey(t *testing.T) {
	path := setupConfigTest(t, "")

	_, err := execConfigGet(path, "editor")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "editor"`)
}

func TestConfigGetInvalidFile(t *testing.T) {
	path := setupConfigTest(t, "format: xml\n")

	_, err := execConfigGet(path, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfigPathCommand(t *testing.T) {
	path := setupConfigTest(t, "")

	out, err := execute(t, "", "config", "path", "--config", path)

	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}
