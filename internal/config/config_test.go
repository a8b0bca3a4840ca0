package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	t.Setenv(logEnvKey, "")

	cfg, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.App().MaxReadRetries())
	assert.Equal(t, "cli", cfg.Logger().Env())
	assert.False(t, cfg.Tracing().Enabled())
	assert.Equal(t, "bill-tracker", cfg.Tracing().ServiceName())
	assert.Equal(t, "localhost:6831", cfg.Tracing().AgentHostPort())
}

func Test_OnFile_ShouldOverrideDefaults(t *testing.T) {
	t.Setenv(logEnvKey, "")
	path := writeConfig(t, `
app:
  read-retries: 7
logger:
  env: dev
tracing:
  enabled: true
`)

	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.App().MaxReadRetries())
	assert.Equal(t, "dev", cfg.Logger().Env())
	assert.True(t, cfg.Tracing().Enabled())
	assert.Equal(t, "bill-tracker", cfg.Tracing().ServiceName())
}

func Test_OnLogEnvVariable_ShouldOverrideFile(t *testing.T) {
	t.Setenv(logEnvKey, "prod")
	path := writeConfig(t, "logger:\n  env: dev\n")

	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Logger().Env())
}

func Test_OnNegativeRetries_ShouldClampToZero(t *testing.T) {
	path := writeConfig(t, "app:\n  read-retries: -2\n")

	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.App().MaxReadRetries())
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	path := writeConfig(t, "app: [unclosed")

	_, err := NewFromFile(path)
	assert.Error(t, err)
}
