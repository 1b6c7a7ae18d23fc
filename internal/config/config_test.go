package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_BASE_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.TextModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.ProModel)
	assert.Equal(t, "imagen-4.0-generate-001", cfg.Gemini.ImagenModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Gemini.BaseURL)
}

func TestLoadParsesYAML(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_BASE_URL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("gemini:\n  api_key: file-key\n  timeout: 30s\nlogging:\n  debug_mode: true\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "30s", cfg.Gemini.Timeout)
	assert.True(t, cfg.Logging.DebugMode)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini:\n  api_key: file-key\n"), 0644))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:1234")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "http://localhost:1234", cfg.Gemini.BaseURL)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	cfg.Gemini.APIKey = "some-key"
	assert.NoError(t, cfg.Validate())
}

func TestGeminiTimeoutFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.Timeout = "not-a-duration"
	assert.Equal(t, "2m0s", cfg.GeminiTimeout().String())
}
