package configloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/internal/configloader"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("CPPGRADER_LOG_LEVEL", "debug")
	t.Setenv("CPPGRADER_SERVER_HOST", "127.0.0.1")
	t.Setenv("CPPGRADER_SERVER_PORT", "9000")
	t.Setenv("CPPGRADER_OLLAMA_MODEL", "qwen2.5-coder:7b")
	t.Setenv("CPPGRADER_OLLAMA_ENABLED", "1")
	t.Setenv("CPPGRADER_RAG_TOP_K", "5")
	t.Setenv("CPPGRADER_JOBS", "8")

	cfg := config.NewConfig()
	require.NoError(t, configloader.LoadFromEnv(cfg))

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "qwen2.5-coder:7b", cfg.Ollama.Model)
	assert.True(t, cfg.Ollama.Enabled)
	assert.Equal(t, 5, cfg.RAG.TopK)
	assert.Equal(t, 8, cfg.Jobs)
}

func TestLoadFromEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("CPPGRADER_SERVER_PORT", "")

	cfg := config.NewConfig()
	require.NoError(t, configloader.LoadFromEnv(cfg))
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadFromEnv_BadInteger(t *testing.T) {
	t.Setenv("CPPGRADER_SERVER_PORT", "eighty")

	err := configloader.LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CPPGRADER_SERVER_PORT")
}

func TestLoadFromEnv_BadBoolean(t *testing.T) {
	t.Setenv("CPPGRADER_OLLAMA_ENABLED", "maybe")

	err := configloader.LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CPPGRADER_OLLAMA_ENABLED")
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	assert.NoError(t, configloader.LoadFromEnv(nil))
}
