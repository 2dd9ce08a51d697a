package configloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/internal/configloader"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	t.Parallel()

	assert.Empty(t, configloader.Validate(config.NewConfig()))
	assert.Empty(t, configloader.Validate(nil))
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Server.Port = 0
	cfg.Ollama.Host = "localhost:11434"
	cfg.LogLevel = "verbose"
	cfg.Jobs = -1

	errs := configloader.Validate(cfg)
	require.Len(t, errs, 4)

	fields := make([]string, 0, len(errs))
	for i := range errs {
		fields = append(fields, errs[i].Field)
	}
	assert.ElementsMatch(t, []string{"server.port", "ollama.host", "log_level", "jobs"}, fields)
}

func TestValidate_PortBounds(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Server.Port = 65536

	errs := configloader.Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "server.port", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "server.port:")
}

func TestValidate_RAGBounds(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.RAG.ChunkSize = 0
	cfg.RAG.TopK = 0

	errs := configloader.Validate(cfg)
	require.Len(t, errs, 2)
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.LogLevel = "DEBUG"

	assert.Empty(t, configloader.Validate(cfg))
}
