package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cppgrader/internal/configloader"
	"github.com/yaklabco/cppgrader/pkg/config"
)

// isolatedOptions loads from a bare temp directory only, so host
// configuration never leaks into tests.
func isolatedOptions(dir string) configloader.LoadOptions {
	return configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := configloader.Load(context.Background(), isolatedOptions(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", result.Config.Server.Host)
	assert.Equal(t, 8000, result.Config.Server.Port)
	assert.Equal(t, "http://localhost:11434", result.Config.Ollama.Host)
	assert.False(t, result.Config.Ollama.Enabled)
	assert.Equal(t, 500, result.Config.RAG.ChunkSize)
	assert.Equal(t, 3, result.Config.RAG.TopK)
	assert.Equal(t, "info", result.Config.LogLevel)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfigDiscovered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".cppgrader.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: 9100\nlog_level: debug\n"), 0o644))

	result, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, 9100, result.Config.Server.Port)
	assert.Equal(t, "debug", result.Config.LogLevel)
	assert.Equal(t, []string{cfgPath}, result.LoadedFrom)
	assert.Equal(t, cfgPath, result.Paths.Project)
}

func TestLoad_ProjectSearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".cppgrader.yml"), []byte("server:\n  port: 9100\n"), 0o644))

	repo := filepath.Join(root, "repo")
	nested := filepath.Join(repo, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(context.Background(), isolatedOptions(nested))
	require.NoError(t, err)

	assert.Equal(t, 8000, result.Config.Server.Port,
		"config above the repository root is never picked up")
	assert.Empty(t, result.Paths.Project)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cppgrader.yml"), []byte("server:\n  port: 9100\n"), 0o644))

	explicit := filepath.Join(dir, "override.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("server:\n  port: 9200\n"), 0o644))

	opts := isolatedOptions(dir)
	opts.ExplicitPath = explicit

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 9200, result.Config.Server.Port)
	assert.Equal(t, []string{explicit}, result.LoadedFrom, "explicit path replaces project discovery")
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t.TempDir())
	opts.ExplicitPath = filepath.Join(opts.WorkingDir, "absent.yml")

	_, err := configloader.Load(context.Background(), opts)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cppgrader.yml"), []byte("server:\n  port: 9100\n"), 0o644))

	t.Setenv("CPPGRADER_SERVER_PORT", "9300")
	t.Setenv("CPPGRADER_OLLAMA_ENABLED", "true")

	opts := isolatedOptions(dir)
	opts.IgnoreEnv = false

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 9300, result.Config.Server.Port)
	assert.True(t, result.Config.Ollama.Enabled)
}

func TestLoad_CLIConfigHighestPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cppgrader.yml"), []byte("server:\n  port: 9100\nlog_level: debug\n"), 0o644))

	opts := isolatedOptions(dir)
	opts.CLIConfig = &config.Config{
		Server: config.ServerConfig{Port: 9400},
		Jobs:   4,
	}

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 9400, result.Config.Server.Port)
	assert.Equal(t, 4, result.Config.Jobs)
	assert.Equal(t, "debug", result.Config.LogLevel, "unset CLI fields keep file values")
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cppgrader.yml"), []byte("server:\n  port: 70000\n"), 0o644))

	_, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cppgrader.yml"), []byte("server: [oops\n"), 0o644))

	_, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.Error(t, err)
}
