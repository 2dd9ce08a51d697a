package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/cppgrader/pkg/config"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want config.Severity
	}{
		{"CRITICAL", config.SeverityCritical},
		{"critical", config.SeverityCritical},
		{" Warning ", config.SeverityWarning},
		{"minor", config.SeverityMinor},
		{"", config.DefaultSeverity},
		{"blocker", config.DefaultSeverity},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, config.ParseSeverity(tt.in), "input %q", tt.in)
	}
}

func TestSeverityIsValid(t *testing.T) {
	t.Parallel()

	for _, sev := range config.AllSeverities() {
		assert.True(t, sev.IsValid())
	}
	assert.False(t, config.Severity("fatal").IsValid())
	assert.False(t, config.Severity("").IsValid())
}

func TestAllSeverities_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []config.Severity{
		config.SeverityCritical,
		config.SeverityWarning,
		config.SeverityMinor,
	}, config.AllSeverities())
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
	assert.False(t, cfg.Ollama.Enabled)
	assert.Equal(t, 3, cfg.RAG.TopK)
	assert.Equal(t, config.FormatText, cfg.Format)
}
