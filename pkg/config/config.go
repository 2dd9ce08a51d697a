// Package config defines core configuration types for cppgrader.
// These types are pure data structures with no dependency on the loader.
package config

import "strings"

// Severity represents the severity level of a style violation.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityMinor    Severity = "MINOR"
)

// DefaultSeverity is assigned to rules whose section header carries no
// recognized severity keyword, and to any unparseable severity string.
const DefaultSeverity = SeverityWarning

// ParseSeverity maps a free-form severity string to a Severity.
// Matching is case-insensitive. Unknown input yields DefaultSeverity.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical
	case "WARNING":
		return SeverityWarning
	case "MINOR":
		return SeverityMinor
	default:
		return DefaultSeverity
	}
}

// IsValid reports whether s is one of the three known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityMinor:
		return true
	default:
		return false
	}
}

// AllSeverities returns the three severities in display order.
// Aggregation pre-seeds per-severity counts from this list so absent
// severities report zero instead of a missing key.
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityWarning, SeverityMinor}
}

// OutputFormat specifies the output format for CLI reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// OllamaConfig holds settings for the LLM-backed semantic analyzer.
type OllamaConfig struct {
	Host string `yaml:"host"`
	// Model is the model identifier passed to the Ollama generate API.
	Model string `yaml:"model"`
	// TimeoutSeconds bounds a single analyze call, retries included.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Enabled toggles semantic analysis. When false the analyzer runs
	// built-in checks only.
	Enabled bool `yaml:"enabled"`
}

// RAGConfig holds settings for the context retriever.
type RAGConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`
}

// Config is the root configuration structure for cppgrader.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Ollama OllamaConfig `yaml:"ollama"`
	RAG    RAGConfig    `yaml:"rag"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	// StyleGuidePath is a style guide file supplied on the command line.
	StyleGuidePath string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Ollama: OllamaConfig{
			Host:           "http://localhost:11434",
			Model:          "codellama:7b",
			TimeoutSeconds: 120,
			Enabled:        false,
		},
		RAG: RAGConfig{
			ChunkSize:    500,
			ChunkOverlap: 50,
			TopK:         3,
		},
		LogLevel: "info",
		Format:   FormatText,
		Jobs:     0,
	}
}
