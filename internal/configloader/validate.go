package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cppgrader/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "server.port").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// validLogLevels are the accepted log_level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks a resolved configuration for invalid values.
// It returns all problems found, not just the first.
func Validate(cfg *config.Config) []ValidationError {
	if cfg == nil {
		return nil
	}

	var errs []ValidationError

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "server.port",
			Value:   cfg.Server.Port,
			Message: fmt.Sprintf("must be between 1 and 65535, got %d", cfg.Server.Port),
		})
	}

	if cfg.Ollama.Host != "" && !strings.HasPrefix(cfg.Ollama.Host, "http://") && !strings.HasPrefix(cfg.Ollama.Host, "https://") {
		errs = append(errs, ValidationError{
			Field:   "ollama.host",
			Value:   cfg.Ollama.Host,
			Message: "must be an http:// or https:// URL",
		})
	}

	if cfg.Ollama.TimeoutSeconds < 0 {
		errs = append(errs, ValidationError{
			Field:   "ollama.timeout_seconds",
			Value:   cfg.Ollama.TimeoutSeconds,
			Message: "must not be negative",
		})
	}

	if cfg.RAG.ChunkSize < 1 {
		errs = append(errs, ValidationError{
			Field:   "rag.chunk_size",
			Value:   cfg.RAG.ChunkSize,
			Message: "must be at least 1",
		})
	}

	if cfg.RAG.ChunkOverlap < 0 {
		errs = append(errs, ValidationError{
			Field:   "rag.chunk_overlap",
			Value:   cfg.RAG.ChunkOverlap,
			Message: "must not be negative",
		})
	}

	if cfg.RAG.TopK < 1 {
		errs = append(errs, ValidationError{
			Field:   "rag.top_k",
			Value:   cfg.RAG.TopK,
			Message: "must be at least 1",
		})
	}

	if cfg.LogLevel != "" && !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if cfg.Jobs < 0 {
		errs = append(errs, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "must not be negative",
		})
	}

	return errs
}
